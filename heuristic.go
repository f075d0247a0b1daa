package gridastar

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. It never overestimates on a
// 4-connected grid with unit edge cost, and is exact when no barriers exist.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
