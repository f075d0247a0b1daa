package internal

// NoParent marks an arena slot with no predecessor.
const NoParent = -1

// ReconstructPath walks the parent indices in cameFrom back from current to
// start and returns the indices in start-to-current order. The walk stops
// early at a slot with no parent, so callers can detect a broken chain by
// checking the first element.
func ReconstructPath(cameFrom []int, current, start int) []int {
	path := []int{current}
	for current != start {
		previous := cameFrom[current]
		if previous == NoParent {
			break
		}
		path = append(path, previous)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
