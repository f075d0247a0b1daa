package gridastar

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=observer.go -destination=mock_observer_test.go -package=gridastar

// Observer is called synchronously by the engine. PollCancel runs before every
// dequeue, OnExpandStep once per expanded node and OnPathStep once per
// intermediate path node in end-to-start order.
type Observer interface {
	PollCancel() bool
	OnExpandStep(node *Node)
	OnPathStep(node *Node)
}

// NopObserver never cancels and ignores every step.
type NopObserver struct{}

func (NopObserver) PollCancel() bool   { return false }
func (NopObserver) OnExpandStep(*Node) {}
func (NopObserver) OnPathStep(*Node)   {}

// ObserverFuncs adapts optional callbacks to an Observer. Nil fields are no-ops.
type ObserverFuncs struct {
	Cancel func() bool
	Expand func(node *Node)
	Path   func(node *Node)
}

func (o ObserverFuncs) PollCancel() bool {
	if o.Cancel == nil {
		return false
	}
	return o.Cancel()
}

func (o ObserverFuncs) OnExpandStep(node *Node) {
	if o.Expand != nil {
		o.Expand(node)
	}
}

func (o ObserverFuncs) OnPathStep(node *Node) {
	if o.Path != nil {
		o.Path(node)
	}
}
