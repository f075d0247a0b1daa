// Package gridastar provides a step-observable A* pathfinding engine over a
// square, 4-connected grid with uniform edge cost.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion, reporting every expansion and
//     every reconstructed path cell to an Observer.
//   - Stepper: iterate the search one expansion at a time to drive UIs or
//     debugging tools.
//
// Nodes live in a flat row-major arena owned by the Grid. Neighbor lists and
// parent pointers are indices into that arena. The engine is single-threaded;
// node state mutation order is part of its observable contract.
package gridastar
