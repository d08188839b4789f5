// Package solver is the in-process reference solver.
//
// It runs BFS, DFS and A* over a maze graph and reports nodes in the order they
// were first discovered, which is the shape of answer the trace simulator
// replays.
package solver
