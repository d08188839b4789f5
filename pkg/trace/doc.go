/*
Package trace rebuilds a step-by-step search trace from a solver's final
answer.

A solver only reports the order in which nodes were explored and the final
path. Simulate replays that order against the textbook frontier of the chosen
algorithm (a FIFO queue for BFS, a LIFO stack for DFS, a min-f priority queue
for A*) and narrates every pop, expansion and cost computation together with a
snapshot of the frontier. The explored order always wins: when it disagrees
with the frontier discipline, the matching node is taken from wherever it sits.

Simulate is pure. It never fails; missing graph data reads as no neighbors and
a zero heuristic.
*/
package trace
