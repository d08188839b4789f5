/*
Package maze holds the immutable maze model: a weighted graph with ordered
neighbors, a heuristic table for A*, and the grid and screen positions used to
draw it.

Neighbor order matters. It is the order in which a search inspects neighbors,
so the loader reads mapping keys through yaml.Node instead of decoding into a
Go map.
*/
package maze
