// SPDX-License-Identifier: MIT

// Package builder produces graph.Graph fixtures for matching: deterministic
// topologies, seeded random graphs, randomly relabelled isomorphic pairs and
// random induced subgraphs.
//
// Entry point:
//
//	g, err := builder.Build(
//		[]graph.Option{graph.WithDirected(false)},
//		[]builder.Option{builder.WithSeed(7)},
//		builder.Cycle(6), builder.Complete(3),
//	)
//
// Constructors append to the graph they are given: each one numbers its own
// nodes from the current NodeCount, so several constructors compose into a
// disjoint union.
//
// Topologies (Constructor):
//
//	– Path(n), Cycle(n), Star(n), Wheel(n), Complete(n)
//	– CompleteBipartite(n1, n2), Grid(rows, cols)
//	– PlatonicSolid(name, withCenter)
//	– RandomSparse(n, p), RandomRegular(n, d)   (need WithSeed or WithRand)
//
// Matching fixtures:
//
//	– Generate(nodes, edges, connected, ...)       random graph + isomorphic copy
//	– ExtractSubgraph(g, nodes, connected, ...)    random node-induced subgraph
//	– IsConnected(g)                               weak connectivity test
//
// Options (Option):
//
//	– WithSeed(int64), WithRand(*rand.Rand)    randomness source
//	– WithNodeAttr(func(i int) any)            node attribute by local index
//	– WithEdgeAttr(func(u, v int) any)         edge attribute by local indices
//	– WithGraphOptions(...graph.Option)        orientation/loops for Generate
//
// Errors:
//
//	ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource,
//	ErrTooManyEdges, ErrTooManyNodes, ErrUnknownSolid,
//	ErrUnsupportedGraphMode, ErrConstructFailed.
//	All are wrapped with the constructor name; test with errors.Is.
package builder
