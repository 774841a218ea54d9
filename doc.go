// Package ball is a VF2 graph matching toolkit: exact isomorphism, subgraph
// monomorphism and maximum common subgraph over attributed graphs, with a
// molecule bridge and a command-line front end.
//
// Everything is organized under a few packages:
//
//	graph/          NodeID, Edge, the read-only Accessor contract, Graph storage, comparators
//	vf2/            node ordering, the shared-arena match state, iso/sub/MCS rules, drivers
//	builder/        deterministic topologies, seeded random graphs, isomorphic pairs, induced subgraphs
//	molgraph/       atoms and bonds as attributed graphs, element/bond-order comparators
//	internal/molio  TOML/YAML molecule files, optionally gzip or zstd compressed
//	internal/cli    the vf2match commands (match, batch, version)
//
// Quick ASCII example:
//
//	query      target
//	 0───1      0───1
//	  \ /       │ ╳ │
//	   2        3───2
//
// The triangle embeds into K4 24 times; every embedding is also induced.
//
//	go install github.com/dstoeckel/ball/cmd/vf2match@latest
package ball
