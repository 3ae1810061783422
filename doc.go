// Package untangle is the core of an "untangle" style puzzle game: a graph
// of draggable circles joined by straight lines must be rearranged until no
// two lines cross.
//
// 🧩 What lives here?
//
//	A deterministic, in-process library that brings together:
//		• Data model: circles, lines, levels, deep-copy snapshots
//		• Generation: difficulty progression, crossing-free layouts,
//		  degree-constrained greedy edge assignment, position scrambling
//		• Detection: pairwise segment-intersection over the full line set,
//		  with the adjacency exemption and a derived "solved" predicate
//		• Persistence: value-copy snapshot codec plus in-memory and SQLite
//		  level stores
//
// ✨ Design guarantees
//
//   - Topology fixed per level — scrambling moves positions only, so every
//     delivered puzzle is solvable by construction
//   - Pure functions over caller-owned slices; no state retained between calls
//   - Geometric shortfalls are diagnostics, never delivery failures
//   - Seedable RNG (WithSeed / WithRand) for reproducible fixtures
//
// Everything is organized under six subpackages:
//
//	geom/         — points, extents, clamping, segment intersection, sampling
//	core/         — Circle, Line, Level, Snapshot and their clone semantics
//	intersect/    — crossing-flag recomputation and the solved predicate
//	generate/     — level parameters, layout, edge assignment, scrambling
//	store/        — snapshot codec, MemoryStore, SQLiteStore
//	cmd/untangle/ — small CLI for generating and verifying levels
//
// Quick ASCII example (a solved square and its tangled twin):
//
//	    0───1          0───2
//	    │   │    vs.    ╲ ╱
//	    3───2            ╳
//	                    ╱ ╲
//	                   3───1
//
// Dive into the per-package docs for contracts, complexity notes and the
// exact error policy of each component.
package untangle
