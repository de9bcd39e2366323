// Package koenigsberg exhaustively enumerates every trail through an
// undirected multigraph that crosses each connection exactly once, a
// brute-force generalization of the Königsberg bridge problem.
//
// 🚀 What is koenigsberg?
//
//	A small, focused toolkit that brings together:
//		• mapping:    validation & dense integer normalization of labeled maps
//		• solver:     recursive backtracking search with exhausted-prefix pruning
//		• checkpoint: resumable, compressed progress snapshots
//		• mapfile:    .graph / .map inputs in JSON, YAML and HCL
//		• builder:    deterministic sample topologies (rings, complete maps, the
//		  classical seven-bridge configuration)
//		• report:     verbosity-aware console reporting of solutions & progress
//
// ✨ Why choose koenigsberg?
//
//   - Deterministic – candidates explored in ascending connection-ID order,
//     same input ⇒ same solutions in the same order
//   - Resumable – multi-hour searches checkpoint to a compact compressed file
//     and pick up where they left off
//   - Honest – inconsistent map descriptions fail validation loudly instead of
//     being silently normalized
//
// Quick ASCII example (the seven bridges):
//
//	    C
//	   ╱╱ ╲
//	  A────D
//	   ╲╲ ╱
//	    B
//
//	Two pairs of double bridges and three single ones; Euler proved in 1735
//	that no trail crosses each exactly once. The solver rediscovers that by
//	exhaustion.
//
// The cmd/koenigsberg CLI wires everything together.
//
//	go get github.com/katalvlaran/koenigsberg
package koenigsberg
