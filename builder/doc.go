// Package builder provides deterministic sample topologies as paths/nodes
// mapping pairs ready for mapping.Normalize.
//
// What:
//
//   - Ring(n): the cycle C_n, every node joined to its two neighbors.
//   - Complete(n): the complete map K_n, every node pair joined.
//   - Koenigsberg(): the classical seven-bridge configuration (a multigraph
//     with two double connections; famously has no solution).
//   - TenSpotHexagon(), Cealdhame(): larger hand-drawn development maps.
//
// Determinism:
//
//   - Node labels are decimal strings assigned in ascending index order;
//     synthesized path labels come from mapping.FromAdjacency. The same call
//     always produces identical mappings.
//
// Errors:
//
//   - ErrTooFewNodes when n is below the constructor's minimum.
package builder
