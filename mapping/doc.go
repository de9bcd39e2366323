// Package mapping validates externally-labeled map descriptions and converts
// them into the dense integer-indexed form the solver operates on.
//
// What:
//
//   - Normalize: takes a paths→nodes mapping (each path joins exactly two
//     distinct nodes) and a nodes→paths mapping, cross-checks them, and
//     assigns dense IDs 1..N in sorted-label order, producing forward
//     (ID→label) and reverse (label→ID) tables for both paths and nodes.
//   - FromAdjacency: expands a simpler node→{adjacent nodes} description into
//     the paths/nodes mapping pair, synthesizing one path per unordered
//     adjacent pair and rejecting asymmetric adjacency.
//
// Why:
//   - The solver's scratch buffer and exhausted-prefix store key on single
//     bytes; labels must be resolved to IDs exactly once, up front.
//   - Malformed descriptions are almost always data-entry mistakes; every
//     inconsistency is reported with the offending label instead of being
//     silently repaired.
//
// Limits:
//
//   - At most 255 paths and 255 nodes (IDs are single bytes; ID 0 is the
//     unused-slot marker in the solver's scratch buffer).
//
// Errors:
//
//   - ErrNotEnoughPaths, ErrTooManyPaths, ErrTooManyNodes
//   - ErrEndpointCount         path does not join exactly two distinct nodes
//   - ErrUnknownNode           path references a node absent from nodes→paths
//   - ErrUnknownPath           node references a path absent from paths→nodes
//   - ErrIsolatedNode          node touches no path at all
//   - ErrInconsistent          the two mappings disagree about an incidence
//   - ErrAsymmetric            adjacency lists A→B without B→A
//
// All functions are pure; Normalized values are safe for concurrent reads.
package mapping
