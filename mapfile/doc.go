// Package mapfile reads map descriptions from files, in the two shapes the
// normalizer accepts:
//
//   - ReadGraph: an adjacency description, node → list of adjacent nodes.
//     Conventionally a ".graph" file.
//   - ReadMap: the explicit pair of mappings, "paths to nodes" and
//     "nodes to paths", under exactly those two keys. Conventionally a
//     ".map" file. This is the only shape that can express parallel paths.
//
// Encodings are chosen by file extension: .graph/.map/.json are JSON,
// .yaml/.yml are YAML, .hcl is HCL (node/path blocks). The shape-specific
// extensions are not interchangeable: ReadGraph rejects ".map" and ReadMap
// rejects ".graph", so a file of the wrong kind fails as a format error.
// Labels may be JSON or YAML strings, integers, or floats; non-scalar labels
// are rejected.
//
// The package only reads and reshapes; all semantic validation happens in
// mapping.Normalize / mapping.FromAdjacency.
//
// Errors:
//
//   - ErrUnknownFormat    unsupported file extension
//   - ErrBadDocument      missing keys, wrong shapes, non-scalar labels
//   - wrapped I/O and decode errors from the underlying readers
package mapfile
