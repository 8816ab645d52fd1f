// Package domain defines the core types for Field Sort.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Line: a marked/plain line pair and its extracted fields
//   - SortKey: one user-chosen sort criterion
//   - Layout: the blank-line structure around the sorted block
//   - Extraction: every line of a selection plus its field count
//   - SortRequest / SortResult: one invocation of the sort pipeline
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
