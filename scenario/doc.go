// Package scenario describes search problems as YAML documents.
//
// A document names a grid (either a "grid" of 0/1 rows or a textual "maze"),
// the start and goal cells, and optionally the algorithm and heuristic:
//
//	name: small
//	heuristic: manhattan
//	start: [0, 0]
//	goal: [6, 6]
//	maze: |
//	  .#...#.
//	  ...
//
// Built-in scenarios are embedded at build time and available through
// Builtin, Names and Builtins. Resolve accepts either a built-in name or a
// file path.
//
// Errors:
//
//   - ErrInvalid: malformed YAML, unknown keys, bad grid, missing endpoints.
//   - ErrNotFound: unknown built-in name.
package scenario
