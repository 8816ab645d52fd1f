// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The sort pipeline is built leaf-first:
//
//   - Segment / SplitLines: blank-line structure and line splitting
//   - Extract: paired marked/plain lines and their fields
//   - AssignKeys: per-line comparable keys, resolved once
//   - CompareKeyed / SortKeyed: stable multi-key ordering
//   - Reassemble: sorted lines back into the original layout
//
// Services are pure Go with no CGO or external dependencies.
package services
