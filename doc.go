// Package cline provides command registration, prefix completion, and dispatch
// for interactive command-line hosts. A host registers hierarchical commands
// (token sequences such as "task add") bound to callbacks, then feeds typed
// lines to a [Dispatcher]: Complete returns the valid next tokens for a
// partial line, and Exec resolves a full line to the longest matching
// registered command and invokes its callback with the leftover tokens as
// arguments.
//
// The package owns no terminal concerns. Reading lines, rendering prompts,
// and looping belong to the host; see cmd/clinesh for an example read-loop.
//
// All operations run synchronously on the caller's goroutine and the tree
// carries no internal locking. A host that registers and resolves from
// multiple goroutines must serialize access itself.
package cline
