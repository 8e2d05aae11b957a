// Package audit records every committed parameter change in a local
// journal, so an operator can reconstruct how the configuration reached
// its current state.
//
// # Log Format
//
// The journal is stored as JSON Lines (one JSON object per line) next to
// the parameter document:
//
//	changes.jsonl
//
// Each entry contains a UTC timestamp, the operation (add, update,
// delete, save-settings), and the affected collection and entry name.
// Secret values never appear in the journal.
//
// # Failure Handling
//
// Journaling is best-effort. If an append fails (permissions, disk full,
// etc.), the edit itself still succeeds.
package audit
