// Package menu drives the interactive editing session.
//
// The engine is a small state machine instantiated per editable
// collection (wallets, RPC endpoints) and for the scalar code settings:
//
//	Browsing      list view: add / select entry / back / back to main menu
//	EditingEntry  field-by-field edit of one staged entry:
//	              edit field / delete / cancel / save-and-back
//
// The parameter document is loaded once per session and all edits are
// staged on an in-memory copy. "Save and back" is the single commit
// point: it reindexes the collection and persists through the parameter
// store. "Cancel" restores the pre-edit snapshot of the entry's
// non-secret fields.
//
// Secret fields are the one exception to staging: entering a secret
// writes it to the secret store immediately, and Cancel does not undo it.
// The prompt copy says so explicitly.
//
// All prompting goes through the Prompter interface so the engine can be
// tested with a scripted prompter; the real implementation wraps
// promptui.
package menu
