// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for different types of content (menu
// labels, paths, errors, etc.) that render appropriately based on terminal
// capabilities. When colors are available, content is colorized. When
// NO_COLOR is set or the terminal doesn't support colors, text-based
// decorations (quotes, parentheses) are used instead.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.Path.Sprint("~/.dlmm-checker/params.json")  // File paths
//	ui.Success.Sprint("✓")                          // Success indicators
//	ui.Error.Sprint("✗")                            // Error indicators
//	ui.Info.Sprint("→")                             // Informational hints
//	ui.Highlight.Sprint("main-wallet")              // Entry names, user values
//	ui.Muted.Sprint("press Ctrl+C to cancel")       // De-emphasized text
//
// Secret values are never printed; ui.Masked produces the placeholder
// shown for a secret field that already has a stored value.
package ui
