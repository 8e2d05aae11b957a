// Package logger provides structured logging for dlmm-checker CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors, and every
// line can additionally be teed uncolored to a session log file through an
// injectable sink.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always shown.
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d wallets", count)
//
// Commands typically create a logger in their PersistentPreRun and pass it
// to internal functions. Secret values must never be passed to any log
// method.
package logger
