// Package errors provides typed error values for the dlmm-checker application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Validation errors: Rule-violating operator input (ErrInvalidOrder, ErrDuplicateName)
//   - Key errors: Encryption key could not be established (ErrKeyInitialization)
//   - Crypto errors: Encryption/decryption failures (ErrDecryptFailed)
//   - Persistence errors: File read/write issues (ErrWriteFailed)
//
// # Usage
//
// Return errors from internal packages:
//
//	if entry.Order < 1 {
//	    return errors.ErrInvalidOrder
//	}
//
// Handle errors in the CLI layer:
//
//	value, err := store.Retrieve(key, sessionKey)
//	if errors.Is(err, cerrors.ErrDecryptFailed) {
//	    // Show "secret unavailable" for this one field
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading secret for wallet %s: %w", id, errors.ErrDecryptFailed)
package errors
