package errors

import "errors"

// Validation errors indicate malformed or rule-violating operator input.
// They are always recovered locally by re-prompting.
var (
	// ErrInvalidDocument indicates the configuration document failed schema validation.
	ErrInvalidDocument = errors.New("configuration document is invalid")

	// ErrInvalidOrder indicates an entry order value is not a positive integer.
	ErrInvalidOrder = errors.New("order must be a positive integer")

	// ErrEmptyName indicates an entry name is empty.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrDuplicateName indicates an entry name collides with an existing entry in the same collection.
	ErrDuplicateName = errors.New("name already in use in this collection")

	// ErrInvalidID indicates an entry id is missing or malformed.
	ErrInvalidID = errors.New("entry id is missing or malformed")

	// ErrInvalidNumber indicates a scalar setting is not a positive integer.
	ErrInvalidNumber = errors.New("value must be a positive integer")
)

// Key errors indicate the session encryption key could not be established.
var (
	// ErrKeyInitialization indicates no usable encryption key could be established.
	ErrKeyInitialization = errors.New("failed to establish encryption key")

	// ErrPassphraseTooShort indicates the operator passphrase is below the minimum length.
	ErrPassphraseTooShort = errors.New("passphrase must be at least 8 characters")

	// ErrPassphraseMismatch indicates passphrase confirmation did not match.
	ErrPassphraseMismatch = errors.New("passphrases do not match")
)

// Cryptographic errors indicate failures during encryption or decryption.
var (
	// ErrDecryptFailed indicates authentication or format failure reading a secret.
	ErrDecryptFailed = errors.New("failed to decrypt secret")

	// ErrEncryptFailed indicates a secret could not be encrypted.
	ErrEncryptFailed = errors.New("failed to encrypt secret")

	// ErrMalformedCiphertext indicates a stored ciphertext record could not be decoded.
	ErrMalformedCiphertext = errors.New("malformed ciphertext record")
)

// Persistence errors indicate file system issues.
var (
	// ErrWriteFailed indicates a document or secrets file could not be persisted.
	ErrWriteFailed = errors.New("failed to persist file")
)
