// Package secrets encrypts and persists the sensitive values owned by
// parameter entries: wallet private addresses and RPC endpoint URLs.
//
// All values are sealed with golang.org/x/crypto/nacl/secretbox under a
// single 32-byte session key. Each sealed record carries its own fresh
// random nonce, so encrypting the same value twice yields different
// ciphertext. The on-disk form is a flat JSON map from secret key
// ("wallet-secret:<id>", "rpc-url:<id>") to the base64-encoded record.
//
// The session key is loaded from a local key file, or derived from an
// operator passphrase with scrypt on first run and then persisted to that
// file. The key file must stay out of version control.
//
// Tampered or malformed records fail decryption with ErrDecryptFailed;
// they are never silently returned as garbage and never treated as
// plaintext.
package secrets
