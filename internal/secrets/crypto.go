package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	cerrors "github.com/solworks-dev/dlmm-checker/internal/errors"
)

// KeyLength is the secretbox key size in bytes.
const KeyLength = 32

const nonceLength = 24

// Encrypt seals plaintext under symKey with a fresh random nonce and
// returns base64(nonce || box). The box includes the authentication tag,
// so tampering is detectable on decrypt.
func Encrypt(plaintext string, symKey []byte) (string, error) {
	if len(symKey) != KeyLength {
		return "", fmt.Errorf("%w: key length must be %d bytes, got %d",
			cerrors.ErrEncryptFailed, KeyLength, len(symKey))
	}
	var key [KeyLength]byte
	copy(key[:], symKey)

	var nonce [nonceLength]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("%w: failed to generate nonce: %v", cerrors.ErrEncryptFailed, err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Authentication failure and malformed input
// both return an error; the plaintext is never guessed at.
func Decrypt(encoded string, symKey []byte) (string, error) {
	if len(symKey) != KeyLength {
		return "", fmt.Errorf("%w: key length must be %d bytes, got %d",
			cerrors.ErrDecryptFailed, KeyLength, len(symKey))
	}
	var key [KeyLength]byte
	copy(key[:], symKey)

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cerrors.ErrMalformedCiphertext, err)
	}
	if len(sealed) < nonceLength+secretbox.Overhead {
		return "", fmt.Errorf("%w: record too short", cerrors.ErrMalformedCiphertext)
	}

	var nonce [nonceLength]byte
	copy(nonce[:], sealed[:nonceLength])

	plaintext, ok := secretbox.Open(nil, sealed[nonceLength:], &nonce, &key)
	if !ok {
		return "", cerrors.ErrDecryptFailed
	}
	return string(plaintext), nil
}
