package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/scrypt"

	cerrors "github.com/solworks-dev/dlmm-checker/internal/errors"
	logger "github.com/solworks-dev/dlmm-checker/internal/logging"
)

// MinPassphraseLength is the minimum accepted passphrase length.
const MinPassphraseLength = 8

// scrypt parameters sized for an interactive CLI: a fraction of a second
// on commodity hardware, derivation happens once per key file.
const (
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = KeyLength
	saltLength   = 32
)

// PassphraseReader prompts the operator for a passphrase without echoing.
// Injected so key initialization is testable without a terminal.
type PassphraseReader func(prompt string) ([]byte, error)

// GetOrCreateKey establishes the session encryption key. If the key file
// exists its contents are used directly. Otherwise the operator is
// prompted for a passphrase (re-entered when confirm is set), a key is
// derived with scrypt, and the key is persisted so later runs skip the
// prompt. All failure modes wrap ErrKeyInitialization.
func GetOrCreateKey(path string, confirm bool, readPassphrase PassphraseReader, log logger.Logger) ([]byte, error) {
	if key, err := loadKeyFile(path); err == nil {
		log.Debugf("Loaded encryption key from %s", path)
		return key, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: unusable key file at %s: %v", cerrors.ErrKeyInitialization, path, err)
	}

	passphrase, err := readPassphrase("Enter a passphrase to protect your secrets: ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cerrors.ErrKeyInitialization, err)
	}
	if len(passphrase) < MinPassphraseLength {
		return nil, fmt.Errorf("%w: %v", cerrors.ErrKeyInitialization, cerrors.ErrPassphraseTooShort)
	}

	if confirm {
		again, err := readPassphrase("Confirm passphrase: ")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cerrors.ErrKeyInitialization, err)
		}
		if string(passphrase) != string(again) {
			return nil, fmt.Errorf("%w: %v", cerrors.ErrKeyInitialization, cerrors.ErrPassphraseMismatch)
		}
	}

	key, err := deriveKey(passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cerrors.ErrKeyInitialization, err)
	}

	if err := saveKeyFile(path, key); err != nil {
		return nil, fmt.Errorf("%w: %v", cerrors.ErrKeyInitialization, err)
	}
	log.Infof("Encryption key saved to %s", path)

	return key, nil
}

func deriveKey(passphrase []byte) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	key, err := scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

func loadKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("key file is not valid base64: %w", err)
	}
	if len(key) != KeyLength {
		return nil, fmt.Errorf("key file holds %d bytes, expected %d", len(key), KeyLength)
	}
	return key, nil
}

func saveKeyFile(path string, key []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(key) + "\n"
	if err := os.WriteFile(path, []byte(encoded), 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}
