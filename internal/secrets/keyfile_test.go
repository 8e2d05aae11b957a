package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	cerrors "github.com/solworks-dev/dlmm-checker/internal/errors"
	logger "github.com/solworks-dev/dlmm-checker/internal/logging"
)

func scriptedPassphrases(passphrases ...string) PassphraseReader {
	i := 0
	return func(prompt string) ([]byte, error) {
		if i >= len(passphrases) {
			return nil, errors.New("no more scripted passphrases")
		}
		p := passphrases[i]
		i++
		return []byte(p), nil
	}
}

func failingPassphraseReader(prompt string) ([]byte, error) {
	return nil, errors.New("prompt should not have been called")
}

func TestGetOrCreateKeyCreatesAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "key")
	log := logger.Logger{}

	key, err := GetOrCreateKey(path, false, scriptedPassphrases("correct horse battery"), log)
	if err != nil {
		t.Fatalf("GetOrCreateKey failed: %v", err)
	}
	if len(key) != KeyLength {
		t.Fatalf("Expected %d-byte key, got %d", KeyLength, len(key))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Key file was not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected key file mode 0600, got %v", perm)
	}

	// Second call must load the key file without prompting.
	reloaded, err := GetOrCreateKey(path, false, failingPassphraseReader, log)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if string(reloaded) != string(key) {
		t.Error("Reloaded key differs from the created key")
	}
}

func TestGetOrCreateKeyRejectsShortPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")

	_, err := GetOrCreateKey(path, false, scriptedPassphrases("short"), logger.Logger{})
	if !errors.Is(err, cerrors.ErrKeyInitialization) {
		t.Errorf("Expected ErrKeyInitialization, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("No key file should be written on failure")
	}
}

func TestGetOrCreateKeyConfirmationMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")

	_, err := GetOrCreateKey(path, true, scriptedPassphrases("first passphrase", "second passphrase"), logger.Logger{})
	if !errors.Is(err, cerrors.ErrKeyInitialization) {
		t.Errorf("Expected ErrKeyInitialization on mismatch, got %v", err)
	}
}

func TestGetOrCreateKeyConfirmationMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")

	key, err := GetOrCreateKey(path, true, scriptedPassphrases("matching phrase", "matching phrase"), logger.Logger{})
	if err != nil {
		t.Fatalf("GetOrCreateKey failed: %v", err)
	}
	if len(key) != KeyLength {
		t.Errorf("Expected %d-byte key, got %d", KeyLength, len(key))
	}
}

func TestGetOrCreateKeyRejectsCorruptKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("not base64!!\n"), 0600); err != nil {
		t.Fatalf("Failed to write corrupt key file: %v", err)
	}

	_, err := GetOrCreateKey(path, false, failingPassphraseReader, logger.Logger{})
	if !errors.Is(err, cerrors.ErrKeyInitialization) {
		t.Errorf("Expected ErrKeyInitialization for corrupt key file, got %v", err)
	}
}

func TestDeriveKeyIsSalted(t *testing.T) {
	first, err := deriveKey([]byte("same passphrase"))
	if err != nil {
		t.Fatalf("deriveKey failed: %v", err)
	}
	second, err := deriveKey([]byte("same passphrase"))
	if err != nil {
		t.Fatalf("deriveKey failed: %v", err)
	}
	if string(first) == string(second) {
		t.Error("Expected different keys for the same passphrase (random salt)")
	}
}
