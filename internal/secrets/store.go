package secrets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/solworks-dev/dlmm-checker/internal/configs"
	cerrors "github.com/solworks-dev/dlmm-checker/internal/errors"
	logger "github.com/solworks-dev/dlmm-checker/internal/logging"
)

// Store persists encrypted secrets as a flat JSON map on disk. Every
// operation is a read-modify-write of the whole file.
type Store struct {
	Path   string
	Logger logger.Logger
}

// NewStore returns a store for the configured secrets file path.
func NewStore(log logger.Logger) *Store {
	return &Store{Path: configs.AppSettings.SecretsPath, Logger: log}
}

// WalletSecretKey is the store key holding a wallet's private address.
func WalletSecretKey(entryID string) string {
	return "wallet-secret:" + entryID
}

// RPCURLKey is the store key holding an RPC endpoint's URL.
func RPCURLKey(entryID string) string {
	return "rpc-url:" + entryID
}

// Store encrypts value and upserts it under secretKey.
func (s *Store) Store(secretKey, value string, symKey []byte) error {
	record, err := Encrypt(value, symKey)
	if err != nil {
		return err
	}

	records := s.readAll()
	records[secretKey] = record
	return s.writeAll(records)
}

// Retrieve decrypts the value under secretKey. The second return is false
// when the key is absent or the file cannot be read; a present-but-
// undecryptable record returns an error so callers can report "secret
// unavailable" for that one field.
func (s *Store) Retrieve(secretKey string, symKey []byte) (string, bool, error) {
	record, ok := s.readAll()[secretKey]
	if !ok {
		return "", false, nil
	}
	value, err := Decrypt(record, symKey)
	if err != nil {
		return "", true, fmt.Errorf("secret %s: %w", secretKey, err)
	}
	return value, true, nil
}

// Has reports whether a record exists under secretKey, without decrypting.
func (s *Store) Has(secretKey string) bool {
	_, ok := s.readAll()[secretKey]
	return ok
}

// Delete removes the record under secretKey. Deleting an absent key is not
// an error.
func (s *Store) Delete(secretKey string) error {
	records := s.readAll()
	if _, ok := records[secretKey]; !ok {
		return nil
	}
	delete(records, secretKey)
	return s.writeAll(records)
}

// readAll loads the whole mapping. A missing or unparseable file yields an
// empty map; both cases surface to callers as "absent".
func (s *Store) readAll() map[string]string {
	records := make(map[string]string)

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.Logger.Debugf("Could not read secrets file %s: %v", s.Path, err)
		}
		return records
	}
	if err := json.Unmarshal(data, &records); err != nil {
		s.Logger.Warnf("Secrets file %s is malformed, treating as empty: %v", s.Path, err)
		return make(map[string]string)
	}
	return records
}

func (s *Store) writeAll(records map[string]string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal secrets: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return fmt.Errorf("%w: could not create secrets directory: %v", cerrors.ErrWriteFailed, err)
	}
	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("%w: %s: %v", cerrors.ErrWriteFailed, s.Path, err)
	}
	return nil
}
