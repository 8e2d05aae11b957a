package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	cerrors "github.com/solworks-dev/dlmm-checker/internal/errors"
	logger "github.com/solworks-dev/dlmm-checker/internal/logging"
)

// Store reads and writes the parameter document at a fixed path. Reads
// never fail upward; writes validate first and refuse invalid documents.
type Store struct {
	Path   string
	Logger logger.Logger
}

// NewStore returns a store for the configured parameter document path.
func NewStore(log logger.Logger) *Store {
	return &Store{Path: AppSettings.ParamsPath, Logger: log}
}

// Read loads and validates the document. On any read, parse, or validation
// failure it logs the cause and returns a fresh default document.
func (s *Store) Read() *Document {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.Logger.Warnf("could not read %s, using defaults: %v", s.Path, err)
		}
		return DefaultDocument()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.Logger.Warnf("parameter document is malformed, using defaults: %v", err)
		return DefaultDocument()
	}
	if doc.Wallets == nil {
		doc.Wallets = []NamedEntry{}
	}
	if doc.RPCEndpoints == nil {
		doc.RPCEndpoints = []NamedEntry{}
	}
	if err := doc.Validate(); err != nil {
		s.Logger.Warnf("parameter document failed validation, using defaults: %v", err)
		return DefaultDocument()
	}
	return &doc
}

// Write validates and persists the document wholesale. A validation error
// propagates to the caller; nothing is written in that case.
func (s *Store) Write(doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal parameter document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return fmt.Errorf("%w: could not create config directory: %v", cerrors.ErrWriteFailed, err)
	}
	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("%w: %s: %v", cerrors.ErrWriteFailed, s.Path, err)
	}
	return nil
}
