package configs

import (
	"fmt"

	"github.com/google/uuid"

	cerrors "github.com/solworks-dev/dlmm-checker/internal/errors"
)

// CodeSettings holds the scalar execution parameters consumed by the
// position-checking flows.
type CodeSettings struct {
	TimeoutSeconds int `json:"timeoutSeconds"`
	Attempts       int `json:"attempts"`
}

// NamedEntry is a named, ordered configuration record for a wallet or RPC
// endpoint. The sensitive value (private address, RPC URL) lives in the
// secret store under the entry's ID.
type NamedEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// Document is the whole persisted non-secret state.
type Document struct {
	CodeSettings CodeSettings `json:"codeSettings"`
	Wallets      []NamedEntry `json:"wallets"`
	RPCEndpoints []NamedEntry `json:"rpcEndpoints"`
}

const (
	DefaultTimeoutSeconds = 3
	DefaultAttempts       = 3
)

// NewEntryID generates a fresh unique id for a NamedEntry.
func NewEntryID() string {
	return uuid.New().String()
}

// DefaultDocument produces the baseline document: default timeout and
// attempts, one seeded wallet at order 1, and no RPC endpoints.
func DefaultDocument() *Document {
	return &Document{
		CodeSettings: CodeSettings{
			TimeoutSeconds: DefaultTimeoutSeconds,
			Attempts:       DefaultAttempts,
		},
		Wallets: []NamedEntry{
			{ID: NewEntryID(), Name: "main-wallet", Order: 1},
		},
		RPCEndpoints: []NamedEntry{},
	}
}

// Clone returns a deep copy of the document for staged editing.
func (d *Document) Clone() *Document {
	out := &Document{
		CodeSettings: d.CodeSettings,
		Wallets:      make([]NamedEntry, len(d.Wallets)),
		RPCEndpoints: make([]NamedEntry, len(d.RPCEndpoints)),
	}
	copy(out.Wallets, d.Wallets)
	copy(out.RPCEndpoints, d.RPCEndpoints)
	return out
}

// Validate enforces the structural schema rules. Name uniqueness and order
// contiguity are business rules owned by the menu engine, not checked here.
func (d *Document) Validate() error {
	if d.CodeSettings.TimeoutSeconds < 1 {
		return fmt.Errorf("%w: timeoutSeconds must be >= 1, got %d",
			cerrors.ErrInvalidDocument, d.CodeSettings.TimeoutSeconds)
	}
	if d.CodeSettings.Attempts < 1 {
		return fmt.Errorf("%w: attempts must be >= 1, got %d",
			cerrors.ErrInvalidDocument, d.CodeSettings.Attempts)
	}
	if err := validateEntries("wallets", d.Wallets); err != nil {
		return err
	}
	return validateEntries("rpcEndpoints", d.RPCEndpoints)
}

func validateEntries(collection string, entries []NamedEntry) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if _, err := uuid.Parse(e.ID); err != nil {
			return fmt.Errorf("%w: %s entry %q: %v",
				cerrors.ErrInvalidDocument, collection, e.Name, cerrors.ErrInvalidID)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: %s: duplicate entry id %s",
				cerrors.ErrInvalidDocument, collection, e.ID)
		}
		seen[e.ID] = true
		if e.Order < 1 {
			return fmt.Errorf("%w: %s entry %q: %v",
				cerrors.ErrInvalidDocument, collection, e.Name, cerrors.ErrInvalidOrder)
		}
	}
	return nil
}

// NameTaken reports whether name is already used by an entry in the
// collection other than the one with skipID. Comparison is case-sensitive.
func NameTaken(entries []NamedEntry, name, skipID string) bool {
	for _, e := range entries {
		if e.ID != skipID && e.Name == name {
			return true
		}
	}
	return false
}

// FindEntry returns the index of the entry with the given id, or -1.
func FindEntry(entries []NamedEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

// DefaultEntry returns the entry with rank 1, or nil if the collection is
// empty.
func DefaultEntry(entries []NamedEntry) *NamedEntry {
	for i := range entries {
		if entries[i].Order == 1 {
			return &entries[i]
		}
	}
	return nil
}
