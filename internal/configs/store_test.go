package configs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	logger "github.com/solworks-dev/dlmm-checker/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	return &Store{
		Path:   filepath.Join(t.TempDir(), "params.json"),
		Logger: logger.Logger{},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	doc := DefaultDocument()
	doc.CodeSettings.TimeoutSeconds = 5
	doc.RPCEndpoints = []NamedEntry{
		{ID: NewEntryID(), Name: "helius", Order: 1},
		{ID: NewEntryID(), Name: "triton", Order: 2},
	}

	if err := store.Write(doc); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded := store.Read()
	if !reflect.DeepEqual(doc, loaded) {
		t.Errorf("Round trip mismatch:\nwrote %+v\nread  %+v", doc, loaded)
	}
}

func TestReadMissingFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	doc := store.Read()
	if err := doc.Validate(); err != nil {
		t.Fatalf("Default document failed validation: %v", err)
	}

	want := DefaultDocument()
	if doc.CodeSettings != want.CodeSettings {
		t.Errorf("Expected default code settings %+v, got %+v", want.CodeSettings, doc.CodeSettings)
	}
	if len(doc.Wallets) != 1 || doc.Wallets[0].Order != 1 {
		t.Errorf("Expected one seeded wallet at order 1, got %v", doc.Wallets)
	}
	if len(doc.RPCEndpoints) != 0 {
		t.Errorf("Expected empty RPC collection, got %v", doc.RPCEndpoints)
	}
}

func TestReadMalformedFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("Failed to write malformed file: %v", err)
	}

	doc := store.Read()
	if err := doc.Validate(); err != nil {
		t.Errorf("Expected a valid default document, got %v", err)
	}
}

func TestReadInvalidDocumentReturnsDefaults(t *testing.T) {
	store := newTestStore(t)
	// Valid JSON, invalid schema: timeout below 1.
	raw := `{"codeSettings":{"timeoutSeconds":0,"attempts":3},"wallets":[],"rpcEndpoints":[]}`
	if err := os.WriteFile(store.Path, []byte(raw), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	doc := store.Read()
	if doc.CodeSettings.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Expected defaults for invalid document, got %+v", doc.CodeSettings)
	}
}

func TestWriteRefusesInvalidDocument(t *testing.T) {
	store := newTestStore(t)

	doc := DefaultDocument()
	if err := store.Write(doc); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	bad := doc.Clone()
	bad.Wallets[0].Order = -1
	if err := store.Write(bad); err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	// The previous valid document must be untouched.
	loaded := store.Read()
	if loaded.Wallets[0].Order != 1 {
		t.Errorf("Invalid write clobbered the stored document: %v", loaded.Wallets)
	}
}
