package cmd

import (
	"path/filepath"
	"testing"

	solanarpc "github.com/gagliardetto/solana-go/rpc"

	"github.com/solworks-dev/dlmm-checker/internal/configs"
	logger "github.com/solworks-dev/dlmm-checker/internal/logging"
	"github.com/solworks-dev/dlmm-checker/internal/secrets"
)

func TestResolveRPCURL(t *testing.T) {
	store := &secrets.Store{
		Path:   filepath.Join(t.TempDir(), "secrets.json"),
		Logger: logger.Logger{},
	}
	key := make([]byte, secrets.KeyLength)

	doc := configs.DefaultDocument()
	if got := resolveRPCURL(doc, store, key); got != solanarpc.MainNetBeta_RPC {
		t.Errorf("No configured endpoint must fall back to public RPC, got %q", got)
	}

	doc.RPCEndpoints = []configs.NamedEntry{
		{ID: configs.NewEntryID(), Name: "main-rpc", Order: 1},
	}

	if got := resolveRPCURL(doc, store, nil); got != solanarpc.MainNetBeta_RPC {
		t.Errorf("No session key must fall back to public RPC, got %q", got)
	}
	if got := resolveRPCURL(doc, store, key); got != solanarpc.MainNetBeta_RPC {
		t.Errorf("Endpoint without a stored URL must fall back to public RPC, got %q", got)
	}

	url := "https://rpc.example.com/?api-key=abc"
	if err := store.Store(secrets.RPCURLKey(doc.RPCEndpoints[0].ID), url, key); err != nil {
		t.Fatalf("Failed to store URL: %v", err)
	}
	if got := resolveRPCURL(doc, store, key); got != url {
		t.Errorf("Expected the stored URL of the default endpoint, got %q", got)
	}
}
