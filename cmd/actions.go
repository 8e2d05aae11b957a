package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	solanarpc "github.com/gagliardetto/solana-go/rpc"

	"github.com/solworks-dev/dlmm-checker/internal/configs"
	"github.com/solworks-dev/dlmm-checker/internal/menu"
	"github.com/solworks-dev/dlmm-checker/internal/secrets"
	"github.com/solworks-dev/dlmm-checker/internal/solana"
)

const lamportsPerSOL = 1_000_000_000

// sessionActions wires the main-menu flows to the on-chain wrappers.
func sessionActions(store *secrets.Store, key []byte) menu.Actions {
	return menu.Actions{
		CheckPositions: func(ctx context.Context, doc *configs.Document) error {
			return checkPositions(ctx, doc, store, key)
		},
		WalletBalances: func(ctx context.Context, doc *configs.Document) error {
			return walletBalances(ctx, doc, store, key)
		},
	}
}

// resolveRPCURL returns the decrypted URL of the default RPC endpoint, or
// the public mainnet endpoint when none is configured or readable.
func resolveRPCURL(doc *configs.Document, store *secrets.Store, key []byte) string {
	entry := configs.DefaultEntry(doc.RPCEndpoints)
	if entry == nil || key == nil {
		return solanarpc.MainNetBeta_RPC
	}

	url, present, err := store.Retrieve(secrets.RPCURLKey(entry.ID), key)
	if err != nil {
		Logger.WarnfUser("RPC endpoint %s: secret unavailable, falling back to public RPC: %v", entry.Name, err)
		return solanarpc.MainNetBeta_RPC
	}
	if !present {
		return solanarpc.MainNetBeta_RPC
	}
	return url
}

// checkPositions fetches the DLMM positions of the default wallet.
func checkPositions(ctx context.Context, doc *configs.Document, store *secrets.Store, key []byte) error {
	if key == nil {
		return fmt.Errorf("no encryption key this session; wallet addresses cannot be read")
	}

	wallet := configs.DefaultEntry(doc.Wallets)
	if wallet == nil {
		return fmt.Errorf("no wallets configured")
	}

	address, present, err := store.Retrieve(secrets.WalletSecretKey(wallet.ID), key)
	if err != nil {
		return fmt.Errorf("wallet %s: secret unavailable: %w", wallet.Name, err)
	}
	if !present {
		return fmt.Errorf("wallet %s has no stored address", wallet.Name)
	}

	client := solana.NewClient(resolveRPCURL(doc, store, key),
		doc.CodeSettings.TimeoutSeconds, doc.CodeSettings.Attempts)

	s, cleanup := startSpinner("Fetching DLMM positions...")
	defer cleanup()

	positions, err := client.Positions(ctx, address)
	if err != nil {
		s.FinalMSG = color.RedString("✗") + " could not fetch positions"
		return err
	}

	if len(positions) == 0 {
		s.FinalMSG = color.YellowString("–") + " no open DLMM positions for " + color.CyanString(wallet.Name)
		return nil
	}

	msg := color.GreenString("✓") + fmt.Sprintf(" %d open DLMM position(s) for %s\n",
		len(positions), color.CyanString(wallet.Name))
	for _, p := range positions {
		msg += fmt.Sprintf("    %s  pool %s\n", p.Address, color.YellowString(p.LbPair.String()))
	}
	s.FinalMSG = msg
	return nil
}

// walletBalances prints the SOL balance of every wallet whose address is
// stored. A wallet whose secret cannot be decrypted is reported and
// skipped; it never aborts the whole run.
func walletBalances(ctx context.Context, doc *configs.Document, store *secrets.Store, key []byte) error {
	if key == nil {
		return fmt.Errorf("no encryption key this session; wallet addresses cannot be read")
	}
	if len(doc.Wallets) == 0 {
		return fmt.Errorf("no wallets configured")
	}

	client := solana.NewClient(resolveRPCURL(doc, store, key),
		doc.CodeSettings.TimeoutSeconds, doc.CodeSettings.Attempts)

	s, cleanup := startSpinner("Fetching balances...")
	defer cleanup()

	msg := ""
	for _, w := range doc.Wallets {
		address, present, err := store.Retrieve(secrets.WalletSecretKey(w.ID), key)
		if err != nil {
			msg += color.RedString("✗") + fmt.Sprintf(" %s: secret unavailable\n", w.Name)
			continue
		}
		if !present {
			msg += color.YellowString("–") + fmt.Sprintf(" %s: no stored address\n", w.Name)
			continue
		}

		lamports, err := client.Balance(ctx, address)
		if err != nil {
			msg += color.RedString("✗") + fmt.Sprintf(" %s: %v\n", w.Name, err)
			continue
		}
		msg += color.GreenString("✓") + fmt.Sprintf(" %s: %.4f SOL\n",
			w.Name, float64(lamports)/lamportsPerSOL)
	}
	s.FinalMSG = msg
	return nil
}
