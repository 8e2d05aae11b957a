// Package solana wraps the on-chain queries driven by the interactive
// menu: wallet balances and Meteora DLMM position lookups. The wrappers
// honor the configured timeout and attempt count from the parameter
// document; everything else is delegated to the solana-go RPC client.
package solana
