package solana

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// dlmmProgramID is the Meteora DLMM program on mainnet.
var dlmmProgramID = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")

// Position account layout: 8-byte discriminator, then the lb pair and
// owner public keys.
const (
	positionLbPairOffset = 8
	positionOwnerOffset  = 40
)

// Client issues RPC queries with the retry and timeout budget taken from
// the code-execution settings.
type Client struct {
	rpc      *rpc.Client
	timeout  time.Duration
	attempts int
}

// NewClient builds a client for rpcURL. timeoutSeconds and attempts come
// from the parameter document and are both at least 1.
func NewClient(rpcURL string, timeoutSeconds, attempts int) *Client {
	return &Client{
		rpc:      rpc.New(rpcURL),
		timeout:  time.Duration(timeoutSeconds) * time.Second,
		attempts: attempts,
	}
}

// Balance returns the SOL balance of address in lamports.
func (c *Client) Balance(ctx context.Context, address string) (uint64, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, fmt.Errorf("invalid Solana address: %w", err)
	}

	var lamports uint64
	err = c.withRetry(ctx, func(ctx context.Context) error {
		out, err := c.rpc.GetBalance(ctx, pubkey, rpc.CommitmentConfirmed)
		if err != nil {
			return err
		}
		lamports = out.Value
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return lamports, nil
}

// Position is one DLMM position account owned by the queried wallet.
type Position struct {
	Address solana.PublicKey
	LbPair  solana.PublicKey
}

// Positions returns the DLMM position accounts owned by address.
func (c *Client) Positions(ctx context.Context, address string) ([]Position, error) {
	owner, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid Solana address: %w", err)
	}

	var positions []Position
	err = c.withRetry(ctx, func(ctx context.Context) error {
		out, err := c.rpc.GetProgramAccountsWithOpts(ctx, dlmmProgramID, &rpc.GetProgramAccountsOpts{
			Commitment: rpc.CommitmentConfirmed,
			Filters: []rpc.RPCFilter{
				{
					Memcmp: &rpc.RPCFilterMemcmp{
						Offset: positionOwnerOffset,
						Bytes:  owner.Bytes(),
					},
				},
			},
		})
		if err != nil {
			return err
		}

		positions = positions[:0]
		for _, acc := range out {
			data := acc.Account.Data.GetBinary()
			if len(data) < positionOwnerOffset+32 {
				continue
			}
			positions = append(positions, Position{
				Address: acc.Pubkey,
				LbPair:  solana.PublicKeyFromBytes(data[positionLbPairOffset : positionLbPairOffset+32]),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch DLMM positions: %w", err)
	}
	return positions, nil
}

// withRetry runs fn up to the configured attempt count, each attempt under
// its own timeout.
func (c *Client) withRetry(ctx context.Context, fn func(context.Context) error) error {
	var lastErr error
	for i := 0; i < c.attempts; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		lastErr = fn(attemptCtx)
		cancel()
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return lastErr
}
