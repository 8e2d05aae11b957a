package solana

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestWithRetryStopsOnFirstSuccess(t *testing.T) {
	client := &Client{timeout: time.Second, attempts: 3}

	calls := 0
	err := client.withRetry(context.Background(), func(context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withRetry failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected 2 attempts, got %d", calls)
	}
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	client := &Client{timeout: time.Second, attempts: 3}

	calls := 0
	wantErr := errors.New("still down")
	err := client.withRetry(context.Background(), func(context.Context) error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected the last attempt's error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 attempts, got %d", calls)
	}
}

func TestWithRetryStopsOnParentCancellation(t *testing.T) {
	client := &Client{timeout: time.Second, attempts: 5}
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := client.withRetry(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("failed")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected no further attempts after cancellation, got %d", calls)
	}
}

func TestInvalidAddressRejectedWithoutRPC(t *testing.T) {
	// The endpoint is never contacted for a malformed address.
	client := NewClient("http://127.0.0.1:1", 1, 1)

	if _, err := client.Balance(context.Background(), "not-base58!"); err == nil ||
		!strings.Contains(err.Error(), "invalid Solana address") {
		t.Errorf("Balance error = %v", err)
	}
	if _, err := client.Positions(context.Background(), "not-base58!"); err == nil ||
		!strings.Contains(err.Error(), "invalid Solana address") {
		t.Errorf("Positions error = %v", err)
	}
}
