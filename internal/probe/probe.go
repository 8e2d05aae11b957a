// Package probe implements the liveness check run against a candidate RPC
// endpoint before it is accepted into the configuration.
package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// healthRequest is the minimal JSON-RPC liveness probe understood by every
// Solana RPC node.
var healthRequest = []byte(`{"jsonrpc":"2.0","id":1,"method":"getHealth"}`)

type healthResponse struct {
	Result string `json:"result"`
}

// Probe sends a getHealth request to url and reports whether a well-formed
// healthy response arrived within timeout. Timeouts, network errors,
// non-success statuses, and malformed bodies all collapse to false; Probe
// never returns an error.
func Probe(ctx context.Context, url string, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(healthRequest))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false
	}
	return body.Result == "ok"
}
