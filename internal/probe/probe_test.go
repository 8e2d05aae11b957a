package probe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func healthServer(t *testing.T, handler func(w http.ResponseWriter, body []byte)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("Failed to read probe request body: %v", err)
		}
		handler(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestProbeHealthyEndpoint(t *testing.T) {
	server := healthServer(t, func(w http.ResponseWriter, body []byte) {
		var req map[string]any
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("Probe request is not JSON: %v", err)
		}
		if req["method"] != "getHealth" {
			t.Errorf("Expected getHealth request, got %v", req["method"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"ok"}`))
	})

	if !Probe(context.Background(), server.URL, 2*time.Second) {
		t.Error("Expected healthy endpoint to probe true")
	}
}

func TestProbeUnhealthyResult(t *testing.T) {
	server := healthServer(t, func(w http.ResponseWriter, body []byte) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32005,"message":"Node is behind"}}`))
	})

	if Probe(context.Background(), server.URL, 2*time.Second) {
		t.Error("Expected error response to probe false")
	}
}

func TestProbeHTTPError(t *testing.T) {
	server := healthServer(t, func(w http.ResponseWriter, body []byte) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if Probe(context.Background(), server.URL, 2*time.Second) {
		t.Error("Expected 500 response to probe false")
	}
}

func TestProbeMalformedResponse(t *testing.T) {
	server := healthServer(t, func(w http.ResponseWriter, body []byte) {
		w.Write([]byte("not json"))
	})

	if Probe(context.Background(), server.URL, 2*time.Second) {
		t.Error("Expected malformed response to probe false")
	}
}

func TestProbeUnreachableHostIsBounded(t *testing.T) {
	start := time.Now()
	// Reserved TEST-NET address, nothing listens there.
	ok := Probe(context.Background(), "http://192.0.2.1:8899", 500*time.Millisecond)
	elapsed := time.Since(start)

	if ok {
		t.Error("Expected unreachable host to probe false")
	}
	if elapsed > 3*time.Second {
		t.Errorf("Probe took %v, expected it to respect the timeout", elapsed)
	}
}

func TestProbeSlowEndpointTimesOut(t *testing.T) {
	server := healthServer(t, func(w http.ResponseWriter, body []byte) {
		time.Sleep(2 * time.Second)
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"ok"}`))
	})

	start := time.Now()
	ok := Probe(context.Background(), server.URL, 300*time.Millisecond)
	elapsed := time.Since(start)

	if ok {
		t.Error("Expected slow endpoint to probe false")
	}
	if elapsed > 1500*time.Millisecond {
		t.Errorf("Probe took %v, expected timeout near 300ms", elapsed)
	}
}

func TestProbeInvalidURL(t *testing.T) {
	if Probe(context.Background(), "://not-a-url", time.Second) {
		t.Error("Expected invalid URL to probe false")
	}
}
