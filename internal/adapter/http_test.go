// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// fakeNode records what a ledger node received.
type fakeNode struct {
	srv     *httptest.Server
	nethash string
	query   map[string]string
	body    map[string]any
	path    string
}

// newFakeNode starts a chi router that mimics the node endpoints used by
// the client.
func newFakeNode(t *testing.T) *fakeNode {
	t.Helper()
	node := &fakeNode{}

	r := chi.NewRouter()
	r.Get("/api/accounts", func(w http.ResponseWriter, req *http.Request) {
		node.record(req)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"account": map[string]any{"address": req.URL.Query().Get("address"), "balance": "100000000"},
		})
	})
	r.Get("/api/blocks/get", func(w http.ResponseWriter, req *http.Request) {
		node.record(req)
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": "Block not found"})
	})
	r.Get("/api/broken", func(w http.ResponseWriter, req *http.Request) {
		node.record(req)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>"))
	})
	r.Post("/peer/transactions", func(w http.ResponseWriter, req *http.Request) {
		node.record(req)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "transactionId": "123"})
	})
	r.Post("/peer/signatures", func(w http.ResponseWriter, req *http.Request) {
		node.record(req)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	node.srv = httptest.NewServer(r)
	t.Cleanup(node.srv.Close)
	return node
}

func (n *fakeNode) record(req *http.Request) {
	n.path = req.URL.Path
	n.nethash = req.Header.Get("nethash")
	n.query = map[string]string{}
	for k := range req.URL.Query() {
		n.query[k] = req.URL.Query().Get(k)
	}
	n.body = nil
	if req.Body != nil {
		_ = json.NewDecoder(req.Body).Decode(&n.body)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// newTestAdapter returns an adapter whose mainnet and testnet point at the
// given servers.
func newTestAdapter(t *testing.T, mainnet, testnet string, opts NodeOptions) *httpLedgerAdapter {
	t.Helper()
	cfg := config.Adapter{MainnetAddress: mainnet, TestnetAddress: testnet, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPLedgerAdapter(cfg, opts, logger.Nop())
	require.NoError(t, err)
	return a.(*httpLedgerAdapter)
}

// ── Constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPLedgerAdapter_InvalidAddress(t *testing.T) {
	cfg := config.Adapter{MainnetAddress: "", TestnetAddress: "localhost:7000"}

	_, err := NewHTTPLedgerAdapter(cfg, NodeOptions{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidNodeAddress)
}

func TestNewHTTPLedgerAdapter_NodeOverride(t *testing.T) {
	a := newTestAdapter(t, "localhost:8000", "localhost:7000", NodeOptions{Node: "node.example:4000", SSL: true})

	assert.Equal(t, "https://node.example:4000", a.mainnetURL)
	assert.Equal(t, "https://node.example:4000", a.testnetURL)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ssl  bool
		want string
	}{
		{name: "host and port", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "ssl", raw: "localhost:8000", ssl: true, want: "https://localhost:8000"},
		{name: "explicit scheme wins", raw: "http://node:1", ssl: true, want: "http://node:1"},
		{name: "trailing slash", raw: " https://node/ ", want: "https://node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw, tt.ssl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := normalizeBaseURL("   ", false)
	assert.Error(t, err)
}

// ── Network selection ────────────────────────────────────────────────────────

func TestSetTestnet_SwitchesNodeAndNethash(t *testing.T) {
	mainnet := newFakeNode(t)
	testnet := newFakeNode(t)
	a := newTestAdapter(t, mainnet.srv.URL, testnet.srv.URL, NodeOptions{})

	assert.False(t, a.Testnet())
	_, err := a.SendRequest(context.Background(), "accounts", map[string]string{"address": "1L"})
	require.NoError(t, err)
	assert.Equal(t, MainnetNethash, mainnet.nethash)
	assert.Empty(t, testnet.path)

	a.SetTestnet(true)
	assert.True(t, a.Testnet())
	_, err = a.SendRequest(context.Background(), "accounts", map[string]string{"address": "2L"})
	require.NoError(t, err)
	assert.Equal(t, TestnetNethash, testnet.nethash)
	assert.Equal(t, "2L", testnet.query["address"])
}

func TestNewHTTPLedgerAdapter_InitialTestnet(t *testing.T) {
	a := newTestAdapter(t, "localhost:8000", "localhost:7000", NodeOptions{Testnet: true})
	assert.True(t, a.Testnet())
}

// ── SendRequest ──────────────────────────────────────────────────────────────

func TestSendRequest_Success(t *testing.T) {
	node := newFakeNode(t)
	a := newTestAdapter(t, node.srv.URL, node.srv.URL, NodeOptions{})

	resp, err := a.SendRequest(context.Background(), "/accounts", map[string]string{"address": "16313739661670634666L"})

	require.NoError(t, err)
	assert.Equal(t, "/api/accounts", node.path)
	assert.Equal(t, "16313739661670634666L", node.query["address"])

	account, ok := resp["account"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "16313739661670634666L", account["address"])
}

func TestSendRequest_NodeReportsFailure(t *testing.T) {
	node := newFakeNode(t)
	a := newTestAdapter(t, node.srv.URL, node.srv.URL, NodeOptions{})

	resp, err := a.SendRequest(context.Background(), "blocks/get", map[string]string{"id": "1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "Block not found")
	assert.Equal(t, false, resp["success"])
}

func TestSendRequest_InvalidBody(t *testing.T) {
	node := newFakeNode(t)
	a := newTestAdapter(t, node.srv.URL, node.srv.URL, NodeOptions{})

	_, err := a.SendRequest(context.Background(), "broken", nil)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSendRequest_NotFound(t *testing.T) {
	node := newFakeNode(t)
	a := newTestAdapter(t, node.srv.URL, node.srv.URL, NodeOptions{})

	_, err := a.SendRequest(context.Background(), "unknown/endpoint", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendRequest_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, url, NodeOptions{})
	_, err := a.SendRequest(context.Background(), "accounts", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accounts request")
}

// ── Broadcast ────────────────────────────────────────────────────────────────

func TestBroadcastTransaction(t *testing.T) {
	node := newFakeNode(t)
	a := newTestAdapter(t, node.srv.URL, node.srv.URL, NodeOptions{})

	tx := models.Transaction{"type": json.Number("0"), "amount": "100", "recipientId": "1L"}
	resp, err := a.BroadcastTransaction(context.Background(), tx)

	require.NoError(t, err)
	assert.Equal(t, "/peer/transactions", node.path)
	assert.Equal(t, MainnetNethash, node.nethash)
	require.Contains(t, node.body, "transaction")
	sent := node.body["transaction"].(map[string]any)
	assert.Equal(t, "1L", sent["recipientId"])
	assert.Equal(t, "123", resp["transactionId"])
}

func TestBroadcastSignatures(t *testing.T) {
	node := newFakeNode(t)
	a := newTestAdapter(t, node.srv.URL, node.srv.URL, NodeOptions{})

	sigs := []models.Signature{{"transaction": "1", "signature": "ab"}}
	_, err := a.BroadcastSignatures(context.Background(), sigs)

	require.NoError(t, err)
	assert.Equal(t, "/peer/signatures", node.path)
	list, ok := node.body["signatures"].([]any)
	require.True(t, ok)
	assert.Len(t, list, 1)
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
	}{
		{http.StatusBadRequest, `{"success":false,"error":"Invalid address"}`, ErrBadRequest},
		{http.StatusUnauthorized, "", ErrUnauthorized},
		{http.StatusForbidden, "", ErrForbidden},
		{http.StatusNotFound, "", ErrNotFound},
		{http.StatusConflict, "", ErrConflict},
		{http.StatusTooManyRequests, "", ErrTooManyRequests},
		{http.StatusBadGateway, "", ErrBadGateway},
		{http.StatusServiceUnavailable, "", ErrServiceUnavailable},
		{http.StatusInternalServerError, "boom", ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, srv.URL, NodeOptions{})
			_, err := a.SendRequest(context.Background(), "accounts", nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Invalid address", errorMessage([]byte(`{"error":"Invalid address"}`)))
	assert.Equal(t, "gone", errorMessage([]byte(`{"message":"gone"}`)))
	assert.Equal(t, "plain text", errorMessage([]byte("  plain text \n")))
}
