package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Network identifiers sent in the nethash header.
const (
	MainnetNethash = "ed14889723f24ecc54871d058d98ce91ff2f973192075c0155ba2b7b70ad2511"
	TestnetNethash = "da3ed6a45429278bac2666961289ca17ad86595d33b31037615d4b8e8f158bba"
)

const (
	headerNethash     = "nethash"
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// NodeOptions carry the user preferences that affect node selection. They
// come from the api section of the config file.
type NodeOptions struct {
	// Node overrides both network addresses when non-empty.
	Node string
	// SSL selects https for a Node given without a scheme.
	SSL bool
	// Testnet is the initial network.
	Testnet bool
}

type httpLedgerAdapter struct {
	client *utils.HTTPClient

	mainnetURL string
	testnetURL string

	mu      sync.RWMutex
	testnet bool

	logger *logger.Logger
}

// NewHTTPLedgerAdapter constructs an HTTP/REST implementation of
// [LedgerAdapter]. Node addresses come from adapterCfg unless opts.Node
// overrides them; every address is normalised into a base URL.
//
// Returns an error wrapping [ErrInvalidNodeAddress] if an address is empty or
// cannot be parsed.
func NewHTTPLedgerAdapter(adapterCfg config.Adapter, opts NodeOptions, logger *logger.Logger) (LedgerAdapter, error) {
	mainnet, testnet := adapterCfg.MainnetAddress, adapterCfg.TestnetAddress
	if node := strings.TrimSpace(opts.Node); node != "" {
		mainnet, testnet = node, node
	}

	mainnetURL, err := normalizeBaseURL(mainnet, opts.SSL)
	if err != nil {
		return nil, fmt.Errorf("%w: mainnet: %w", ErrInvalidNodeAddress, err)
	}
	testnetURL, err := normalizeBaseURL(testnet, opts.SSL)
	if err != nil {
		return nil, fmt.Errorf("%w: testnet: %w", ErrInvalidNodeAddress, err)
	}

	client := utils.NewHTTPClient(logger)
	client.
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", contentTypeJSON)

	return &httpLedgerAdapter{
		client:     client,
		mainnetURL: mainnetURL,
		testnetURL: testnetURL,
		testnet:    opts.Testnet,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string, ssl bool) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		scheme := "http://"
		if ssl {
			scheme = "https://"
		}
		raw = scheme + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetTestnet implements [LedgerAdapter].
func (h *httpLedgerAdapter) SetTestnet(testnet bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.testnet = testnet
}

// Testnet implements [LedgerAdapter].
func (h *httpLedgerAdapter) Testnet() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.testnet
}

// network returns the base URL and nethash of the current network.
func (h *httpLedgerAdapter) network() (string, string) {
	if h.Testnet() {
		return h.testnetURL, TestnetNethash
	}
	return h.mainnetURL, MainnetNethash
}

// SendRequest implements [LedgerAdapter]. It issues
// GET {base}/api/{endpoint}?{params}.
func (h *httpLedgerAdapter) SendRequest(ctx context.Context, endpoint string, params map[string]string) (models.APIResponse, error) {
	base, nethash := h.network()
	endpoint = strings.Trim(endpoint, "/")

	h.logger.Debug().
		Str("endpoint", endpoint).
		Bool("testnet", h.Testnet()).
		Msg("sending ledger request")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(headerNethash, nethash).
		SetQueryParams(params).
		Get(base + "/api/" + endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeResponse(resp.Body())
}

// BroadcastTransaction implements [LedgerAdapter]. It POSTs
// {"transaction": tx} to /peer/transactions.
func (h *httpLedgerAdapter) BroadcastTransaction(ctx context.Context, tx models.Transaction) (models.APIResponse, error) {
	return h.post(ctx, "/peer/transactions", map[string]any{"transaction": tx})
}

// BroadcastSignatures implements [LedgerAdapter]. It POSTs
// {"signatures": [...]} to /peer/signatures.
func (h *httpLedgerAdapter) BroadcastSignatures(ctx context.Context, signatures []models.Signature) (models.APIResponse, error) {
	return h.post(ctx, "/peer/signatures", map[string]any{"signatures": signatures})
}

func (h *httpLedgerAdapter) post(ctx context.Context, path string, body any) (models.APIResponse, error) {
	base, nethash := h.network()

	h.logger.Debug().
		Str("path", path).
		Bool("testnet", h.Testnet()).
		Msg("broadcasting to ledger peers")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(headerContentType, contentTypeJSON).
		SetHeader(headerNethash, nethash).
		SetBody(body).
		Post(base + path)
	if err != nil {
		return nil, fmt.Errorf("broadcast request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeResponse(resp.Body())
}

// decodeResponse parses a node reply. Numbers are kept as json.Number so
// amounts survive unchanged.
func decodeResponse(body []byte) (models.APIResponse, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var out models.APIResponse
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: null body", ErrInvalidResponse)
	}

	if success, ok := out["success"].(bool); ok && !success {
		msg, _ := out["error"].(string)
		if msg == "" {
			msg, _ = out["message"].(string)
		}
		return out, fmt.Errorf("%w: %s", ErrRequestFailed, msg)
	}

	return out, nil
}
