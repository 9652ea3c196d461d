package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ledgerQuery maps a query kind onto the node endpoint and its parameter.
type ledgerQuery struct {
	endpoint string
	param    string
}

var ledgerQueries = map[models.QueryKind]ledgerQuery{
	models.QueryAccount:     {endpoint: "accounts", param: "address"},
	models.QueryBlock:       {endpoint: "blocks/get", param: "id"},
	models.QueryDelegate:    {endpoint: "delegates/get", param: "username"},
	models.QueryTransaction: {endpoint: "transactions/get", param: "id"},
}

type clientLedgerService struct {
	adapter adapter.LedgerAdapter
	logger  *logger.Logger
}

// NewClientLedgerService constructs a [ClientLedgerService] on top of a
// ledger adapter.
func NewClientLedgerService(ledgerAdapter adapter.LedgerAdapter, logger *logger.Logger) ClientLedgerService {
	return &clientLedgerService{adapter: ledgerAdapter, logger: logger}
}

// Get implements [ClientLedgerService].
func (s *clientLedgerService) Get(ctx context.Context, kind models.QueryKind, input string, testnet bool) (models.APIResponse, error) {
	list, err := s.List(ctx, kind, []string{input}, testnet)
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

// List implements [ClientLedgerService]. The network is switched once for
// the whole list.
func (s *clientLedgerService) List(ctx context.Context, kind models.QueryKind, inputs []string, testnet bool) ([]models.APIResponse, error) {
	query, ok := ledgerQueries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedQuery, kind)
	}
	if len(inputs) == 0 {
		return nil, ErrEmptyQueryInput
	}
	for _, input := range inputs {
		if strings.TrimSpace(input) == "" {
			return nil, ErrEmptyQueryInput
		}
	}

	out := make([]models.APIResponse, 0, len(inputs))
	err := s.withNetwork(testnet, func() error {
		for _, input := range inputs {
			resp, err := s.adapter.SendRequest(ctx, query.endpoint, map[string]string{query.param: strings.TrimSpace(input)})
			if err != nil {
				return fmt.Errorf("get %s %s: %w", kind, input, err)
			}
			out = append(out, resp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BroadcastTransaction implements [ClientLedgerService].
func (s *clientLedgerService) BroadcastTransaction(ctx context.Context, rawJSON string, testnet bool) (models.BroadcastResult, error) {
	var tx models.Transaction
	if err := decodeJSONInput(rawJSON, &tx); err != nil {
		return models.BroadcastResult{}, err
	}
	if tx == nil {
		return models.BroadcastResult{}, fmt.Errorf("%w: transaction must be an object", ErrInvalidJSONInput)
	}

	var result models.BroadcastResult
	err := s.withNetwork(testnet, func() error {
		resp, err := s.adapter.BroadcastTransaction(ctx, tx)
		if err != nil {
			return fmt.Errorf("broadcast transaction: %w", err)
		}
		result = models.BroadcastResult{Testnet: s.adapter.Testnet(), Response: resp}
		return nil
	})
	return result, err
}

// BroadcastSignature implements [ClientLedgerService].
func (s *clientLedgerService) BroadcastSignature(ctx context.Context, rawJSON string, testnet bool) (models.BroadcastResult, error) {
	signatures, err := parseSignatures(rawJSON)
	if err != nil {
		return models.BroadcastResult{}, err
	}

	var result models.BroadcastResult
	err = s.withNetwork(testnet, func() error {
		resp, err := s.adapter.BroadcastSignatures(ctx, signatures)
		if err != nil {
			return fmt.Errorf("broadcast signature: %w", err)
		}
		result = models.BroadcastResult{Testnet: s.adapter.Testnet(), Response: resp}
		return nil
	})
	return result, err
}

// withNetwork runs fn on the test network when testnet is true and restores
// the previous network afterwards. Without testnet the adapter is left
// alone.
func (s *clientLedgerService) withNetwork(testnet bool, fn func() error) error {
	if !testnet {
		return fn()
	}

	previous := s.adapter.Testnet()
	s.adapter.SetTestnet(true)
	defer s.adapter.SetTestnet(previous)

	return fn()
}

func parseSignatures(rawJSON string) ([]models.Signature, error) {
	trimmed := strings.TrimSpace(rawJSON)
	if strings.HasPrefix(trimmed, "[") {
		var list []models.Signature
		if err := decodeJSONInput(trimmed, &list); err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: no signatures given", ErrInvalidJSONInput)
		}
		for _, sig := range list {
			if sig == nil {
				return nil, fmt.Errorf("%w: signature must be an object", ErrInvalidJSONInput)
			}
		}
		return list, nil
	}

	var single models.Signature
	if err := decodeJSONInput(trimmed, &single); err != nil {
		return nil, err
	}
	if single == nil {
		return nil, fmt.Errorf("%w: signature must be an object", ErrInvalidJSONInput)
	}
	return []models.Signature{single}, nil
}

// decodeJSONInput decodes user supplied JSON keeping numbers intact.
func decodeJSONInput(raw string, target any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSONInput, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSONInput)
	}
	return nil
}
