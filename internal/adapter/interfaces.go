// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// a ledger node.
//
// The primary abstraction is [LedgerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPLedgerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_adapter_mock.go -package=mock

// LedgerAdapter defines transport-agnostic communication with a ledger node.
// Implementations hold a testnet flag that selects both the node address and
// the network identification headers of every request.
type LedgerAdapter interface {
	// SetTestnet switches all subsequent requests to the test network when
	// testnet is true, and back to the main network otherwise.
	SetTestnet(testnet bool)

	// Testnet reports whether requests currently target the test network.
	Testnet() bool

	// SendRequest performs GET /api/{endpoint} with params as the query
	// string and returns the decoded JSON body.
	SendRequest(ctx context.Context, endpoint string, params map[string]string) (models.APIResponse, error)

	// BroadcastTransaction submits a signed transaction to the node peers.
	BroadcastTransaction(ctx context.Context, tx models.Transaction) (models.APIResponse, error)

	// BroadcastSignatures submits one or more multisignature entries.
	BroadcastSignatures(ctx context.Context, signatures []models.Signature) (models.APIResponse, error)
}
