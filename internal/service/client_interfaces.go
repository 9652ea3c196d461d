package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ClientConfigService reads and mutates the live configuration of the
// session. Every mutation is written through to the config storage.
type ClientConfigService interface {
	// Show returns a copy of the whole configuration.
	Show(cfg *models.Config) *models.Config

	// Get returns the subtree or leaf stored at the dot-path key.
	// Returns models.ErrInvalidPath or models.ErrVariableNotFound.
	Get(cfg *models.Config, key string) (*models.Node, error)

	// SetVariable assigns value at path, creating intermediate objects, and
	// persists the config. Only models.ErrInvalidPath aborts the call; a
	// storage error is returned together with a result describing the
	// in-memory change.
	SetVariable(ctx context.Context, cfg *models.Config, path models.VariablePath, value *models.Node) (models.SetResult, error)

	// SetBoolean is SetVariable for a "true"/"false" literal.
	// Returns ErrValueNotBoolean for any other literal.
	SetBoolean(ctx context.Context, cfg *models.Config, path models.VariablePath, literal string) (models.SetResult, error)

	// Set parses key and dispatches to SetBoolean for the known boolean
	// preferences and to SetVariable with a string value otherwise.
	Set(ctx context.Context, cfg *models.Config, key, raw string) (models.SetResult, error)
}

// ClientCryptoService exposes the key, message and passphrase operations
// of the command line in terms of response models.
type ClientCryptoService interface {
	GetKeys(passphrase string) (models.Keys, error)

	// GetAccount derives the public key and address of passphrase.
	GetAccount(passphrase string) (models.Account, error)

	EncryptMessage(message, passphrase, recipientPublicKey string) (models.EncryptedMessage, error)
	DecryptMessage(cipher, nonce, passphrase, senderPublicKey string) (models.DecryptedMessage, error)

	EncryptPassphrase(passphrase, password string) (models.EncryptedPassphrase, error)
	DecryptPassphrase(encrypted models.EncryptedPassphrase, password string) (models.DecryptedPassphrase, error)

	SignMessage(message, passphrase string) (models.SignedMessage, error)
	VerifyMessage(publicKey, signature, message string) (models.VerifiedMessage, error)
}

// ClientLedgerService queries and broadcasts to the ledger node.
//
// When testnet is true the adapter is switched to the test network for the
// duration of the call and restored to its previous network afterwards,
// even on error. When testnet is false the adapter is not touched, so the
// api.testnet preference stays in effect.
type ClientLedgerService interface {
	// Get looks up a single entity of kind. Returns ErrUnsupportedQuery for
	// unknown kinds.
	Get(ctx context.Context, kind models.QueryKind, input string, testnet bool) (models.APIResponse, error)

	// List looks up several entities of the same kind, in order. The first
	// failing lookup aborts the list.
	List(ctx context.Context, kind models.QueryKind, inputs []string, testnet bool) ([]models.APIResponse, error)

	// BroadcastTransaction parses rawJSON as a transaction object and
	// submits it. Returns ErrInvalidJSONInput for malformed input.
	BroadcastTransaction(ctx context.Context, rawJSON string, testnet bool) (models.BroadcastResult, error)

	// BroadcastSignature parses rawJSON as a signature object, or an array
	// of them, and submits it.
	BroadcastSignature(ctx context.Context, rawJSON string, testnet bool) (models.BroadcastResult, error)
}
