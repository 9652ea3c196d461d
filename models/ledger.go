package models

// APIResponse is the decoded JSON body returned by a ledger node.
type APIResponse map[string]any

// Transaction is a signed ledger transaction supplied by the user as JSON.
type Transaction map[string]any

// Signature is a multisignature entry supplied by the user as JSON.
type Signature map[string]any

// QueryKind names a ledger entity that can be looked up by the client.
type QueryKind string

const (
	QueryAccount     QueryKind = "account"
	QueryBlock       QueryKind = "block"
	QueryDelegate    QueryKind = "delegate"
	QueryTransaction QueryKind = "transaction"
)
