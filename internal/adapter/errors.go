package adapter

import "errors"

// Transport errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrServiceUnavailable  = errors.New("node unavailable")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrInvalidNodeAddress is returned when a configured node address
	// cannot be turned into a base URL.
	ErrInvalidNodeAddress = errors.New("invalid node address")

	// ErrInvalidResponse is returned when the node answers with a body that
	// is not a JSON object.
	ErrInvalidResponse = errors.New("invalid response from node")

	// ErrRequestFailed is returned when the node answers 2xx but reports
	// "success": false in the body.
	ErrRequestFailed = errors.New("node reported failure")
)
