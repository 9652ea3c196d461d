package crypto

import "errors"

var (
	// ErrInvalidHex is returned when an input is not valid hex or has the
	// wrong length once decoded.
	ErrInvalidHex = errors.New("invalid hex input")

	// ErrInvalidPublicKey is returned when a public key is not a valid
	// ed25519 point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrDecryptFailed is returned when a ciphertext fails authentication,
	// which almost always means a wrong passphrase, password or key.
	ErrDecryptFailed = errors.New("decryption failed")

	// ErrEmptySecret is returned when a passphrase or password is empty.
	ErrEmptySecret = errors.New("secret must not be empty")
)
