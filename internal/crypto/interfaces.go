package crypto

import "github.com/MKhiriev/go-ledger-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService holds every cryptographic operation of the client. It
// knows nothing about the network or the config file.
//
// All binary values cross this interface hex encoded. Key pairs are derived
// deterministically from a passphrase:
//
//	seed    = SHA-256(passphrase)
//	keys    = Ed25519(seed)
//	address = LE-uint64(SHA-256(publicKey)[:8]) + "L"
type KeyChainService interface {
	// GetKeys derives the ed25519 key pair of passphrase.
	GetKeys(passphrase string) (models.Keys, error)

	// GetAddressFromPublicKey derives the ledger address of a hex public key.
	GetAddressFromPublicKey(publicKey string) (string, error)

	// EncryptMessage seals message for recipientPublicKey with a key pair
	// derived from passphrase. Both ed25519 keys are converted to X25519
	// and the message is sealed with NaCl box under a random nonce.
	EncryptMessage(message, passphrase, recipientPublicKey string) (models.EncryptedMessage, error)

	// DecryptMessage opens a box produced by EncryptMessage. Returns
	// ErrDecryptFailed when authentication fails.
	DecryptMessage(cipherHex, nonceHex, passphrase, senderPublicKey string) (string, error)

	// EncryptPassphrase seals passphrase with a key stretched from password
	// by Argon2id over a random salt, using AES-256-GCM.
	EncryptPassphrase(passphrase, password string) (models.EncryptedPassphrase, error)

	// DecryptPassphrase reverses EncryptPassphrase. A wrong password yields
	// ErrDecryptFailed.
	DecryptPassphrase(encrypted models.EncryptedPassphrase, password string) (string, error)

	// SignMessage produces a detached ed25519 signature of message.
	SignMessage(message, passphrase string) (models.SignedMessage, error)

	// VerifyMessage checks a detached signature. A well-formed but wrong
	// signature returns false and no error.
	VerifyMessage(publicKey, signature, message string) (bool, error)
}
