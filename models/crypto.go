package models

// Keys is an ed25519 key pair derived from a passphrase, hex encoded.
type Keys struct {
	// PrivateKey is the 64-byte ed25519 private key (seed || public key).
	PrivateKey string `json:"privateKey"`

	// PublicKey is the 32-byte ed25519 public key.
	PublicKey string `json:"publicKey"`
}

// Account bundles a key pair with the ledger address derived from it.
type Account struct {
	PublicKey string `json:"publicKey"`
	Address   string `json:"address"`
}

// EncryptedMessage is the result of encrypting a message for a recipient.
type EncryptedMessage struct {
	// Cipher is the hex encoded box ciphertext.
	Cipher string `json:"cipher"`

	// Nonce is the hex encoded 24-byte box nonce.
	Nonce string `json:"nonce"`
}

// DecryptedMessage wraps a plaintext message recovered from a cipher.
type DecryptedMessage struct {
	Message string `json:"message"`
}

// EncryptedPassphrase is a passphrase sealed under a user password.
type EncryptedPassphrase struct {
	// Cipher is the hex encoded AES-GCM ciphertext including the tag.
	Cipher string `json:"cipher"`

	// IV is the hex encoded GCM nonce.
	IV string `json:"iv"`

	// Salt is the hex encoded salt fed to the password KDF.
	Salt string `json:"salt"`
}

// DecryptedPassphrase wraps a passphrase recovered from its cipher.
type DecryptedPassphrase struct {
	Passphrase string `json:"passphrase"`
}

// SignedMessage is a detached ed25519 signature over a message.
type SignedMessage struct {
	Message   string `json:"message"`
	PublicKey string `json:"publicKey"`
	Signature string `json:"signature"`
}

// VerifiedMessage reports the outcome of a signature check.
type VerifiedMessage struct {
	Verified bool `json:"verified"`
}
