package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// EncryptPassphrase implements [KeyChainService]. A fresh salt and GCM
// nonce are drawn for every call, so the same inputs never produce the same
// cipher twice.
func (k *keyChainService) EncryptPassphrase(passphrase, password string) (models.EncryptedPassphrase, error) {
	if password == "" {
		return models.EncryptedPassphrase{}, fmt.Errorf("password: %w", ErrEmptySecret)
	}

	salt := make([]byte, k.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.EncryptedPassphrase{}, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := k.newGCM(password, salt)
	if err != nil {
		return models.EncryptedPassphrase{}, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.EncryptedPassphrase{}, fmt.Errorf("generate iv: %w", err)
	}

	return models.EncryptedPassphrase{
		Cipher: hex.EncodeToString(gcm.Seal(nil, iv, []byte(passphrase), nil)),
		IV:     hex.EncodeToString(iv),
		Salt:   hex.EncodeToString(salt),
	}, nil
}

// DecryptPassphrase implements [KeyChainService].
func (k *keyChainService) DecryptPassphrase(encrypted models.EncryptedPassphrase, password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password: %w", ErrEmptySecret)
	}

	ciphertext, err := decodeHex("cipher", encrypted.Cipher, 0)
	if err != nil {
		return "", err
	}
	salt, err := decodeHex("salt", encrypted.Salt, 0)
	if err != nil {
		return "", err
	}

	gcm, err := k.newGCM(password, salt)
	if err != nil {
		return "", err
	}

	iv, err := decodeHex("iv", encrypted.IV, gcm.NonceSize())
	if err != nil {
		return "", err
	}

	// an error here almost always means a wrong password
	plain, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptFailed
	}
	return string(plain), nil
}

// newGCM derives the AES-256 key from password and salt with Argon2id and
// wraps it in GCM.
func (k *keyChainService) newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(password), salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
