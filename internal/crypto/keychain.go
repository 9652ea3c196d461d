// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// addressSuffix terminates every ledger address.
const addressSuffix = "L"

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// lowered in tests.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      int
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (AES-256)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
		saltLen:      16,
	}
}

// GetKeys implements [KeyChainService].
func (k *keyChainService) GetKeys(passphrase string) (models.Keys, error) {
	priv, err := privateKeyFromPassphrase(passphrase)
	if err != nil {
		return models.Keys{}, err
	}

	return models.Keys{
		PrivateKey: hex.EncodeToString(priv),
		PublicKey:  hex.EncodeToString(priv.Public().(ed25519.PublicKey)),
	}, nil
}

// GetAddressFromPublicKey implements [KeyChainService]. The address is the
// first eight bytes of SHA-256(publicKey) read as a little-endian uint64.
func (k *keyChainService) GetAddressFromPublicKey(publicKey string) (string, error) {
	pub, err := decodePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(pub)
	return strconv.FormatUint(binary.LittleEndian.Uint64(sum[:8]), 10) + addressSuffix, nil
}

// SignMessage implements [KeyChainService].
func (k *keyChainService) SignMessage(message, passphrase string) (models.SignedMessage, error) {
	priv, err := privateKeyFromPassphrase(passphrase)
	if err != nil {
		return models.SignedMessage{}, err
	}

	return models.SignedMessage{
		Message:   message,
		PublicKey: hex.EncodeToString(priv.Public().(ed25519.PublicKey)),
		Signature: hex.EncodeToString(ed25519.Sign(priv, []byte(message))),
	}, nil
}

// VerifyMessage implements [KeyChainService].
func (k *keyChainService) VerifyMessage(publicKey, signature, message string) (bool, error) {
	pub, err := decodePublicKey(publicKey)
	if err != nil {
		return false, err
	}

	sig, err := decodeHex("signature", signature, ed25519.SignatureSize)
	if err != nil {
		return false, err
	}

	return ed25519.Verify(pub, []byte(message), sig), nil
}

func privateKeyFromPassphrase(passphrase string) (ed25519.PrivateKey, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase: %w", ErrEmptySecret)
	}
	seed := sha256.Sum256([]byte(passphrase))
	return ed25519.NewKeyFromSeed(seed[:]), nil
}

func decodePublicKey(publicKey string) (ed25519.PublicKey, error) {
	raw, err := decodeHex("public key", publicKey, ed25519.PublicKeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return ed25519.PublicKey(raw), nil
}

// decodeHex decodes s and checks its length when size is positive.
func decodeHex(name, s string, size int) ([]byte, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidHex)
	}
	if size > 0 && len(raw) != size {
		return nil, fmt.Errorf("%s must be %d bytes, got %d: %w", name, size, len(raw), ErrInvalidHex)
	}
	return raw, nil
}
