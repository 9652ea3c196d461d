package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/nacl/box"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

const nonceSize = 24

// EncryptMessage implements [KeyChainService].
func (k *keyChainService) EncryptMessage(message, passphrase, recipientPublicKey string) (models.EncryptedMessage, error) {
	priv, err := privateKeyFromPassphrase(passphrase)
	if err != nil {
		return models.EncryptedMessage{}, err
	}
	peer, err := montgomeryPublicKey(recipientPublicKey)
	if err != nil {
		return models.EncryptedMessage{}, err
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return models.EncryptedMessage{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := box.Seal(nil, []byte(message), &nonce, peer, montgomeryPrivateKey(priv))
	return models.EncryptedMessage{
		Cipher: hex.EncodeToString(sealed),
		Nonce:  hex.EncodeToString(nonce[:]),
	}, nil
}

// DecryptMessage implements [KeyChainService].
func (k *keyChainService) DecryptMessage(cipherHex, nonceHex, passphrase, senderPublicKey string) (string, error) {
	priv, err := privateKeyFromPassphrase(passphrase)
	if err != nil {
		return "", err
	}
	peer, err := montgomeryPublicKey(senderPublicKey)
	if err != nil {
		return "", err
	}

	sealed, err := decodeHex("cipher", cipherHex, 0)
	if err != nil {
		return "", err
	}
	rawNonce, err := decodeHex("nonce", nonceHex, nonceSize)
	if err != nil {
		return "", err
	}
	var nonce [nonceSize]byte
	copy(nonce[:], rawNonce)

	opened, ok := box.Open(nil, sealed, &nonce, peer, montgomeryPrivateKey(priv))
	if !ok {
		return "", ErrDecryptFailed
	}
	return string(opened), nil
}

// montgomeryPrivateKey converts an ed25519 private key into the X25519
// scalar used by the same key pair: the clamped lower half of SHA-512(seed).
func montgomeryPrivateKey(priv ed25519.PrivateKey) *[32]byte {
	h := sha512.Sum512(priv.Seed())
	h[0] &= 248
	h[31] &= 127
	h[31] |= 64

	var out [32]byte
	copy(out[:], h[:32])
	return &out
}

// montgomeryPublicKey maps a hex ed25519 public key onto Curve25519.
func montgomeryPublicKey(publicKey string) (*[32]byte, error) {
	pub, err := decodePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	point, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: not a curve point", ErrInvalidPublicKey)
	}

	var out [32]byte
	copy(out[:], point.BytesMontgomery())
	return &out, nil
}
