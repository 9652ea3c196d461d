package service

import (
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type clientCryptoService struct {
	keyChain crypto.KeyChainService
	logger   *logger.Logger
}

// NewClientCryptoService wraps keyChain into a [ClientCryptoService].
func NewClientCryptoService(keyChain crypto.KeyChainService, logger *logger.Logger) ClientCryptoService {
	return &clientCryptoService{keyChain: keyChain, logger: logger}
}

func (c *clientCryptoService) GetKeys(passphrase string) (models.Keys, error) {
	keys, err := c.keyChain.GetKeys(passphrase)
	if err != nil {
		return models.Keys{}, fmt.Errorf("get keys: %w", err)
	}
	return keys, nil
}

func (c *clientCryptoService) GetAccount(passphrase string) (models.Account, error) {
	keys, err := c.GetKeys(passphrase)
	if err != nil {
		return models.Account{}, err
	}

	address, err := c.keyChain.GetAddressFromPublicKey(keys.PublicKey)
	if err != nil {
		return models.Account{}, fmt.Errorf("get address: %w", err)
	}

	c.logger.Debug().Str("address", address).Msg("account derived")
	return models.Account{PublicKey: keys.PublicKey, Address: address}, nil
}

func (c *clientCryptoService) EncryptMessage(message, passphrase, recipientPublicKey string) (models.EncryptedMessage, error) {
	enc, err := c.keyChain.EncryptMessage(message, passphrase, recipientPublicKey)
	if err != nil {
		return models.EncryptedMessage{}, fmt.Errorf("encrypt message: %w", err)
	}
	return enc, nil
}

func (c *clientCryptoService) DecryptMessage(cipher, nonce, passphrase, senderPublicKey string) (models.DecryptedMessage, error) {
	plain, err := c.keyChain.DecryptMessage(cipher, nonce, passphrase, senderPublicKey)
	if err != nil {
		return models.DecryptedMessage{}, fmt.Errorf("decrypt message: %w", err)
	}
	return models.DecryptedMessage{Message: plain}, nil
}

func (c *clientCryptoService) EncryptPassphrase(passphrase, password string) (models.EncryptedPassphrase, error) {
	if passphrase == "" {
		return models.EncryptedPassphrase{}, fmt.Errorf("encrypt passphrase: passphrase: %w", crypto.ErrEmptySecret)
	}

	enc, err := c.keyChain.EncryptPassphrase(passphrase, password)
	if err != nil {
		return models.EncryptedPassphrase{}, fmt.Errorf("encrypt passphrase: %w", err)
	}
	return enc, nil
}

func (c *clientCryptoService) DecryptPassphrase(encrypted models.EncryptedPassphrase, password string) (models.DecryptedPassphrase, error) {
	plain, err := c.keyChain.DecryptPassphrase(encrypted, password)
	if err != nil {
		return models.DecryptedPassphrase{}, fmt.Errorf("decrypt passphrase: %w", err)
	}
	return models.DecryptedPassphrase{Passphrase: plain}, nil
}

func (c *clientCryptoService) SignMessage(message, passphrase string) (models.SignedMessage, error) {
	signed, err := c.keyChain.SignMessage(message, passphrase)
	if err != nil {
		return models.SignedMessage{}, fmt.Errorf("sign message: %w", err)
	}
	return signed, nil
}

func (c *clientCryptoService) VerifyMessage(publicKey, signature, message string) (models.VerifiedMessage, error) {
	ok, err := c.keyChain.VerifyMessage(publicKey, signature, message)
	if err != nil {
		return models.VerifiedMessage{}, fmt.Errorf("verify message: %w", err)
	}
	return models.VerifiedMessage{Verified: ok}, nil
}
