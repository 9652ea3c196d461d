package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/mock"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

func newRealCryptoSvc(t *testing.T) service.ClientCryptoService {
	t.Helper()
	return service.NewClientCryptoService(crypto.NewKeyChainService(), logger.Nop())
}

func newMockCryptoSvc(t *testing.T) (service.ClientCryptoService, *mock.MockKeyChainService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	keyChain := mock.NewMockKeyChainService(ctrl)
	return service.NewClientCryptoService(keyChain, logger.Nop()), keyChain
}

// --- GetAccount ---

func TestClientCryptoService_GetAccount_MatchesKeys(t *testing.T) {
	svc := newRealCryptoSvc(t)

	keys, err := svc.GetKeys("account passphrase")
	require.NoError(t, err)
	account, err := svc.GetAccount("account passphrase")
	require.NoError(t, err)

	assert.Equal(t, keys.PublicKey, account.PublicKey)
	assert.True(t, strings.HasSuffix(account.Address, "L"))
}

func TestClientCryptoService_GetAccount_AddressError(t *testing.T) {
	svc, keyChain := newMockCryptoSvc(t)

	gomock.InOrder(
		keyChain.EXPECT().GetKeys("pp").Return(models.Keys{PublicKey: "bad"}, nil),
		keyChain.EXPECT().GetAddressFromPublicKey("bad").Return("", crypto.ErrInvalidPublicKey),
	)

	_, err := svc.GetAccount("pp")
	assert.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestClientCryptoService_GetKeys_EmptyPassphrase(t *testing.T) {
	svc := newRealCryptoSvc(t)

	_, err := svc.GetKeys("")
	assert.ErrorIs(t, err, crypto.ErrEmptySecret)
}

// --- Messages ---

func TestClientCryptoService_EncryptDecryptMessage_RoundTrip(t *testing.T) {
	svc := newRealCryptoSvc(t)
	sender, _ := svc.GetKeys("sender")
	recipient, _ := svc.GetKeys("recipient")

	enc, err := svc.EncryptMessage("hello", "sender", recipient.PublicKey)
	require.NoError(t, err)

	dec, err := svc.DecryptMessage(enc.Cipher, enc.Nonce, "recipient", sender.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, models.DecryptedMessage{Message: "hello"}, dec)
}

func TestClientCryptoService_DecryptMessage_WrapsError(t *testing.T) {
	svc, keyChain := newMockCryptoSvc(t)
	keyChain.EXPECT().DecryptMessage("c", "n", "p", "k").Return("", crypto.ErrDecryptFailed)

	_, err := svc.DecryptMessage("c", "n", "p", "k")

	require.Error(t, err)
	assert.True(t, errors.Is(err, crypto.ErrDecryptFailed))
	assert.Contains(t, err.Error(), "decrypt message")
}

// --- Passphrases ---

func TestClientCryptoService_EncryptPassphrase_EmptyPassphrase(t *testing.T) {
	svc, keyChain := newMockCryptoSvc(t)
	keyChain.EXPECT().EncryptPassphrase(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.EncryptPassphrase("", "pw")
	assert.ErrorIs(t, err, crypto.ErrEmptySecret)
}

func TestClientCryptoService_DecryptPassphrase(t *testing.T) {
	svc, keyChain := newMockCryptoSvc(t)
	enc := models.EncryptedPassphrase{Cipher: "aa", IV: "bb", Salt: "cc"}
	keyChain.EXPECT().DecryptPassphrase(enc, "pw").Return("secret words", nil)

	got, err := svc.DecryptPassphrase(enc, "pw")

	require.NoError(t, err)
	assert.Equal(t, models.DecryptedPassphrase{Passphrase: "secret words"}, got)
}

// --- Sign / Verify ---

func TestClientCryptoService_SignVerify(t *testing.T) {
	svc := newRealCryptoSvc(t)

	signed, err := svc.SignMessage("attest", "signer")
	require.NoError(t, err)

	ok, err := svc.VerifyMessage(signed.PublicKey, signed.Signature, "attest")
	require.NoError(t, err)
	assert.Equal(t, models.VerifiedMessage{Verified: true}, ok)

	bad, err := svc.VerifyMessage(signed.PublicKey, signed.Signature, "other")
	require.NoError(t, err)
	assert.False(t, bad.Verified)
}

func TestClientCryptoService_VerifyMessage_WrapsError(t *testing.T) {
	svc, keyChain := newMockCryptoSvc(t)
	keyChain.EXPECT().VerifyMessage("k", "s", "m").Return(false, crypto.ErrInvalidHex)

	_, err := svc.VerifyMessage("k", "s", "m")
	assert.ErrorIs(t, err, crypto.ErrInvalidHex)
}
