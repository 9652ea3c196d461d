package service

import (
	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
)

type ClientServices struct {
	ConfigService ClientConfigService
	CryptoService ClientCryptoService
	LedgerService ClientLedgerService
}

func NewClientServices(storages *store.ClientStorages, ledgerAdapter adapter.LedgerAdapter, keyChain crypto.KeyChainService, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ConfigService: NewClientConfigService(storages.Config, validators.NewConfigValidator(), logger.GetChildLogger("config")),
		CryptoService: NewClientCryptoService(keyChain, logger.GetChildLogger("crypto")),
		LedgerService: NewClientLedgerService(ledgerAdapter, logger.GetChildLogger("ledger")),
	}
}
