package store

import (
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
)

// ClientStorages groups the client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Config is the JSON file holding the user preferences.
	Config ConfigStorage

	// Lock guards Config against other ledger-keeper processes.
	Lock Locker
}

// NewClientStorages wires the config file storage for the resolved paths.
// Non-interactive sessions get a read-only storage.
func NewClientStorages(paths config.Paths, settings *config.Settings, log *logger.Logger) *ClientStorages {
	storeLog := log.GetChildLogger("store")
	storeLog.Debug().Str("file", paths.File).Str("lock", paths.Lock).Msg("creating client storages")

	lock := NewLockfileGuard(paths.Lock)
	return &ClientStorages{
		Config: NewConfigFileStorage(paths.File, lock, validators.NewConfigValidator(), settings.NonInteractive, storeLog),
		Lock:   lock,
	}
}
