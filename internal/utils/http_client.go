package utils

import (
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

// UserAgent is sent with every request of the ledger client.
const UserAgent = "ledger-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("http://localhost:8000/api/blocks/getHeight")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose internal resty diagnostics
// go through log at debug level and below.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetLogger(restyLogger{log: log})

	return &HTTPClient{Client: client}
}

// restyLogger routes resty's printf-style logger into zerolog.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}
