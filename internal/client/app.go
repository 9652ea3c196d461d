package client

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/tui"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const appName = "ledger-keeper"

// AdapterFactory builds the ledger adapter for the current invocation.
type AdapterFactory func(cfg config.Adapter, opts adapter.NodeOptions, logger *logger.Logger) (adapter.LedgerAdapter, error)

// Option customises an [App].
type Option func(*App)

// WithIO replaces the standard streams.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in, a.out, a.errOut = in, out, errOut
	}
}

// WithBuildInfo sets the metadata reported by the version command.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(a *App) {
		a.buildInfo = info
	}
}

// WithKeyChain replaces the cryptography provider.
func WithKeyChain(keyChain crypto.KeyChainService) Option {
	return func(a *App) {
		a.keyChain = keyChain
	}
}

// WithAdapterFactory replaces the constructor of the ledger adapter.
func WithAdapterFactory(factory AdapterFactory) Option {
	return func(a *App) {
		a.newAdapter = factory
	}
}

// App is a single invocation of the command line client. It owns the live
// config for the duration of the command.
type App struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	buildInfo  models.AppBuildInfo
	keyChain   crypto.KeyChainService
	newAdapter AdapterFactory

	settings   *config.Settings
	paths      config.Paths
	logger     *logger.Logger
	storages   *store.ClientStorages
	services   *service.ClientServices
	cfg        *models.Config
	adapterErr error
	ready      bool
}

// NewApp builds an App bound to the process standard streams unless
// overridden by opts.
func NewApp(opts ...Option) *App {
	a := &App{
		in:         os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		keyChain:   crypto.NewKeyChainService(),
		newAdapter: adapter.NewHTTPLedgerAdapter,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run implements [Client]. The lock marker taken while loading the config is
// released before Run returns, whatever the outcome of the command.
func (a *App) Run(ctx context.Context, args []string) (err error) {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	defer func() {
		err = errors.Join(err, a.close())
	}()

	return root.ExecuteContext(ctx)
}

// setup resolves settings from the parsed flags and loads the config. It
// runs once per invocation, before any command.
func (a *App) setup(cmd *cobra.Command) error {
	if a.ready {
		return nil
	}

	settings, err := config.GetSettings(cmd.Flags())
	if err != nil {
		return err
	}
	a.settings = settings
	if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
		a.logger = logger.NewJSONLogger(appName, settings.LogLevel, a.errOut)
	} else {
		a.logger = logger.NewCLILogger(appName, settings.LogLevel, a.errOut)
	}
	cmd.SetContext(a.logger.WithContext(cmd.Context()))
	a.paths = config.ResolvePaths(settings)

	a.logger.Debug().
		Str("config_file", a.paths.File).
		Bool("non_interactive", settings.NonInteractive).
		Msg("settings resolved")

	a.storages = store.NewClientStorages(a.paths, settings, a.logger)
	res := a.storages.Config.Load(cmd.Context(), models.DefaultConfig())
	a.cfg = res.Config

	if res.Persistable {
		if err = a.storages.Lock.Acquire(); err != nil {
			// Persist re-checks the marker, so a lost race only costs the
			// write-through.
			a.logger.Warn().Err(err).Msg("config lock not acquired")
		}
	}

	ledgerAdapter, err := a.newAdapter(settings.Adapter, nodeOptions(a.cfg), a.logger)
	if err != nil {
		a.adapterErr = err
		a.logger.Debug().Err(err).Msg("ledger adapter unavailable")
	}

	a.services = service.NewClientServices(a.storages, ledgerAdapter, a.keyChain, a.logger)
	a.ready = true
	return nil
}

func (a *App) close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Lock.Release()
}

// ledger returns the ledger service, or the error that prevented building
// its adapter.
func (a *App) ledger() (service.ClientLedgerService, error) {
	if a.adapterErr != nil {
		return nil, a.adapterErr
	}
	return a.services.LedgerService, nil
}

func nodeOptions(cfg *models.Config) adapter.NodeOptions {
	return adapter.NodeOptions{
		Node:    cfg.StringAt(models.ConfigKeyAPINode, ""),
		SSL:     cfg.BoolAt(models.ConfigKeyAPISSL, false),
		Testnet: cfg.BoolAt(models.ConfigKeyAPITestnet, false),
	}
}

func (a *App) prompter() *tui.Prompter {
	interactive := a.settings == nil || !a.settings.NonInteractive
	return tui.NewPrompter(a.in, a.errOut, interactive)
}
