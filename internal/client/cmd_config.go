package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
)

func (a *App) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(cmd, a.services.ConfigService.Show(a.cfg))
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Show a single configuration value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				node, err := a.services.ConfigService.Get(a.cfg, args[0])
				if err != nil {
					return err
				}
				return a.print(cmd, map[string]any{args[0]: node})
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value",
			Long: `Set the value at a dot-separated key, e.g. "api.testnet". Missing
intermediate sections are created. json, pretty, api.testnet and api.ssl only
accept true or false; every other key is stored as a string.`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.services.ConfigService.Set(cmd.Context(), a.cfg, args[0], args[1])
				if err != nil && !service.IsNotPersisted(err) {
					return err
				}
				logger.FromContext(cmd.Context()).Debug().
					Str("key", args[0]).
					Bool("persisted", result.Persisted).
					Msg("config set finished")

				if err = a.print(cmd, result); err != nil {
					return err
				}
				if result.Warning != "" {
					a.warn(cmd, result.Warning)
				}
				return nil
			},
		},
	)
	return cmd
}
