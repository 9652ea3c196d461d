package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/internal/tui"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// printOptions decides the output format: JSON when --json is given, or when
// the json preference is on and --no-json is not given. The pretty
// preference indents JSON.
func (a *App) printOptions(cmd *cobra.Command) tui.PrintOptions {
	flags := cmd.Flags()
	asJSON, _ := flags.GetBool(flagJSON)
	noJSON, _ := flags.GetBool(flagNoJSON)
	copyOut, _ := flags.GetBool(flagCopy)

	opts := tui.PrintOptions{Copy: copyOut}
	if a.cfg != nil {
		opts.JSON = a.cfg.BoolAt(models.ConfigKeyJSON, false) && !noJSON
		opts.Pretty = a.cfg.BoolAt(models.ConfigKeyPretty, false)
	}
	if asJSON {
		opts.JSON = true
	}
	return opts
}

func (a *App) print(cmd *cobra.Command, v any) error {
	return tui.NewPrinter(cmd.OutOrStdout(), a.printOptions(cmd)).Print(v)
}

// secret returns the value of flag, prompting for it when the flag is empty.
func (a *App) secret(cmd *cobra.Command, flag, label string) (string, error) {
	value, _ := cmd.Flags().GetString(flag)
	return a.prompter().Secret(label, value)
}

func (a *App) warn(cmd *cobra.Command, msg string) {
	tui.NewPrinter(cmd.ErrOrStderr(), a.printOptions(cmd)).Warn(msg)
}
