package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
)

// Output and secret flags shared by every command.
const (
	flagJSON       = "json"
	flagNoJSON     = "no-json"
	flagCopy       = "copy"
	flagPassphrase = "passphrase"
	flagPassword   = "password"
	flagTestnet    = "testnet"
)

// annotationSkipSetup marks commands that run without loading the config.
const annotationSkipSetup = "ledger-keeper/skip-setup"

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Command line client for a ledger node",
		Long: appName + ` queries a ledger node, broadcasts transactions and performs
local key, message and passphrase cryptography. Preferences are kept in
config.json inside the config directory (~/.` + appName + ` by default).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationSkipSetup] == "true" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	config.RegisterFlags(pf)
	pf.BoolP(flagJSON, "j", false, "Print output as JSON")
	pf.Bool(flagNoJSON, false, "Print a table even if the json preference is set")
	pf.Bool(flagCopy, false, "Copy the output to the clipboard")
	root.MarkFlagsMutuallyExclusive(flagJSON, flagNoJSON)

	root.AddCommand(
		a.newConfigCommand(),
		a.newGetCommand(),
		a.newListCommand(),
		a.newBroadcastCommand(),
		a.newEncryptCommand(),
		a.newDecryptCommand(),
		a.newShowCommand(),
		a.newSignCommand(),
		a.newVerifyCommand(),
		a.newVersionCommand(),
	)
	return root
}

func addPassphraseFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(flagPassphrase, "p", "", "Account passphrase (prompted when omitted)")
}

func addPasswordFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagPassword, "", "Password protecting the passphrase (prompted when omitted)")
}

func addTestnetFlag(cmd *cobra.Command) {
	cmd.Flags().Bool(flagTestnet, false, "Use the test network for this request")
}
