package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

const queryKinds = "account, block, delegate or transaction"

func (a *App) newGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <kind> <input>",
		Short: "Look up an " + queryKinds,
		Example: `  ledger-keeper get account 1234567890L
  ledger-keeper get delegate genesis_1 --testnet`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := a.ledger()
			if err != nil {
				return err
			}
			testnet, _ := cmd.Flags().GetBool(flagTestnet)

			resp, err := ledger.Get(cmd.Context(), models.QueryKind(args[0]), args[1], testnet)
			if err != nil {
				return err
			}
			return a.print(cmd, resp)
		},
	}
	addTestnetFlag(cmd)
	return cmd
}

func (a *App) newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <kind> <input>...",
		Short: "Look up several entities of one kind",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := a.ledger()
			if err != nil {
				return err
			}
			testnet, _ := cmd.Flags().GetBool(flagTestnet)

			resp, err := ledger.List(cmd.Context(), models.QueryKind(args[0]), args[1:], testnet)
			if err != nil {
				return err
			}
			return a.print(cmd, resp)
		},
	}
	addTestnetFlag(cmd)
	return cmd
}

func (a *App) newBroadcastCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Send signed data to the ledger node",
	}

	transaction := &cobra.Command{
		Use:   "transaction <json>",
		Short: "Broadcast a signed transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := a.ledger()
			if err != nil {
				return err
			}
			testnet, _ := cmd.Flags().GetBool(flagTestnet)

			result, err := ledger.BroadcastTransaction(cmd.Context(), args[0], testnet)
			if err != nil {
				return err
			}
			return a.print(cmd, result)
		},
	}
	addTestnetFlag(transaction)

	signature := &cobra.Command{
		Use:   "signature <json>",
		Short: "Broadcast a multisignature or a list of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := a.ledger()
			if err != nil {
				return err
			}
			testnet, _ := cmd.Flags().GetBool(flagTestnet)

			result, err := ledger.BroadcastSignature(cmd.Context(), args[0], testnet)
			if err != nil {
				return err
			}
			return a.print(cmd, result)
		},
	}
	addTestnetFlag(signature)

	cmd.AddCommand(transaction, signature)
	return cmd
}
