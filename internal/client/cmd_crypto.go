package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

const (
	labelPassphrase = "Passphrase"
	labelPassword   = "Password"
)

func (a *App) newEncryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message or a passphrase",
	}

	message := &cobra.Command{
		Use:   "message <message> <recipient-public-key>",
		Short: "Encrypt a message for the owner of a public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := a.secret(cmd, flagPassphrase, labelPassphrase)
			if err != nil {
				return err
			}
			enc, err := a.services.CryptoService.EncryptMessage(args[0], passphrase, args[1])
			if err != nil {
				return err
			}
			return a.print(cmd, enc)
		},
	}
	addPassphraseFlag(message)

	passphrase := &cobra.Command{
		Use:   "passphrase",
		Short: "Encrypt a passphrase with a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			passphrase, err := a.secret(cmd, flagPassphrase, labelPassphrase)
			if err != nil {
				return err
			}
			password, err := a.secret(cmd, flagPassword, labelPassword)
			if err != nil {
				return err
			}
			enc, err := a.services.CryptoService.EncryptPassphrase(passphrase, password)
			if err != nil {
				return err
			}
			return a.print(cmd, enc)
		},
	}
	addPassphraseFlag(passphrase)
	addPasswordFlag(passphrase)

	cmd.AddCommand(message, passphrase)
	return cmd
}

func (a *App) newDecryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a message or a passphrase",
	}

	message := &cobra.Command{
		Use:   "message <cipher> <nonce> <sender-public-key>",
		Short: "Decrypt a message sent to this account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := a.secret(cmd, flagPassphrase, labelPassphrase)
			if err != nil {
				return err
			}
			dec, err := a.services.CryptoService.DecryptMessage(args[0], args[1], passphrase, args[2])
			if err != nil {
				return err
			}
			return a.print(cmd, dec)
		},
	}
	addPassphraseFlag(message)

	passphrase := &cobra.Command{
		Use:   "passphrase <cipher> <iv> <salt>",
		Short: "Decrypt a passphrase encrypted with a password",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.secret(cmd, flagPassword, labelPassword)
			if err != nil {
				return err
			}
			enc := models.EncryptedPassphrase{Cipher: args[0], IV: args[1], Salt: args[2]}
			dec, err := a.services.CryptoService.DecryptPassphrase(enc, password)
			if err != nil {
				return err
			}
			return a.print(cmd, dec)
		},
	}
	addPasswordFlag(passphrase)

	cmd.AddCommand(message, passphrase)
	return cmd
}

func (a *App) newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show local account data",
	}

	account := &cobra.Command{
		Use:   "account",
		Short: "Show the keys and address of a passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			passphrase, err := a.secret(cmd, flagPassphrase, labelPassphrase)
			if err != nil {
				return err
			}
			account, err := a.services.CryptoService.GetAccount(passphrase)
			if err != nil {
				return err
			}
			return a.print(cmd, account)
		},
	}
	addPassphraseFlag(account)

	cmd.AddCommand(account)
	return cmd
}

func (a *App) newSignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign data with an account passphrase",
	}

	message := &cobra.Command{
		Use:   "message <message>",
		Short: "Sign a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := a.secret(cmd, flagPassphrase, labelPassphrase)
			if err != nil {
				return err
			}
			signed, err := a.services.CryptoService.SignMessage(args[0], passphrase)
			if err != nil {
				return err
			}
			return a.print(cmd, signed)
		},
	}
	addPassphraseFlag(message)

	cmd.AddCommand(message)
	return cmd
}

func (a *App) newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify signed data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "message <public-key> <signature> <message>",
		Short: "Verify a signed message",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			verified, err := a.services.CryptoService.VerifyMessage(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return a.print(cmd, verified)
		},
	})
	return cmd
}
