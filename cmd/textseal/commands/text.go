package commands

import "github.com/spf13/cobra"

func textCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign, verify, encrypt and decrypt text",
	}
	cmd.AddCommand(
		signCmd(),
		verifyCmd(),
		generateKeyCmd(),
		encryptCmd(),
		decryptCmd(),
		generateEncryptKeyCmd(),
	)
	return cmd
}
