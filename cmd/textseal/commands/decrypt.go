package commands

import (
	"bytes"

	"github.com/spf13/cobra"

	"textseal/internal/domain"
	"textseal/internal/store"
	"textseal/internal/util/memzero"
)

func decryptCmd() *cobra.Command {
	var (
		input      string
		key        string
		output     string
		printPlain bool
		format     = domain.AlgorithmChaCha20Poly1305
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a payload produced by text encrypt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := verifyInputs(input, key); err != nil {
				return err
			}
			text, err := appCtx.Inputs.Read(input)
			if err != nil {
				return err
			}
			k, err := appCtx.Keys.LoadCipherKey(key)
			if err != nil {
				return err
			}
			defer memzero.Zero(k)

			plaintext, err := appCtx.Ciphers.DecryptString(string(bytes.TrimSpace(text)), k)
			if err != nil {
				return err
			}
			defer memzero.Zero(plaintext)
			appCtx.Log.Debug().
				Str("input", input).
				Str("format", format.String()).
				Int("bytes", len(plaintext)).
				Msg("decrypted input")

			if output != "" {
				if err := appCtx.Keys.SavePayload(output, plaintext); err != nil {
					return err
				}
				appCtx.Log.Info().Str("path", output).Msg("plaintext written")
			}
			if output == "" || printPlain {
				_, err := cmd.OutOrStdout().Write(plaintext)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", store.StdinMarker, "encoded payload file, or - for stdin")
	cmd.Flags().StringVarP(&key, "key", "k", "", "key file, or - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the plaintext to this file")
	cmd.Flags().BoolVarP(&printPlain, "print", "p", false, "also print the plaintext when --output is set")
	cmd.Flags().Var(&format, "format", "cipher (chacha20-poly1305)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
