package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"textseal/internal/domain"
	"textseal/internal/store"
	"textseal/internal/util/memzero"
)

func encryptCmd() *cobra.Command {
	var (
		input  string
		key    string
		output string
		format = domain.AlgorithmChaCha20Poly1305
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt input with ChaCha20-Poly1305",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := verifyInputs(input, key); err != nil {
				return err
			}
			plaintext, err := appCtx.Inputs.Read(input)
			if err != nil {
				return err
			}
			defer memzero.Zero(plaintext)
			k, err := appCtx.Keys.LoadCipherKey(key)
			if err != nil {
				return err
			}
			defer memzero.Zero(k)

			text, err := appCtx.Ciphers.EncryptToString(plaintext, k)
			if err != nil {
				return err
			}
			appCtx.Log.Debug().
				Str("input", input).
				Str("format", format.String()).
				Int("bytes", len(plaintext)).
				Msg("encrypted input")

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			if err := appCtx.Keys.SavePayload(output, []byte(text)); err != nil {
				return err
			}
			appCtx.Log.Info().Str("path", output).Msg("ciphertext written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", store.StdinMarker, "plaintext file, or - for stdin")
	cmd.Flags().StringVarP(&key, "key", "k", "", "key file, or - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the encoded payload to this file instead of stdout")
	cmd.Flags().Var(&format, "format", "cipher (chacha20-poly1305)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
