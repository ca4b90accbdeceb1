package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"textseal/internal/domain"
	"textseal/internal/util/memzero"
)

func generateEncryptKeyCmd() *cobra.Command {
	var (
		output string
		keyDir string
		format = domain.AlgorithmChaCha20Poly1305
	)

	cmd := &cobra.Command{
		Use:   "generate-encrypt-key",
		Short: "Generate a ChaCha20-Poly1305 key stored as URL-safe base64",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := keyPath(output, keyDir, format.String())
			if err != nil {
				return err
			}
			key, err := appCtx.Generator.CipherKey(format)
			if err != nil {
				return err
			}
			defer memzero.Zero(key[:])

			if err := appCtx.Keys.SaveCipherKey(path, key); err != nil {
				return err
			}
			appCtx.Log.Info().Str("path", path).Str("format", format.String()).Msg("key written")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "key file to write")
	cmd.Flags().StringVar(&keyDir, "key-dir", "", "directory for a generated key file name (default $TEXTSEAL_KEY_DIR)")
	cmd.Flags().Var(&format, "format", "cipher (chacha20-poly1305)")
	return cmd
}
