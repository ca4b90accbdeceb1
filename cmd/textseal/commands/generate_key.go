package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"textseal/internal/domain"
	"textseal/internal/util/memzero"
)

func generateKeyCmd() *cobra.Command {
	var (
		output string
		keyDir string
		format = domain.AlgorithmBlake3
	)

	cmd := &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a signing key",
		Long: "Generate a 32-byte signing key stored as raw bytes.\n" +
			"For ed25519 the key is a seed and the public key is written to <output>.pub.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := keyPath(output, keyDir, format.String())
			if err != nil {
				return err
			}
			key, err := appCtx.Generator.SignatureKey(format)
			if err != nil {
				return err
			}
			defer memzero.Zero(key[:])

			if err := appCtx.Keys.SaveSignatureKey(path, key); err != nil {
				return err
			}
			appCtx.Log.Info().Str("path", path).Str("format", format.String()).Msg("key written")
			fmt.Fprintln(cmd.OutOrStdout(), path)

			if format != domain.AlgorithmEd25519 {
				return nil
			}
			pub, err := appCtx.Signatures.PublicKey(format, key[:])
			if err != nil {
				return err
			}
			pubPath := path + ".pub"
			if err := appCtx.Keys.SaveSignatureKey(pubPath, pub); err != nil {
				return err
			}
			appCtx.Log.Info().Str("path", pubPath).Msg("public key written")
			fmt.Fprintln(cmd.OutOrStdout(), pubPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "key file to write")
	cmd.Flags().StringVar(&keyDir, "key-dir", "", "directory for a generated key file name (default $TEXTSEAL_KEY_DIR)")
	cmd.Flags().Var(&format, "format", "signature algorithm (blake3, ed25519)")
	return cmd
}
