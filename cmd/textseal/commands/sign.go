package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"textseal/internal/domain"
	"textseal/internal/store"
	"textseal/internal/util/memzero"
)

func signCmd() *cobra.Command {
	var (
		input  string
		key    string
		output string
		format = domain.AlgorithmBlake3
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign input with a shared key or Ed25519 seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := verifyInputs(input, key); err != nil {
				return err
			}
			msg, err := appCtx.Inputs.Read(input)
			if err != nil {
				return err
			}
			k, err := appCtx.Keys.LoadSignatureKey(key)
			if err != nil {
				return err
			}
			defer memzero.Zero(k)

			sig, err := appCtx.Signatures.Sign(format, msg, k)
			if err != nil {
				return err
			}
			appCtx.Log.Debug().
				Str("input", input).
				Str("format", format.String()).
				Int("bytes", len(msg)).
				Msg("signed input")

			if output != "" {
				if err := appCtx.Keys.SavePayload(output, []byte(sig)); err != nil {
					return err
				}
				appCtx.Log.Info().Str("path", output).Msg("signature written")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", store.StdinMarker, "input file, or - for stdin")
	cmd.Flags().StringVarP(&key, "key", "k", "", "key file, or - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the signature to this file instead of stdout")
	cmd.Flags().Var(&format, "format", "signature algorithm (blake3, ed25519)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
