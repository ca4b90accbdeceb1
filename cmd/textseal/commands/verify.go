package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"textseal/internal/domain"
	"textseal/internal/store"
	"textseal/internal/util/memzero"
)

var errSignatureMismatch = errors.New("signature does not match")

func verifyCmd() *cobra.Command {
	var (
		input     string
		key       string
		signature string
		format    = domain.AlgorithmBlake3
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over input",
		Long: "Verify a signature over input. For ed25519 the key is the public key.\n" +
			"--signature takes the encoded signature or a file containing it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := verifyInputs(input, key); err != nil {
				return err
			}
			sig, err := readSignature(signature)
			if err != nil {
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

			ok, err := appCtx.Signatures.Verify(format, msg, k, sig)
			if err != nil {
				return err
			}
			appCtx.Log.Debug().
				Str("input", input).
				Str("format", format.String()).
				Bool("valid", ok).
				Msg("verified input")

			if !ok {
				return errSignatureMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature verified")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", store.StdinMarker, "input file, or - for stdin")
	cmd.Flags().StringVarP(&key, "key", "k", "", "key file, or - for stdin")
	cmd.Flags().StringVarP(&signature, "signature", "s", "", "signature text or file")
	cmd.Flags().Var(&format, "format", "signature algorithm (blake3, ed25519)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}

// readSignature returns the contents of s when it names a regular file,
// otherwise s itself.
func readSignature(s string) (string, error) {
	if info, err := os.Stat(s); err == nil && !info.IsDir() {
		b, err := os.ReadFile(s)
		if err != nil {
			return "", fmt.Errorf("%w: %w", store.ErrIO, err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return strings.TrimSpace(s), nil
}
