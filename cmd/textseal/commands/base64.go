package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"textseal/internal/crypto"
	"textseal/internal/store"
)

const (
	base64Standard = "standard"
	base64URLSafe  = "urlsafe"
)

func base64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64",
	}
	cmd.AddCommand(base64EncodeCmd(), base64DecodeCmd())
	return cmd
}

func base64EncodeCmd() *cobra.Command {
	var input, format string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode input as base64",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkBase64Format(format); err != nil {
				return err
			}
			if err := verifyInput(input); err != nil {
				return err
			}
			b, err := appCtx.Inputs.Read(input)
			if err != nil {
				return err
			}

			var out string
			if format == base64URLSafe {
				out = crypto.ToBase64URL(b)
			} else {
				out = crypto.ToBase64(b)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", store.StdinMarker, "input file, or - for stdin")
	cmd.Flags().StringVar(&format, "format", base64Standard, "standard or urlsafe (no padding)")
	return cmd
}

func base64DecodeCmd() *cobra.Command {
	var input, format string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkBase64Format(format); err != nil {
				return err
			}
			if err := verifyInput(input); err != nil {
				return err
			}
			b, err := appCtx.Inputs.Read(input)
			if err != nil {
				return err
			}
			text := string(bytes.TrimSpace(b))

			var out []byte
			if format == base64URLSafe {
				out, err = crypto.FromBase64URL(text)
			} else {
				out, err = crypto.FromBase64(text)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", store.StdinMarker, "input file, or - for stdin")
	cmd.Flags().StringVar(&format, "format", base64Standard, "standard or urlsafe (no padding)")
	return cmd
}

func checkBase64Format(format string) error {
	switch format {
	case base64Standard, base64URLSafe:
		return nil
	default:
		return fmt.Errorf("unsupported base64 format %q (want %s or %s)", format, base64Standard, base64URLSafe)
	}
}
