package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"textseal/internal/domain"
)

func genpassCmd() *cobra.Command {
	var noUpper, noLower, noNumber, noSymbol bool
	opts := domain.DefaultPasswordOptions()

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Upper = !noUpper
			opts.Lower = !noLower
			opts.Number = !noNumber
			opts.Symbol = !noSymbol

			pw, err := appCtx.Generator.Password(opts)
			if err != nil {
				return err
			}
			appCtx.Log.Debug().Int("length", opts.Length).Msg("generated password")
			fmt.Fprintln(cmd.OutOrStdout(), pw)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "l", opts.Length, "password length (1-255)")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "exclude upper case letters")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "exclude lower case letters")
	cmd.Flags().BoolVar(&noNumber, "no-number", false, "exclude digits")
	cmd.Flags().BoolVar(&noSymbol, "no-symbol", false, "exclude symbols")
	return cmd
}
