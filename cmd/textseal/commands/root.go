package commands

import (
	"github.com/spf13/cobra"

	"textseal/internal/app"
)

var (
	debug   bool
	envFile string
	baseCfg app.Config
	appCtx  *app.Wire
)

// Execute runs the CLI against the process environment.
func Execute() error {
	return newRootCmd(app.DefaultConfig()).Execute()
}

// newRootCmd builds the command tree. base supplies the defaults that flags
// and the environment are layered on, including the random source.
func newRootCmd(base app.Config) *cobra.Command {
	baseCfg = base
	appCtx = nil

	root := &cobra.Command{
		Use:           "textseal",
		Short:         "Sign, verify, encrypt and decrypt text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadEnvFile(envFile); err != nil {
				return err
			}

			cfg := baseCfg
			if cfg.LogLevel == "" {
				cfg.LogLevel = app.LogLevelInfo
			}
			cfg.ApplyEnv()
			if debug {
				cfg.LogLevel = app.LogLevelDebug
			}
			if cfg.Stdin == nil {
				cfg.Stdin = cmd.InOrStdin()
			}
			if cfg.Stderr == nil {
				cfg.Stderr = cmd.ErrOrStderr()
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with TEXTSEAL_* defaults")

	root.AddCommand(textCmd(), base64Cmd(), genpassCmd())
	return root
}
