package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ecsign/internal/app"
	"ecsign/internal/logging"
)

var (
	configPath string
	appCtx     *app.Wire
	v          *viper.Viper
)

// Execute runs the ecsign CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v = app.NewViper()
	appCtx = nil

	root := &cobra.Command{
		Use:          "ecsign",
		Short:        "SHA-256 digests and P-256 ECDSA signatures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Root().PersistentFlags()
			for _, name := range []string{"home", "verbose", "quiet", "passphrase"} {
				if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
					return err
				}
			}

			cfg, err := app.LoadConfig(v, configPath)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose, cfg.Quiet)
			cmd.SetContext(logger.WithContext(cmd.Context()))

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			logger.Debug().Str("home", cfg.Home).Msg("configuration loaded")
			return nil
		},
	}

	root.PersistentFlags().String("home", "", "key directory (default ~/.ecsign)")
	root.PersistentFlags().StringP("passphrase", "p", "", "passphrase protecting private keys (or ECSIGN_PASSPHRASE)")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(
		digestCmd(),
		keygenCmd(),
		signCmd(),
		verifyCmd(),
		exportCmd(),
		fingerprintCmd(),
		listCmd(),
		deleteCmd(),
	)
	return root
}

func passphrase() string { return v.GetString("passphrase") }
