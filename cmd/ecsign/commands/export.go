package commands

import (
	"github.com/spf13/cobra"

	"ecsign/internal/domain"
	"ecsign/internal/util/memzero"
)

func exportCmd() *cobra.Command {
	var private bool
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Print a stored key as PEM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.KeyName(args[0])
			if !private {
				pemBytes, err := appCtx.Keys.ExportPublic(cmd.Context(), name)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(pemBytes)
				return err
			}
			pemBytes, err := appCtx.Keys.ExportPrivate(cmd.Context(), name, passphrase())
			if err != nil {
				return err
			}
			defer memzero.Zero(pemBytes)
			_, err = cmd.OutOrStdout().Write(pemBytes)
			return err
		},
	}
	cmd.Flags().BoolVar(&private, "private", false, "export the private key as PKCS8 (needs passphrase)")
	return cmd
}
