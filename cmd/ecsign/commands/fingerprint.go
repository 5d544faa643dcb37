package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecsign/internal/domain"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <name>",
		Short: "Print a stored key's fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := appCtx.Keys.Info(cmd.Context(), domain.KeyName(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", info.Fingerprint)
			return nil
		},
	}
}
