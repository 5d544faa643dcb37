package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecsign/internal/domain"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen <name>",
		Short: "Generate a P-256 key pair and store it securely",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase() == "" {
				return fmt.Errorf("passphrase required (-p or ECSIGN_PASSPHRASE)")
			}
			info, err := appCtx.Keys.Generate(cmd.Context(), domain.KeyName(args[0]), passphrase())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key %s created (%s).\nFingerprint: %s\n", info.Name, info.Curve, info.Fingerprint)
			return nil
		},
	}
}
