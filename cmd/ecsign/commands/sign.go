package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecsign/internal/domain"
)

func signCmd() *cobra.Command {
	var (
		key  string
		file string
	)
	cmd := &cobra.Command{
		Use:   "sign [text]",
		Short: "Sign text, a file or stdin with a stored key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readData(cmd, args, file)
			if err != nil {
				return err
			}
			sig, err := appCtx.Keys.Sign(cmd.Context(), domain.KeyName(key), passphrase(), data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "name of the stored key")
	cmd.Flags().StringVarP(&file, "file", "f", "", "file to sign")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
