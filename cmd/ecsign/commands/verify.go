package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecsign/internal/crypto"
	"ecsign/internal/domain"
)

// errSignatureInvalid makes the process exit non-zero for a failed check.
var errSignatureInvalid = errors.New("signature invalid")

func verifyCmd() *cobra.Command {
	var (
		key    string
		pubkey string
		file   string
	)
	cmd := &cobra.Command{
		Use:   "verify <signature> [text]",
		Short: "Verify a hex signature with a stored key or a PEM public key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig := args[0]
			data, err := readData(cmd, args[1:], file)
			if err != nil {
				return err
			}

			var ok bool
			switch {
			case pubkey != "":
				pemBytes, err := os.ReadFile(pubkey)
				if err != nil {
					return err
				}
				pub, err := crypto.ParsePublicKeyPEM(pemBytes)
				if err != nil {
					return err
				}
				ok, err = crypto.Verify(pub, data, sig)
				if err != nil {
					return err
				}
			default:
				ok, err = appCtx.Keys.Verify(cmd.Context(), domain.KeyName(key), data, sig)
				if err != nil {
					return err
				}
			}

			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errSignatureInvalid
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "name of the stored key")
	cmd.Flags().StringVar(&pubkey, "pubkey", "", "PEM public key file to verify against")
	cmd.Flags().StringVarP(&file, "file", "f", "", "file that was signed")
	cmd.MarkFlagsOneRequired("key", "pubkey")
	cmd.MarkFlagsMutuallyExclusive("key", "pubkey")
	return cmd
}
