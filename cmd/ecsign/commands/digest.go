package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ecsign/internal/crypto"
)

func digestCmd() *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "digest [text]",
		Short: "Print the SHA-256 digest of text, files or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(files) == 0 {
				data, err := readData(cmd, args, "")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, crypto.Digest(data))
				return nil
			}
			if len(args) > 0 {
				return fmt.Errorf("give either text or --file, not both")
			}

			sums := make([]string, len(files))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(4)
			for i, path := range files {
				i, path := i, path
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					f, err := os.Open(path)
					if err != nil {
						return err
					}
					defer f.Close()
					sum, err := crypto.DigestValue(f)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					sums[i] = sum
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for i, path := range files {
				fmt.Fprintf(out, "%s  %s\n", sums[i], path)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "file to hash (repeatable)")
	return cmd
}
