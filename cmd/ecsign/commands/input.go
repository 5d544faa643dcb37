package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readData returns the payload for sign/verify: the inline text argument if
// given, else the file named by --file, else stdin.
func readData(cmd *cobra.Command, args []string, file string) ([]byte, error) {
	switch {
	case len(args) > 0 && file != "":
		return nil, fmt.Errorf("give either text or --file, not both")
	case len(args) > 0:
		return []byte(args[0]), nil
	case file != "":
		return os.ReadFile(file)
	default:
		return io.ReadAll(cmd.InOrStdin())
	}
}
