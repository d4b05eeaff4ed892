package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bfctl/internal/bf"
)

// addSourceFlags registers the flags shared by commands that take a program.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "read the program from `FILE`")
	cmd.Flags().StringP("input", "i", "", "input consumed by ','")
	addTapeLimitFlag(cmd)
}

func addTapeLimitFlag(cmd *cobra.Command) {
	cmd.Flags().Int("tape-limit", 0, "largest |pointer| allowed, 0 for unbounded (default from config)")
}

// tapeLimit is the --tape-limit value when given, else the configured one.
// An explicit 0 disables the bound.
func tapeLimit(cmd *cobra.Command) bf.Option {
	if cmd.Flags().Changed("tape-limit") {
		n, _ := cmd.Flags().GetInt("tape-limit")
		return bf.WithTapeLimit(n)
	}
	return bf.WithTapeLimit(conf.TapeLimit)
}

// readSource picks the program text from the argument, --file or stdin.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("give the program as an argument or with --file, not both")
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read program: %w", err)
		}
		return string(b), nil
	case len(args) > 0:
		return strings.Join(args, ""), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read program from stdin: %w", err)
	}
	return string(b), nil
}

func inputFlag(cmd *cobra.Command) string {
	s, _ := cmd.Flags().GetString("input")
	return s
}
