package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bfctl/internal/bf"
	"bfctl/internal/debugger"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("file", "f", "", "read the program from `FILE`")
}

var checkCmd = &cobra.Command{
	Use:   "check [SOURCE]",
	Short: "Validate loop structure without running",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		prog, err := bf.Compile(src)
		if err != nil {
			return describe(src, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %d commands, %d loops\n", prog.Len(), prog.Brackets.Loops())
		return nil
	},
}

// describe turns engine errors into messages with source positions.
func describe(src string, err error) error {
	if err == nil {
		return nil
	}
	return errors.New(debugger.Describe(src, err))
}
