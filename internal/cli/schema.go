package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bfctl/internal/server"
)

func init() { rootCmd.AddCommand(schemaCmd) }

var schemaCmd = &cobra.Command{
	Use:       "schema [NAME]",
	Short:     "Print the JSON Schema of an API document or the config file",
	Long:      "Print a JSON Schema. NAME is one of: " + strings.Join(server.SchemaNames(), ", ") + " (default run-request).",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: server.SchemaNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "run-request"
		if len(args) == 1 {
			name = args[0]
		}
		sch, err := server.Schema(name)
		if err != nil {
			return err
		}
		b, err := server.MarshalSchema(sch)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
