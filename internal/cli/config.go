package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bfctl/internal/config"
	"bfctl/internal/settings"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("show", false, "print the effective configuration")
	configCmd.Flags().BoolP("edit", "e", false, "edit the configuration in an interactive form")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialise and show the config file",
	Long:  "Create config.yaml with defaults when missing, then print its location.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p, err := config.Path()
		if err != nil {
			return err
		}
		if show, _ := cmd.Flags().GetBool("show"); show {
			b, err := yaml.Marshal(conf)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(b))
			return nil
		}
		if edit, _ := cmd.Flags().GetBool("edit"); edit {
			next, err := settings.Run(conf)
			if err != nil {
				return err
			}
			if _, err := config.Save(next); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ saved %s\n", p)
			return nil
		}
		if fileExists(p) {
			fmt.Fprintf(out, "• keeping existing config: %s\n", p)
			return nil
		}
		if _, err := config.Save(conf); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ created config: %s\n", p)
		return nil
	},
}

func fileExists(path string) bool {
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		return true
	}
	return false
}
