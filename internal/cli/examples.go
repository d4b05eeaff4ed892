package cli

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"bfctl/internal/bf"
	"bfctl/internal/ui"
)

func init() {
	rootCmd.AddCommand(examplesCmd)
	examplesCmd.Flags().Bool("run", false, "run the selected example")
	examplesCmd.Flags().StringP("input", "i", "", "input for --run")
	examplesCmd.Flags().Bool("raw", false, "print markdown without rendering")
	addTapeLimitFlag(examplesCmd)
}

var examplesCmd = &cobra.Command{
	Use:   "examples [QUERY]",
	Short: "List the bundled example programs or print one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			md := examplesMarkdown(bf.Examples)
			if raw, _ := cmd.Flags().GetBool("raw"); raw {
				fmt.Fprint(out, md)
				return nil
			}
			rendered, _ := ui.RenderMarkdown(md, 80)
			fmt.Fprint(out, rendered)
			return nil
		}
		ex, err := findExample(args[0])
		if err != nil {
			return err
		}
		if run, _ := cmd.Flags().GetBool("run"); !run {
			fmt.Fprintln(out, ex.Source)
			return nil
		}
		input, _ := cmd.Flags().GetString("input")
		_, err = bf.Execute(ex.Source, input, false, bf.WithStdout(out), bf.WithEOF(bf.DefaultValue(0)), bf.WithEngine(tapeLimit(cmd)))
		return err
	},
}

// findExample returns the best fuzzy match for query.
func findExample(query string) (bf.Example, error) {
	matches := fuzzy.Find(query, bf.ExampleNames())
	if len(matches) == 0 {
		return bf.Example{}, fmt.Errorf("no example matches %q (have %s)", query, strings.Join(bf.ExampleNames(), ", "))
	}
	return bf.Examples[matches[0].Index], nil
}

func examplesMarkdown(exs []bf.Example) string {
	var b strings.Builder
	b.WriteString("# Examples\n\n")
	for _, ex := range exs {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n```\n%s\n```\n\n", ex.Name, ex.Desc, ex.Source)
	}
	b.WriteString("Run one with `bfctl examples NAME --run -i TEXT`.\n")
	return b.String()
}
