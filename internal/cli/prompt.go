package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"bfctl/internal/bf"
	"bfctl/internal/ui"
)

// huhPrompter asks for more input in a one-field form. An empty answer is
// refused by the form itself; the Prompt policy retries anyway.
func huhPrompter() bf.Prompter {
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Focused.Title = theme.Focused.Title.Foreground(ui.Vitesse.Primary).Bold(true)
	return bf.PrompterFunc(func(prompt string) (string, error) {
		var line string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("input exhausted").
					Prompt(prompt).
					Placeholder("characters for ','").
					Validate(func(s string) error {
						if s == "" {
							return errors.New("enter at least one character")
						}
						return nil
					}).
					Value(&line),
			),
		).WithTheme(theme).WithWidth(60)
		if err := form.Run(); err != nil {
			return "", err
		}
		return line, nil
	})
}
