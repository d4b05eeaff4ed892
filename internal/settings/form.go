package settings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"bfctl/internal/config"
)

// values mirrors config.Config as form strings.
type values struct {
	delay      string
	debugDelay string
	tapeLimit  string
	eof        string
	logLevel   string
	addr       string
	maxSteps   string
}

func fromConfig(c config.Config) values {
	return values{
		delay:      c.Delay.String(),
		debugDelay: c.DebugDelay.String(),
		tapeLimit:  strconv.Itoa(c.TapeLimit),
		eof:        c.EOF,
		logLevel:   c.LogLevel,
		addr:       c.Server.Addr,
		maxSteps:   strconv.Itoa(c.Server.MaxSteps),
	}
}

// apply parses v onto c. Fields are validated by the form, so errors here
// only surface for programmatic callers.
func (v values) apply(c config.Config) (config.Config, error) {
	var err error
	if c.Delay, err = time.ParseDuration(v.delay); err != nil {
		return c, fmt.Errorf("delay: %w", err)
	}
	if c.DebugDelay, err = time.ParseDuration(v.debugDelay); err != nil {
		return c, fmt.Errorf("debug delay: %w", err)
	}
	if c.TapeLimit, err = strconv.Atoi(v.tapeLimit); err != nil {
		return c, fmt.Errorf("tape limit: %w", err)
	}
	if c.Server.MaxSteps, err = strconv.Atoi(v.maxSteps); err != nil {
		return c, fmt.Errorf("max steps: %w", err)
	}
	c.EOF, c.LogLevel, c.Server.Addr = v.eof, v.logLevel, v.addr
	return c, c.Validate()
}

func validDuration(s string) error {
	d, err := time.ParseDuration(s)
	if err == nil && d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return err
}

func validPositive(s string) error {
	n, err := strconv.Atoi(s)
	if err == nil && n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return err
}

func validNonNegative(s string) error {
	n, err := strconv.Atoi(s)
	if err == nil && n < 0 {
		return fmt.Errorf("must be zero (unbounded) or more")
	}
	return err
}

// Run launches an interactive form seeded with cur and returns the edited
// configuration. The caller decides whether to save it.
func Run(cur config.Config) (config.Config, error) {
	v := fromConfig(cur)

	// Light theme tweaks inspired by freeze/interactive.go
	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Edit bfctl defaults; flags still override them."),
			huh.NewInput().Title("Watch delay").Value(&v.delay).Validate(validDuration),
			huh.NewInput().Title("Debug delay").Value(&v.debugDelay).Validate(validDuration),
			huh.NewSelect[string]().
				Title("On EOF").
				Options(huh.NewOptions("fail", "zero", "prompt")...).
				Value(&v.eof),
			huh.NewInput().Title("Tape limit").Description("0 disables the bound").Value(&v.tapeLimit).Validate(validNonNegative),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&v.logLevel),
		),
		huh.NewGroup(
			huh.NewInput().Title("Server address").Value(&v.addr),
			huh.NewInput().Title("Server max steps").Value(&v.maxSteps).Validate(validPositive),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return cur, err // form canceled or failed
	}
	return v.apply(cur)
}
