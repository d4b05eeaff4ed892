package app

import (
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"bfctl/internal/bf"
	"bfctl/internal/debugger"
	"bfctl/internal/ui"
)

// Watch compiles src and animates it in the full-screen tape view, pausing
// delay between steps. The program output is flushed to stdout afterwards.
func Watch(src, input string, delay time.Duration, opts ...bf.Option) (debugger.Report, error) {
	return start(src, func(p *bf.Program) tea.Model { return ui.NewWatch(p, input, delay, opts...) }, os.Stdout)
}

// Debug compiles src and opens the operator-driven stepping view.
func Debug(src, input string, delay time.Duration, opts ...bf.Option) (debugger.Report, error) {
	return start(src, func(p *bf.Program) tea.Model { return ui.NewDebugger(p, input, delay, opts...) }, os.Stdout)
}

func start(src string, build func(*bf.Program) tea.Model, out io.Writer) (debugger.Report, error) {
	prog, err := bf.Compile(src)
	if err != nil {
		return debugger.Report{}, err
	}
	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	final, err := tea.NewProgram(build(prog), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return debugger.Report{}, err
	}
	rep, runErr := ui.Result(final)
	if err := bf.Flush(out, rep.Output); err != nil {
		return rep, err
	}
	return rep, runErr
}
