package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"bfctl/internal/bf"
	"bfctl/internal/debugger"
)

// maxLogLines bounds the trace pane history.
const maxLogLines = 500

type traceLog struct{ lines []string }

func (l *traceLog) Trace(r bf.TraceRecord) {
	l.lines = append(l.lines, r.String())
	if len(l.lines) > maxLogLines {
		l.lines = l.lines[len(l.lines)-maxLogLines:]
	}
}

// Model for the watch and debugger TUIs. Watch mode starts stepping on its own
// and exits when the program finishes; debugger mode waits for the operator.
type model struct {
	ctx    context.Context
	ctl    *debugger.Controller
	prog   *bf.Program
	report debugger.Report
	err    error

	// auto stepping (watch)
	watchMode bool
	auto      bool
	paused    bool
	delay     time.Duration
	running   bool

	width  int
	height int

	trace  *traceLog
	logVP  viewport.Model
	ti     textinput.Model
	asking bool
	keys   keyMap
	help   help.Model
	notice string

	quitting bool
}

// Options configures a TUI session.
type Options struct {
	Input string
	Delay time.Duration
	// Watch starts stepping immediately and quits when the program ends.
	Watch bool
	// Engine is applied after the defaults, e.g. bf.WithTapeLimit.
	Engine []bf.Option
}

func newModel(prog *bf.Program, opts Options) model {
	tl := &traceLog{}
	e := bf.New(prog, append([]bf.Option{bf.WithInput(opts.Input), bf.WithInputPolicy(bf.Suspend())}, opts.Engine...)...)
	ti := textinput.New()
	ti.Prompt = " input > "
	ti.Placeholder = "text for ',' (Enter to feed)"
	ti.CharLimit = 4096
	ti.Blur()
	m := model{
		ctx:       context.Background(),
		ctl:       debugger.New(e, debugger.WithTrace(tl)),
		prog:      prog,
		watchMode: opts.Watch,
		auto:      opts.Watch,
		delay:     opts.Delay,
		trace:     tl,
		logVP:     viewport.New(80, 8),
		ti:        ti,
		keys:      newKeyMap(),
		help:      help.New(),
	}
	m.report = snapshotReport(e)
	return m
}

// NewWatch builds the self-running tape view.
func NewWatch(prog *bf.Program, input string, delay time.Duration, opts ...bf.Option) tea.Model {
	return newModel(prog, Options{Input: input, Delay: delay, Watch: true, Engine: opts})
}

// NewDebugger builds the operator-driven stepping view.
func NewDebugger(prog *bf.Program, input string, delay time.Duration, opts ...bf.Option) tea.Model {
	return newModel(prog, Options{Input: input, Delay: delay, Engine: opts})
}

// Result extracts the final state from a model returned by tea.Program.Run.
func Result(m tea.Model) (debugger.Report, error) {
	switch mm := m.(type) {
	case model:
		return mm.report, mm.err
	case *model:
		return mm.report, mm.err
	}
	return debugger.Report{}, nil
}

func snapshotReport(e *bf.Engine) debugger.Report {
	return debugger.Report{
		Mode:     debugger.Ready,
		PC:       e.PC(),
		Pointer:  e.Pointer(),
		Value:    e.Value(),
		Output:   e.Output(),
		Snapshot: e.Snapshot(),
		Done:     e.Done(),
	}
}

func (m model) Init() tea.Cmd {
	if m.auto {
		return watchTickCmd(m.delay)
	}
	return nil
}
