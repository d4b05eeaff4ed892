package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"bfctl/internal/bf"
	"bfctl/internal/debugger"
)

func compile(t *testing.T, src string) *bf.Program {
	t.Helper()
	zone.NewGlobal()
	p, err := bf.Compile(src)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	return p
}

func press(t *testing.T, m tea.Model, keys string) tea.Model {
	t.Helper()
	for _, r := range keys {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestDebugger_StepKeys(t *testing.T) {
	m := NewDebugger(compile(t, "+.+.>"), "", 0)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = press(t, m, "nnn")
	rep, err := Result(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.PC != 3 || rep.Mode != debugger.Paused || len(rep.Output) != 1 {
		t.Fatalf("unexpected report %+v", rep)
	}
	m = press(t, m, "o")
	if got := m.(model).notice; got != "output: "+bf.Display([]byte{1}) {
		t.Fatalf("unexpected output notice %q", got)
	}
	view := m.View()
	if !strings.Contains(view, "*2*") {
		t.Fatalf("current cell not highlighted:\n%s", view)
	}
	lines := m.(model).trace.lines
	if len(lines) != 3 || !strings.Contains(lines[2], "|+| inc a[0] = 2") {
		t.Fatalf("unexpected trace lines %q", lines)
	}
}

func TestDebugger_SkipAndQuit(t *testing.T) {
	m := NewDebugger(compile(t, "+++"), "", 0)
	m = press(t, m, "sn")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("quit should return a command")
	}
	rep, _ := Result(m)
	if !rep.Quit || rep.Value != 1 || rep.Mode != debugger.Halted {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestDebugger_RunInSlices(t *testing.T) {
	m := NewDebugger(compile(t, "++++[>++++<-]>."), "", 0)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if _, ok := msg.(runSliceMsg); !ok {
			break
		}
		m, cmd = m.Update(msg)
	}
	rep, err := Result(m)
	if err != nil || !rep.Done || len(rep.Output) != 1 || rep.Output[0] != 16 {
		t.Fatalf("unexpected result %+v %v", rep, err)
	}
}

func TestDebugger_AsksForInput(t *testing.T) {
	m := NewDebugger(compile(t, ",."), "", 0)
	m = press(t, m, "n")
	mm := m.(model)
	if !mm.asking {
		t.Fatalf("expected input prompt")
	}
	m = press(t, m, "xy")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rep, err := Result(m)
	if err != nil || rep.PC != 1 || rep.Value != 'x' {
		t.Fatalf("unexpected report after feeding input %+v %v", rep, err)
	}
	m = press(t, m, "n")
	rep, _ = Result(m)
	if !rep.Done || bf.Text(rep.Output) != "x" {
		t.Fatalf("unexpected final report %+v", rep)
	}
}

func TestWatch_StepsUntilQuit(t *testing.T) {
	m := NewWatch(compile(t, "+>++<."), "", time.Millisecond)
	if m.Init() == nil {
		t.Fatalf("watch should start ticking")
	}
	for i := 0; i < 20; i++ {
		m, _ = m.Update(watchTickMsg(time.Now()))
		if m.(model).quitting {
			break
		}
	}
	if !m.(model).quitting {
		t.Fatalf("watch did not quit after the program finished")
	}
	rep, err := Result(m)
	if err != nil || !rep.Done || len(rep.Output) != 1 || rep.Output[0] != 1 {
		t.Fatalf("unexpected report %+v %v", rep, err)
	}
}

func TestWatch_Pause(t *testing.T) {
	m := NewWatch(compile(t, "+++"), "", time.Millisecond)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := m.Update(watchTickMsg(time.Now()))
	if cmd != nil {
		t.Fatalf("paused watch should not schedule ticks")
	}
	if rep, _ := Result(m); rep.Steps != 0 {
		t.Fatalf("paused watch stepped: %+v", rep)
	}
}

func TestRenderTape_Window(t *testing.T) {
	tp := bf.NewTape()
	for i := 0; i < 50; i++ {
		_ = tp.Move(1)
		tp.Write(tp.Pointer(), i)
	}
	line := renderTape(tp.Snapshot(), 40)
	if !strings.Contains(line, "*49*") || !strings.HasPrefix(line, "a[") {
		t.Fatalf("unexpected tape line %q", line)
	}
	if !strings.Contains(line, "… [") {
		t.Fatalf("expected elided left side: %q", line)
	}
}

func TestDebugger_EngineOptions(t *testing.T) {
	m := NewDebugger(compile(t, ">>>"), "", 0, bf.WithTapeLimit(2))
	m = press(t, m, "nnn")
	_, err := Result(m)
	var tb *bf.TapeBoundsError
	if !errors.As(err, &tb) || tb.Address != 3 {
		t.Fatalf("expected tape bounds error at 3, got %v", err)
	}
}
