package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"bfctl/internal/bf"
	"bfctl/internal/debugger"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logVP.Width = maxInt(20, msg.Width)
		m.logVP.Height = maxInt(3, msg.Height-14)
		m.ti.Width = maxInt(5, msg.Width-12)
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.asking {
			return m, nil
		}
		for _, b := range buttons {
			if zone.Get(b.id).InBounds(msg) {
				return m.perform(b.id)
			}
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.asking {
			if msg.Type == tea.KeyEnter {
				return m.feed(m.ti.Value())
			}
			var cmd tea.Cmd
			m.ti, cmd = m.ti.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.perform("btn.quit")
		case key.Matches(msg, m.keys.Step):
			return m.perform("btn.step")
		case key.Matches(msg, m.keys.Skip):
			return m.perform("btn.skip")
		case key.Matches(msg, m.keys.Run):
			return m.perform("btn.run")
		case key.Matches(msg, m.keys.Watch):
			return m.perform("btn.watch")
		case key.Matches(msg, m.keys.Output):
			return m.perform("btn.output")
		case key.Matches(msg, m.keys.Pause):
			if m.auto {
				m.paused = !m.paused
				if !m.paused {
					return m, watchTickCmd(m.delay)
				}
			}
			return m, nil
		}
		return m, nil
	case watchTickMsg:
		if !m.auto || m.paused || m.asking || m.report.Mode == debugger.Halted {
			return m, nil
		}
		rep, err := m.ctl.Apply(m.ctx, debugger.Step)
		var cmd tea.Cmd
		m, cmd = m.settle(rep, err)
		if cmd != nil || m.report.Mode == debugger.Halted || m.asking {
			return m, cmd
		}
		return m, watchTickCmd(m.delay)
	case runSliceMsg:
		if !m.running || m.asking {
			return m, nil
		}
		rep, err := m.ctl.Advance(m.ctx, runSlice)
		var cmd tea.Cmd
		m, cmd = m.settle(rep, err)
		if cmd != nil || !m.running {
			return m, cmd
		}
		return m, runSliceCmd()
	}
	return m, nil
}

// perform runs the action bound to a button id.
func (m model) perform(id string) (tea.Model, tea.Cmd) {
	if id == "btn.quit" {
		return m.quit()
	}
	if m.report.Mode == debugger.Halted && id != "btn.output" {
		m.notice = "program finished · o output · q quit"
		return m, nil
	}
	switch id {
	case "btn.step":
		m.auto, m.running = false, false
		rep, err := m.ctl.Apply(m.ctx, debugger.Step)
		return m.settle(rep, err)
	case "btn.skip":
		m.auto, m.running = false, false
		rep, err := m.ctl.Apply(m.ctx, debugger.Skip)
		return m.settle(rep, err)
	case "btn.run":
		m.auto = false
		m.running = true
		m.notice = "running…"
		return m, runSliceCmd()
	case "btn.watch":
		m.running = false
		m.auto, m.paused = true, false
		return m, watchTickCmd(m.delay)
	case "btn.output":
		rep, err := m.ctl.Apply(m.ctx, debugger.View)
		m.report = rep
		if err == nil {
			m.notice = "output: " + bf.Display(rep.Output)
		}
		return m, nil
	}
	return m, nil
}

// settle stores a report and reacts to its outcome.
func (m model) settle(rep debugger.Report, err error) (model, tea.Cmd) {
	m.report = rep
	m.refreshLog()
	switch {
	case rep.NeedInput:
		m.asking = true
		m.notice = fmt.Sprintf("command %d reads input", rep.PC)
		return m, m.ti.Focus()
	case err != nil && !errors.Is(err, debugger.ErrHalted):
		m.err = err
		m.running, m.auto = false, false
		m.notice = "error: " + err.Error()
		return m, nil
	case rep.Done:
		m.running = false
		m.notice = fmt.Sprintf("finished after %d steps", rep.Steps)
		if m.watchMode {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) feed(line string) (tea.Model, tea.Cmd) {
	if line == "" {
		return m, nil
	}
	m.ctl.Engine().Feed(line)
	m.ti.SetValue("")
	m.ti.Blur()
	m.asking = false
	m.notice = ""
	switch {
	case m.running:
		return m, runSliceCmd()
	case m.auto && !m.paused:
		return m, watchTickCmd(m.delay)
	}
	rep, err := m.ctl.Apply(m.ctx, debugger.Step)
	return m.settle(rep, err)
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if m.report.Mode != debugger.Halted {
		rep, _ := m.ctl.Apply(m.ctx, debugger.Quit)
		m.report = rep
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *model) refreshLog() {
	m.logVP.SetContent(strings.Join(m.trace.lines, "\n"))
	m.logVP.GotoBottom()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
