package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// runSlice is the number of instructions executed between redraws in run mode.
const runSlice = 20000

func watchTickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return watchTickMsg(t) })
}

func runSliceCmd() tea.Cmd {
	return func() tea.Msg { return runSliceMsg{} }
}
