package ui

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"bfctl/internal/debugger"
	appver "bfctl/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	b := &strings.Builder{}
	title := "bfctl · debugger"
	if m.watchMode {
		title = "bfctl · watch"
	}
	fmt.Fprintf(b, " %s\n\n", AccentBold().Render(title))
	b.WriteString(renderCode(m.prog.Source, m.report.PC, width-2))
	b.WriteString("\n\n")
	b.WriteString(renderTape(m.report.Snapshot, width))
	b.WriteString("\n\n")
	if !m.watchMode {
		b.WriteString(renderButtons())
		b.WriteString("\n\n")
		b.WriteString(m.logVP.View())
		b.WriteString("\n")
	}
	if m.notice != "" {
		fmt.Fprintf(b, " %s\n", m.notice)
	}
	if m.asking {
		b.WriteString(renderInputUI(width, m.ti.View()))
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	b.WriteString(m.statusBar(width))
	return zone.Scan(b.String())
}

func (m model) statusBar(width int) string {
	mode := m.report.Mode.String()
	if m.auto && m.paused {
		mode = "paused"
	}
	left := ChipStyle(Vitesse.Primary).Render(mode) +
		fmt.Sprintf(" pc %d/%d · steps %d · ptr %d · val %d", m.report.PC, m.prog.Len(), m.report.Steps, m.report.Pointer, m.report.Value)
	right := "v" + appver.AppVersion
	if m.report.Mode == debugger.Halted && m.err != nil {
		right = ChipStyle(Vitesse.Red).Render("error") + " " + right
	}
	return renderStatusBar(width, left, right)
}
