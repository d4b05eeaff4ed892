package ui

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"bfctl/internal/bf"
)

// renderTape draws the materialised cells around the pointer on one line.
// The current cell is wrapped in '*' and highlighted.
func renderTape(s bf.Snapshot, width int) string {
	if width <= 0 {
		width = 80
	}
	addrs := s.Addresses()
	cur := 0
	for i, a := range addrs {
		if a == s.Pointer {
			cur = i
			break
		}
	}
	cell := func(i int) string {
		v := s.Cells[addrs[i]]
		if i == cur {
			return ChipKeyStyle().Render(fmt.Sprintf("*%d*", v))
		}
		return fmt.Sprintf("%d", v)
	}
	parts := []string{cell(cur)}
	lo, hi := cur, cur
	used := xansi.StringWidth(parts[0]) + 2
	// grow the window alternately to the right and left until the line is full
	for lo > 0 || hi < len(addrs)-1 {
		grew := false
		if hi < len(addrs)-1 {
			c := cell(hi + 1)
			if used+xansi.StringWidth(c)+2 <= width-8 {
				parts = append(parts, c)
				used += xansi.StringWidth(c) + 2
				hi++
				grew = true
			}
		}
		if lo > 0 {
			c := cell(lo - 1)
			if used+xansi.StringWidth(c)+2 <= width-8 {
				parts = append([]string{c}, parts...)
				used += xansi.StringWidth(c) + 2
				lo--
				grew = true
			}
		}
		if !grew {
			break
		}
	}
	line := "[" + strings.Join(parts, ", ") + "]"
	if lo > 0 {
		line = "… " + line
	}
	if hi < len(addrs)-1 {
		line += " …"
	}
	return fmt.Sprintf("a[%d:%d] %s", addrs[lo], addrs[hi], line)
}

// renderCode wraps the cleaned source to width and highlights the command at pc.
func renderCode(src string, pc, width int) string {
	if width < 10 {
		width = 10
	}
	hl := ChipKeyStyle().Render
	var b strings.Builder
	for i := 0; i < len(src); i++ {
		if i > 0 && i%width == 0 {
			b.WriteByte('\n')
		}
		if i == pc {
			b.WriteString(hl(string(src[i])))
			continue
		}
		b.WriteByte(src[i])
	}
	if pc >= len(src) {
		if len(src) > 0 && len(src)%width == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(Dim("∎"))
	}
	return b.String()
}

// renderInputUI draws a single-line bordered input box at the given width.
func renderInputUI(width int, content string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	if w < 10 {
		w = 10
	}
	inner := w - 2
	cw := xansi.StringWidth(content)
	if cw > inner {
		content = xansi.Truncate(content, inner, "")
		cw = inner
	}
	pad := inner - cw
	border := BorderStyle()
	var sb strings.Builder
	sb.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	sb.WriteString(border.Render("│"))
	sb.WriteString(content)
	if pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(border.Render("│") + "\n")
	sb.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	return sb.String()
}

// renderStatusBar draws a single-line status bar at the given width
// with left/right-aligned content.
func renderStatusBar(width int, left, right string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	lw := xansi.StringWidth(left)
	rw := xansi.StringWidth(right)
	if lw+rw > w {
		maxL := w - rw - 1
		if maxL < 0 {
			maxL = 0
		}
		left = xansi.Truncate(left, maxL, "")
		lw = xansi.StringWidth(left)
	}
	pad := w - lw - rw
	if pad < 0 {
		pad = 0
	}
	return StatusBarBase().Render(left + strings.Repeat(" ", pad) + right)
}

// buttons are the clickable controls of the debugger view.
var buttons = []struct {
	id    string
	label string
}{
	{"btn.step", "n step"},
	{"btn.skip", "s skip"},
	{"btn.run", "e run"},
	{"btn.watch", "w watch"},
	{"btn.output", "o output"},
	{"btn.quit", "q quit"},
}

func renderButtons() string {
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		parts[i] = zone.Mark(b.id, Button(b.label))
	}
	return strings.Join(parts, " ")
}
