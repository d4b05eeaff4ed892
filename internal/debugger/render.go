package debugger

import (
	"errors"
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"bfctl/internal/bf"
)

// Caret draws text with a '^' under the byte offset col.
// Wide runes before col are counted by display width.
func Caret(text string, col int) string {
	if col < 0 {
		col = 0
	}
	if col > len(text) {
		col = len(text)
	}
	pad := runewidth.StringWidth(text[:col])
	return text + "\n" + strings.Repeat(" ", pad) + "^"
}

// FormatTape renders a snapshot as {addr: value, ...} in address order.
func FormatTape(s bf.Snapshot) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, a := range s.Addresses() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %d", a, s.Cells[a])
	}
	b.WriteByte('}')
	return b.String()
}

// statusLine is the "PBF:" line printed after every executed step.
func statusLine(tag string, s bf.Snapshot) string {
	return fmt.Sprintf("PBF: %3s | %s[%d]", tag, FormatTape(s), s.Pointer)
}

// Describe explains a compile error with a caret under the offending bracket.
func Describe(src string, err error) string {
	var ue *bf.UnbalancedLoopError
	if !errors.As(err, &ue) {
		return err.Error()
	}
	pos, found := bf.Locate(src, ue.Index)
	if !found {
		return err.Error()
	}
	return fmt.Sprintf("%v (line %d, column %d)\n%s", err, pos.Line, pos.Column+1, Caret(pos.Text, pos.Column))
}
