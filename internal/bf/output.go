package bf

import (
	"io"
	"strings"
)

// Display renders output bytes as Latin-1 text with NUL shown as '.'.
// The buffer itself is never modified.
func Display(out []byte) string {
	var b strings.Builder
	b.Grow(len(out))
	for _, c := range out {
		if c == 0 {
			b.WriteByte('.')
			continue
		}
		b.WriteRune(rune(c))
	}
	return b.String()
}

// Text decodes output bytes as Latin-1 without substitution.
func Text(out []byte) string {
	r := make([]rune, len(out))
	for i, c := range out {
		r[i] = rune(c)
	}
	return string(r)
}

// Flush writes out as a single newline-terminated line.
func Flush(w io.Writer, out []byte) error {
	_, err := io.WriteString(w, Display(out)+"\n")
	return err
}
