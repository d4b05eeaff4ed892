package bf

import "strings"

// Position places a command inside the raw source text.
type Position struct {
	Offset int    // byte offset in the source
	Line   int    // 1-based line number
	Column int    // byte offset within Text
	Text   string // the full source line, without its newline
}

// Locate finds the index-th command of src, counting only alphabet glyphs.
func Locate(src string, index int) (Position, bool) {
	n := 0
	line, lineStart := 1, 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
			continue
		}
		if _, ok := commandOf(src[i]); !ok {
			continue
		}
		if n == index {
			end := strings.IndexByte(src[lineStart:], '\n')
			text := src[lineStart:]
			if end >= 0 {
				text = src[lineStart : lineStart+end]
			}
			return Position{Offset: i, Line: line, Column: i - lineStart, Text: strings.TrimRight(text, "\r")}, true
		}
		n++
	}
	return Position{}, false
}
