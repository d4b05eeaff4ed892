package bf

import "strings"

// Command is one of the eight tape instructions.
type Command byte

const (
	Inc Command = iota
	Dec
	MoveRight
	MoveLeft
	Output
	Input
	LoopOpen
	LoopClose
)

// Alphabet lists every glyph the cleaner keeps.
const Alphabet = "+-><.,[]"

func (c Command) String() string {
	if int(c) < len(Alphabet) {
		return string(Alphabet[c])
	}
	return "?"
}

// Name is the long mnemonic used in trace output.
func (c Command) Name() string {
	switch c {
	case Inc:
		return "inc"
	case Dec:
		return "dec"
	case MoveRight:
		return "shr"
	case MoveLeft:
		return "shl"
	case Output:
		return "out"
	case Input:
		return "inp"
	case LoopOpen:
		return "lbr"
	case LoopClose:
		return "rbr"
	}
	return "unknown"
}

// commandOf maps a glyph to its command. ok is false for any other byte.
func commandOf(b byte) (Command, bool) {
	i := strings.IndexByte(Alphabet, b)
	if i < 0 {
		return 0, false
	}
	return Command(i), true
}

// Clean drops everything outside the command alphabet, keeping order.
func Clean(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); i++ {
		if _, ok := commandOf(src[i]); ok {
			b.WriteByte(src[i])
		}
	}
	return b.String()
}

// Parse cleans src and returns the command stream.
func Parse(src string) []Command {
	cmds := make([]Command, 0, len(src))
	for i := 0; i < len(src); i++ {
		if c, ok := commandOf(src[i]); ok {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

// Format renders a command stream back to its glyphs.
func Format(cmds []Command) string {
	var b strings.Builder
	b.Grow(len(cmds))
	for _, c := range cmds {
		b.WriteString(c.String())
	}
	return b.String()
}
