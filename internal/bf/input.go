package bf

import "unicode/utf8"

// Prompter asks an operator for a line of text.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(prompt string) (string, error)

func (f PrompterFunc) Prompt(prompt string) (string, error) { return f(prompt) }

// InputPolicy decides what happens when an Input command finds no input left.
// Refill returns text to append to the input cursor, or an error that fails the run.
type InputPolicy interface {
	Refill(index int) (string, error)
}

type failFast struct{}

func (failFast) Refill(index int) (string, error) {
	return "", &InputExhaustedError{Index: index}
}

// FailFast fails the run with an *InputExhaustedError. It is the default.
func FailFast() InputPolicy { return failFast{} }

type defaultValue byte

func (v defaultValue) Refill(int) (string, error) { return string(rune(v)), nil }

// DefaultValue stores v for every read past the end of input.
func DefaultValue(v byte) InputPolicy { return defaultValue(v) }

type suspend struct{}

func (suspend) Refill(int) (string, error) { return "", ErrAwaitingInput }

// Suspend returns ErrAwaitingInput instead of blocking, for callers that
// collect input outside the engine loop.
func Suspend() InputPolicy { return suspend{} }

type prompt struct {
	p      Prompter
	prompt string
}

func (p prompt) Refill(int) (string, error) {
	for {
		line, err := p.p.Prompt(p.prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// Prompt blocks on p until it returns a non-empty line.
func Prompt(p Prompter) InputPolicy { return prompt{p: p, prompt: "> "} }

// ParseEOF maps a config or flag value to a non-interactive policy.
func ParseEOF(s string) (InputPolicy, bool) {
	switch s {
	case "", "fail":
		return FailFast(), true
	case "zero":
		return DefaultValue(0), true
	}
	return nil, false
}

// decodeInput turns input text into characters. Valid UTF-8 decodes to code
// points; any byte that is not part of a valid sequence stands for itself,
// so raw binary input round-trips through ','.
func decodeInput(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			out = append(out, rune(s[i]))
			i++
			continue
		}
		out = append(out, r)
		i += size
	}
	return out
}
