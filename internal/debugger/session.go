package debugger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"bfctl/internal/bf"
)

const helpText = `  n  execute one instruction
  s  skip the instruction
  e  run the rest of the program without debugging
  w  run the rest at speed, printing every step
  o  print the program output so far
  q  quit and show the tape`

// verbs are the long spellings accepted besides single-key commands.
var verbs = []struct {
	word   string
	action Action
}{
	{"next", Step}, {"step", Step},
	{"skip", Skip},
	{"exec", Run}, {"run", Run}, {"continue", Run},
	{"watch", Watch},
	{"output", View}, {"view", View},
	{"quit", Quit}, {"exit", Quit},
}

var keys = map[byte]Action{'n': Step, 's': Skip, 'e': Run, 'w': Watch, 'o': View, 'q': Quit}

// ParseAction maps an operator line to an action. Single keys match exactly.
// Longer words match a verb exactly or as a prefix; a prefix shared by verbs
// of different actions is rejected.
func ParseAction(line string) (Action, bool) {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return 0, false
	}
	if len(line) == 1 {
		a, ok := keys[line[0]]
		return a, ok
	}
	var (
		found   Action
		matched bool
	)
	for _, v := range verbs {
		if v.word == line {
			return v.action, true
		}
		if !strings.HasPrefix(v.word, line) {
			continue
		}
		if matched && found != v.action {
			return 0, false
		}
		found, matched = v.action, true
	}
	return found, matched
}

func readLine(br *bufio.Reader) (string, error) {
	s, err := br.ReadString('\n')
	if err != nil && s == "" {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// StepDebug runs src under operator control, reading commands from in.
// It returns when the program finishes or the operator quits. End of input
// counts as quit.
func StepDebug(ctx context.Context, src, input string, in io.Reader, out io.Writer, opts ...Option) error {
	prog, err := bf.Compile(src)
	if err != nil {
		return err
	}
	br := bufio.NewReader(in)
	prompter := bf.PrompterFunc(func(p string) (string, error) {
		fmt.Fprint(out, p)
		return readLine(br)
	})
	engineOpts := append([]bf.Option{bf.WithInput(input), bf.WithInputPolicy(bf.Prompt(prompter))}, engineOptions(opts)...)
	e := bf.New(prog, engineOpts...)
	trace := bf.TraceFunc(func(r bf.TraceRecord) {
		fmt.Fprintf(out, "PBF: %s\n", r)
		fmt.Fprintln(out, statusLine(fmt.Sprint(r.PC), e.Snapshot()))
	})
	ctl := New(e, append([]Option{WithTrace(trace)}, opts...)...)

	fmt.Fprintln(out, statusLine("ini", e.Snapshot()))
	for !e.Done() {
		fmt.Fprintln(out, Caret(prog.Source, e.PC()))
		fmt.Fprint(out, "DBG> ")
		line, err := readLine(br)
		if errors.Is(err, io.EOF) {
			line = "q"
		} else if err != nil {
			return err
		}
		switch strings.TrimSpace(line) {
		case "h", "?", "help":
			fmt.Fprintln(out, helpText)
			continue
		}
		a, ok := ParseAction(line)
		if !ok {
			fmt.Fprintf(out, "unknown command %q (h for help)\n", line)
			continue
		}
		rep, err := ctl.Apply(ctx, a)
		if err != nil {
			_ = bf.Flush(out, e.Output())
			return err
		}
		if a == View {
			_ = bf.Flush(out, rep.Output)
		}
		if rep.Quit {
			fmt.Fprintf(out, "PBF: halted a=%s\n", FormatTape(rep.Snapshot))
			break
		}
	}
	return bf.Flush(out, e.Output())
}
