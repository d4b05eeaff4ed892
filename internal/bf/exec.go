package bf

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

type execConfig struct {
	stdout   io.Writer
	prompter Prompter
	policy   InputPolicy
	engine   []Option
}

// ExecOption configures Execute and ExecuteFile.
type ExecOption func(*execConfig)

// WithStdout redirects the flushed output line.
func WithStdout(w io.Writer) ExecOption { return func(c *execConfig) { c.stdout = w } }

// WithPrompter replaces the stdin line reader used in interactive mode.
func WithPrompter(p Prompter) ExecOption { return func(c *execConfig) { c.prompter = p } }

// WithEOF sets the unattended input policy (FailFast when unset).
func WithEOF(p InputPolicy) ExecOption { return func(c *execConfig) { c.policy = p } }

// WithEngine passes options through to New.
func WithEngine(opts ...Option) ExecOption {
	return func(c *execConfig) { c.engine = append(c.engine, opts...) }
}

// Execute compiles src, runs it to completion, flushes the output and
// returns the final tape. Interactive runs prompt for more input on exhaustion.
// Output produced before a run error is still flushed.
func Execute(src, input string, interactive bool, opts ...ExecOption) (Snapshot, error) {
	return ExecuteContext(context.Background(), src, input, interactive, opts...)
}

// ExecuteContext is Execute that stops between steps once ctx is done.
func ExecuteContext(ctx context.Context, src, input string, interactive bool, opts ...ExecOption) (Snapshot, error) {
	cfg := execConfig{stdout: os.Stdout, policy: FailFast()}
	for _, o := range opts {
		o(&cfg)
	}
	prog, err := Compile(src)
	if err != nil {
		return Snapshot{}, err
	}
	policy := cfg.policy
	if interactive {
		p := cfg.prompter
		if p == nil {
			p = LinePrompter(os.Stdin, cfg.stdout)
		}
		policy = Prompt(p)
	}
	engineOpts := append([]Option{WithInput(input), WithInputPolicy(policy)}, cfg.engine...)
	e := New(prog, engineOpts...)
	if err := e.RunToContext(ctx, cfg.stdout); err != nil {
		return e.Snapshot(), err
	}
	return e.Snapshot(), nil
}

// ExecuteFile reads path and hands its text to Execute.
func ExecuteFile(path, input string, interactive bool, opts ...ExecOption) (Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read program: %w", err)
	}
	return Execute(string(b), input, interactive, opts...)
}

// LinePrompter reads newline-terminated lines from r, echoing the prompt to w.
func LinePrompter(r io.Reader, w io.Writer) Prompter {
	br := bufio.NewReader(r)
	return PrompterFunc(func(prompt string) (string, error) {
		fmt.Fprint(w, prompt)
		s, err := br.ReadString('\n')
		if err != nil && s == "" {
			return "", err
		}
		return strings.TrimRight(s, "\r\n"), nil
	})
}
