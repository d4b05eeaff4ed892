package bf

import (
	"context"
	"fmt"
	"io"
)

// StepResult tells whether more instructions remain.
type StepResult int

const (
	Continue StepResult = iota
	Finished
)

func (r StepResult) String() string {
	if r == Finished {
		return "finished"
	}
	return "continue"
}

// Engine executes one program against its own tape and output buffer.
type Engine struct {
	prog   *Program
	tape   *Tape
	pc     int
	steps  int
	input  []rune
	policy InputPolicy
	out    []byte
	trace  TraceSink

	limit    int
	limitSet bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithInput sets the initial input cursor.
func WithInput(s string) Option { return func(e *Engine) { e.input = decodeInput(s) } }

// WithInputPolicy selects the behaviour on input exhaustion.
func WithInputPolicy(p InputPolicy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// WithTrace sends a record per executed step to s.
func WithTrace(s TraceSink) Option { return func(e *Engine) { e.trace = s } }

// WithTapeLimit overrides DefaultTapeLimit; zero means unbounded.
// It applies to the final tape, including one given by WithTape.
func WithTapeLimit(n int) Option {
	return func(e *Engine) { e.limit, e.limitSet = n, true }
}

// WithTape runs against a preloaded tape.
func WithTape(t *Tape) Option {
	return func(e *Engine) {
		if t != nil {
			e.tape = t
		}
	}
}

// New prepares prog for execution from pc 0.
func New(prog *Program, opts ...Option) *Engine {
	e := &Engine{prog: prog, tape: NewTape(), policy: FailFast()}
	for _, o := range opts {
		o(e)
	}
	if e.limitSet {
		e.tape.Limit = e.limit
	}
	return e
}

// dispatch holds one transition per command, indexed by Command.
var dispatch = [...]func(*Engine) error{
	Inc: func(e *Engine) error {
		e.tape.Write(e.tape.pointer, int(e.tape.Read(e.tape.pointer))+1)
		return nil
	},
	Dec: func(e *Engine) error {
		e.tape.Write(e.tape.pointer, int(e.tape.Read(e.tape.pointer))-1)
		return nil
	},
	MoveRight: func(e *Engine) error { return e.tape.Move(1) },
	MoveLeft:  func(e *Engine) error { return e.tape.Move(-1) },
	Output: func(e *Engine) error {
		e.out = append(e.out, e.tape.Read(e.tape.pointer))
		return nil
	},
	Input: func(e *Engine) error {
		if len(e.input) == 0 {
			more, err := e.policy.Refill(e.pc)
			if err != nil {
				return err
			}
			e.input = append(e.input, decodeInput(more)...)
			if len(e.input) == 0 {
				return &InputExhaustedError{Index: e.pc}
			}
		}
		c := e.input[0]
		e.input = e.input[1:]
		e.tape.Write(e.tape.pointer, int(c))
		return nil
	},
	LoopOpen: func(e *Engine) error {
		if e.tape.Read(e.tape.pointer) == 0 {
			e.pc = e.prog.Brackets[e.pc]
		}
		return nil
	},
	LoopClose: func(e *Engine) error {
		if e.tape.Read(e.tape.pointer) != 0 {
			e.pc = e.prog.Brackets[e.pc]
		}
		return nil
	},
}

// Step executes the command at pc, then advances pc by one.
// Loop jumps land on the partner bracket so the advance moves past it.
func (e *Engine) Step() (StepResult, error) {
	if e.Done() {
		return Finished, nil
	}
	at := e.pc
	cmd := e.prog.Commands[at]
	if err := dispatch[cmd](e); err != nil {
		return Continue, fmt.Errorf("command %d (%s): %w", at, cmd, err)
	}
	e.pc++
	e.steps++
	if e.trace != nil {
		e.trace.Trace(TraceRecord{Step: e.steps, Command: cmd, PC: at, Pointer: e.tape.pointer, Value: e.Value()})
	}
	if e.Done() {
		return Finished, nil
	}
	return Continue, nil
}

// Skip advances pc without executing anything.
func (e *Engine) Skip() StepResult {
	if !e.Done() {
		e.pc++
	}
	if e.Done() {
		return Finished
	}
	return Continue
}

// Run steps until the program finishes or fails.
func (e *Engine) Run() error { return e.RunContext(context.Background()) }

// RunContext is Run with cooperative cancellation between steps.
func (e *Engine) RunContext(ctx context.Context) error {
	for !e.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunTo runs to completion and flushes the output to w once, at the end.
// Output produced before a failure is flushed as well.
func (e *Engine) RunTo(w io.Writer) error { return e.RunToContext(context.Background(), w) }

// RunToContext is RunTo with cooperative cancellation between steps.
func (e *Engine) RunToContext(ctx context.Context, w io.Writer) error {
	runErr := e.RunContext(ctx)
	if err := Flush(w, e.out); err != nil && runErr == nil {
		return err
	}
	return runErr
}

// Feed appends s to the input cursor.
func (e *Engine) Feed(s string) { e.input = append(e.input, decodeInput(s)...) }

// Done reports whether pc has run off the end of the program.
func (e *Engine) Done() bool { return e.pc >= len(e.prog.Commands) }

// Output returns a copy of the bytes produced so far.
func (e *Engine) Output() []byte {
	out := make([]byte, len(e.out))
	copy(out, e.out)
	return out
}

func (e *Engine) PC() int { return e.pc }
func (e *Engine) Steps() int { return e.steps }
func (e *Engine) Pointer() int { return e.tape.pointer }
func (e *Engine) Value() byte { return e.tape.Read(e.tape.pointer) }
func (e *Engine) Program() *Program { return e.prog }
func (e *Engine) Snapshot() Snapshot { return e.tape.Snapshot() }
func (e *Engine) PendingInput() string { return string(e.input) }

// Current returns the command at pc; ok is false once finished.
func (e *Engine) Current() (Command, bool) {
	if e.Done() {
		return 0, false
	}
	return e.prog.Commands[e.pc], true
}
