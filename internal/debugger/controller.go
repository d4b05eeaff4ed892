package debugger

import (
	"context"
	"errors"
	"time"

	"bfctl/internal/bf"
)

// RunMode is the controller's lifecycle state.
type RunMode int

const (
	Ready RunMode = iota
	Paused
	RunningToEnd
	Halted
)

func (m RunMode) String() string {
	switch m {
	case Ready:
		return "ready"
	case Paused:
		return "paused"
	case RunningToEnd:
		return "running"
	default:
		return "halted"
	}
}

// Action is one operator request.
type Action int

const (
	Step Action = iota
	Skip
	Run
	Watch
	View
	Quit
)

func (a Action) String() string {
	switch a {
	case Step:
		return "step"
	case Skip:
		return "skip"
	case Run:
		return "run"
	case Watch:
		return "watch"
	case View:
		return "output"
	default:
		return "quit"
	}
}

// ErrHalted is returned for execution requests after the run has ended.
var ErrHalted = errors.New("debugger: run already halted")

// Report is the controller state after an Apply.
type Report struct {
	Action   Action
	Mode     RunMode
	PC       int
	Pointer  int
	Value    byte
	Steps    int
	Output   []byte
	Snapshot bf.Snapshot
	// Quit is set when the operator abandoned the run; it is not an error.
	Quit bool
	Done bool
	// NeedInput is set when a Suspend-policy engine stopped at an Input command.
	NeedInput bool
}

// Sleeper pauses between watched steps; it returns early with ctx.Err().
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Controller drives one engine through operator actions.
type Controller struct {
	e     *bf.Engine
	mode  RunMode
	trace bf.TraceSink
	delay time.Duration
	sleep Sleeper

	engineOpts []bf.Option
}

// Option configures a Controller.
type Option func(*Controller)

// WithTrace emits a record for every stepped or watched instruction.
func WithTrace(s bf.TraceSink) Option { return func(c *Controller) { c.trace = s } }

// WithDelay sets the pause between watched steps.
func WithDelay(d time.Duration) Option { return func(c *Controller) { c.delay = d } }

// WithSleeper replaces the real-time pause, mostly for tests.
func WithSleeper(s Sleeper) Option { return func(c *Controller) { c.sleep = s } }

// WithEngine passes options to engines built by StepDebug and Console.
// New ignores them since its engine already exists.
func WithEngine(opts ...bf.Option) Option {
	return func(c *Controller) { c.engineOpts = append(c.engineOpts, opts...) }
}

// engineOptions collects the WithEngine options from opts.
func engineOptions(opts []Option) []bf.Option {
	var c Controller
	for _, o := range opts {
		o(&c)
	}
	return c.engineOpts
}

// New wraps e. The controller starts in Ready.
func New(e *bf.Engine, opts ...Option) *Controller {
	c := &Controller{e: e, mode: Ready, delay: 100 * time.Millisecond, sleep: sleepContext}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) Mode() RunMode { return c.mode }
func (c *Controller) Engine() *bf.Engine { return c.e }

// Apply performs a single operator action and reports the resulting state.
func (c *Controller) Apply(ctx context.Context, a Action) (Report, error) {
	if c.mode == Halted && a != View && a != Quit {
		return c.report(a), ErrHalted
	}
	if c.mode == Ready {
		c.mode = Paused
	}
	var err error
	switch a {
	case Step:
		err = c.step()
	case Skip:
		c.e.Skip()
	case Run:
		c.mode = RunningToEnd
		err = c.e.RunContext(ctx)
	case Watch:
		c.mode = RunningToEnd
		err = c.watch(ctx)
	case View:
	case Quit:
		c.mode = Halted
		r := c.report(a)
		r.Quit = true
		return r, nil
	}
	return c.settle(a, err)
}

// Advance runs at most n untraced steps and leaves the controller in
// RunningToEnd while instructions remain, so a front end can run a long
// program in slices between redraws.
func (c *Controller) Advance(ctx context.Context, n int) (Report, error) {
	if c.mode == Halted {
		return c.report(Run), ErrHalted
	}
	c.mode = RunningToEnd
	var err error
	for i := 0; i < n && !c.e.Done(); i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		if _, err = c.e.Step(); err != nil {
			break
		}
	}
	if err == nil && !c.e.Done() {
		return c.report(Run), nil
	}
	return c.settle(Run, err)
}

func (c *Controller) settle(a Action, err error) (Report, error) {
	if errors.Is(err, bf.ErrAwaitingInput) {
		c.mode = Paused
		r := c.report(a)
		r.NeedInput = true
		return r, err
	}
	if err != nil || c.e.Done() {
		c.mode = Halted
	} else if c.mode == RunningToEnd {
		c.mode = Paused
	}
	return c.report(a), err
}

func (c *Controller) step() error {
	at := c.e.PC()
	cmd, ok := c.e.Current()
	if !ok {
		return nil
	}
	if _, err := c.e.Step(); err != nil {
		return err
	}
	if c.trace != nil {
		c.trace.Trace(bf.TraceRecord{Step: c.e.Steps(), Command: cmd, PC: at, Pointer: c.e.Pointer(), Value: c.e.Value()})
	}
	return nil
}

func (c *Controller) watch(ctx context.Context) error {
	for !c.e.Done() {
		if err := c.step(); err != nil {
			return err
		}
		if c.e.Done() {
			break
		}
		if err := c.sleep(ctx, c.delay); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) report(a Action) Report {
	return Report{
		Action:   a,
		Mode:     c.mode,
		PC:       c.e.PC(),
		Pointer:  c.e.Pointer(),
		Value:    c.e.Value(),
		Steps:    c.e.Steps(),
		Output:   c.e.Output(),
		Snapshot: c.e.Snapshot(),
		Done:     c.e.Done(),
	}
}
