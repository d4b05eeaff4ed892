package debugger

import (
	"context"
	"errors"
	"testing"
	"time"

	"bfctl/internal/bf"
)

func newController(t *testing.T, src, input string, opts ...Option) *Controller {
	t.Helper()
	prog, err := bf.Compile(src)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	return New(bf.New(prog, bf.WithInput(input)), opts...)
}

func TestController_StepN(t *testing.T) {
	ctx := context.Background()
	c := newController(t, "+.+.>+.", "")
	if c.Mode() != Ready {
		t.Fatalf("expected Ready, got %s", c.Mode())
	}
	var rep Report
	var err error
	for n := 1; n <= 4; n++ {
		rep, err = c.Apply(ctx, Step)
		if err != nil {
			t.Fatalf("Apply error: %v", err)
		}
		if rep.PC != n || rep.Mode != Paused {
			t.Fatalf("after %d steps: pc=%d mode=%s", n, rep.PC, rep.Mode)
		}
	}
	if len(rep.Output) != 2 || rep.Output[0] != 1 || rep.Output[1] != 2 {
		t.Fatalf("unexpected output %v", rep.Output)
	}
}

func TestController_SkipHasNoEffect(t *testing.T) {
	ctx := context.Background()
	c := newController(t, "+++", "")
	if _, err := c.Apply(ctx, Skip); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	rep, err := c.Apply(ctx, Run)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if rep.Value != 2 || rep.Mode != Halted || !rep.Done {
		t.Fatalf("unexpected report %+v", rep)
	}
	if _, err := c.Apply(ctx, Step); !errors.Is(err, ErrHalted) {
		t.Fatalf("expected ErrHalted, got %v", err)
	}
}

func TestController_ViewDoesNotHalt(t *testing.T) {
	ctx := context.Background()
	c := newController(t, "+.+.", "")
	_, _ = c.Apply(ctx, Step)
	_, _ = c.Apply(ctx, Step)
	rep, err := c.Apply(ctx, View)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if rep.Mode != Paused || len(rep.Output) != 1 {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestController_QuitIsGraceful(t *testing.T) {
	ctx := context.Background()
	c := newController(t, "+>++>+++", "")
	for i := 0; i < 3; i++ {
		_, _ = c.Apply(ctx, Step)
	}
	rep, err := c.Apply(ctx, Quit)
	if err != nil {
		t.Fatalf("quit should not be an error: %v", err)
	}
	if !rep.Quit || rep.Mode != Halted || rep.Done {
		t.Fatalf("unexpected report %+v", rep)
	}
	if rep.Snapshot.Cells[0] != 1 || rep.Snapshot.Cells[1] != 1 || rep.Snapshot.Pointer != 1 {
		t.Fatalf("unexpected tape %v", rep.Snapshot)
	}
}

func TestController_WatchTracesAndPaces(t *testing.T) {
	var c bf.Collector
	sleeps := 0
	ctl := newController(t, "++>+", "",
		WithTrace(&c),
		WithDelay(time.Second),
		WithSleeper(func(ctx context.Context, d time.Duration) error {
			if d != time.Second {
				t.Fatalf("unexpected delay %s", d)
			}
			sleeps++
			return nil
		}))
	rep, err := ctl.Apply(context.Background(), Watch)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if !rep.Done || rep.Mode != Halted {
		t.Fatalf("watch should run to the end: %+v", rep)
	}
	if len(c.Records) != 4 || sleeps != 3 {
		t.Fatalf("expected 4 records and 3 pauses, got %d and %d", len(c.Records), sleeps)
	}
	if c.Records[3].Pointer != 1 || c.Records[3].Value != 1 {
		t.Fatalf("unexpected last record %+v", c.Records[3])
	}
}

func TestController_WatchCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctl := newController(t, "+[]", "", WithSleeper(func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}))
	_, err := ctl.Apply(ctx, Watch)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestController_RunWithoutTrace(t *testing.T) {
	var c bf.Collector
	ctl := newController(t, "+++", "", WithTrace(&c))
	if _, err := ctl.Apply(context.Background(), Run); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if len(c.Records) != 0 {
		t.Fatalf("run should not trace, got %d records", len(c.Records))
	}
}

func TestController_InputErrorHalts(t *testing.T) {
	ctl := newController(t, ",", "")
	_, err := ctl.Apply(context.Background(), Step)
	if !errors.Is(err, bf.ErrInputExhausted) {
		t.Fatalf("expected ErrInputExhausted, got %v", err)
	}
	if ctl.Mode() != Halted {
		t.Fatalf("expected Halted, got %s", ctl.Mode())
	}
}

func TestController_AdvanceInSlices(t *testing.T) {
	ctl := newController(t, "++++++++[-]", "")
	ctx := context.Background()
	rep, err := ctl.Advance(ctx, 5)
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if rep.Mode != RunningToEnd || rep.Steps != 5 {
		t.Fatalf("unexpected report %+v", rep)
	}
	for !rep.Done {
		if rep, err = ctl.Advance(ctx, 5); err != nil {
			t.Fatalf("Advance error: %v", err)
		}
	}
	if rep.Mode != Halted || rep.Value != 0 {
		t.Fatalf("unexpected final report %+v", rep)
	}
}

func TestController_AwaitingInputStaysPaused(t *testing.T) {
	prog, err := bf.Compile(",.")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	e := bf.New(prog, bf.WithInputPolicy(bf.Suspend()))
	ctl := New(e)
	rep, err := ctl.Apply(context.Background(), Step)
	if !errors.Is(err, bf.ErrAwaitingInput) || !rep.NeedInput || rep.Mode != Paused {
		t.Fatalf("expected paused input request, got %+v %v", rep, err)
	}
	e.Feed("!")
	rep, err = ctl.Apply(context.Background(), Run)
	if err != nil || bf.Text(rep.Output) != "!" {
		t.Fatalf("unexpected result %+v %v", rep, err)
	}
}
