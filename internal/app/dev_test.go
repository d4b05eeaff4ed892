package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"bfctl/internal/bf"
)

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func waitFor(t *testing.T, buf *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q, have %q", want, buf.String())
}

func TestDev_RerunsOnWrite(t *testing.T) {
	p := filepath.Join(t.TempDir(), "prog.bf")
	if err := os.WriteFile(p, []byte(",."), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- Dev(ctx, p, "A", out) }()

	waitFor(t, out, "A\n")
	// give the watcher time to register before the edit
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(p, []byte(",+."), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, out, "A\nB\n")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Dev returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Dev did not stop after cancel")
	}
}

func TestDev_CancelInterruptsRun(t *testing.T) {
	p := filepath.Join(t.TempDir(), "loop.bf")
	if err := os.WriteFile(p, []byte(".+[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- Dev(ctx, p, "", out) }()

	// output before the endless loop is flushed when the run is interrupted
	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Dev returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Dev did not stop an endless run after cancel")
	}
	if out.String() != ".\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestDev_EngineOptions(t *testing.T) {
	p := filepath.Join(t.TempDir(), "prog.bf")
	if err := os.WriteFile(p, []byte(">+.>+."), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &syncBuffer{}
	go func() { _ = Dev(ctx, p, "", out, bf.WithTapeLimit(1)) }()
	// the second '>' leaves the tape; output up to it is still flushed
	waitFor(t, out, "\x01\n")
	if strings.Contains(out.String(), "\x01\x01") {
		t.Fatalf("run should stop at the tape limit, got %q", out.String())
	}
}
