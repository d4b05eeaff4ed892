package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"bfctl/internal/bf"
	"bfctl/internal/debugger"
	"bfctl/internal/system"
)

// devDebounce coalesces the burst of events an editor save produces.
const devDebounce = 100 * time.Millisecond

// Dev runs the program at path once, then again after every change to the
// file, until ctx is cancelled. Run errors are logged and never stop the loop.
// Cancelling ctx also interrupts a run in progress. opts reach every engine.
func Dev(ctx context.Context, path, input string, out io.Writer, opts ...bf.Option) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// watch the directory: editors often replace the file instead of writing it
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	devRun(ctx, abs, input, out, opts)
	system.Logger.Info("watching for changes", "file", path)

	timer := time.NewTimer(devDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || (!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create)) {
				continue
			}
			timer.Reset(devDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			system.Logger.Warn("watcher error", "err", err)
		case <-timer.C:
			devRun(ctx, abs, input, out, opts)
		}
	}
}

func devRun(ctx context.Context, path, input string, out io.Writer, opts []bf.Option) {
	b, err := os.ReadFile(path)
	if err != nil {
		system.Logger.Error("read program", "err", err)
		return
	}
	src := string(b)
	start := time.Now()
	snap, err := bf.ExecuteContext(ctx, src, input, false,
		bf.WithStdout(out), bf.WithEOF(bf.DefaultValue(0)), bf.WithEngine(opts...))
	if ctx.Err() != nil {
		system.Logger.Info("run interrupted", "took", time.Since(start).Round(time.Millisecond))
		return
	}
	if err != nil {
		system.Logger.Error("run failed", "err", debugger.Describe(src, err))
		return
	}
	system.Logger.Info("run finished", "cells", len(snap.Cells), "took", time.Since(start).Round(time.Microsecond))
}
