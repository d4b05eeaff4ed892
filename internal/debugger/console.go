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

// Console reads one program per line and runs each with no input.
// exit, quit or q leaves the loop. Cancelling ctx stops a running line
// and ends the loop.
func Console(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) error {
	engineOpts := engineOptions(opts)
	br := bufio.NewReader(in)
	for ctx.Err() == nil {
		fmt.Fprint(out, "BF> ")
		line, err := readLine(br)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "exit", "quit", "q":
			fmt.Fprintln(out, "Have a good day!")
			return nil
		case "":
			continue
		}
		_, err = bf.ExecuteContext(ctx, line, "", false, bf.WithStdout(out), bf.WithEngine(engineOpts...))
		if ctx.Err() != nil {
			fmt.Fprintln(out, "interrupted")
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", Describe(line, err))
		}
	}
	return nil
}
