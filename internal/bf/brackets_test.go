package bf

import (
	"errors"
	"testing"
)

func TestClean_KeepsOnlyCommands(t *testing.T) {
	got := Clean("hello +[ world ]-, . <> # done")
	if got != "+[]-,.<>" {
		t.Fatalf("unexpected cleaned code: %q", got)
	}
	if Clean("") != "" || Clean("no commands here") != "" {
		t.Fatalf("expected empty result for command-free text")
	}
	if Format(Parse("a+b-c")) != "+-" {
		t.Fatalf("Parse/Format round trip lost commands")
	}
}

func TestBuildBracketMap_Symmetric(t *testing.T) {
	srcs := []string{"[]", "[[]]", "+[>[-]<[->+<]]", "[][][[[]]]", ",[>,]<[.<]"}
	for _, src := range srcs {
		cmds := Parse(src)
		bm, err := BuildBracketMap(cmds)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", src, err)
		}
		loops := 0
		for i, c := range cmds {
			if c != LoopOpen && c != LoopClose {
				if _, ok := bm[i]; ok {
					t.Fatalf("%s: non-loop index %d mapped", src, i)
				}
				continue
			}
			loops++
			j, ok := bm[i]
			if !ok {
				t.Fatalf("%s: loop index %d not mapped", src, i)
			}
			if bm[j] != i {
				t.Fatalf("%s: map not symmetric at %d -> %d -> %d", src, i, j, bm[j])
			}
			if c == LoopOpen && (cmds[j] != LoopClose || j <= i) {
				t.Fatalf("%s: open %d paired with %d", src, i, j)
			}
		}
		if len(bm) != loops {
			t.Fatalf("%s: map has %d entries, want %d", src, len(bm), loops)
		}
	}
}

func TestBuildBracketMap_Nested(t *testing.T) {
	bm, err := BuildBracketMap(Parse("[[]]"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bm[0] != 3 || bm[1] != 2 || bm.Loops() != 2 {
		t.Fatalf("unexpected map: %v", bm)
	}
}

func TestBuildBracketMap_Unbalanced(t *testing.T) {
	cases := []struct {
		src   string
		index int
		fault LoopFault
	}{
		{"]", 0, StrayClose},
		{"+[]]", 3, StrayClose},
		{"[", 0, UnmatchedOpen},
		{"+[[]", 1, UnmatchedOpen},
		{"[+[-]", 0, UnmatchedOpen},
	}
	for _, c := range cases {
		_, err := BuildBracketMap(Parse(c.src))
		if !errors.Is(err, ErrUnbalancedLoop) {
			t.Fatalf("%s: expected ErrUnbalancedLoop, got %v", c.src, err)
		}
		var ue *UnbalancedLoopError
		if !errors.As(err, &ue) {
			t.Fatalf("%s: expected *UnbalancedLoopError, got %T", c.src, err)
		}
		if ue.Index != c.index || ue.Fault != c.fault {
			t.Fatalf("%s: got %s at %d, want %s at %d", c.src, ue.Fault, ue.Index, c.fault, c.index)
		}
	}
}

func TestCompile_UnbalancedNeverRuns(t *testing.T) {
	if _, err := Compile("+++.]"); err == nil {
		t.Fatalf("expected compile error")
	}
	var out []byte
	_, err := Execute("+.[", "", false, WithStdout(writerFunc(func(p []byte) { out = append(out, p...) })))
	if !errors.Is(err, ErrUnbalancedLoop) {
		t.Fatalf("expected ErrUnbalancedLoop, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("unbalanced program produced output: %q", out)
	}
}

type writerFunc func([]byte)

func (f writerFunc) Write(p []byte) (int, error) {
	f(p)
	return len(p), nil
}
