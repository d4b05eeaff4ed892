package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bfctl/internal/bf"
)

func TestSnapshotFile(t *testing.T) {
	tape := bf.NewTape()
	tape.Write(0, 7)
	_ = tape.Move(-2)
	tape.Write(-2, 300)
	snap := tape.Snapshot()

	p := filepath.Join(t.TempDir(), "dumps", "tape.json")
	if err := SaveSnapshot(p, snap); err != nil {
		t.Fatalf("SaveSnapshot error: %v", err)
	}
	b, _ := os.ReadFile(p)
	if !strings.Contains(string(b), `"pointer": -2`) {
		t.Fatalf("unexpected file body:\n%s", b)
	}
	if strings.Index(string(b), `"address": -2`) > strings.Index(string(b), `"address": 0`) {
		t.Fatalf("cells should be sorted by address:\n%s", b)
	}

	got, err := LoadSnapshot(p)
	if err != nil {
		t.Fatalf("LoadSnapshot error: %v", err)
	}
	if got.Pointer != -2 || len(got.Cells) != 2 || got.Cells[0] != 7 || got.Cells[-2] != 44 {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestLoadSnapshot_DanglingPointer(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte(`{"pointer":3,"cells":[{"address":0,"value":1}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(p); err == nil {
		t.Fatalf("expected error for dangling pointer")
	}
}

func TestSaveSnapshot_EmptyPath(t *testing.T) {
	if err := SaveSnapshot("  ", bf.NewTape().Snapshot()); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
