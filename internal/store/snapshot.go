package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bfctl/internal/bf"
)

// Cell is one materialised tape cell.
type Cell struct {
	Address int  `json:"address"`
	Value   byte `json:"value"`
}

// TapeFile is the on-disk form of a tape snapshot. Cells are sorted by address.
type TapeFile struct {
	Pointer int    `json:"pointer"`
	Cells   []Cell `json:"cells"`
}

// Encode converts a snapshot into its file form.
func Encode(s bf.Snapshot) TapeFile {
	addrs := s.Addresses()
	tf := TapeFile{Pointer: s.Pointer, Cells: make([]Cell, 0, len(addrs))}
	for _, a := range addrs {
		tf.Cells = append(tf.Cells, Cell{Address: a, Value: s.Cells[a]})
	}
	return tf
}

// Decode converts a file form back into a snapshot. The pointer must
// reference a materialised cell.
func (tf TapeFile) Decode() (bf.Snapshot, error) {
	s := bf.Snapshot{Cells: make(map[int]byte, len(tf.Cells)), Pointer: tf.Pointer}
	for _, c := range tf.Cells {
		if _, dup := s.Cells[c.Address]; dup {
			return bf.Snapshot{}, fmt.Errorf("duplicate cell a[%d]", c.Address)
		}
		s.Cells[c.Address] = c.Value
	}
	if _, ok := s.Cells[tf.Pointer]; !ok {
		return bf.Snapshot{}, fmt.Errorf("pointer %d does not reference a stored cell", tf.Pointer)
	}
	return s, nil
}

// SaveSnapshot writes s to path as indented JSON, creating parent dirs.
func SaveSnapshot(path string, s bf.Snapshot) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(Encode(s), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (bf.Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return bf.Snapshot{}, err
	}
	var tf TapeFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return bf.Snapshot{}, fmt.Errorf("parse %s: %w", path, err)
	}
	s, err := tf.Decode()
	if err != nil {
		return bf.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
