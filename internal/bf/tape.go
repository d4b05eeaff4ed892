package bf

import "sort"

// DefaultTapeLimit bounds pointer excursions in each direction.
const DefaultTapeLimit = 1 << 24

// Tape is a sparse, two-way unbounded row of 8-bit cells.
type Tape struct {
	cells   map[int]byte
	pointer int
	// Limit caps |pointer|; zero disables the check.
	Limit int
}

// NewTape returns a tape holding only address 0.
func NewTape() *Tape {
	return &Tape{cells: map[int]byte{0: 0}, Limit: DefaultTapeLimit}
}

// Read returns the value at addr, zero if never touched.
func (t *Tape) Read(addr int) byte { return t.cells[addr] }

// Write stores v mod 256 at addr.
func (t *Tape) Write(addr, v int) {
	v %= 256
	if v < 0 {
		v += 256
	}
	t.cells[addr] = byte(v)
}

// Move shifts the pointer by delta and materialises the new cell.
func (t *Tape) Move(delta int) error {
	next := t.pointer + delta
	if t.Limit > 0 && (next > t.Limit || next < -t.Limit) {
		return &TapeBoundsError{Address: next, Limit: t.Limit}
	}
	t.pointer = next
	if _, ok := t.cells[next]; !ok {
		t.cells[next] = 0
	}
	return nil
}

// Pointer is the current address.
func (t *Tape) Pointer() int { return t.pointer }

// Has reports whether addr has been materialised.
func (t *Tape) Has(addr int) bool {
	_, ok := t.cells[addr]
	return ok
}

// Len is the number of materialised cells.
func (t *Tape) Len() int { return len(t.cells) }

// Snapshot copies the tape.
func (t *Tape) Snapshot() Snapshot {
	cells := make(map[int]byte, len(t.cells))
	for k, v := range t.cells {
		cells[k] = v
	}
	return Snapshot{Cells: cells, Pointer: t.pointer}
}

// Snapshot is a detached copy of a tape.
type Snapshot struct {
	Cells   map[int]byte
	Pointer int
}

// Addresses returns the materialised addresses in ascending order.
func (s Snapshot) Addresses() []int {
	out := make([]int, 0, len(s.Cells))
	for k := range s.Cells {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Values returns cell values ordered by address.
func (s Snapshot) Values() []byte {
	addrs := s.Addresses()
	out := make([]byte, len(addrs))
	for i, a := range addrs {
		out[i] = s.Cells[a]
	}
	return out
}

// Restore builds a live tape from a snapshot.
func (s Snapshot) Restore() *Tape {
	t := NewTape()
	for k, v := range s.Cells {
		t.cells[k] = v
	}
	t.pointer = s.Pointer
	if _, ok := t.cells[t.pointer]; !ok {
		t.cells[t.pointer] = 0
	}
	return t
}
