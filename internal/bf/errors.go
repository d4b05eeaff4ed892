package bf

import (
	"errors"
	"fmt"
)

var (
	ErrUnbalancedLoop = errors.New("unbalanced loop")
	ErrInputExhausted = errors.New("input exhausted")
	ErrTapeBounds     = errors.New("tape bounds exceeded")
	// ErrAwaitingInput is returned under the Suspend policy. The engine is
	// left before the Input command; Feed it and step again.
	ErrAwaitingInput = errors.New("awaiting input")
)

// LoopFault tells which side of a bracket pair is missing.
type LoopFault int

const (
	StrayClose LoopFault = iota
	UnmatchedOpen
)

func (f LoopFault) String() string {
	if f == StrayClose {
		return "stray ']'"
	}
	return "unmatched '['"
}

// UnbalancedLoopError reports the first offending bracket of a program.
type UnbalancedLoopError struct {
	Index int
	Fault LoopFault
}

func (e *UnbalancedLoopError) Error() string {
	return fmt.Sprintf("unbalanced loop: %s at command %d", e.Fault, e.Index)
}

func (e *UnbalancedLoopError) Unwrap() error { return ErrUnbalancedLoop }

// InputExhaustedError is returned by the fail-fast input policy.
type InputExhaustedError struct {
	Index int
}

func (e *InputExhaustedError) Error() string {
	return fmt.Sprintf("input exhausted at command %d", e.Index)
}

func (e *InputExhaustedError) Unwrap() error { return ErrInputExhausted }

// TapeBoundsError is returned when the pointer leaves [-Limit, Limit].
type TapeBoundsError struct {
	Address int
	Limit   int
}

func (e *TapeBoundsError) Error() string {
	return fmt.Sprintf("tape bounds exceeded: address %d outside ±%d", e.Address, e.Limit)
}

func (e *TapeBoundsError) Unwrap() error { return ErrTapeBounds }
