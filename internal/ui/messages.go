package ui

import "time"

// Bubble Tea messages

// watchTickMsg paces automatic stepping.
type watchTickMsg time.Time

// runSliceMsg asks for the next slice of a run-to-end.
type runSliceMsg struct{}
