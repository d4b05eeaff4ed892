package bf

import (
	"fmt"

	clog "github.com/charmbracelet/log"
)

// TraceRecord describes one executed command.
type TraceRecord struct {
	Step    int     `json:"step"`
	Command Command `json:"command"`
	PC      int     `json:"pc"`
	Pointer int     `json:"pointer"`
	Value   byte    `json:"value"`
}

func (r TraceRecord) String() string {
	switch r.Command {
	case Inc, Dec:
		return fmt.Sprintf("%3d |%s| %s a[%d] = %d", r.PC, r.Command, r.Command.Name(), r.Pointer, r.Value)
	case MoveRight:
		return fmt.Sprintf("%3d |%s| mov +1 to a[%d]", r.PC, r.Command, r.Pointer)
	case MoveLeft:
		return fmt.Sprintf("%3d |%s| mov -1 to a[%d]", r.PC, r.Command, r.Pointer)
	case Output:
		return fmt.Sprintf("%3d |%s| output %d", r.PC, r.Command, r.Value)
	case Input:
		return fmt.Sprintf("%3d |%s| input %d -> a[%d]", r.PC, r.Command, r.Value, r.Pointer)
	case LoopOpen:
		return fmt.Sprintf("%3d |%s| start loop at a[%d]", r.PC, r.Command, r.Pointer)
	default:
		return fmt.Sprintf("%3d |%s| end loop at a[%d]", r.PC, r.Command, r.Pointer)
	}
}

// TraceSink receives a record after every traced step.
type TraceSink interface {
	Trace(TraceRecord)
}

// TraceFunc adapts a function to TraceSink.
type TraceFunc func(TraceRecord)

func (f TraceFunc) Trace(r TraceRecord) { f(r) }

// LogTrace writes records to l at debug level.
func LogTrace(l *clog.Logger) TraceSink {
	return TraceFunc(func(r TraceRecord) {
		l.Debug(r.Command.Name(), "step", r.Step, "pc", r.PC, "ptr", r.Pointer, "val", r.Value)
	})
}

// Collector keeps every record in memory.
type Collector struct {
	Records []TraceRecord
}

func (c *Collector) Trace(r TraceRecord) { c.Records = append(c.Records, r) }
