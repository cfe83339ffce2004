// Package output renders probe outcomes for batch consumption.
package output

import (
	"github.com/wastetrack/authprobe/pkg/probe"
)

// ReportSink consumes classified probe outcomes in emission order. Sinks
// never mutate outcomes, never call the transport, and never classify.
type ReportSink interface {
	// Begin is called once before the first outcome.
	Begin()
	// Emit is called once per outcome, in roster order.
	Emit(o probe.Outcome)
	// End is called once after the last outcome.
	End()
}

var (
	_ ReportSink = (*PlainSink)(nil)
	_ ReportSink = (*JSONSink)(nil)
)
