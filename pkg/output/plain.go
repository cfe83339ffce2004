package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/wastetrack/authprobe/pkg/probe"
)

var (
	yellowPrinter = color.New(color.FgYellow)
	greenPrinter  = color.New(color.FgHiGreen)
	redPrinter    = color.New(color.FgHiRed)
	whitePrinter  = color.New(color.FgWhite)
)

// PlainSink writes a human-readable probe transcript.
type PlainSink struct {
	w       io.Writer
	baseURL string
}

// NewPlainSink creates a transcript sink writing to w. baseURL is only
// echoed in the start banner.
func NewPlainSink(w io.Writer, baseURL string) *PlainSink {
	return &PlainSink{w: w, baseURL: baseURL}
}

func (s *PlainSink) Begin() {
	_, _ = yellowPrinter.Fprintf(s.w, "🔐 Testing login endpoints at %s\n\n", s.baseURL)
}

func (s *PlainSink) Emit(o probe.Outcome) {
	cred := o.Credential()
	_, _ = whitePrinter.Fprintf(s.w, "Testing %s login (%s)...\n", cred.Role, cred.Email)

	switch o := o.(type) {
	case probe.Success:
		_, _ = greenPrinter.Fprintf(s.w, "✅ %s login successful\n", cred.Role)
		_, _ = whitePrinter.Fprintf(s.w, "   Username: %s\n", o.Username)
		_, _ = whitePrinter.Fprintf(s.w, "   Role: %s\n", o.Role)
		_, _ = whitePrinter.Fprintf(s.w, "   Token: %s\n", o.TokenPrefix)
	case probe.Rejected:
		_, _ = redPrinter.Fprintf(s.w, "❌ %s login failed\n", cred.Role)
		_, _ = whitePrinter.Fprintf(s.w, "   Status: %d\n", o.StatusCode)
		_, _ = whitePrinter.Fprintf(s.w, "   Message: %s\n", o.Message)
	case probe.TransportFailed:
		_, _ = redPrinter.Fprintf(s.w, "❌ %s login failed\n", cred.Role)
		_, _ = whitePrinter.Fprintf(s.w, "   Reason: %s\n", o.Reason)
	}
	_, _ = fmt.Fprintln(s.w)
}

func (s *PlainSink) End() {
	_, _ = yellowPrinter.Fprintf(s.w, "🏁 Login endpoint testing complete\n")
}
