package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wastetrack/authprobe/pkg/probe"
)

// JSONSink writes one JSON object per outcome, for machine consumption.
type JSONSink struct {
	w io.Writer
}

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

func (s *JSONSink) Begin() {}
func (s *JSONSink) End()   {}

func (s *JSONSink) Emit(o probe.Outcome) {
	cred := o.Credential()
	v := &struct {
		// Email and RosterRole identify the fixture account that was probed.
		Email      string     `json:"email"`
		RosterRole probe.Role `json:"roster_role"`
		Outcome    string     `json:"outcome"`
		// Username and Role are the server's answer, present on success only.
		Username    string `json:"username,omitempty"`
		Role        string `json:"role,omitempty"`
		TokenPrefix string `json:"token_prefix,omitempty"`
		Status      int    `json:"status,omitempty"`
		Message     string `json:"message,omitempty"`
		Reason      string `json:"reason,omitempty"`
	}{
		Email:      cred.Email,
		RosterRole: cred.Role,
	}

	switch o := o.(type) {
	case probe.Success:
		v.Outcome = "success"
		v.Username = o.Username
		v.Role = o.Role
		v.TokenPrefix = o.TokenPrefix
	case probe.Rejected:
		v.Outcome = "rejected"
		v.Status = o.StatusCode
		v.Message = o.Message
	case probe.TransportFailed:
		v.Outcome = "transport_failed"
		v.Reason = o.Reason
	}

	out, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(s.w, string(out))
}
