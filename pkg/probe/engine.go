package probe

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wastetrack/authprobe/pkg/context"
	"github.com/wastetrack/authprobe/pkg/log"
	"github.com/wastetrack/authprobe/pkg/wasteapi"
)

const (
	loginPath = "/auth/login"

	// DefaultInteractiveTokenPrefixLen is the token prefix length used by the
	// interactive panel.
	DefaultInteractiveTokenPrefixLen = 50
	// DefaultBatchTokenPrefixLen is the token prefix length used by the batch
	// transcript.
	DefaultBatchTokenPrefixLen = 20

	malformedSuccessMessage = "malformed success payload"
)

// Transport performs one JSON POST and returns a typed result.
type Transport interface {
	Post(ctx context.Context, path string, payload any) wasteapi.Result
}

// Engine drives a credential roster through the transport and classifies each
// reply. It holds no cross-probe state.
type Engine struct {
	transport      Transport
	tokenPrefixLen int
}

// Option configures an Engine.
type Option func(*Engine)

// WithTokenPrefixLength sets how many token characters survive into a Success
// outcome.
func WithTokenPrefixLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.tokenPrefixLen = n
		}
	}
}

// NewEngine creates an engine over the given transport.
func NewEngine(transport Transport, opts ...Option) *Engine {
	e := &Engine{
		transport:      transport,
		tokenPrefixLen: DefaultBatchTokenPrefixLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// loginResponse is the schema a 2xx body must satisfy. Success is a *bool so
// an absent field is distinguishable from an explicit false.
type loginResponse struct {
	Success *bool      `json:"success"`
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    *loginUser `json:"user"`
}

// ProbeOne performs a single login attempt for cred and classifies the reply.
// It never returns an error; every failure mode becomes an Outcome.
func (e *Engine) ProbeOne(ctx context.Context, cred Credential) Outcome {
	ctx.Logger().V(2).Info("probing login endpoint", "email", cred.Email, "role", cred.Role)

	res := e.transport.Post(ctx, loginPath, loginRequest{
		Email:    cred.Email,
		Password: cred.Password,
	})

	outcome := e.classify(cred, res)
	recordOutcome(outcome)
	return outcome
}

// Run probes the roster strictly in order, handing each outcome to emit
// before the next probe starts. An empty roster emits nothing and touches the
// transport zero times.
func (e *Engine) Run(ctx context.Context, roster []Credential, emit func(Outcome)) {
	for _, cred := range roster {
		emit(e.ProbeOne(ctx, cred))
	}
}

// Probe collects one outcome per roster entry, in roster order.
func (e *Engine) Probe(ctx context.Context, roster []Credential) []Outcome {
	outcomes := make([]Outcome, 0, len(roster))
	e.Run(ctx, roster, func(o Outcome) {
		outcomes = append(outcomes, o)
	})
	return outcomes
}

// classify applies the classification rule to a transport result. First match
// wins. It is a pure function of its inputs apart from token redaction.
func (e *Engine) classify(cred Credential, res wasteapi.Result) Outcome {
	switch r := res.(type) {
	case wasteapi.Ok:
		var body loginResponse
		if err := json.Unmarshal(r.Body, &body); err != nil {
			return Rejected{Cred: cred, StatusCode: r.StatusCode, Message: malformedSuccessMessage}
		}
		switch {
		case body.Success != nil && *body.Success && body.User != nil && body.Token != "":
			// Keep the full token out of any log output, then drop it.
			log.RedactGlobally(body.Token)
			return Success{
				Cred:        cred,
				Username:    body.User.Username,
				Role:        body.User.Role,
				TokenPrefix: tokenPrefix(body.Token, e.tokenPrefixLen),
			}
		case body.Success != nil && !*body.Success:
			return Rejected{Cred: cred, StatusCode: r.StatusCode, Message: body.Message}
		default:
			return Rejected{Cred: cred, StatusCode: r.StatusCode, Message: malformedSuccessMessage}
		}
	case wasteapi.HTTPError:
		return Rejected{Cred: cred, StatusCode: r.StatusCode, Message: errorMessage(r.Body)}
	case wasteapi.TransportError:
		return TransportFailed{Cred: cred, Reason: r.Reason}
	default:
		return TransportFailed{Cred: cred, Reason: fmt.Sprintf("unknown transport result %T", res)}
	}
}

// errorMessage pulls the server's message out of an error body, falling back
// to the body itself.
func errorMessage(body json.RawMessage) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}

// tokenPrefix bounds a token to a leading fragment plus an ellipsis. The
// recorded value is always strictly shorter than the server token, even when
// the token fits under the bound.
func tokenPrefix(token string, n int) string {
	runes := []rune(token)
	if n >= len(runes) {
		n = len(runes) - 1
	}
	if n < 0 {
		n = 0
	}
	return string(runes[:n]) + "…"
}
