package probe

// Outcome is the classified result of one login attempt. Exactly one of
// Success, Rejected, or TransportFailed; sinks can type-switch exhaustively.
type Outcome interface {
	// Credential returns the roster entry this outcome belongs to.
	Credential() Credential

	isOutcome()
}

// Success means the server accepted the credentials and issued a token.
type Success struct {
	Cred     Credential
	Username string
	// Role is whatever the server reported. It is not required to match the
	// roster's declared role.
	Role string
	// TokenPrefix is a bounded leading substring of the issued token. The
	// full token is discarded during classification.
	TokenPrefix string
}

// Rejected means the server was reachable and refused the credentials, or
// returned a 2xx body that does not satisfy the success contract.
type Rejected struct {
	Cred       Credential
	StatusCode int
	Message    string
}

// TransportFailed means no usable HTTP response was obtained.
type TransportFailed struct {
	Cred   Credential
	Reason string
}

func (s Success) Credential() Credential         { return s.Cred }
func (r Rejected) Credential() Credential        { return r.Cred }
func (t TransportFailed) Credential() Credential { return t.Cred }

func (Success) isOutcome()         {}
func (Rejected) isOutcome()        {}
func (TransportFailed) isOutcome() {}
