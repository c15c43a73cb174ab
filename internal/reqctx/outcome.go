package reqctx

import "time"

// Kind enumerates the states of an [AuthOutcome].
type Kind int

const (
	// Unresolved is the initial state before the context resolver ran.
	Unresolved Kind = iota
	// Identified means a valid identity cookie was presented.
	Identified
	// Absent means no identity cookie was presented. Not an error.
	Absent
	// Invalid means a cookie was presented but failed validation
	// (malformed, expired or tampered).
	Invalid
)

// String returns the lower-case name of the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case Unresolved:
		return "unresolved"
	case Identified:
		return "identified"
	case Absent:
		return "absent"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Identity is the authenticated principal extracted from a validated cookie.
// It is a plain value: copies handed to handlers cannot affect the original.
type Identity struct {
	UserID    int64
	Login     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthOutcome is the result of identity resolution for a single request.
// The zero value is the Unresolved outcome.
type AuthOutcome struct {
	kind     Kind
	identity Identity
	reason   error
}

// IdentifiedOutcome returns an outcome carrying id.
func IdentifiedOutcome(id Identity) AuthOutcome {
	return AuthOutcome{kind: Identified, identity: id}
}

// AbsentOutcome returns the outcome used when no cookie was presented.
func AbsentOutcome() AuthOutcome {
	return AuthOutcome{kind: Absent}
}

// InvalidOutcome returns the outcome used when the cookie failed validation.
// reason is kept for logging only and must never reach a response body.
func InvalidOutcome(reason error) AuthOutcome {
	return AuthOutcome{kind: Invalid, reason: reason}
}

// Kind returns the state of the outcome.
func (o AuthOutcome) Kind() Kind {
	return o.kind
}

// Identity returns the resolved identity and true when the outcome is
// Identified. Any other state returns the zero Identity and false.
func (o AuthOutcome) Identity() (Identity, bool) {
	if o.kind != Identified {
		return Identity{}, false
	}
	return o.identity, true
}

// Reason returns the internal validation failure of an Invalid outcome.
func (o AuthOutcome) Reason() error {
	return o.reason
}
