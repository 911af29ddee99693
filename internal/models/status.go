package models

// Status is the state of a job or workflow as reported by the remote API.
// The vocabulary is open ended: unrecognised values pass through untouched
// so new upstream states are reported rather than swallowed.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusRunning Status = "running"
	StatusOnHold  Status = "on_hold"
	StatusBlocked Status = "blocked"
	StatusUnknown Status = "unknown"
)

// StatusFrom normalizes a raw status field from an API payload. An absent
// or empty status becomes StatusUnknown; anything else is kept as-is.
func StatusFrom(s string) Status {
	if s == "" {
		return StatusUnknown
	}
	return Status(s)
}

// String implements fmt.Stringer
func (s Status) String() string {
	return string(s)
}
