package types

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is a fire-and-forget user-facing message. At most one is
// visible at a time; a newer notification supersedes the current one.
type Notification struct {
	Message  string
	Severity Severity
	ShownAt  time.Time
}
