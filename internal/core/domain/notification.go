package domain

import "time"

// Severity classifies a notification for the presentation layer.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is a user-facing message produced with every command
// outcome. Rendering and dismissal are left to the presentation layer.
type Notification struct {
	Message      string        `json:"message"`
	Severity     Severity      `json:"severity"`
	DismissAfter time.Duration `json:"dismiss_after"`
}
