package domain

import "time"

// AuditEvent records a single session or store mutation.
type AuditEvent struct {
	Console Console   `json:"console"`
	Action  string    `json:"action"`
	Subject string    `json:"subject"`
	Actor   string    `json:"actor,omitempty"`
	Role    Role      `json:"role,omitempty"`
	Applied bool      `json:"applied"`
	At      time.Time `json:"at"`
}
