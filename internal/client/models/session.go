package models

// Role attributes one transcript turn to a participant.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message exchanged within an interview session. Turns are
// append-only and never mutated after creation; Seq increases monotonically
// within one session.
type Turn struct {
	Role    Role
	Content string
	Seq     int
}

// SessionStatus is the lifecycle state of an interview session.
type SessionStatus string

const (
	StatusActive SessionStatus = "active"
	StatusEnded  SessionStatus = "ended"
)

// Session is one interview conversation, identified by a server-issued id.
type Session struct {
	ID       string
	Topic    string
	CVSkills []string
	Status   SessionStatus
}
