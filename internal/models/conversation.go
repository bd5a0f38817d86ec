// Package models defines the value types shared across Lumexa services.
package models

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in a conversation. Turns are immutable once
// created and ordered by insertion.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Chat modes understood by the prompt composer. Unknown modes are passed
// through verbatim; the mode only steers tone, it is not validated.
const (
	ModeChat     = "chat"
	ModeCode     = "code"
	ModeResearch = "research"
)
