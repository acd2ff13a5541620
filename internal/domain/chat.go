package domain

import "time"

// Group is a chat group the user belongs to.
type Group struct {
	ID          string
	Name        string
	MemberCount int
}

// Message is one group chat message.
type Message struct {
	ID        string
	GroupID   string
	UserID    string
	Author    string
	Content   string
	CreatedAt time.Time
}

// MaxMessageLength is the server-enforced message size cap; the client
// rejects longer messages before sending.
const MaxMessageLength = 500
