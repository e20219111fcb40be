// FILE: internal/entity/message_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Message is one turn of a user's conversation. Rows are append-only and
// immutable once created; insertion order is conversation order.
type Message struct {
	Id        int64
	UserId    uuid.UUID
	Role      MessageRole
	Content   string
	CreatedAt time.Time
}
