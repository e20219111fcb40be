package model

import (
	"time"

	"github.com/google/uuid"
)

// Message rows form a separately keyed, append-only conversation log. The
// bigserial primary key doubles as the ordering key, so concurrent appends
// never reorder or lose a turn.
type Message struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
