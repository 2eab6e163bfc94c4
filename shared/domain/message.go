package domain

import (
	"encoding/json"
	"time"
)

// Reaction is kept as raw JSON; the engine never looks inside.
type Reaction = json.RawMessage

// Message is a single private message.
type Message struct {
	Id             MsgId          `json:"id" validate:"required"`
	ConversationId ConversationId `json:"conversation_id" validate:"required"`
	SenderId       UserId         `json:"sender_id" validate:"required"`
	RecipientId    UserId         `json:"recipient_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at" validate:"required"`
	Text           string         `json:"text"`
	Reactions      []Reaction     `json:"reactions,omitempty"`
}

func (m *Message) Timestamp() time.Time {
	return m.CreatedAt
}
