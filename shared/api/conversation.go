package api

import (
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
)

type ConversationMetadataResponse struct {
	Id           domain.ConversationId    `json:"id"`
	MessageCount int                      `json:"message_count"`
	Participants []domain.UserId          `json:"participants"`
	Labels       domain.ParticipantLabels `json:"labels"`
	FirstAt      time.Time                `json:"first_at"`
	LastAt       time.Time                `json:"last_at"`
	Stats        StatsResponse            `json:"stats"`
}

// MessageResponse is a message with its sender's conversation-local label.
type MessageResponse struct {
	*domain.Message
	SenderLabel domain.ParticipantLabel `json:"sender_label"`
}

type ConversationResponse struct {
	ConversationMetadataResponse
	Messages    []MessageResponse    `json:"messages"`
	Annotations []AnnotationResponse `json:"annotations"`
}

func NewConversationMetadata(c *domain.Conversation) ConversationMetadataResponse {
	m := ConversationMetadataResponse{
		Id:           c.Id,
		MessageCount: len(c.Messages),
		Participants: c.Participants,
		Labels:       c.Labels,
		Stats:        NewStats(c.Stats),
	}
	if m.Participants == nil {
		m.Participants = []domain.UserId{}
	}
	if n := len(c.Messages); n > 0 {
		m.FirstAt = c.Messages[0].CreatedAt
		m.LastAt = c.Messages[n-1].CreatedAt
	}
	return m
}

func NewConversation(c *domain.Conversation) ConversationResponse {
	messages := make([]MessageResponse, len(c.Messages))
	for i, m := range c.Messages {
		messages[i] = MessageResponse{Message: m, SenderLabel: c.Label(m.SenderId)}
	}
	return ConversationResponse{
		ConversationMetadataResponse: NewConversationMetadata(c),
		Messages:                     messages,
		Annotations:                  NewAnnotations(c.Annotations),
	}
}
