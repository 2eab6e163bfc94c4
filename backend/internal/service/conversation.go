package service

import (
	"slices"
	"strings"

	"github.com/itchan-dev/threadline/shared/domain"
)

// GroupConversations groups messages by conversation id. Messages are ordered
// by timestamp with ties kept in input order; no message is filtered out.
// Conversations are ordered by their first message, then id. Duplicate
// message ids are resolved last-write-wins and counted.
func GroupConversations(messages []domain.Message) ([]*domain.Conversation, int) {
	index := IndexMessages(messages)

	groups := make(map[domain.ConversationId]*domain.Conversation)
	var order []domain.ConversationId
	for _, m := range index.Records() {
		c, ok := groups[m.ConversationId]
		if !ok {
			c = &domain.Conversation{Id: m.ConversationId}
			groups[m.ConversationId] = c
			order = append(order, m.ConversationId)
		}
		c.Messages = append(c.Messages, m)
	}

	conversations := make([]*domain.Conversation, 0, len(order))
	for _, id := range order {
		c := groups[id]
		slices.SortStableFunc(c.Messages, func(x, y *domain.Message) int {
			return x.CreatedAt.Compare(y.CreatedAt)
		})
		conversations = append(conversations, c)
	}
	slices.SortStableFunc(conversations, func(x, y *domain.Conversation) int {
		if c := x.Messages[0].CreatedAt.Compare(y.Messages[0].CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(x.Id, y.Id)
	})
	return conversations, index.Duplicates()
}
