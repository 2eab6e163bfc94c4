package api

import (
	"github.com/itchan-dev/threadline/shared/domain"
)

// Document is the full run output written by the CLI.
type Document struct {
	Summary       domain.Summary         `json:"summary"`
	Threads       []ThreadResponse       `json:"threads"`
	Conversations []ConversationResponse `json:"conversations"`
	Activity      ActivityResponse       `json:"activity"`
}

func NewDocument(res *domain.Result) Document {
	doc := Document{
		Summary:       res.Summary,
		Threads:       make([]ThreadResponse, len(res.Threads)),
		Conversations: make([]ConversationResponse, len(res.Conversations)),
		Activity:      ActivityResponse{Posts: res.PostActivity, Messages: res.MessageActivity},
	}
	for i, t := range res.Threads {
		doc.Threads[i] = NewThread(t)
	}
	for i, c := range res.Conversations {
		doc.Conversations[i] = NewConversation(c)
	}
	return doc
}
