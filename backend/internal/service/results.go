package service

import (
	"github.com/itchan-dev/threadline/shared/domain"
	internal_errors "github.com/itchan-dev/threadline/shared/errors"
)

// ResultService answers lookups against one finished run.
type ResultService interface {
	Summary() domain.Summary
	Threads() []*domain.Thread
	Thread(root domain.PostId) (*domain.Thread, error)
	Conversations() []*domain.Conversation
	Conversation(id domain.ConversationId) (*domain.Conversation, error)
	Activity() (posts, messages domain.ActivityPattern)
}

// Results indexes a Result for lookup. The Result must not be modified afterwards.
type Results struct {
	res           *domain.Result
	threads       map[domain.PostId]*domain.Thread
	conversations map[domain.ConversationId]*domain.Conversation
}

func NewResults(res *domain.Result) *Results {
	r := &Results{
		res:           res,
		threads:       make(map[domain.PostId]*domain.Thread, len(res.Threads)),
		conversations: make(map[domain.ConversationId]*domain.Conversation, len(res.Conversations)),
	}
	for _, t := range res.Threads {
		r.threads[t.RootId] = t
	}
	for _, c := range res.Conversations {
		r.conversations[c.Id] = c
	}
	return r
}

func (r *Results) Summary() domain.Summary {
	return r.res.Summary
}

func (r *Results) Threads() []*domain.Thread {
	return r.res.Threads
}

func (r *Results) Thread(root domain.PostId) (*domain.Thread, error) {
	t, ok := r.threads[root]
	if !ok {
		return nil, internal_errors.NotFound
	}
	return t, nil
}

func (r *Results) Conversations() []*domain.Conversation {
	return r.res.Conversations
}

func (r *Results) Conversation(id domain.ConversationId) (*domain.Conversation, error) {
	c, ok := r.conversations[id]
	if !ok {
		return nil, internal_errors.NotFound
	}
	return c, nil
}

func (r *Results) Activity() (posts, messages domain.ActivityPattern) {
	return r.res.PostActivity, r.res.MessageActivity
}
