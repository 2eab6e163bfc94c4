package service

import (
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
)

var t0 = time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return t0.Add(d)
}

func ptr[T any](v T) *T {
	return &v
}

func post(id, author string, createdAt time.Time) domain.Post {
	return domain.Post{Id: id, AuthorId: author, CreatedAt: createdAt}
}

func reply(id, author, parent string, createdAt time.Time) domain.Post {
	p := post(id, author, createdAt)
	p.ReplyToId = ptr(parent)
	return p
}

func replyTo(id, author, parent, parentAuthor string, createdAt time.Time) domain.Post {
	p := reply(id, author, parent, createdAt)
	p.ReplyToAuthorId = ptr(parentAuthor)
	return p
}

func message(id, conversation, sender string, createdAt time.Time) domain.Message {
	return domain.Message{Id: id, ConversationId: conversation, SenderId: sender, CreatedAt: createdAt}
}

func postIds(posts []*domain.Post) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.Id
	}
	return ids
}

func threadByRoot(threads []*domain.Thread, root string) *domain.Thread {
	for _, t := range threads {
		if t.RootId == root {
			return t
		}
	}
	return nil
}

// MockRecordValidator mocks the RecordValidator interface.
type MockRecordValidator struct {
	postFunc    func(p *domain.Post) error
	messageFunc func(m *domain.Message) error
}

func (m *MockRecordValidator) Post(p *domain.Post) error {
	if m.postFunc != nil {
		return m.postFunc(p)
	}
	return nil
}

func (m *MockRecordValidator) Message(msg *domain.Message) error {
	if m.messageFunc != nil {
		return m.messageFunc(msg)
	}
	return nil
}
