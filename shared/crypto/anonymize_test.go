package crypto

import (
	"strings"
	"testing"
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnonymizer(t *testing.T) {
	_, err := NewAnonymizer("")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewAnonymizer(strings.Repeat("k", 65))
	assert.ErrorIs(t, err, ErrInvalidKey)

	a, err := NewAnonymizer(strings.Repeat("k", 64))
	require.NoError(t, err)
	assert.NotNil(t, a)
}

func TestToken(t *testing.T) {
	a, err := NewAnonymizer("secret")
	require.NoError(t, err)
	b, err := NewAnonymizer("other")
	require.NoError(t, err)

	tok := a.Token("user-1")
	assert.Len(t, tok, 2*tokenSize)
	assert.Equal(t, tok, a.Token("user-1"))
	assert.NotEqual(t, tok, a.Token("user-2"))
	assert.NotEqual(t, tok, b.Token("user-1"))
	assert.NotContains(t, tok, "user")
	assert.Empty(t, a.Token(""))
}

func TestBatch(t *testing.T) {
	a, err := NewAnonymizer("secret")
	require.NoError(t, err)

	parent, author, empty := "p1", "alice", ""
	in := domain.Batch{
		Posts: []domain.Post{
			{Id: "p1", AuthorId: "alice", CreatedAt: time.Unix(0, 0), Text: "hi"},
			{Id: "p2", AuthorHandle: "@bob", CreatedAt: time.Unix(60, 0), ReplyToId: &parent, ReplyToAuthorId: &author},
			{Id: "p3", AuthorId: "bob", ReplyToId: &empty},
		},
		Messages: []domain.Message{
			{Id: "m1", ConversationId: "c1", SenderId: "alice", RecipientId: "bob", Text: "yo"},
		},
	}

	out := a.Batch(in)

	require.Len(t, out.Posts, 3)
	assert.Equal(t, "p1", in.Posts[0].Id)
	assert.Equal(t, "hi", out.Posts[0].Text)
	assert.Equal(t, out.Posts[0].Id, *out.Posts[1].ReplyToId)
	assert.Equal(t, out.Posts[0].AuthorId, *out.Posts[1].ReplyToAuthorId)
	assert.Empty(t, out.Posts[1].AuthorId)
	assert.Equal(t, a.Token("@bob"), out.Posts[1].AuthorHandle)
	assert.Equal(t, "", *out.Posts[2].ReplyToId)
	assert.Nil(t, out.Posts[0].ReplyToId)
	assert.Equal(t, "p1", parent)

	require.Len(t, out.Messages, 1)
	assert.Equal(t, out.Posts[0].AuthorId, out.Messages[0].SenderId)
	assert.Equal(t, a.Token("c1"), out.Messages[0].ConversationId)
	assert.Equal(t, "yo", out.Messages[0].Text)
}
