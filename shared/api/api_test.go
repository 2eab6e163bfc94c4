package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func TestNewThread(t *testing.T) {
	a := &domain.Post{Id: "A", AuthorId: "u", CreatedAt: base}
	b := &domain.Post{Id: "B", AuthorId: "u", CreatedAt: base.Add(10 * time.Minute)}
	th := &domain.Thread{
		RootId:      "A",
		RootReason:  domain.RootOriginal,
		Posts:       []*domain.Post{a, b},
		Annotations: []domain.TemporalAnnotation{{Index: 1, Gap: 10 * time.Minute, IsSignificant: true, RelativeDescription: "10 minutes later"}},
		Stats:       domain.ResponseTimeStats{Mean: 10 * time.Minute, Duration: 10 * time.Minute, MessageCount: 2, SignificantGaps: 1},
	}

	resp := NewThread(th)

	assert.Equal(t, 2, resp.PostCount)
	assert.Equal(t, base, resp.FirstAt)
	assert.Equal(t, base.Add(10*time.Minute), resp.LastAt)
	assert.Equal(t, []string{"B", "A"}, resp.NewestFirst)
	assert.Equal(t, []*domain.Post{a, b}, resp.Posts)
	assert.Equal(t, 600.0, resp.Stats.MeanSeconds)
	require.Len(t, resp.Annotations, 1)
	assert.Equal(t, 600.0, resp.Annotations[0].GapSeconds)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "A", decoded["root_id"])
	assert.Contains(t, decoded, "newest_first")
}

func TestNewConversation(t *testing.T) {
	m1 := &domain.Message{Id: "1", ConversationId: "c", SenderId: "x", CreatedAt: base}
	m2 := &domain.Message{Id: "2", ConversationId: "c", SenderId: "y", CreatedAt: base.Add(time.Minute)}
	c := &domain.Conversation{
		Id:           "c",
		Messages:     []*domain.Message{m1, m2},
		Participants: []string{"x", "y"},
		Labels:       domain.ParticipantLabels{"x": "A", "y": "B"},
	}

	resp := NewConversation(c)

	assert.Equal(t, 2, resp.MessageCount)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "A", resp.Messages[0].SenderLabel)
	assert.Equal(t, "B", resp.Messages[1].SenderLabel)
	assert.Equal(t, "2", resp.Messages[1].Id)
	assert.Empty(t, resp.Annotations)
}

func TestNewConversationEmpty(t *testing.T) {
	resp := NewConversation(&domain.Conversation{Id: "empty"})
	assert.Zero(t, resp.MessageCount)
	assert.NotNil(t, resp.Participants)
	assert.True(t, resp.FirstAt.IsZero())
}

func TestNewDocument(t *testing.T) {
	res := &domain.Result{
		Threads:       []*domain.Thread{{RootId: "A", Posts: []*domain.Post{{Id: "A", CreatedAt: base}}}},
		Conversations: []*domain.Conversation{{Id: "c"}},
		Summary:       domain.Summary{RunId: "run", Threads: 1, Conversations: 1},
	}
	doc := NewDocument(res)
	assert.Equal(t, "run", doc.Summary.RunId)
	assert.Len(t, doc.Threads, 1)
	assert.Len(t, doc.Conversations, 1)
}
