package pg

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/threadline/shared/domain"
	internal_errors "github.com/itchan-dev/threadline/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func sampleResult() *domain.Result {
	parent := "A"
	a := &domain.Post{Id: "A", AuthorId: "me", CreatedAt: base, Text: "root"}
	b := &domain.Post{Id: "B", AuthorId: "you", CreatedAt: base.Add(10 * time.Minute), Text: "reply", ReplyToId: &parent}
	d := &domain.Post{Id: "D", AuthorId: "me", CreatedAt: base.Add(-time.Hour), Text: "older"}

	m1 := &domain.Message{Id: "m1", ConversationId: "c1", SenderId: "x", CreatedAt: base, Text: "hi"}
	m2 := &domain.Message{Id: "m2", ConversationId: "c1", SenderId: "y", CreatedAt: base.Add(time.Minute), Text: "hey"}

	return &domain.Result{
		Threads: []*domain.Thread{
			{RootId: "D", RootReason: domain.RootOriginal, Posts: []*domain.Post{d}, Stats: domain.ResponseTimeStats{MessageCount: 1}},
			{
				RootId:      "A",
				RootReason:  domain.RootOriginal,
				Posts:       []*domain.Post{a, b},
				Annotations: []domain.TemporalAnnotation{{Index: 1, Gap: 10 * time.Minute, IsSignificant: true, RelativeDescription: "10 minutes later"}},
				Stats:       domain.ResponseTimeStats{Mean: 10 * time.Minute, Median: 10 * time.Minute, P90: 10 * time.Minute, Duration: 10 * time.Minute, MessageCount: 2, SignificantGaps: 1},
			},
		},
		Conversations: []*domain.Conversation{{
			Id:           "c1",
			Messages:     []*domain.Message{m1, m2},
			Participants: []string{"x", "y"},
			Labels:       domain.ParticipantLabels{"x": "A", "y": "B"},
			Annotations:  []domain.TemporalAnnotation{{Index: 1, Gap: time.Minute}},
			Stats:        domain.ResponseTimeStats{Duration: time.Minute, MessageCount: 2},
		}},
		Summary: domain.Summary{RunId: uuid.NewString(), PostsRead: 3, MessagesRead: 2, Threads: 2, Conversations: 1, SingletonThreads: 1, MultiPostThreads: 1},
	}
}

func TestSaveResult(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		res := sampleResult()
		require.NoError(t, storage.SaveResult(ctx, res))

		summary, err := storage.GetRunSummary(ctx, res.Summary.RunId)
		require.NoError(t, err)
		assert.Equal(t, res.Summary, summary)

		roots, err := storage.ListThreadRoots(ctx, res.Summary.RunId)
		require.NoError(t, err)
		assert.Equal(t, []string{"D", "A"}, roots)

		var label, description string
		var significant bool
		err = storage.db.QueryRowContext(ctx,
			"SELECT sender_label FROM conversation_messages WHERE run_id = $1 AND message_id = 'm2'",
			res.Summary.RunId).Scan(&label)
		require.NoError(t, err)
		assert.Equal(t, "B", label)

		err = storage.db.QueryRowContext(ctx,
			"SELECT is_significant, relative_description FROM thread_posts WHERE run_id = $1 AND post_id = 'B'",
			res.Summary.RunId).Scan(&significant, &description)
		require.NoError(t, err)
		assert.True(t, significant)
		assert.Equal(t, "10 minutes later", description)

		var replyTo *string
		err = storage.db.QueryRowContext(ctx,
			"SELECT reply_to_id FROM thread_posts WHERE run_id = $1 AND post_id = 'A'",
			res.Summary.RunId).Scan(&replyTo)
		require.NoError(t, err)
		assert.Nil(t, replyTo)
	})

	t.Run("duplicate run id rolls back", func(t *testing.T) {
		res := sampleResult()
		require.NoError(t, storage.SaveResult(ctx, res))

		res.Threads = append(res.Threads, &domain.Thread{RootId: "Z", RootReason: domain.RootOriginal, Posts: []*domain.Post{{Id: "Z", AuthorId: "me", CreatedAt: base}}})
		assert.Error(t, storage.SaveResult(ctx, res))

		roots, err := storage.ListThreadRoots(ctx, res.Summary.RunId)
		require.NoError(t, err)
		assert.Len(t, roots, 2)
	})

	t.Run("empty result", func(t *testing.T) {
		res := &domain.Result{Summary: domain.Summary{RunId: uuid.NewString()}}
		require.NoError(t, storage.SaveResult(ctx, res))

		roots, err := storage.ListThreadRoots(ctx, res.Summary.RunId)
		require.NoError(t, err)
		assert.Empty(t, roots)
	})
}

func TestGetRunSummaryNotFound(t *testing.T) {
	_, err := storage.GetRunSummary(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, internal_errors.NotFound)
}

func TestListThreadRootsNotFound(t *testing.T) {
	_, err := storage.ListThreadRoots(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, internal_errors.NotFound)
}
