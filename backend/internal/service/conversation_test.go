package service

import (
	"testing"
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupConversations(t *testing.T) {
	t.Run("groups and orders", func(t *testing.T) {
		conversations, duplicates := GroupConversations([]domain.Message{
			message("m3", "c1", "x", at(10*time.Minute)),
			message("m1", "c1", "x", at(0)),
			message("n1", "c0", "z", at(time.Hour)),
			message("m2", "c1", "y", at(2*time.Minute)),
		})

		assert.Zero(t, duplicates)
		require.Len(t, conversations, 2)
		assert.Equal(t, "c1", conversations[0].Id)
		assert.Equal(t, "c0", conversations[1].Id)

		var ids []string
		for _, m := range conversations[0].Messages {
			ids = append(ids, m.Id)
		}
		assert.Equal(t, []string{"m1", "m2", "m3"}, ids)
	})

	t.Run("equal first timestamps order by id", func(t *testing.T) {
		conversations, _ := GroupConversations([]domain.Message{
			message("1", "b", "x", at(0)),
			message("2", "a", "x", at(0)),
		})
		require.Len(t, conversations, 2)
		assert.Equal(t, "a", conversations[0].Id)
	})

	t.Run("duplicates resolved last-write-wins", func(t *testing.T) {
		first := message("m1", "c", "x", at(0))
		first.Text = "old"
		second := message("m1", "c", "x", at(0))
		second.Text = "new"

		conversations, duplicates := GroupConversations([]domain.Message{first, second})
		assert.Equal(t, 1, duplicates)
		require.Len(t, conversations, 1)
		require.Len(t, conversations[0].Messages, 1)
		assert.Equal(t, "new", conversations[0].Messages[0].Text)
	})

	t.Run("empty input", func(t *testing.T) {
		conversations, duplicates := GroupConversations(nil)
		assert.Empty(t, conversations)
		assert.Zero(t, duplicates)
	})
}
