package api

import (
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
)

// ThreadMetadataResponse is one entry of the thread list.
type ThreadMetadataResponse struct {
	RootId     domain.PostId     `json:"root_id"`
	RootReason domain.RootReason `json:"root_reason"`
	PostCount  int               `json:"post_count"`
	FirstAt    time.Time         `json:"first_at"`
	LastAt     time.Time         `json:"last_at"`
	Stats      StatsResponse     `json:"stats"`
}

// ThreadResponse carries posts oldest-first; NewestFirst lists the same ids reversed.
type ThreadResponse struct {
	ThreadMetadataResponse
	Posts       []*domain.Post       `json:"posts"`
	NewestFirst []domain.PostId      `json:"newest_first"`
	Annotations []AnnotationResponse `json:"annotations"`
}

func NewThreadMetadata(t *domain.Thread) ThreadMetadataResponse {
	oldest := t.OldestFirst()
	m := ThreadMetadataResponse{
		RootId:     t.RootId,
		RootReason: t.RootReason,
		PostCount:  oldest.Len(),
		Stats:      NewStats(t.Stats),
	}
	if n := oldest.Len(); n > 0 {
		m.FirstAt = oldest.At(0).CreatedAt
		m.LastAt = oldest.At(n - 1).CreatedAt
	}
	return m
}

func NewThread(t *domain.Thread) ThreadResponse {
	oldest := t.OldestFirst()
	posts := make([]*domain.Post, 0, oldest.Len())
	for _, p := range oldest.All() {
		posts = append(posts, p)
	}
	newest := t.NewestFirst()
	ids := make([]domain.PostId, 0, newest.Len())
	for _, p := range newest.All() {
		ids = append(ids, p.Id)
	}
	return ThreadResponse{
		ThreadMetadataResponse: NewThreadMetadata(t),
		Posts:                  posts,
		NewestFirst:            ids,
		Annotations:            NewAnnotations(t.Annotations),
	}
}
