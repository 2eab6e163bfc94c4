package service

import (
	"github.com/itchan-dev/threadline/shared/domain"
)

// Index maps record ids to records. It owns a private copy of the input,
// is built once and is read-only afterwards, so concurrent lookups are safe.
type Index[T any] struct {
	byId       map[string]*T
	records    []*T
	duplicates int
}

// BuildIndex indexes records by id. On duplicate ids the later record wins;
// Records() keeps the survivors in input order.
func BuildIndex[T any](records []T, id func(*T) string) *Index[T] {
	owned := make([]T, len(records))
	copy(owned, records)

	ix := &Index[T]{byId: make(map[string]*T, len(owned))}
	for i := range owned {
		key := id(&owned[i])
		if _, seen := ix.byId[key]; seen {
			ix.duplicates++
		}
		ix.byId[key] = &owned[i]
	}

	ix.records = make([]*T, 0, len(ix.byId))
	for i := range owned {
		if ix.byId[id(&owned[i])] == &owned[i] {
			ix.records = append(ix.records, &owned[i])
		}
	}
	return ix
}

// IndexPosts is BuildIndex keyed by post id.
func IndexPosts(posts []domain.Post) *Index[domain.Post] {
	return BuildIndex(posts, func(p *domain.Post) string { return p.Id })
}

// IndexMessages is BuildIndex keyed by message id.
func IndexMessages(messages []domain.Message) *Index[domain.Message] {
	return BuildIndex(messages, func(m *domain.Message) string { return m.Id })
}

func (ix *Index[T]) Get(id string) (*T, bool) {
	r, ok := ix.byId[id]
	return r, ok
}

// Records returns the surviving records in input order.
func (ix *Index[T]) Records() []*T {
	return ix.records
}

func (ix *Index[T]) Len() int {
	return len(ix.records)
}

// Duplicates counts records that were overwritten by a later record with the same id.
func (ix *Index[T]) Duplicates() int {
	return ix.duplicates
}
