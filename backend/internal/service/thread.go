package service

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/itchan-dev/threadline/shared/domain"
	"github.com/itchan-dev/threadline/shared/logger"
)

// AssemblyStats counts what happened while assembling threads.
type AssemblyStats struct {
	Duplicates     int
	Excluded       int
	MissingParents int // roots whose parent is absent from the batch or filtered out
	Cycles         int // posts lying on a reply cycle
	CycleTails     int // posts singleton-ized because their chain leads into a cycle
}

// ThreadAssembler turns a flat post batch into threads for one target account.
type ThreadAssembler struct {
	target domain.AuthorId
	log    *slog.Logger
}

func NewThreadAssembler(target domain.AuthorId) *ThreadAssembler {
	return &ThreadAssembler{target: target, log: logger.Component("thread_assembler")}
}

// Included reports whether p belongs to the target account's thread corpus:
// an original post by the target, or a reply whose replied-to author is the
// target or unspecified. An empty target includes everything.
func (a *ThreadAssembler) Included(p *domain.Post) bool {
	if a.target == "" {
		return true
	}
	if !p.IsReply() {
		return p.Author() == a.target
	}
	replyToAuthor, ok := p.ReplyToAuthor()
	return !ok || replyToAuthor == a.target
}

// Assemble groups posts by resolved root. Posts inside a thread are ordered
// oldest-first with ties kept in input order; threads are ordered by their
// oldest post, then root id. The result is a pure function of the input.
func (a *ThreadAssembler) Assemble(posts []domain.Post) ([]*domain.Thread, AssemblyStats) {
	var stats AssemblyStats

	all := IndexPosts(posts)
	stats.Duplicates = all.Duplicates()

	// filter before indexing so excluded posts never bridge chains
	included := make([]domain.Post, 0, all.Len())
	for _, p := range all.Records() {
		if !a.Included(p) {
			stats.Excluded++
			continue
		}
		included = append(included, *p)
	}

	index := IndexPosts(included)
	resolver := NewResolver(index)

	groups := make(map[domain.PostId]*domain.Thread)
	var order []domain.PostId
	for _, p := range index.Records() {
		root, reason := resolver.Root(p)
		t, ok := groups[root]
		if !ok {
			t = &domain.Thread{RootId: root, RootReason: reason}
			groups[root] = t
			order = append(order, root)
			switch reason {
			case domain.RootMissingParent:
				stats.MissingParents++
			case domain.RootCycle:
				if resolver.InCycle(p.Id) {
					stats.Cycles++
					a.log.Debug("reply cycle, post kept as singleton", "post_id", p.Id)
				} else {
					stats.CycleTails++
					a.log.Debug("chain leads into a reply cycle, post kept as singleton", "post_id", p.Id)
				}
			}
		}
		t.Posts = append(t.Posts, p)
	}

	threads := make([]*domain.Thread, 0, len(order))
	for _, root := range order {
		t := groups[root]
		slices.SortStableFunc(t.Posts, func(x, y *domain.Post) int {
			return x.CreatedAt.Compare(y.CreatedAt)
		})
		threads = append(threads, t)
	}
	slices.SortStableFunc(threads, func(x, y *domain.Thread) int {
		if c := x.Posts[0].CreatedAt.Compare(y.Posts[0].CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(x.RootId, y.RootId)
	})

	if stats.Duplicates > 0 {
		a.log.Warn("duplicate post ids, later records kept", "count", stats.Duplicates)
	}
	return threads, stats
}
