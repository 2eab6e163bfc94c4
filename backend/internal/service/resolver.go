package service

import (
	"github.com/itchan-dev/threadline/shared/domain"
)

type resolution struct {
	root   domain.PostId
	reason domain.RootReason
}

// Resolver walks reply_to_id pointers to the root of a chain.
// Resolved roots are memoized, so resolving a whole batch is linear.
// Not safe for concurrent use.
type Resolver struct {
	index   *Index[domain.Post]
	memo    map[domain.PostId]resolution
	members map[domain.PostId]struct{} // posts that lie on a reply cycle
}

func NewResolver(index *Index[domain.Post]) *Resolver {
	return &Resolver{
		index: index,
		memo:    make(map[domain.PostId]resolution, index.Len()),
		members: make(map[domain.PostId]struct{}),
	}
}

// Root returns the root id for p and why the walk stopped there.
//
// The walk stops at a post without reply_to_id, at a post whose parent is not
// in the index (that post becomes the root) or when a cycle is found. A chain
// that runs into a cycle degrades the starting post to its own singleton root.
func (r *Resolver) Root(p *domain.Post) (domain.PostId, domain.RootReason) {
	if res, ok := r.memo[p.Id]; ok {
		return res.root, res.reason
	}

	visited := map[domain.PostId]struct{}{p.Id: {}}
	path := []domain.PostId{p.Id}
	cur := p

	var res resolution
	cyclic := false
	for {
		parentId, ok := cur.ReplyTo()
		if !ok {
			res = resolution{root: cur.Id, reason: domain.RootOriginal}
			break
		}
		parent, ok := r.index.Get(parentId)
		if !ok {
			res = resolution{root: cur.Id, reason: domain.RootMissingParent}
			break
		}
		if _, seen := visited[parentId]; seen {
			cyclic = true
			// the cycle is the part of the path from parentId onwards
			for i := len(path) - 1; i >= 0; i-- {
				r.members[path[i]] = struct{}{}
				if path[i] == parentId {
					break
				}
			}
			break
		}
		if known, ok := r.memo[parentId]; ok {
			if known.reason == domain.RootCycle {
				cyclic = true
			} else {
				res = known
			}
			break
		}
		visited[parentId] = struct{}{}
		path = append(path, parentId)
		cur = parent
	}

	for _, id := range path {
		if cyclic {
			r.memo[id] = resolution{root: id, reason: domain.RootCycle}
		} else {
			r.memo[id] = res
		}
	}
	res = r.memo[p.Id]
	return res.root, res.reason
}

// InCycle reports whether id lies on a reply cycle found so far. Posts that only
// lead into a cycle also resolve with RootCycle but are not members.
func (r *Resolver) InCycle(id domain.PostId) bool {
	_, ok := r.members[id]
	return ok
}
