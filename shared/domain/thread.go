package domain

// RootReason explains why the walk stopped at a thread's root.
type RootReason string

const (
	RootOriginal      RootReason = "original"       // root has no reply_to_id
	RootMissingParent RootReason = "missing_parent" // parent absent from the batch or filtered out
	RootCycle         RootReason = "cycle"          // chain runs into a reply cycle
)

// Thread is a rooted group of posts connected by reply pointers.
// Posts are stored oldest-first; NewestFirst is a view over the same slice.
type Thread struct {
	RootId      PostId
	RootReason  RootReason
	Posts       []*Post
	Annotations []TemporalAnnotation
	Stats       ResponseTimeStats
}

func (t *Thread) OldestFirst() View[*Post] {
	return View[*Post]{items: t.Posts}
}

func (t *Thread) NewestFirst() View[*Post] {
	return View[*Post]{items: t.Posts, reverse: true}
}

func (t *Thread) IsSingleton() bool {
	return len(t.Posts) == 1
}

// Degraded reports whether the root was singleton-ized by a missing parent or a cycle.
func (t *Thread) Degraded() bool {
	return t.RootReason != RootOriginal
}
