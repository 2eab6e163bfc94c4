package domain

// Summary accumulates per-record anomalies and output shape for one run.
// It is returned by value so parallel stages never share counters.
type Summary struct {
	RunId string `json:"run_id"`

	PostsRead         int `json:"posts_read"`
	MessagesRead      int `json:"messages_read"`
	MalformedPosts    int `json:"malformed_posts"`
	MalformedMessages int `json:"malformed_messages"`
	DuplicatePosts    int `json:"duplicate_posts"`
	DuplicateMessages int `json:"duplicate_messages"`
	PostsExcluded     int `json:"posts_excluded"`

	MissingParents  int `json:"missing_parents"`
	CyclesDetected  int `json:"cycles_detected"` // posts lying on a reply cycle
	CycleTails      int `json:"cycle_tails"`     // posts whose chain only leads into a cycle
	DegradedThreads int `json:"degraded_threads"`

	Threads          int `json:"threads"`
	SingletonThreads int `json:"singleton_threads"`
	MultiPostThreads int `json:"multi_post_threads"`
	Conversations    int `json:"conversations"`
}

// Merge adds other's counters into s. RunId is kept unless s has none.
func (s *Summary) Merge(other Summary) {
	if s.RunId == "" {
		s.RunId = other.RunId
	}
	s.PostsRead += other.PostsRead
	s.MessagesRead += other.MessagesRead
	s.MalformedPosts += other.MalformedPosts
	s.MalformedMessages += other.MalformedMessages
	s.DuplicatePosts += other.DuplicatePosts
	s.DuplicateMessages += other.DuplicateMessages
	s.PostsExcluded += other.PostsExcluded
	s.MissingParents += other.MissingParents
	s.CyclesDetected += other.CyclesDetected
	s.CycleTails += other.CycleTails
	s.DegradedThreads += other.DegradedThreads
	s.Threads += other.Threads
	s.SingletonThreads += other.SingletonThreads
	s.MultiPostThreads += other.MultiPostThreads
	s.Conversations += other.Conversations
}

func (s Summary) Skipped() int {
	return s.MalformedPosts + s.MalformedMessages
}
