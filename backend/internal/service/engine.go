package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/threadline/shared/domain"
	"github.com/itchan-dev/threadline/shared/logger"
	"golang.org/x/sync/errgroup"
)

// RecordValidator rejects malformed records before reconstruction.
type RecordValidator interface {
	Post(p *domain.Post) error
	Message(m *domain.Message) error
}

// EngineService reconstructs threads and conversations from one batch.
type EngineService interface {
	Run(ctx context.Context, batch domain.Batch) (*domain.Result, error)
}

type Engine struct {
	cfg       domain.EngineConfig
	validator RecordValidator
	threads   *ThreadAssembler
	annotator *TemporalAnnotator
	activity  *ActivityAnalyzer
	log       *slog.Logger
}

func NewEngine(cfg domain.EngineConfig, validator RecordValidator) *Engine {
	cfg = cfg.WithDefaults()
	return &Engine{
		cfg:       cfg,
		validator: validator,
		threads:   NewThreadAssembler(cfg.TargetAccount),
		annotator: NewTemporalAnnotator(cfg.SignificanceThreshold),
		activity:  NewActivityAnalyzer(cfg.BurstMultiplier, cfg.BurstWindow, cfg.Location),
		log:       logger.Component("engine"),
	}
}

// Run reconstructs and annotates a batch. Per-record anomalies never fail the
// run; they are counted in Result.Summary. The context is checked once before
// any work starts: a partially reconstructed thread has no meaning.
func (e *Engine) Run(ctx context.Context, batch domain.Batch) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	summary := domain.Summary{
		RunId:        uuid.NewString(),
		PostsRead:    len(batch.Posts),
		MessagesRead: len(batch.Messages),
	}

	posts := make([]domain.Post, 0, len(batch.Posts))
	for i := range batch.Posts {
		if err := e.validator.Post(&batch.Posts[i]); err != nil {
			summary.MalformedPosts++
			e.log.Debug("skipping post", "error", err)
			continue
		}
		posts = append(posts, batch.Posts[i])
	}
	messages := make([]domain.Message, 0, len(batch.Messages))
	for i := range batch.Messages {
		if err := e.validator.Message(&batch.Messages[i]); err != nil {
			summary.MalformedMessages++
			e.log.Debug("skipping message", "error", err)
			continue
		}
		messages = append(messages, batch.Messages[i])
	}

	threads, assembly := e.threads.Assemble(posts)
	conversations, duplicateMessages := GroupConversations(messages)

	// groups are independent; workers only touch their own group
	var g errgroup.Group
	g.SetLimit(e.cfg.Workers)
	for _, t := range threads {
		g.Go(func() error {
			e.annotator.Thread(t)
			return nil
		})
	}
	for _, c := range conversations {
		g.Go(func() error {
			e.annotator.Conversation(c)
			c.Labels, c.Participants = LabelParticipants(c.Messages)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to annotate run: %w", err)
	}

	summary.DuplicatePosts = assembly.Duplicates
	summary.DuplicateMessages = duplicateMessages
	summary.PostsExcluded = assembly.Excluded
	summary.MissingParents = assembly.MissingParents
	summary.CyclesDetected = assembly.Cycles
	summary.CycleTails = assembly.CycleTails
	summary.Threads = len(threads)
	summary.Conversations = len(conversations)
	for _, t := range threads {
		if t.IsSingleton() {
			summary.SingletonThreads++
		} else {
			summary.MultiPostThreads++
		}
		if t.Degraded() {
			summary.DegradedThreads++
		}
	}

	result := &domain.Result{
		Threads:         threads,
		Conversations:   conversations,
		PostActivity:    e.activity.Analyze(postTimes(threads)),
		MessageActivity: e.activity.Analyze(messageTimes(conversations)),
		Summary:         summary,
	}

	e.log.Info("run complete",
		"run_id", summary.RunId,
		"threads", summary.Threads,
		"conversations", summary.Conversations,
		"malformed", summary.Skipped(),
		"degraded_threads", summary.DegradedThreads,
		"duration", time.Since(start))
	return result, nil
}

func postTimes(threads []*domain.Thread) []time.Time {
	var times []time.Time
	for _, t := range threads {
		for _, p := range t.Posts {
			times = append(times, p.CreatedAt)
		}
	}
	return times
}

func messageTimes(conversations []*domain.Conversation) []time.Time {
	var times []time.Time
	for _, c := range conversations {
		for _, m := range c.Messages {
			times = append(times, m.CreatedAt)
		}
	}
	return times
}
