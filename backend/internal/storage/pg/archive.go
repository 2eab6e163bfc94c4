package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
	internal_errors "github.com/itchan-dev/threadline/shared/errors"
	shared_pg "github.com/itchan-dev/threadline/shared/storage/pg"
	"github.com/lib/pq"
)

// SaveResult writes a whole run in one transaction. Rows are bulk loaded with COPY.
func (s *Storage) SaveResult(ctx context.Context, res *domain.Result) error {
	start := time.Now()
	summary, err := json.Marshal(res.Summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	err = shared_pg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO runs (id, summary) VALUES ($1, $2)",
			res.Summary.RunId, summary,
		); err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}
		if err := saveThreads(ctx, tx, res.Summary.RunId, res.Threads); err != nil {
			return err
		}
		return saveConversations(ctx, tx, res.Summary.RunId, res.Conversations)
	})
	if err != nil {
		return err
	}

	s.log.Info("run archived",
		"run_id", res.Summary.RunId,
		"threads", len(res.Threads),
		"conversations", len(res.Conversations),
		"duration", time.Since(start))
	return nil
}

// copyRows streams rows into table via COPY FROM STDIN.
func copyRows(ctx context.Context, tx *sql.Tx, table string, columns []string, rows func(add func(values ...any) error) error) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return fmt.Errorf("failed to prepare copy into %s: %w", table, err)
	}
	defer stmt.Close()

	add := func(values ...any) error {
		_, err := stmt.ExecContext(ctx, values...)
		return err
	}
	if err := rows(add); err != nil {
		return fmt.Errorf("failed to copy into %s: %w", table, err)
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to flush copy into %s: %w", table, err)
	}
	return nil
}

func saveThreads(ctx context.Context, tx *sql.Tx, runId string, threads []*domain.Thread) error {
	err := copyRows(ctx, tx, "threads", []string{
		"run_id", "root_id", "root_reason", "post_count", "first_at", "last_at",
		"mean_gap_ns", "median_gap_ns", "p90_gap_ns", "significant_gaps",
	}, func(add func(values ...any) error) error {
		for _, t := range threads {
			first, last := t.Posts[0].CreatedAt, t.Posts[len(t.Posts)-1].CreatedAt
			if err := add(runId, t.RootId, string(t.RootReason), len(t.Posts), first, last,
				int64(t.Stats.Mean), int64(t.Stats.Median), int64(t.Stats.P90), t.Stats.SignificantGaps); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return copyRows(ctx, tx, "thread_posts", []string{
		"run_id", "root_id", "position", "post_id", "author_id", "created_at", "text",
		"reply_to_id", "gap_ns", "is_significant", "relative_description",
	}, func(add func(values ...any) error) error {
		for _, t := range threads {
			for i, p := range t.Posts {
				var replyTo any
				if id, ok := p.ReplyTo(); ok {
					replyTo = id
				}
				gap, significant, description := gapColumns(t.Annotations, i)
				if err := add(runId, t.RootId, i, p.Id, p.Author(), p.CreatedAt, p.Text,
					replyTo, gap, significant, description); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func saveConversations(ctx context.Context, tx *sql.Tx, runId string, conversations []*domain.Conversation) error {
	err := copyRows(ctx, tx, "conversations", []string{
		"run_id", "conversation_id", "message_count", "participant_count", "first_at", "last_at",
		"mean_gap_ns", "median_gap_ns", "p90_gap_ns", "significant_gaps",
	}, func(add func(values ...any) error) error {
		for _, c := range conversations {
			var first, last any
			if n := len(c.Messages); n > 0 {
				first, last = c.Messages[0].CreatedAt, c.Messages[n-1].CreatedAt
			}
			if err := add(runId, c.Id, len(c.Messages), len(c.Participants), first, last,
				int64(c.Stats.Mean), int64(c.Stats.Median), int64(c.Stats.P90), c.Stats.SignificantGaps); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return copyRows(ctx, tx, "conversation_messages", []string{
		"run_id", "conversation_id", "position", "message_id", "sender_label", "created_at", "text",
		"gap_ns", "is_significant", "relative_description",
	}, func(add func(values ...any) error) error {
		for _, c := range conversations {
			for i, m := range c.Messages {
				gap, significant, description := gapColumns(c.Annotations, i)
				if err := add(runId, c.Id, i, m.Id, c.Label(m.SenderId), m.CreatedAt, m.Text,
					gap, significant, description); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// gapColumns returns the gap leading into item i; the first item has none.
func gapColumns(annotations []domain.TemporalAnnotation, i int) (gap any, significant bool, description any) {
	if i == 0 || i-1 >= len(annotations) {
		return nil, false, nil
	}
	a := annotations[i-1]
	if a.RelativeDescription != "" {
		description = a.RelativeDescription
	}
	return int64(a.Gap), a.IsSignificant, description
}

func (s *Storage) GetRunSummary(ctx context.Context, runId string) (domain.Summary, error) {
	return getRunSummary(ctx, s.db, runId)
}

func getRunSummary(ctx context.Context, q Querier, runId string) (domain.Summary, error) {
	var raw []byte
	err := q.QueryRowContext(ctx, "SELECT summary FROM runs WHERE id = $1", runId).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Summary{}, internal_errors.NotFound
		}
		return domain.Summary{}, fmt.Errorf("failed to get run summary: %w", err)
	}
	var summary domain.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return domain.Summary{}, fmt.Errorf("failed to decode run summary: %w", err)
	}
	return summary, nil
}

// ListThreadRoots returns root ids of a run ordered like the engine orders threads.
// An unknown run is NotFound; a run without threads yields an empty list.
func (s *Storage) ListThreadRoots(ctx context.Context, runId string) ([]domain.PostId, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT root_id FROM threads WHERE run_id = $1 ORDER BY first_at, root_id COLLATE \"C\"",
		runId)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	roots := []domain.PostId{}
	for rows.Next() {
		var root domain.PostId
		if err := rows.Scan(&root); err != nil {
			return nil, fmt.Errorf("failed to scan thread root: %w", err)
		}
		roots = append(roots, root)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate threads: %w", err)
	}
	if len(roots) == 0 {
		if _, err := getRunSummary(ctx, s.db, runId); err != nil {
			return nil, err
		}
	}
	return roots, nil
}
