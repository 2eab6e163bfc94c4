package service

import (
	"slices"
	"time"

	"github.com/itchan-dev/threadline/backend/internal/utils"
	"github.com/itchan-dev/threadline/shared/domain"
)

// AnnotateSequence computes per-gap annotations and response-time statistics
// for items already ordered oldest-first. Statistics cover only gaps strictly
// greater than threshold; Duration and MessageCount cover every item.
// Sequences of length 0 or 1 yield no annotations and zero statistics.
func AnnotateSequence[T domain.Timestamped](items domain.View[T], threshold time.Duration) ([]domain.TemporalAnnotation, domain.ResponseTimeStats) {
	n := items.Len()
	stats := domain.ResponseTimeStats{MessageCount: n}
	if n < 2 {
		return nil, stats
	}

	annotations := make([]domain.TemporalAnnotation, 0, n-1)
	var significant []time.Duration
	for i := 1; i < n; i++ {
		gap := items.At(i).Timestamp().Sub(items.At(i - 1).Timestamp())
		a := domain.TemporalAnnotation{Index: i, Gap: gap, IsSignificant: gap > threshold}
		if a.IsSignificant {
			a.RelativeDescription = utils.RelativeDescription(gap)
			significant = append(significant, gap)
		}
		annotations = append(annotations, a)
	}

	stats.Duration = items.At(n - 1).Timestamp().Sub(items.At(0).Timestamp())
	stats.SignificantGaps = len(significant)
	stats.Mean, stats.Median, stats.P90 = distribution(significant)
	return annotations, stats
}

// distribution returns mean, median and nearest-rank p90. Zero for no gaps.
func distribution(gaps []time.Duration) (mean, median, p90 time.Duration) {
	n := len(gaps)
	if n == 0 {
		return 0, 0, 0
	}
	sorted := slices.Clone(gaps)
	slices.Sort(sorted)

	var sum time.Duration
	for _, g := range sorted {
		sum += g
	}
	mean = sum / time.Duration(n)

	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	rank := (9*n + 9) / 10 // ceil(0.9 * n)
	p90 = sorted[rank-1]
	return mean, median, p90
}

// TemporalAnnotator attaches gap annotations and statistics to threads and conversations.
type TemporalAnnotator struct {
	threshold time.Duration
}

func NewTemporalAnnotator(threshold time.Duration) *TemporalAnnotator {
	return &TemporalAnnotator{threshold: threshold}
}

// Thread annotates t in its oldest-first order.
func (a *TemporalAnnotator) Thread(t *domain.Thread) {
	t.Annotations, t.Stats = AnnotateSequence(t.OldestFirst(), a.threshold)
}

func (a *TemporalAnnotator) Conversation(c *domain.Conversation) {
	c.Annotations, c.Stats = AnnotateSequence(c.Chronological(), a.threshold)
}
