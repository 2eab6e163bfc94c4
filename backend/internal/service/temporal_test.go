package service

import (
	"testing"
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateSequence(t *testing.T) {
	t.Run("conversation gaps", func(t *testing.T) {
		m1 := message("1", "c", "X", at(0))
		m2 := message("2", "c", "Y", at(2*time.Minute))
		m3 := message("3", "c", "X", at(10*time.Minute))

		annotations, stats := AnnotateSequence(domain.NewView([]*domain.Message{&m1, &m2, &m3}), 5*time.Minute)

		require.Len(t, annotations, 2)
		assert.Equal(t, domain.TemporalAnnotation{Index: 1, Gap: 2 * time.Minute}, annotations[0])
		assert.Equal(t, domain.TemporalAnnotation{
			Index:               2,
			Gap:                 8 * time.Minute,
			IsSignificant:       true,
			RelativeDescription: "8 minutes later",
		}, annotations[1])
		assert.Equal(t, domain.ResponseTimeStats{
			Mean:            8 * time.Minute,
			Median:          8 * time.Minute,
			P90:             8 * time.Minute,
			Duration:        10 * time.Minute,
			MessageCount:    3,
			SignificantGaps: 1,
		}, stats)
	})

	t.Run("gap equal to threshold is not significant", func(t *testing.T) {
		p1 := post("1", "u", at(0))
		p2 := post("2", "u", at(5*time.Minute))
		annotations, stats := AnnotateSequence(domain.NewView([]*domain.Post{&p1, &p2}), 5*time.Minute)

		require.Len(t, annotations, 1)
		assert.False(t, annotations[0].IsSignificant)
		assert.Empty(t, annotations[0].RelativeDescription)
		assert.Zero(t, stats.SignificantGaps)
		assert.Zero(t, stats.Mean)
		assert.Equal(t, 5*time.Minute, stats.Duration)
	})

	t.Run("short sequences", func(t *testing.T) {
		annotations, stats := AnnotateSequence(domain.NewView([]*domain.Message{}), time.Minute)
		assert.Empty(t, annotations)
		assert.Equal(t, domain.ResponseTimeStats{}, stats)

		m := message("1", "c", "X", at(0))
		annotations, stats = AnnotateSequence(domain.NewView([]*domain.Message{&m}), time.Minute)
		assert.Empty(t, annotations)
		assert.Equal(t, domain.ResponseTimeStats{MessageCount: 1}, stats)
	})

	t.Run("significance matches threshold for every gap", func(t *testing.T) {
		offsets := []time.Duration{0, time.Second, 6 * time.Minute, 6*time.Minute + time.Second, 2 * time.Hour, 26 * time.Hour}
		var posts []*domain.Post
		for i, off := range offsets {
			p := post(string(rune('a'+i)), "u", at(off))
			posts = append(posts, &p)
		}
		threshold := 5 * time.Minute
		annotations, stats := AnnotateSequence(domain.NewView(posts), threshold)

		significant := 0
		for _, a := range annotations {
			assert.Equal(t, a.Gap > threshold, a.IsSignificant)
			assert.Equal(t, a.IsSignificant, a.RelativeDescription != "")
			if a.IsSignificant {
				significant++
			}
		}
		assert.Equal(t, significant, stats.SignificantGaps)
		assert.Equal(t, "1 day later", annotations[4].RelativeDescription)
	})

	t.Run("reversed view yields negative gaps", func(t *testing.T) {
		p1 := post("1", "u", at(0))
		p2 := post("2", "u", at(10*time.Minute))
		annotations, stats := AnnotateSequence(domain.NewView([]*domain.Post{&p1, &p2}).Reverse(), 5*time.Minute)

		require.Len(t, annotations, 1)
		assert.Equal(t, -10*time.Minute, annotations[0].Gap)
		assert.False(t, annotations[0].IsSignificant)
		assert.Equal(t, -10*time.Minute, stats.Duration)
	})
}

func TestDistribution(t *testing.T) {
	minutes := func(ns ...int) []time.Duration {
		out := make([]time.Duration, len(ns))
		for i, n := range ns {
			out[i] = time.Duration(n) * time.Minute
		}
		return out
	}

	testCases := []struct {
		name              string
		gaps              []time.Duration
		mean, median, p90 time.Duration
	}{
		{name: "empty"},
		{name: "single", gaps: minutes(7), mean: 7 * time.Minute, median: 7 * time.Minute, p90: 7 * time.Minute},
		{name: "even count", gaps: minutes(4, 1, 3, 2), mean: 150 * time.Second, median: 150 * time.Second, p90: 4 * time.Minute},
		{name: "ten", gaps: minutes(10, 9, 8, 7, 6, 5, 4, 3, 2, 1), mean: 330 * time.Second, median: 330 * time.Second, p90: 9 * time.Minute},
		{name: "eleven", gaps: minutes(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11), mean: 6 * time.Minute, median: 6 * time.Minute, p90: 10 * time.Minute},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mean, median, p90 := distribution(tc.gaps)
			assert.Equal(t, tc.mean, mean)
			assert.Equal(t, tc.median, median)
			assert.Equal(t, tc.p90, p90)
		})
	}
}

func TestTemporalAnnotator(t *testing.T) {
	a := NewTemporalAnnotator(5 * time.Minute)

	t.Run("empty conversation", func(t *testing.T) {
		c := &domain.Conversation{Id: "c"}
		a.Conversation(c)
		assert.Empty(t, c.Messages)
		assert.Empty(t, c.Annotations)
		assert.Equal(t, domain.ResponseTimeStats{}, c.Stats)
	})

	t.Run("thread", func(t *testing.T) {
		p1 := post("1", "u", at(0))
		p2 := post("2", "u", at(time.Hour))
		th := &domain.Thread{RootId: "1", Posts: []*domain.Post{&p1, &p2}}
		a.Thread(th)
		require.Len(t, th.Annotations, 1)
		assert.Equal(t, "1 hour later", th.Annotations[0].RelativeDescription)
		assert.Equal(t, 2, th.Stats.MessageCount)
		assert.Equal(t, time.Hour, th.Stats.Duration)
		assert.Equal(t, time.Hour, th.Annotations[0].Gap)
	})
}
