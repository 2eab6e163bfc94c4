package service

import (
	"slices"
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
)

// ActivityAnalyzer finds peak hours/days and bursty windows across a whole item set.
type ActivityAnalyzer struct {
	multiplier float64
	window     time.Duration
	loc        *time.Location
}

func NewActivityAnalyzer(multiplier float64, window time.Duration, loc *time.Location) *ActivityAnalyzer {
	if loc == nil {
		loc = time.UTC
	}
	return &ActivityAnalyzer{multiplier: multiplier, window: window, loc: loc}
}

// Analyze buckets times by hour-of-day and weekday and detects bursts.
// A window of burst-window length anchored at an item is bursty when it holds
// at least two items and its rate exceeds multiplier times the mean rate of
// the whole set. Overlapping bursty windows are merged.
func (a *ActivityAnalyzer) Analyze(times []time.Time) domain.ActivityPattern {
	pattern := domain.ActivityPattern{
		Items:        len(times),
		Location:     a.loc.String(),
		PeakHours:    []int{},
		PeakWeekdays: []time.Weekday{},
		Bursts:       []domain.Burst{},
	}
	if len(times) == 0 {
		return pattern
	}

	for _, t := range times {
		local := t.In(a.loc)
		pattern.ByHour[local.Hour()]++
		pattern.ByWeekday[local.Weekday()]++
	}
	pattern.PeakHours = peaks(pattern.ByHour[:])
	for _, d := range peaks(pattern.ByWeekday[:]) {
		pattern.PeakWeekdays = append(pattern.PeakWeekdays, time.Weekday(d))
	}

	sorted := slices.Clone(times)
	slices.SortFunc(sorted, time.Time.Compare)
	span := sorted[len(sorted)-1].Sub(sorted[0])
	if span <= 0 || a.window <= 0 {
		return pattern
	}
	pattern.MeanRate = float64(len(sorted)) / span.Hours()
	pattern.Bursts = a.bursts(sorted, pattern.MeanRate)
	return pattern
}

func (a *ActivityAnalyzer) bursts(sorted []time.Time, meanRate float64) []domain.Burst {
	bursts := []domain.Burst{}
	threshold := a.multiplier * meanRate
	windowHours := a.window.Hours()

	var cur *domain.Burst
	curStart, curEnd := 0, 0
	end := 0
	for i := range sorted {
		if end < i {
			end = i
		}
		limit := sorted[i].Add(a.window)
		for end < len(sorted) && sorted[end].Before(limit) {
			end++
		}
		count := end - i
		rate := float64(count) / windowHours
		if count < 2 || rate <= threshold {
			continue
		}

		last := end - 1
		if cur != nil && !sorted[i].After(cur.End) {
			if last > curEnd {
				curEnd = last
				cur.End = sorted[last]
			}
			cur.PeakRate = max(cur.PeakRate, rate)
			continue
		}
		if cur != nil {
			cur.Count = curEnd - curStart + 1
			bursts = append(bursts, *cur)
		}
		cur = &domain.Burst{Start: sorted[i], End: sorted[last], PeakRate: rate}
		curStart, curEnd = i, last
	}
	if cur != nil {
		cur.Count = curEnd - curStart + 1
		bursts = append(bursts, *cur)
	}
	return bursts
}

// peaks returns the indexes of all buckets equal to the non-zero maximum.
func peaks(buckets []int) []int {
	best := slices.Max(buckets)
	out := []int{}
	if best == 0 {
		return out
	}
	for i, v := range buckets {
		if v == best {
			out = append(out, i)
		}
	}
	return out
}
