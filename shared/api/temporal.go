package api

import (
	"github.com/itchan-dev/threadline/shared/domain"
)

// Durations are exposed as seconds so clients need no Go duration parsing.

type AnnotationResponse struct {
	Index               int     `json:"index"`
	GapSeconds          float64 `json:"gap_seconds"`
	IsSignificant       bool    `json:"is_significant"`
	RelativeDescription string  `json:"relative_description,omitempty"`
}

type StatsResponse struct {
	MeanSeconds     float64 `json:"mean_seconds"`
	MedianSeconds   float64 `json:"median_seconds"`
	P90Seconds      float64 `json:"p90_seconds"`
	DurationSeconds float64 `json:"duration_seconds"`
	MessageCount    int     `json:"message_count"`
	SignificantGaps int     `json:"significant_gaps"`
}

func NewAnnotations(in []domain.TemporalAnnotation) []AnnotationResponse {
	out := make([]AnnotationResponse, len(in))
	for i, a := range in {
		out[i] = AnnotationResponse{
			Index:               a.Index,
			GapSeconds:          a.Gap.Seconds(),
			IsSignificant:       a.IsSignificant,
			RelativeDescription: a.RelativeDescription,
		}
	}
	return out
}

func NewStats(s domain.ResponseTimeStats) StatsResponse {
	return StatsResponse{
		MeanSeconds:     s.Mean.Seconds(),
		MedianSeconds:   s.Median.Seconds(),
		P90Seconds:      s.P90.Seconds(),
		DurationSeconds: s.Duration.Seconds(),
		MessageCount:    s.MessageCount,
		SignificantGaps: s.SignificantGaps,
	}
}

type ActivityResponse struct {
	Posts    domain.ActivityPattern `json:"posts"`
	Messages domain.ActivityPattern `json:"messages"`
}
