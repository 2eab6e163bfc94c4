package domain

import "time"

// Timestamped is anything the temporal annotator can order and measure.
type Timestamped interface {
	Timestamp() time.Time
}

// TemporalAnnotation describes the gap between item Index-1 and item Index.
type TemporalAnnotation struct {
	Index               int           `json:"index"`
	Gap                 time.Duration `json:"gap"`
	IsSignificant       bool          `json:"is_significant"`
	RelativeDescription string        `json:"relative_description,omitempty"`
}

// ResponseTimeStats aggregates significant gaps of one thread or conversation.
// Duration and MessageCount cover all items regardless of significance.
type ResponseTimeStats struct {
	Mean            time.Duration `json:"mean"`
	Median          time.Duration `json:"median"`
	P90             time.Duration `json:"p90"`
	Duration        time.Duration `json:"duration"`
	MessageCount    int           `json:"message_count"`
	SignificantGaps int           `json:"significant_gaps"`
}

// Burst is a merged run of windows whose item rate exceeded the burst multiplier.
type Burst struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Count    int       `json:"count"`
	PeakRate float64   `json:"peak_rate"` // items per hour
}

// ActivityPattern buckets a whole item set by hour-of-day and day-of-week.
type ActivityPattern struct {
	Items        int            `json:"items"`
	Location     string         `json:"location"`
	ByHour       [24]int        `json:"by_hour"`
	ByWeekday    [7]int         `json:"by_weekday"`
	PeakHours    []int          `json:"peak_hours"`
	PeakWeekdays []time.Weekday `json:"peak_weekdays"`
	MeanRate     float64        `json:"mean_rate"` // items per hour over the whole span
	Bursts       []Burst        `json:"bursts"`
}
