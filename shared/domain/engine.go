package domain

import (
	"runtime"
	"time"
)

const (
	DefaultSignificanceThreshold = 5 * time.Minute
	DefaultBurstMultiplier       = 3.0
	DefaultBurstWindow           = time.Hour
)

// EngineConfig is supplied by the host; the engine never reads disk or env.
type EngineConfig struct {
	SignificanceThreshold time.Duration
	BurstMultiplier       float64
	BurstWindow           time.Duration
	TargetAccount         AuthorId // empty disables the inclusion filter
	Workers               int
	Location              *time.Location
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SignificanceThreshold: DefaultSignificanceThreshold,
		BurstMultiplier:       DefaultBurstMultiplier,
		BurstWindow:           DefaultBurstWindow,
		Workers:               runtime.NumCPU(),
		Location:              time.UTC,
	}
}

// WithDefaults fills zero fields with defaults.
func (c EngineConfig) WithDefaults() EngineConfig {
	d := DefaultEngineConfig()
	if c.SignificanceThreshold <= 0 {
		c.SignificanceThreshold = d.SignificanceThreshold
	}
	if c.BurstMultiplier <= 0 {
		c.BurstMultiplier = d.BurstMultiplier
	}
	if c.BurstWindow <= 0 {
		c.BurstWindow = d.BurstWindow
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.Location == nil {
		c.Location = d.Location
	}
	return c
}

// Batch is one materialized input collection.
type Batch struct {
	Posts    []Post
	Messages []Message
}

// Result is everything the engine hands to downstream formatters.
type Result struct {
	Threads         []*Thread
	Conversations   []*Conversation
	PostActivity    ActivityPattern
	MessageActivity ActivityPattern
	Summary         Summary
}
