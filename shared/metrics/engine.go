package metrics

import (
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "threadline"

var (
	runsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Completed reconstruction runs",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall time of a reconstruction run",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
	})

	recordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_total",
		Help:      "Input records by kind and outcome",
	}, []string{"kind", "outcome"})

	threadsGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "threads",
		Help:      "Threads produced by the last run",
	}, []string{"shape"})

	conversationsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "conversations",
		Help:      "Conversations produced by the last run",
	})
)

// ObserveRun records one finished run.
func ObserveRun(s domain.Summary, took time.Duration) {
	runsTotal.Inc()
	runDuration.Observe(took.Seconds())

	recordsTotal.WithLabelValues("post", "read").Add(float64(s.PostsRead))
	recordsTotal.WithLabelValues("post", "malformed").Add(float64(s.MalformedPosts))
	recordsTotal.WithLabelValues("post", "duplicate").Add(float64(s.DuplicatePosts))
	recordsTotal.WithLabelValues("post", "excluded").Add(float64(s.PostsExcluded))
	recordsTotal.WithLabelValues("message", "read").Add(float64(s.MessagesRead))
	recordsTotal.WithLabelValues("message", "malformed").Add(float64(s.MalformedMessages))
	recordsTotal.WithLabelValues("message", "duplicate").Add(float64(s.DuplicateMessages))

	threadsGauge.WithLabelValues("singleton").Set(float64(s.SingletonThreads))
	threadsGauge.WithLabelValues("multi_post").Set(float64(s.MultiPostThreads))
	threadsGauge.WithLabelValues("degraded").Set(float64(s.DegradedThreads))
	conversationsGauge.Set(float64(s.Conversations))
}
