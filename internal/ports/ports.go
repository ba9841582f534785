// Package ports defines the core interfaces that form the contract
// between the domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the engine
// testable without its observability stack.
package ports

import (
	"time"

	"github.com/ahrav/go-rostrum/internal/domain"
)

// Ranker is a binary ranking function used to order candidate pairings
// for a subject. Rank returns -1 to prefer a, 1 to prefer b, and 0 for
// no preference; ties fall through to the next ranker in a configured
// chain.
//
// Rankers must be pure functions of their inputs: no ranker may mutate
// the context or read ambient state, so chains stay deterministic and
// safe for concurrent use.
type Ranker interface {
	// Name returns a unique identifier for this ranker.
	// The name is used for configuration and error reporting.
	Name() string

	// Rank compares two candidates for the subject under the given
	// context and returns the three-way preference signal.
	Rank(subject, a, b string, rc domain.RankContext) int

	// Validate checks the ranker's configuration and returns an error
	// describing what is invalid, or nil. It is typically called
	// during chain construction.
	Validate() error
}

// MetricsCollector defines the interface for collecting operational
// metrics. Implementations should integrate with observability
// platforms like Prometheus, OpenTelemetry, or custom monitoring
// solutions. The engine treats a nil collector as a no-op.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	// This is useful for tracking events like allocations run,
	// prechecks failed, etc.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	// This is useful for tracking values like squares produced or
	// venues left unassigned.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram.
	// This is useful for tracking distributions like bracket sizes or
	// score spreads.
	RecordHistogram(metric string, value float64, labels map[string]string)
}
