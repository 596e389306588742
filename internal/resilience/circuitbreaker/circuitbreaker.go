// Package circuitbreaker wraps github.com/sony/gobreaker to protect
// outbound calls to external dataset hosts from cascading failures.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Config holds the configuration for a circuit breaker.
type Config struct {
	// Name is the circuit breaker name for logging and metrics.
	Name string

	// MaxRequests is the number of requests allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state used to clear
	// success/failure counts.
	Interval time.Duration

	// Timeout is how long to stay open before probing again.
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the circuit
	// (0.6 means 60% failures).
	FailureThreshold float64

	// MinRequests is the minimum request count before the ratio is
	// evaluated.
	MinRequests uint32
}

// DefaultConfig returns a general-purpose circuit breaker configuration.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// DatasetFetchConfig returns a configuration tuned for government dataset
// downloads: generous timeout since refresh runs are daily, and a high
// threshold so one flaky file does not block the others.
func DatasetFetchConfig() Config {
	return Config{
		Name:             "dataset-fetch",
		MaxRequests:      3,
		Interval:         60 * time.Second,
		Timeout:          5 * time.Minute,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// CircuitBreaker wraps gobreaker.CircuitBreaker with logging on state
// transitions.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New creates a circuit breaker with the given configuration.
func New(cfg Config) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

// Execute runs fn through the circuit breaker. When the circuit is open
// it fails fast with gobreaker.ErrOpenState.
func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	return cb.breaker.Execute(fn)
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

// Name returns the breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsOpen reports whether the breaker is currently open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}
