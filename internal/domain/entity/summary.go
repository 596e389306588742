package entity

import "time"

// SourceResult records the outcome of refreshing a single dataset within
// one orchestration run.
type SourceResult struct {
	Success     bool       `json:"success"`
	Count       int        `json:"count,omitempty"`
	Error       string     `json:"error,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// RefreshSummary is the persisted record of one orchestration run. It is
// rewritten in full after every run, whether sources succeeded or not.
type RefreshSummary struct {
	// RunID uniquely identifies the orchestration run across logs and
	// the persisted summary.
	RunID string `json:"runId"`

	LastUpdateAttempt time.Time               `json:"lastUpdateAttempt"`
	Results           map[string]SourceResult `json:"results"`

	// NextUpdate is when the next scheduled run is expected:
	// run start + refresh interval, independent of per-source outcomes.
	NextUpdate time.Time `json:"nextUpdate"`
}

// Succeeded returns how many sources refreshed successfully in this run.
func (s *RefreshSummary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Success {
			n++
		}
	}
	return n
}

// Failed returns how many sources failed in this run.
func (s *RefreshSummary) Failed() int {
	return len(s.Results) - s.Succeeded()
}
