package entity

import "time"

// CacheEntry is the persisted unit for one dataset: the filtered records
// plus provenance metadata. Entries are written wholesale on every
// successful refresh and are read-only between refreshes.
//
// Invariant: Count == len(Data).
type CacheEntry struct {
	Data        []Record  `json:"data"`
	LastUpdated time.Time `json:"lastUpdated"`
	Source      string    `json:"source"`
	Count       int       `json:"count"`
}

// Age returns how old the entry is relative to now.
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.LastUpdated)
}

// Validate checks the count invariant. A violated invariant means the
// entry was corrupted on disk and should be treated as a cache miss.
func (e *CacheEntry) Validate() error {
	if e.Count != len(e.Data) {
		return &ValidationError{
			Field:   "count",
			Message: "count does not match the number of records",
		}
	}
	return nil
}
