package dataset

import (
	"time"

	"ruraldata/internal/common/pagination"
	"ruraldata/internal/domain/entity"
)

// DTO is the wire shape of a dataset read response. Count is the full
// dataset size; Records holds only the requested page.
type DTO struct {
	Key         string              `json:"key"`
	DisplayName string              `json:"displayName,omitempty"`
	Records     []entity.Record     `json:"records"`
	Count       int                 `json:"count"`
	Provenance  string              `json:"provenance"`
	Source      string              `json:"source,omitempty"`
	LastUpdated *time.Time          `json:"lastUpdated,omitempty"`
	Pagination  pagination.Metadata `json:"pagination"`
}

// SourceDTO is the wire shape of one registry entry in the source listing,
// including the current cache status for that source.
type SourceDTO struct {
	Key         string     `json:"key"`
	DisplayName string     `json:"displayName"`
	SourceURL   string     `json:"sourceUrl"`
	Cached      bool       `json:"cached"`
	Count       int        `json:"count,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}
