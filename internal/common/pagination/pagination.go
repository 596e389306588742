// Package pagination provides page/limit query parsing and slicing for
// dataset record responses, which can run to thousands of rows per source.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the page size used when the request names none.
	DefaultLimit = 500
	// MaxLimit caps the page size a client may request.
	MaxLimit = 5000
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// Metadata is the pagination envelope included in paged API responses.
type Metadata struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ParseQueryParams parses page and limit from the request query string,
// applying defaults when absent and rejecting out-of-range values.
func ParseQueryParams(r *http.Request) (Params, error) {
	params := Params{Page: 1, Limit: DefaultLimit}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}

// Slice returns the page of items selected by params and the metadata
// describing it. A page past the end yields an empty slice, not an error.
func Slice[T any](items []T, params Params) ([]T, Metadata) {
	total := len(items)
	totalPages := (total + params.Limit - 1) / params.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	meta := Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages,
	}

	start := (params.Page - 1) * params.Limit
	if start >= total {
		return []T{}, meta
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return items[start:end], meta
}
