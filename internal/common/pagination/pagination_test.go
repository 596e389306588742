package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFrom(t *testing.T, query string) (Params, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/datasets/cahFacilities"+query, nil)
	return ParseQueryParams(req)
}

func TestParseQueryParams_Defaults(t *testing.T) {
	params, err := parseFrom(t, "")
	require.NoError(t, err)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultLimit, params.Limit)
}

func TestParseQueryParams_Explicit(t *testing.T) {
	params, err := parseFrom(t, "?page=3&limit=100")
	require.NoError(t, err)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 100, params.Limit)
}

func TestParseQueryParams_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"zero page", "?page=0"},
		{"negative page", "?page=-2"},
		{"non-numeric page", "?page=abc"},
		{"zero limit", "?limit=0"},
		{"limit over max", "?limit=999999"},
		{"non-numeric limit", "?limit=lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFrom(t, tt.query)
			assert.Error(t, err)
		})
	}
}

func TestSlice(t *testing.T) {
	items := make([]int, 10)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name       string
		params     Params
		wantItems  []int
		wantPages  int
	}{
		{"first page", Params{Page: 1, Limit: 4}, []int{0, 1, 2, 3}, 3},
		{"middle page", Params{Page: 2, Limit: 4}, []int{4, 5, 6, 7}, 3},
		{"short last page", Params{Page: 3, Limit: 4}, []int{8, 9}, 3},
		{"past the end", Params{Page: 9, Limit: 4}, []int{}, 3},
		{"single page", Params{Page: 1, Limit: 100}, items, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := Slice(items, tt.params)
			assert.Equal(t, tt.wantItems, got)
			assert.Equal(t, 10, meta.Total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
		})
	}
}

func TestSlice_Empty(t *testing.T) {
	got, meta := Slice([]string{}, Params{Page: 1, Limit: 10})
	assert.Empty(t, got)
	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}
