package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"dataset key", "/datasets/cahFacilities", "/datasets/{key}"},
		{"another dataset key", "/datasets/ruralClinics", "/datasets/{key}"},
		{"export", "/datasets/cahFacilities/export", "/datasets/{key}/export"},
		{"dataset list", "/datasets", "/datasets"},
		{"admin refresh", "/admin/refresh", "/admin/refresh"},
		{"admin status", "/admin/status", "/admin/status"},
		{"health", "/health", "/health"},
		{"readiness", "/health/ready", "/health/ready"},
		{"metrics", "/metrics", "/metrics"},
		{"root", "/", "/"},
		{"query string stripped", "/datasets/cahFacilities?page=2&limit=10", "/datasets/{key}"},
		{"trailing slash stripped", "/datasets/cahFacilities/", "/datasets/{key}"},
		{"unknown route", "/totally/else", "/unmatched"},
		{"unknown dataset subroute", "/datasets/key/other", "/unmatched"},
		{"empty key segment", "/datasets//export", "/unmatched"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePath(tt.path))
		})
	}
}

// Arbitrary client-supplied keys must all collapse to one label value;
// per-key labels would grow the request metrics without bound.
func TestNormalizePath_BoundedCardinality(t *testing.T) {
	seen := map[string]struct{}{}
	for _, key := range []string{"a", "b", "c", "zzz", "0000", "whatever"} {
		seen[normalizePath("/datasets/"+key)] = struct{}{}
	}
	assert.Len(t, seen, 1)
}
