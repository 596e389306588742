package dataset

import (
	"testing"

	"ruraldata/internal/domain/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFallbackGenerator_Counts(t *testing.T) {
	g := NewFallbackGenerator()

	tests := []struct {
		sourceKey string
		want      int
	}{
		{entity.SourceCAHFacilities, 1320},
		{entity.SourceRuralClinics, 4400},
		{entity.SourceShortageAreas, 7800},
		{"unknownSource", 120},
	}

	for _, tt := range tests {
		t.Run(tt.sourceKey, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Count(tt.sourceKey))
			assert.Len(t, g.Records(tt.sourceKey), tt.want)
		})
	}
}

func TestFallbackGenerator_Deterministic(t *testing.T) {
	g := NewFallbackGenerator()

	first := g.Records(entity.SourceRuralClinics)
	second := g.Records(entity.SourceRuralClinics)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("fallback records differ between calls (-first +second):\n%s", diff)
	}
}

func TestFallbackGenerator_CyclesStateCodes(t *testing.T) {
	g := NewFallbackGenerator()

	records := g.Records(entity.SourceCAHFacilities)
	seen := map[string]bool{}
	for _, r := range records {
		assert.NotEmpty(t, r.StateCode)
		seen[r.StateCode] = true
	}
	assert.Len(t, seen, len(fallbackStates))
}

func TestFallbackGenerator_VariantShapes(t *testing.T) {
	g := NewFallbackGenerator()

	cah := g.Records(entity.SourceCAHFacilities)[0]
	assert.NotEmpty(t, cah.ProviderName)
	assert.NotEmpty(t, cah.CountyName)
	assert.Empty(t, cah.AreaName)

	clinic := g.Records(entity.SourceRuralClinics)[0]
	assert.NotEmpty(t, clinic.FacilityName)
	assert.NotEmpty(t, clinic.RuralStatus)
	assert.Empty(t, clinic.ProviderName)

	area := g.Records(entity.SourceShortageAreas)[0]
	assert.NotEmpty(t, area.AreaName)
	assert.NotEmpty(t, area.DesignationType)
	assert.Empty(t, area.FacilityName)
}
