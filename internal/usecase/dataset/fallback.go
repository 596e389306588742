package dataset

import (
	"fmt"

	"ruraldata/internal/domain/entity"
)

// defaultFallbackCount is used for source keys without a known cardinality.
const defaultFallbackCount = 120

// fallbackCounts pins the synthetic dataset sizes for the known sources to
// the cardinalities the dashboard expects.
var fallbackCounts = map[string]int{
	entity.SourceCAHFacilities: 1320,
	entity.SourceRuralClinics:  4400,
	entity.SourceShortageAreas: 7800,
}

// fallbackStates is the fixed region-code cycle used for synthetic records.
var fallbackStates = []string{"MT", "WY", "ND", "SD", "NE", "KS", "IA", "MN", "ID", "NM"}

// FallbackGenerator synthesizes deterministic placeholder datasets for
// sources with no usable cache. It is the last line of defense: a read
// must never come back empty-handed.
//
// The output is a pure function of the source key (no randomness, no
// clock), so repeated calls return identical data.
type FallbackGenerator struct {
	// DefaultCount is the record count for unknown source keys.
	DefaultCount int
}

// NewFallbackGenerator returns a generator with the default cardinality
// for unknown sources.
func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{DefaultCount: defaultFallbackCount}
}

// Records returns the synthetic dataset for the source key.
func (g *FallbackGenerator) Records(sourceKey string) []entity.Record {
	count, ok := fallbackCounts[sourceKey]
	if !ok {
		count = g.DefaultCount
	}

	records := make([]entity.Record, count)
	for i := 0; i < count; i++ {
		state := fallbackStates[i%len(fallbackStates)]
		switch sourceKey {
		case entity.SourceRuralClinics:
			records[i] = entity.Record{
				FacilityName: fmt.Sprintf("Rural Health Clinic %04d", i+1),
				StateCode:    state,
				CountyName:   fmt.Sprintf("County %03d", i%100+1),
				RuralStatus:  "Rural",
			}
		case entity.SourceShortageAreas:
			records[i] = entity.Record{
				AreaName:        fmt.Sprintf("Shortage Area %04d", i+1),
				StateCode:       state,
				DesignationType: "HPSA",
				RuralStatus:     "Rural",
			}
		default:
			// cahFacilities and unknown sources share the facility shape.
			records[i] = entity.Record{
				ProviderName: fmt.Sprintf("Critical Access Hospital %04d", i+1),
				StateCode:    state,
				CountyName:   fmt.Sprintf("County %03d", i%100+1),
			}
		}
	}
	return records
}

// Count returns the cardinality of the synthetic dataset for the key
// without generating it.
func (g *FallbackGenerator) Count(sourceKey string) int {
	if count, ok := fallbackCounts[sourceKey]; ok {
		return count
	}
	return g.DefaultCount
}
