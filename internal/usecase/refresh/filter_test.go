package refresh

import (
	"testing"

	"ruraldata/internal/domain/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterRows_CAHFacilities(t *testing.T) {
	rows := []entity.RawRow{
		{"Provider Type": "Critical Access Hospital", "Provider Name": "X"},
		{"Provider Type": "General", "Provider Name": "Y"},
	}

	got := FilterRows(rows, entity.SourceCAHFacilities)

	assert.Len(t, got, 1)
	assert.Equal(t, "X", got[0].ProviderName)
}

func TestFilterRows_CAHFacilities_CaseInsensitive(t *testing.T) {
	rows := []entity.RawRow{
		{"Provider Type": "CRITICAL ACCESS HOSPITAL", "Provider Name": "Upper"},
		{"Provider Type": "critical access hospital", "Provider Name": "Lower"},
	}

	got := FilterRows(rows, entity.SourceCAHFacilities)
	assert.Len(t, got, 2)
}

func TestFilterRows_RuralClinics(t *testing.T) {
	rows := []entity.RawRow{
		{"Provider Type": "Rural Health Clinic", "Facility Name": "A"},
		{"Provider Type": "Community Clinic", "Facility Name": "B"},
		{"Provider Type": "Urban Hospital", "Facility Name": "C"},
	}

	got := FilterRows(rows, entity.SourceRuralClinics)

	assert.Len(t, got, 2)
	assert.Equal(t, "A", got[0].FacilityName)
	assert.Equal(t, "B", got[1].FacilityName)
}

func TestFilterRows_ShortageAreas(t *testing.T) {
	rows := []entity.RawRow{
		{"Rural Status": "Rural", "Area Name": "North County"},
		{"Rural Status": "Urban", "Area Name": "Metro"},
		{"Rural Status": "Partially Rural", "Area Name": "Border"},
	}

	got := FilterRows(rows, entity.SourceShortageAreas)

	assert.Len(t, got, 2)
	assert.Equal(t, "North County", got[0].AreaName)
	assert.Equal(t, "Border", got[1].AreaName)
}

func TestFilterRows_ShortageAreas_SubstringMatch(t *testing.T) {
	// The heuristic is a case-insensitive substring check, so any status
	// containing "rural" passes, including negated phrasings.
	rows := []entity.RawRow{
		{"Rural Status": "Non-Rural", "Area Name": "Metro"},
		{"Rural Status": "RURAL", "Area Name": "Plains"},
	}

	got := FilterRows(rows, entity.SourceShortageAreas)

	assert.Len(t, got, 2)
	assert.Equal(t, "Metro", got[0].AreaName)
	assert.Equal(t, "Plains", got[1].AreaName)
}

func TestFilterRows_UnknownKeyPassesThrough(t *testing.T) {
	rows := []entity.RawRow{
		{"Provider Name": "A"},
		{"Provider Name": "B"},
	}

	got := FilterRows(rows, "somethingElse")
	assert.Len(t, got, 2)
}

func TestFilterRows_ProjectsFields(t *testing.T) {
	rows := []entity.RawRow{
		{
			"Provider Type": "Critical Access Hospital",
			"Provider Name": "Plains Medical Center",
			"State":         "KS",
			"County Name":   "Ellis",
			"Address":       "100 Main St",
			"City":          "Hays",
			"Zip Code":      "67601",
		},
	}

	got := FilterRows(rows, entity.SourceCAHFacilities)

	want := []entity.Record{{
		ProviderName: "Plains Medical Center",
		StateCode:    "KS",
		CountyName:   "Ellis",
		Address:      "100 Main St",
		City:         "Hays",
		Zip:          "67601",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FilterRows mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterRows_AbsentColumnsMapToEmptyString(t *testing.T) {
	rows := []entity.RawRow{
		{"Provider Type": "Rural Health Clinic", "Facility Name": "Solo"},
	}

	got := FilterRows(rows, entity.SourceRuralClinics)

	assert.Len(t, got, 1)
	assert.Equal(t, "Solo", got[0].FacilityName)
	assert.Equal(t, "", got[0].StateCode)
	assert.Equal(t, "", got[0].CountyName)
	assert.Equal(t, "", got[0].RuralStatus)
}

func TestFilterRows_EmptyInput(t *testing.T) {
	got := FilterRows(nil, entity.SourceCAHFacilities)
	assert.Empty(t, got)
}
