package refresh

import (
	"strings"

	"ruraldata/internal/domain/entity"
)

// Column headers expected in the upstream CSV files. Matching is heuristic
// string containment, not schema validation; upstream header drift shows up
// as shrinking record counts, which the refresh metrics surface.
const (
	colProviderType    = "Provider Type"
	colProviderName    = "Provider Name"
	colFacilityName    = "Facility Name"
	colAreaName        = "Area Name"
	colState           = "State"
	colCountyName      = "County Name"
	colAddress         = "Address"
	colCity            = "City"
	colZip             = "Zip Code"
	colDesignationType = "Designation Type"
	colRuralStatus     = "Rural Status"
)

// FilterRows applies the per-dataset row predicate and projects the rows
// that pass into domain records.
//
// Predicates by source key:
//   - cahFacilities: "Provider Type" contains "critical access"
//   - ruralClinics:  "Provider Type" contains "rural" or "clinic"
//   - shortageAreas: "Rural Status" contains "rural"
//
// All matching is case-insensitive. An unrecognized source key passes every
// row through unfiltered rather than silently dropping the whole dataset.
func FilterRows(rows []entity.RawRow, sourceKey string) []entity.Record {
	records := make([]entity.Record, 0, len(rows))
	for _, row := range rows {
		if !keepRow(row, sourceKey) {
			continue
		}
		records = append(records, projectRow(row, sourceKey))
	}
	return records
}

func keepRow(row entity.RawRow, sourceKey string) bool {
	switch sourceKey {
	case entity.SourceCAHFacilities:
		return containsFold(row[colProviderType], "critical access")
	case entity.SourceRuralClinics:
		return containsFold(row[colProviderType], "rural") ||
			containsFold(row[colProviderType], "clinic")
	case entity.SourceShortageAreas:
		return containsFold(row[colRuralStatus], "rural")
	default:
		return true
	}
}

func projectRow(row entity.RawRow, sourceKey string) entity.Record {
	switch sourceKey {
	case entity.SourceCAHFacilities:
		return entity.Record{
			ProviderName: row[colProviderName],
			StateCode:    row[colState],
			CountyName:   row[colCountyName],
			Address:      row[colAddress],
			City:         row[colCity],
			Zip:          row[colZip],
		}
	case entity.SourceRuralClinics:
		return entity.Record{
			FacilityName: row[colFacilityName],
			StateCode:    row[colState],
			CountyName:   row[colCountyName],
			RuralStatus:  row[colRuralStatus],
		}
	case entity.SourceShortageAreas:
		return entity.Record{
			AreaName:        row[colAreaName],
			StateCode:       row[colState],
			DesignationType: row[colDesignationType],
			RuralStatus:     row[colRuralStatus],
		}
	default:
		// Best-effort projection so unknown sources still yield usable
		// records instead of empty ones.
		return entity.Record{
			ProviderName:    row[colProviderName],
			FacilityName:    row[colFacilityName],
			AreaName:        row[colAreaName],
			StateCode:       row[colState],
			CountyName:      row[colCountyName],
			Address:         row[colAddress],
			City:            row[colCity],
			Zip:             row[colZip],
			DesignationType: row[colDesignationType],
			RuralStatus:     row[colRuralStatus],
		}
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
