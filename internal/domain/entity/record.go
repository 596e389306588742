package entity

// Record is one row of a cached dataset after type-specific filtering.
//
// The three dataset variants share this single shape; which fields are
// populated depends on the source key:
//   - cahFacilities: ProviderName, StateCode, CountyName, Address, City, Zip
//   - ruralClinics:  FacilityName, StateCode, CountyName, RuralStatus
//   - shortageAreas: AreaName, StateCode, DesignationType, RuralStatus
//
// All fields are strings. A column absent from the source CSV maps to the
// empty string, never to a null; consumers can rely on that.
type Record struct {
	ProviderName    string `json:"providerName,omitempty" csv:"provider_name,omitempty"`
	FacilityName    string `json:"facilityName,omitempty" csv:"facility_name,omitempty"`
	AreaName        string `json:"areaName,omitempty" csv:"area_name,omitempty"`
	StateCode       string `json:"stateCode" csv:"state_code"`
	CountyName      string `json:"countyName,omitempty" csv:"county_name,omitempty"`
	Address         string `json:"address,omitempty" csv:"address,omitempty"`
	City            string `json:"city,omitempty" csv:"city,omitempty"`
	Zip             string `json:"zip,omitempty" csv:"zip,omitempty"`
	DesignationType string `json:"designationType,omitempty" csv:"designation_type,omitempty"`
	RuralStatus     string `json:"ruralStatus,omitempty" csv:"rural_status,omitempty"`
}
