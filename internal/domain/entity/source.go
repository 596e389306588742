package entity

import "fmt"

// Known source keys for the registered government datasets.
const (
	SourceCAHFacilities = "cahFacilities"
	SourceRuralClinics  = "ruralClinics"
	SourceShortageAreas = "shortageAreas"
)

// SourceDescriptor is an immutable registry entry describing one external
// dataset: where to download it from and what to call the local copy.
// Descriptors are created at process start and never mutated afterwards.
type SourceDescriptor struct {
	// Key is the stable identifier for the dataset (e.g. "cahFacilities").
	// It doubles as the cache file base name.
	Key string `yaml:"key" json:"key"`

	// DisplayName is the human-readable dataset name shown by the boundary layer.
	DisplayName string `yaml:"displayName" json:"displayName"`

	// SourceURL is the HTTPS location the dataset is downloaded from.
	SourceURL string `yaml:"sourceUrl" json:"sourceUrl"`

	// LocalFileName is the file name used for the downloaded raw copy.
	LocalFileName string `yaml:"localFileName" json:"localFileName"`
}

// Validate checks that the descriptor carries everything the refresh
// pipeline needs.
func (d *SourceDescriptor) Validate() error {
	if d.Key == "" {
		return &ValidationError{Field: "key", Message: "must not be empty"}
	}
	if d.SourceURL == "" {
		return &ValidationError{Field: "sourceUrl", Message: "must not be empty"}
	}
	if d.LocalFileName == "" {
		return &ValidationError{Field: "localFileName", Message: "must not be empty"}
	}
	return nil
}

func (d *SourceDescriptor) String() string {
	return fmt.Sprintf("%s (%s)", d.Key, d.SourceURL)
}
