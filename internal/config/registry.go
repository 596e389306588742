// Package config loads the data source registry and refresh settings from
// the environment and optional YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"ruraldata/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

// RegistryConfig is the YAML shape of the data source registry file.
type RegistryConfig struct {
	Sources []entity.SourceDescriptor `yaml:"sources"`
}

// DefaultRegistry returns the built-in source registry used when no
// registry file is configured.
func DefaultRegistry() []entity.SourceDescriptor {
	return []entity.SourceDescriptor{
		{
			Key:           entity.SourceCAHFacilities,
			DisplayName:   "Critical Access Hospitals",
			SourceURL:     "https://data.cms.gov/provider-data/sites/default/files/resources/critical_access_hospitals.csv",
			LocalFileName: "critical_access_hospitals.csv",
		},
		{
			Key:           entity.SourceRuralClinics,
			DisplayName:   "Rural Health Clinics",
			SourceURL:     "https://data.cms.gov/provider-data/sites/default/files/resources/rural_health_clinics.csv",
			LocalFileName: "rural_health_clinics.csv",
		},
		{
			Key:           entity.SourceShortageAreas,
			DisplayName:   "Health Professional Shortage Areas",
			SourceURL:     "https://data.hrsa.gov/DataDownload/DD_Files/BCD_HPSA_FCT_DET_PC.csv",
			LocalFileName: "shortage_areas.csv",
		},
	}
}

// LoadRegistry loads source descriptors from the YAML file at path. An
// empty path returns the built-in registry.
func LoadRegistry(path string) ([]entity.SourceDescriptor, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}

	// #nosec G304 -- path is provided by trusted source (env var or CLI arg), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var cfg RegistryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}

	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("registry file %s contains no sources", path)
	}
	seenKeys := make(map[string]bool, len(cfg.Sources))
	seenFiles := make(map[string]bool, len(cfg.Sources))
	for i := range cfg.Sources {
		if err := cfg.Sources[i].Validate(); err != nil {
			return nil, fmt.Errorf("registry entry %d: %w", i, err)
		}
		if seenKeys[cfg.Sources[i].Key] {
			return nil, fmt.Errorf("registry file %s: duplicate source key %q", path, cfg.Sources[i].Key)
		}
		seenKeys[cfg.Sources[i].Key] = true

		// Staged downloads share one directory, so two sources with the
		// same file name would clobber each other's staging file when
		// refreshed in parallel.
		file := filepath.Base(cfg.Sources[i].LocalFileName)
		if seenFiles[file] {
			return nil, fmt.Errorf("registry file %s: duplicate local file name %q", path, cfg.Sources[i].LocalFileName)
		}
		seenFiles[file] = true
	}
	return cfg.Sources, nil
}
