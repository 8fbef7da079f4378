package driver

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"example.com/workouts/internal/domain"
)

// packageEntry is one item of a package feed file.
type packageEntry struct {
	Type string    `yaml:"type"`
	Data []float64 `yaml:"data"`
}

// LoadPackages decodes a YAML (or JSON) list of {type, data} entries.
func LoadPackages(r io.Reader) ([]domain.Package, error) {
	var entries []packageEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode packages: %w", err)
	}

	packages := make([]domain.Package, 0, len(entries))
	for i, e := range entries {
		if e.Type == "" {
			return nil, fmt.Errorf("decode packages: entry %d has no type", i)
		}
		packages = append(packages, domain.Package{Code: e.Type, Data: e.Data})
	}
	return packages, nil
}

// LoadPackagesFile reads packages from path.
func LoadPackagesFile(path string) ([]domain.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPackages(f)
}
