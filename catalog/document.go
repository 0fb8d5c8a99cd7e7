// Package catalog loads, validates, and materializes declarative
// construction catalogs into composed factory families.
package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/c360/forgekit/errors"
)

// Document is the root of a construction catalog. It declares, per family,
// the product kinds and the variants each kind stocks.
type Document struct {
	Version  string       `json:"version" yaml:"version"`
	Families []FamilySpec `json:"families" yaml:"families"`
}

// FamilySpec declares one factory family and its kinds.
type FamilySpec struct {
	Name  string     `json:"name" yaml:"name"`
	Kinds []KindSpec `json:"kinds" yaml:"kinds"`
}

// KindSpec declares one product kind and the variants stocked for it.
type KindSpec struct {
	Kind     string        `json:"kind" yaml:"kind"`
	Variants []VariantSpec `json:"variants" yaml:"variants"`
}

// VariantSpec declares one constructible variant. Spec is an opaque payload
// for the binder; the catalog itself never reads it.
type VariantSpec struct {
	Key         string         `json:"key" yaml:"key"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string         `json:"version,omitempty" yaml:"version,omitempty"`
	Spec        map[string]any `json:"spec,omitempty" yaml:"spec,omitempty"`
}

// Validate checks the document structurally: a semver version, non-empty
// names, and unique families, kinds, and variant keys. Failures wrap
// errors.ErrInvalidCatalog.
func (d *Document) Validate() error {
	if err := d.validate(); err != nil {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %w", errors.ErrInvalidCatalog, err),
			"Document", "Validate", "validate catalog")
	}
	return nil
}

func (d *Document) validate() error {
	if d.Version == "" {
		return fmt.Errorf("version is required")
	}
	if _, _, _, err := parseSemVer(d.Version); err != nil {
		return fmt.Errorf("version: %w", err)
	}

	familyNames := make(map[string]bool, len(d.Families))
	for i, fs := range d.Families {
		if fs.Name == "" {
			return fmt.Errorf("families[%d].name is required", i)
		}
		if familyNames[fs.Name] {
			return fmt.Errorf("duplicate family %q", fs.Name)
		}
		familyNames[fs.Name] = true

		kindNames := make(map[string]bool, len(fs.Kinds))
		for j, ks := range fs.Kinds {
			if ks.Kind == "" {
				return fmt.Errorf("family %q: kinds[%d].kind is required", fs.Name, j)
			}
			if kindNames[ks.Kind] {
				return fmt.Errorf("family %q: duplicate kind %q", fs.Name, ks.Kind)
			}
			kindNames[ks.Kind] = true

			variantKeys := make(map[string]bool, len(ks.Variants))
			for k, vs := range ks.Variants {
				if vs.Key == "" {
					return fmt.Errorf("family %q kind %q: variants[%d].key is required", fs.Name, ks.Kind, k)
				}
				if variantKeys[vs.Key] {
					return fmt.Errorf("family %q kind %q: duplicate variant %q", fs.Name, ks.Kind, vs.Key)
				}
				variantKeys[vs.Key] = true
			}
		}
	}

	return nil
}

// Clone creates a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return &Document{}
	}

	data, err := json.Marshal(d)
	if err != nil {
		copied := *d
		return &copied
	}

	var clone Document
	if err := json.Unmarshal(data, &clone); err != nil {
		copied := *d
		return &copied
	}

	return &clone
}

// String returns an indented JSON rendering of the document.
func (d *Document) String() string {
	data, _ := json.MarshalIndent(d, "", "  ")
	return string(data)
}

// CompareVersions compares two semver version strings.
// Returns:
//
//	-1 if v1 < v2
//	 0 if v1 == v2
//	 1 if v1 > v2
//	error if either version is invalid
func CompareVersions(v1, v2 string) (int, error) {
	major1, minor1, patch1, err := parseSemVer(v1)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", v1, err)
	}

	major2, minor2, patch2, err := parseSemVer(v2)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", v2, err)
	}

	if major1 != major2 {
		if major1 > major2 {
			return 1, nil
		}
		return -1, nil
	}

	if minor1 != minor2 {
		if minor1 > minor2 {
			return 1, nil
		}
		return -1, nil
	}

	if patch1 != patch2 {
		if patch1 > patch2 {
			return 1, nil
		}
		return -1, nil
	}

	return 0, nil
}

// parseSemVer parses a semantic version string (e.g., "1.2.3").
func parseSemVer(version string) (int, int, int, error) {
	if version == "" {
		return 0, 0, 0, fmt.Errorf("version cannot be empty")
	}

	version = strings.TrimPrefix(version, "v")

	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("version must be in format 'major.minor.patch', got %q", version)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid major version %q: %w", parts[0], err)
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid minor version %q: %w", parts[1], err)
	}

	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid patch version %q: %w", parts[2], err)
	}

	return major, minor, patch, nil
}
