package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/forgekit/errors"
)

// Format identifies a catalog serialization format.
type Format string

// Supported catalog formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Limits applied to catalog files before parsing.
const (
	maxCatalogSize = 10 << 20 // 10MB max catalog file size
	maxJSONDepth   = 100      // Maximum JSON nesting depth
	maxPathLen     = 4096     // Maximum file path length
)

// Parse decodes a catalog document from data in the given format. Parse
// failures wrap errors.ErrInvalidCatalog; an unrecognized format fails with
// errors.ErrUnsupportedFormat. Parse does not validate the document; call
// Document.Validate or ValidateSchema separately.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatJSON:
		if err := validateJSONDepth(data); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: %w", errors.ErrInvalidCatalog, err),
				"Catalog", "Parse", "check document structure")
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: %w", errors.ErrInvalidCatalog, err),
				"Catalog", "Parse", "parse JSON document")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: %w", errors.ErrInvalidCatalog, err),
				"Catalog", "Parse", "parse YAML document")
		}
	default:
		return nil, errors.WrapInvalid(
			fmt.Errorf("format %q: %w", string(format), errors.ErrUnsupportedFormat),
			"Catalog", "Parse", "select format")
	}

	return &doc, nil
}

// Load reads and parses the catalog file at path, selecting the format by
// extension: .json, .yaml, or .yml. Any other extension fails with
// errors.ErrUnsupportedFormat.
func Load(path string) (*Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := readCatalogFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Catalog", "Load", "read catalog file")
	}

	return Parse(data, format)
}

// FormatForPath maps a file extension to its catalog format.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.WrapInvalid(
			fmt.Errorf("extension %q: %w", filepath.Ext(path), errors.ErrUnsupportedFormat),
			"Catalog", "Load", "select format for path")
	}
}

// validateCatalogPath does basic path validation before any file access.
func validateCatalogPath(path string) error {
	if path == "" {
		return fmt.Errorf("empty catalog path")
	}

	if len(path) > maxPathLen {
		return fmt.Errorf("path too long: %d > %d", len(path), maxPathLen)
	}

	cleanPath := filepath.Clean(path)
	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute path: %w", err)
	}

	if filepath.IsAbs(path) {
		if strings.Contains(filepath.ToSlash(absPath), "..") {
			return fmt.Errorf("path traversal not allowed: %s", path)
		}
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("cannot get working directory: %w", err)
		}
		relPath, err := filepath.Rel(cwd, absPath)
		if err != nil || strings.HasPrefix(relPath, "..") {
			return fmt.Errorf("path traversal not allowed: %s resolves outside working directory", path)
		}
	}

	return nil
}

// readCatalogFile reads a catalog file with size and type validation.
func readCatalogFile(path string) ([]byte, error) {
	if err := validateCatalogPath(path); err != nil {
		return nil, fmt.Errorf("invalid catalog path: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat catalog file: %w", err)
	}

	if info.Size() > maxCatalogSize {
		return nil, fmt.Errorf("catalog file too large: %d bytes > %d", info.Size(), maxCatalogSize)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file: %w", err)
	}

	return data, nil
}

// validateJSONDepth checks JSON nesting depth before unmarshaling, so a
// deeply nested document cannot exhaust the stack.
func validateJSONDepth(data []byte) error {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		b := data[i]

		if escaped {
			escaped = false
			continue
		}

		if b == '\\' && inString {
			escaped = true
			continue
		}

		if b == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch b {
		case '{', '[':
			depth++
			if depth > maxJSONDepth {
				return fmt.Errorf("JSON nesting too deep: %d > %d", depth, maxJSONDepth)
			}
		case '}', ']':
			depth--
			if depth < 0 {
				return fmt.Errorf("malformed JSON: unbalanced brackets")
			}
		}
	}

	if depth != 0 {
		return fmt.Errorf("malformed JSON: unclosed brackets (depth=%d)", depth)
	}

	return nil
}
