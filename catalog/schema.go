package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/c360/forgekit/errors"
)

//go:embed schema.json
var documentSchema []byte

// ValidateSchema checks raw catalog bytes against the embedded document
// schema before they are parsed into a Document. YAML input is normalized
// to JSON first, since the schema validator only reads JSON. Violations
// wrap errors.ErrInvalidCatalog and list every failing field.
func ValidateSchema(data []byte, format Format) error {
	jsonData, err := normalizeToJSON(data, format)
	if err != nil {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %w", errors.ErrInvalidCatalog, err),
			"Catalog", "ValidateSchema", "normalize document")
	}

	schemaLoader := gojsonschema.NewBytesLoader(documentSchema)
	documentLoader := gojsonschema.NewBytesLoader(jsonData)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %w", errors.ErrInvalidCatalog, err),
			"Catalog", "ValidateSchema", "run schema validation")
	}

	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			fmt.Fprintf(&sb, "%s: %s", desc.Field(), desc.Description())
		}
		return errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrInvalidCatalog, sb.String()),
			"Catalog", "ValidateSchema", "validate document")
	}

	return nil
}

// normalizeToJSON converts catalog bytes to JSON for the schema validator.
func normalizeToJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse YAML document: %w", err)
		}
		return json.Marshal(doc)
	default:
		return nil, fmt.Errorf("format %q: %w", string(format), errors.ErrUnsupportedFormat)
	}
}
