package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/forgekit/errors"
)

func TestValidateSchema_ValidJSON(t *testing.T) {
	assert.NoError(t, ValidateSchema([]byte(petCatalogJSON), FormatJSON))
}

func TestValidateSchema_ValidYAML(t *testing.T) {
	assert.NoError(t, ValidateSchema([]byte(petCatalogYAML), FormatYAML))
}

func TestValidateSchema_MissingVersion(t *testing.T) {
	err := ValidateSchema([]byte(`{"families": []}`), FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCatalog)
	assert.True(t, errors.IsInvalid(err))
	assert.Contains(t, err.Error(), "version")
}

func TestValidateSchema_UnknownField(t *testing.T) {
	err := ValidateSchema([]byte(`{"version": "1.0.0", "families": [], "extra": true}`), FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "extra")
}

func TestValidateSchema_BadVersionPattern(t *testing.T) {
	err := ValidateSchema([]byte(`{"version": "latest", "families": []}`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestValidateSchema_MissingVariantKey(t *testing.T) {
	raw := `{
		"version": "1.0.0",
		"families": [
			{"name": "friendly", "kinds": [
				{"kind": "dog", "variants": [{"description": "keyless"}]}
			]}
		]
	}`

	err := ValidateSchema([]byte(raw), FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "key")
}

func TestValidateSchema_MalformedYAML(t *testing.T) {
	err := ValidateSchema([]byte("families: [unclosed"), FormatYAML)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCatalog)
}

func TestValidateSchema_UnsupportedFormat(t *testing.T) {
	err := ValidateSchema([]byte(petCatalogJSON), Format("toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)
}
