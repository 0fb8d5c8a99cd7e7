package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/forgekit/errors"
)

// petDocument builds the canonical two-family pet catalog used across the
// package tests.
func petDocument() *Document {
	return &Document{
		Version: "1.0.0",
		Families: []FamilySpec{
			{
				Name: "friendly",
				Kinds: []KindSpec{
					{
						Kind: "dog",
						Variants: []VariantSpec{{
							Key:         "default",
							Description: "affectionate golden retriever",
							Version:     "1.0.0",
							Spec:        map[string]any{"species": "dog", "temperament": "friendly"},
						}},
					},
					{
						Kind: "cat",
						Variants: []VariantSpec{{
							Key:  "default",
							Spec: map[string]any{"species": "cat", "temperament": "friendly"},
						}},
					},
				},
			},
			{
				Name: "guard",
				Kinds: []KindSpec{
					{
						Kind: "dog",
						Variants: []VariantSpec{{
							Key:  "default",
							Spec: map[string]any{"species": "dog", "temperament": "guard"},
						}},
					},
					{
						Kind: "cat",
						Variants: []VariantSpec{{
							Key:  "default",
							Spec: map[string]any{"species": "cat", "temperament": "guard"},
						}},
					},
				},
			},
		},
	}
}

func TestDocument_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Document)
		wantErr string
	}{
		{
			name:   "valid document",
			mutate: func(*Document) {},
		},
		{
			name:    "missing version",
			mutate:  func(d *Document) { d.Version = "" },
			wantErr: "version is required",
		},
		{
			name:    "malformed version",
			mutate:  func(d *Document) { d.Version = "not-semver" },
			wantErr: "major.minor.patch",
		},
		{
			name:    "empty family name",
			mutate:  func(d *Document) { d.Families[0].Name = "" },
			wantErr: "families[0].name is required",
		},
		{
			name:    "duplicate family",
			mutate:  func(d *Document) { d.Families[1].Name = "friendly" },
			wantErr: `duplicate family "friendly"`,
		},
		{
			name:    "empty kind",
			mutate:  func(d *Document) { d.Families[0].Kinds[0].Kind = "" },
			wantErr: "kinds[0].kind is required",
		},
		{
			name:    "duplicate kind",
			mutate:  func(d *Document) { d.Families[0].Kinds[1].Kind = "dog" },
			wantErr: `duplicate kind "dog"`,
		},
		{
			name:    "empty variant key",
			mutate:  func(d *Document) { d.Families[0].Kinds[0].Variants[0].Key = "" },
			wantErr: "variants[0].key is required",
		},
		{
			name: "duplicate variant key",
			mutate: func(d *Document) {
				d.Families[0].Kinds[0].Variants = append(
					d.Families[0].Kinds[0].Variants, VariantSpec{Key: "default"})
			},
			wantErr: `duplicate variant "default"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := petDocument()
			tt.mutate(doc)

			err := doc.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidCatalog)
			assert.True(t, errors.IsInvalid(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDocument_Clone(t *testing.T) {
	doc := petDocument()
	clone := doc.Clone()

	require.Equal(t, doc, clone)

	// Mutating the clone leaves the original untouched, including the
	// nested spec payloads.
	clone.Families[0].Name = "mutated"
	clone.Families[0].Kinds[0].Variants[0].Spec["species"] = "bird"

	assert.Equal(t, "friendly", doc.Families[0].Name)
	assert.Equal(t, "dog", doc.Families[0].Kinds[0].Variants[0].Spec["species"])
}

func TestDocument_CloneNil(t *testing.T) {
	var doc *Document

	clone := doc.Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone.Version)
	assert.Empty(t, clone.Families)
}

func TestDocument_String(t *testing.T) {
	out := petDocument().String()

	assert.Contains(t, out, `"version": "1.0.0"`)
	assert.Contains(t, out, `"friendly"`)
	assert.Contains(t, out, `"guard"`)
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name    string
		v1, v2  string
		want    int
		wantErr bool
	}{
		{name: "equal", v1: "1.0.0", v2: "1.0.0", want: 0},
		{name: "patch older", v1: "1.2.3", v2: "1.2.4", want: -1},
		{name: "minor newer", v1: "1.3.0", v2: "1.2.9", want: 1},
		{name: "major newer", v1: "2.0.0", v2: "1.9.9", want: 1},
		{name: "v prefix", v1: "v1.0.0", v2: "1.0.0", want: 0},
		{name: "invalid left", v1: "one.two", v2: "1.0.0", wantErr: true},
		{name: "invalid right", v1: "1.0.0", v2: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareVersions(tt.v1, tt.v2)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
