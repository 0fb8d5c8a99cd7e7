package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/forgekit/errors"
	"github.com/c360/forgekit/product"
	"github.com/c360/forgekit/registry"
	"github.com/c360/forgekit/testutil"
)

// petBinder maps a variant's spec payload onto the fixture constructors.
func petBinder(v VariantSpec) (registry.Constructor[product.Product], error) {
	species, _ := v.Spec["species"].(string)
	temperament, _ := v.Spec["temperament"].(string)

	switch species + "/" + temperament {
	case "dog/friendly":
		return testutil.NewFriendlyDog, nil
	case "cat/friendly":
		return testutil.NewFriendlyCat, nil
	case "dog/guard":
		return testutil.NewGuardDog, nil
	case "cat/guard":
		return testutil.NewGuardCat, nil
	case "dog/plain":
		return testutil.NewDog, nil
	case "cat/plain":
		return testutil.NewCat, nil
	default:
		return nil, fmt.Errorf("no pet for species %q temperament %q", species, temperament)
	}
}

func TestBuild_PetCatalog(t *testing.T) {
	doc, err := Parse([]byte(petCatalogJSON), FormatJSON)
	require.NoError(t, err)

	composer, err := Build(doc, petBinder)
	require.NoError(t, err)
	require.NotNil(t, composer)

	assert.Equal(t, []string{"friendly", "guard"}, composer.Selectors())

	friendly, err := composer.Family("friendly")
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "cat"}, friendly.Kinds())

	p, err := friendly.Create("dog")
	require.NoError(t, err)
	desc, err := p.Describe()
	require.NoError(t, err)
	assert.Equal(t, "woof, I love you! I'm Jimmy, a 2-year-old Golden Retriever.", desc)

	guard, err := composer.Family("guard")
	require.NoError(t, err)

	p, err = guard.Create("cat")
	require.NoError(t, err)
	desc, err = p.Describe()
	require.NoError(t, err)
	assert.Equal(t, "meow, beware! I'm Whiskers, a 5-year-old Siamese.", desc)
}

func TestBuild_RegistrationMetadata(t *testing.T) {
	doc, err := Parse([]byte(petCatalogJSON), FormatJSON)
	require.NoError(t, err)

	composer, err := Build(doc, petBinder)
	require.NoError(t, err)

	friendly, err := composer.Family("friendly")
	require.NoError(t, err)

	dogs, ok := friendly.Registry("dog")
	require.True(t, ok)

	info, ok := dogs.Lookup("default")
	require.True(t, ok)
	assert.Equal(t, "affectionate golden retriever", info.Description)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestBuild_BinderError(t *testing.T) {
	doc := petDocument()
	doc.Families[0].Kinds[0].Variants[0].Spec["species"] = "bird"

	_, err := Build(doc, petBinder)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `family "friendly"`)
	assert.Contains(t, err.Error(), `kind "dog"`)
	assert.Contains(t, err.Error(), `variant "default"`)
	assert.Contains(t, err.Error(), `no pet for species "bird"`)
}

func TestBuild_NilArguments(t *testing.T) {
	doc := petDocument()

	_, err := Build[product.Product](nil, petBinder)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))

	_, err = Build[product.Product](doc, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestBuild_InvalidDocument(t *testing.T) {
	doc := petDocument()
	doc.Version = ""

	calls := 0
	counting := func(v VariantSpec) (registry.Constructor[product.Product], error) {
		calls++
		return petBinder(v)
	}

	_, err := Build(doc, counting)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCatalog)
	assert.Zero(t, calls, "binder must not run for an invalid document")
}

func TestBuild_RoundTripThroughYAML(t *testing.T) {
	doc, err := Parse([]byte(petCatalogYAML), FormatYAML)
	require.NoError(t, err)

	composer, err := Build(doc, petBinder)
	require.NoError(t, err)

	guard, err := composer.Family("guard")
	require.NoError(t, err)

	p, err := guard.Create("dog")
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name())
}
