package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/forgekit/errors"
	"github.com/c360/forgekit/product"
	"github.com/c360/forgekit/registry"
	"github.com/c360/forgekit/testutil"
)

// petRegistry builds a registry stocking ctor at the default variant key.
func petRegistry(t *testing.T, ctor registry.Constructor[product.Product]) *registry.Registry[product.Product] {
	t.Helper()
	reg := registry.New[product.Product]()
	require.NoError(t, reg.RegisterFunc(DefaultVariant, ctor))
	return reg
}

func friendlyFamily(t *testing.T) *Family[product.Product] {
	t.Helper()
	return NewFamily[product.Product]("friendly").
		AddKind("dog", petRegistry(t, testutil.NewFriendlyDog)).
		AddKind("cat", petRegistry(t, testutil.NewFriendlyCat))
}

func guardFamily(t *testing.T) *Family[product.Product] {
	t.Helper()
	return NewFamily[product.Product]("guard").
		AddKind("dog", petRegistry(t, testutil.NewGuardDog)).
		AddKind("cat", petRegistry(t, testutil.NewGuardCat))
}

func TestFamily_CreateDefaultVariant(t *testing.T) {
	friendly := friendlyFamily(t)

	p, err := friendly.Create("dog")
	require.NoError(t, err)

	pet, ok := p.(*testutil.Pet)
	require.True(t, ok)
	assert.Equal(t, "Jimmy", pet.PetName)
	assert.Equal(t, "Golden Retriever", pet.Breed)
	assert.Equal(t, 2, pet.Age)

	desc, err := p.Describe()
	require.NoError(t, err)
	assert.Equal(t, "woof, I love you! I'm Jimmy, a 2-year-old Golden Retriever.", desc)
}

func TestFamily_CreateVariant(t *testing.T) {
	dogs := registry.New[product.Product]()
	require.NoError(t, dogs.RegisterFunc(DefaultVariant, testutil.NewFriendlyDog))
	require.NoError(t, dogs.RegisterFunc("plain", testutil.NewDog))

	fam := NewFamily[product.Product]("pets").AddKind("dog", dogs)

	p, err := fam.CreateVariant("dog", "plain")
	require.NoError(t, err)
	pet, ok := p.(*testutil.Pet)
	require.True(t, ok)
	assert.Equal(t, "woof!", pet.Sound)

	p, err = fam.Create("dog")
	require.NoError(t, err)
	pet, ok = p.(*testutil.Pet)
	require.True(t, ok)
	assert.Equal(t, "woof, I love you!", pet.Sound)
}

func TestFamily_UnknownKind(t *testing.T) {
	friendly := friendlyFamily(t)

	p, err := friendly.Create("bird")
	require.Error(t, err)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, errors.ErrUnknownKind)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), `family "friendly"`)
	assert.Contains(t, err.Error(), `kind "bird"`)
}

func TestFamily_UnknownVariant(t *testing.T) {
	friendly := friendlyFamily(t)

	_, err := friendly.CreateVariant("dog", "exotic")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownKey)
	assert.True(t, errors.IsNotFound(err))
}

func TestFamily_KindsInsertionOrder(t *testing.T) {
	fam := NewFamily[product.Product]("order").
		AddKind("dog", petRegistry(t, testutil.NewDog)).
		AddKind("cat", petRegistry(t, testutil.NewCat)).
		AddKind("bird", petRegistry(t, testutil.NewDog))

	assert.Equal(t, []string{"dog", "cat", "bird"}, fam.Kinds())
	assert.Equal(t, 3, fam.Len())

	// Rebinding keeps the kind's original position.
	fam.AddKind("cat", petRegistry(t, testutil.NewGuardCat))
	assert.Equal(t, []string{"dog", "cat", "bird"}, fam.Kinds())
	assert.Equal(t, 3, fam.Len())

	p, err := fam.Create("cat")
	require.NoError(t, err)
	assert.Equal(t, "Whiskers", p.Name())
}

func TestFamily_AddKindPanics(t *testing.T) {
	reg := petRegistry(t, testutil.NewDog)

	assert.Panics(t, func() {
		NewFamily[product.Product]("bad").AddKind("", reg)
	})
	assert.Panics(t, func() {
		NewFamily[product.Product]("bad").AddKind("dog", nil)
	})
}

func TestFamily_Registry(t *testing.T) {
	friendly := friendlyFamily(t)

	reg, ok := friendly.Registry("dog")
	require.True(t, ok)

	// The registry handle supports the explicit fallback form directly.
	p, err := reg.ResolveDefault("exotic", testutil.DefaultPet())
	require.NoError(t, err)
	assert.Equal(t, "Unknown", p.Name())

	_, ok = friendly.Registry("bird")
	assert.False(t, ok)
}

func TestFamily_Consistency(t *testing.T) {
	friendly := friendlyFamily(t)
	guard := guardFamily(t)

	// Interleaved creations always draw from the handle they went through.
	for i := 0; i < 4; i++ {
		gd, err := guard.Create("dog")
		require.NoError(t, err)
		assert.Equal(t, "Rex", gd.Name())

		fd, err := friendly.Create("dog")
		require.NoError(t, err)
		assert.Equal(t, "Jimmy", fd.Name())

		gc, err := guard.Create("cat")
		require.NoError(t, err)
		assert.Equal(t, "Whiskers", gc.Name())

		fc, err := friendly.Create("cat")
		require.NoError(t, err)
		assert.Equal(t, "Tom", fc.Name())
	}
}

func TestFamily_ConcreteScenario(t *testing.T) {
	composer := NewComposer[product.Product]()
	composer.MustRegisterFamily(friendlyFamily(t))
	composer.MustRegisterFamily(guardFamily(t))

	want := map[string]map[string]string{
		"friendly": {
			"dog": "woof, I love you! I'm Jimmy, a 2-year-old Golden Retriever.",
			"cat": "meow, purr. I'm Tom, a 3-year-old Persian.",
		},
		"guard": {
			"dog": "woof, stay back! I'm Rex, a 4-year-old German Shepherd.",
			"cat": "meow, beware! I'm Whiskers, a 5-year-old Siamese.",
		},
	}

	for selector, kinds := range want {
		fam, err := composer.Family(selector)
		require.NoError(t, err)

		for kind, speech := range kinds {
			p, err := fam.Create(kind)
			require.NoError(t, err)

			desc, err := p.Describe()
			require.NoError(t, err)
			assert.Equal(t, speech, desc)
		}
	}
}
