// Package testutil provides canonical fixture products shared by the
// package tests and the demo command.
//
// The fixtures are deliberately tiny and framework-agnostic: Pet and House
// implement the product capability interfaces but know nothing about
// registries, builders, or families. Tests wire them into whichever
// component is under test.
//
// The pet roster covers three temperaments of the same two animals so that
// family tests can verify kind consistency across variants:
//
//	NewDog / NewCat                plain pets with a bare sound
//	NewFriendlyDog / NewFriendlyCat   affectionate introductions
//	NewGuardDog / NewGuardCat         watchful introductions
//
// DefaultPet is the fallback product for kinds that were never stocked.
package testutil
