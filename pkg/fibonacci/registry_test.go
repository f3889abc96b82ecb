package fibonacci

import (
	"slices"
	"testing"
)

func TestRegistryContainsStandardDomains(t *testing.T) {
	t.Parallel()
	want := []string{
		"big",
		"int", "int128", "int16", "int32", "int64", "int8",
		"uint", "uint128", "uint16", "uint32", "uint64", "uint8",
	}
	names := Names()
	for _, name := range want {
		if !slices.Contains(names, name) {
			t.Errorf("domain %q missing from registry", name)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
}

func TestLookupUnknownDomain(t *testing.T) {
	t.Parallel()
	if _, ok := Lookup("int256"); ok {
		t.Error("Lookup resolved an unregistered domain")
	}
}

func TestLookupResolvesIdentity(t *testing.T) {
	t.Parallel()
	e, ok := Lookup("uint64")
	if !ok {
		t.Fatal("uint64 not registered")
	}
	if e != Enumerator(Uint64) {
		t.Error("registry returned a different uint64 domain instance")
	}
}
