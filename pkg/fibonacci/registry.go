// This file implements the domain registry, the name-keyed view of every
// domain used by callers that select a domain at run time.
package fibonacci

import (
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Enumerator)
)

// Register adds a domain to the registry under its own name. Registering a
// second domain with the same name replaces the first; the standard domains
// register themselves during package initialization.
func Register(e Enumerator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[e.Name()] = e
}

// Lookup returns the registered domain with the given name.
func Lookup(name string) (Enumerator, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[name]
	return e, ok
}

// Names returns the sorted names of all registered domains.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	for _, e := range []Enumerator{
		Int8, Int16, Int32, Int64, Int,
		Uint8, Uint16, Uint32, Uint64, Uint,
		Int128, Uint128,
		Big,
	} {
		Register(e)
	}
}
