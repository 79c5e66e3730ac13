package dispatch

import (
	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/adapter/java"
	"github.com/viant/umlforge/adapter/python"
)

// registry is built once at init and never mutated afterwards (spec
// §9 "global state eliminated" — the map itself is package-level but
// read-only after init, so concurrent dispatch calls never race on it).
var registry = map[string]adapter.Adapter{
	"java":   java.New(),
	"python": python.New(),
}

func lookupAdapter(lang string) (adapter.Adapter, bool) {
	a, ok := registry[lang]
	return a, ok
}
