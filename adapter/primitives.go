package adapter

import "strings"

// primitives is the fixed set of language-neutral primitive names the
// resolver (and callers wanting to skip association/dependency
// resolution) must treat as non-resolvable types (spec §4.3 "Primitive set").
var primitives = map[string]bool{
	"int": true, "long": true, "short": true, "byte": true,
	"float": true, "double": true, "boolean": true, "bool": true,
	"char": true, "string": true, "str": true,
	"void": true, "none": true, "null": true, "nil": true,
	"any": true, "object": true, "var": true,
}

// IsPrimitive reports whether name (case-insensitively) is one of the
// language-neutral primitives that never participate in
// ASSOCIATES/DEPENDS_ON resolution.
func IsPrimitive(name string) bool {
	return primitives[strings.ToLower(name)]
}
