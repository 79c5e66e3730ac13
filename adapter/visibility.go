package adapter

import (
	"strings"

	"github.com/viant/umlforge/cir"
)

// VisibilityFromModifiers derives visibility from modifier tokens
// using the priority public > private > protected > package (spec §4.2.a).
func VisibilityFromModifiers(modifiers []string) cir.Visibility {
	has := func(tok string) bool {
		for _, m := range modifiers {
			if strings.EqualFold(m, tok) {
				return true
			}
		}
		return false
	}
	switch {
	case has("public"):
		return cir.Public
	case has("private"):
		return cir.Private
	case has("protected"):
		return cir.Protected
	default:
		return cir.Package
	}
}

// VisibilityFromNameConvention derives visibility from a name's
// leading underscores when no explicit modifier exists (spec §4.2.b):
// leading double underscore without trailing underscores -> private;
// leading single underscore -> protected; else public.
func VisibilityFromNameConvention(name string) cir.Visibility {
	switch {
	case strings.HasPrefix(name, "__") && !strings.HasSuffix(name, "__"):
		return cir.Private
	case strings.HasPrefix(name, "_"):
		return cir.Protected
	default:
		return cir.Public
	}
}

// HasModifier reports whether a modifier token list contains the given
// flag keyword (case-insensitively), e.g. "abstract", "final", "static".
func HasModifier(modifiers []string, tok string) bool {
	for _, m := range modifiers {
		if strings.EqualFold(m, tok) {
			return true
		}
	}
	return false
}
