package diagram

import (
	"regexp"
	"strings"
)

var genericArgs = regexp.MustCompile(`<.*?>`)

// displayType simplifies a raw type string for rendering (spec
// §4.4.a "Display-type simplification"): generic arguments collapse
// to "<>" and dotted paths shorten to their final segment, grounded
// on uml_rules.py's _clean_type_for_display.
func displayType(raw string) string {
	if raw == "" {
		return "void"
	}
	t := genericArgs.ReplaceAllString(raw, "<>")
	if idx := strings.LastIndex(t, "."); idx >= 0 {
		t = t[idx+1:]
	}
	return t
}

// multiplicitySuffix renders "[<mult>]" for any multiplicity other
// than "1" or empty.
func multiplicitySuffix(mult string) string {
	if mult == "" || mult == "1" {
		return ""
	}
	return "[" + mult + "]"
}

func visibilitySigil(v string) string {
	switch v {
	case "public":
		return "+"
	case "private":
		return "-"
	case "protected":
		return "#"
	default:
		return "~" // package-private
	}
}
