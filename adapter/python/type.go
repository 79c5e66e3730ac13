package python

import (
	"strings"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// annotationInfo converts a Python type-annotation's raw source text
// into (logical, raw, multiplicity) per spec §4.2.d, grounded on
// python_adapter.py's _resolve_annotation_str. Union is handled here
// rather than in the shared adapter.ResolveAnnotation table because it
// needs to skip a "None" argument to find the real element type, which
// Java's generics never require.
func annotationInfo(raw string) (logical, rawOut string, mult cir.Multiplicity) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Any", "Any", ""
	}

	if head, args, ok := adapter.SplitContainer(raw, '[', ']'); ok {
		if strings.EqualFold(head, "Union") {
			for _, a := range args {
				if a == "None" || a == "NoneType" {
					continue
				}
				return adapter.ShortName(stripContainerHead(a)), raw, cir.ZeroOrOne
			}
			return "None", raw, cir.ZeroOrOne
		}
		logical, mult = adapter.ResolveAnnotation(head, args, false)
		return logical, raw, mult
	}

	logical, mult = adapter.ResolveAnnotation(raw, nil, false)
	return logical, raw, mult
}

func stripContainerHead(s string) string {
	if idx := strings.IndexByte(s, '['); idx >= 0 {
		return s[:idx]
	}
	return s
}
