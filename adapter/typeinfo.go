package adapter

import (
	"strings"

	"github.com/viant/umlforge/cir"
)

// containerClass classifies a generic container's head name so both
// the Java adapter (angle-bracket generics) and the Python adapter
// (bracketed typing generics) can share one mapping table (spec §4.2.d).
type containerClass int

const (
	notContainer containerClass = iota
	optionalContainer
	listContainer
	mapContainer
)

var containerNames = map[string]containerClass{
	"optional": optionalContainer,

	"list": listContainer, "set": listContainer, "sequence": listContainer,
	"deque": listContainer, "tuple": listContainer, "collection": listContainer,
	"iterable": listContainer, "frozenset": listContainer,
	"arraylist": listContainer, "linkedlist": listContainer,
	"hashset": listContainer, "treeset": listContainer, "linkedhashset": listContainer,

	"dict": mapContainer, "map": mapContainer, "mapping": mapContainer,
	"hashmap": mapContainer, "treemap": mapContainer, "dictionary": mapContainer,
	"linkedhashmap": mapContainer,
}

func classifyContainer(head string) containerClass {
	return containerNames[strings.ToLower(head)]
}

// ShortName returns the final segment of a dotted path ("a.b.C" -> "C"),
// or s unchanged if it carries no dots (spec §4.2.d "fully-qualified a.b.C").
func ShortName(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.LastIndex(s, "."); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// ResolveAnnotation maps a parsed type-annotation shape to its
// (logical, multiplicity) pair per the table in spec §4.2.d. head is
// the container/class name with any package prefix; args are the
// already-extracted generic type arguments (as raw text); isArray
// marks a "T[]" array shape, in which case head is the *element* type.
func ResolveAnnotation(head string, args []string, isArray bool) (logical string, mult cir.Multiplicity) {
	switch {
	case isArray:
		return ShortName(head), cir.ZeroOrMany
	case classifyContainer(head) == optionalContainer:
		if len(args) >= 1 {
			return ShortName(args[0]), cir.ZeroOrOne
		}
		return ShortName(head), cir.ZeroOrMany
	case classifyContainer(head) == listContainer:
		if len(args) >= 1 {
			return ShortName(args[0]), cir.OneOrMany
		}
		return ShortName(head), cir.ZeroOrMany
	case classifyContainer(head) == mapContainer:
		return "Any", cir.ZeroOrMany
	default:
		return ShortName(head), cir.One
	}
}

// SplitContainer parses "Head<Arg1,Arg2>" / "Head[Arg1,Arg2]" style
// generic text into its head name and comma-separated argument list,
// using the given bracket pair. Returns ok=false when raw carries no
// bracket of that kind, in which case raw is a bare name.
func SplitContainer(raw string, open, close byte) (head string, args []string, ok bool) {
	raw = strings.TrimSpace(raw)
	oi := strings.IndexByte(raw, open)
	if oi < 0 || !strings.HasSuffix(raw, string(close)) {
		return raw, nil, false
	}
	head = strings.TrimSpace(raw[:oi])
	inner := raw[oi+1 : len(raw)-1]
	args = splitTopLevel(inner, ',', open, close)
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return head, args, true
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside
// matching open/close brackets (so "Map<String, List<Int>>" splits
// its outer args correctly).
func splitTopLevel(s string, sep, open, close byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// IsArraySuffix reports whether raw ends with "[]" (Java array shape)
// and returns the element type text.
func IsArraySuffix(raw string) (elem string, ok bool) {
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, "[]") {
		return strings.TrimSpace(strings.TrimSuffix(raw, "[]")), true
	}
	return "", false
}
