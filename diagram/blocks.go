package diagram

import (
	"fmt"
	"strings"

	"github.com/viant/umlforge/cir"
)

// renderTypeBlock writes one TypeDecl block ("class Foo { ... }") at
// the given indent, omitting constructors from the method list.
func renderTypeBlock(b *strings.Builder, g *cir.Graph, entry *typeEntry, indent string) {
	n := entry.Node
	fmt.Fprintf(b, "%s%s %s {\n", indent, n.Str(cir.AttrKind), n.Str(cir.AttrName))
	for _, f := range entry.Fields {
		fmt.Fprintf(b, "%s  %s\n", indent, fieldLine(f))
	}
	for _, m := range entry.Methods {
		if m.Bool(cir.AttrIsConstructor) {
			continue
		}
		fmt.Fprintf(b, "%s  %s\n", indent, methodLine(g, m))
	}
	fmt.Fprintf(b, "%s}\n", indent)
}

// nameOfFunc resolves TypeDecl ids to display names for relationLines.
func nameOfFunc(idx map[string]*typeEntry) func(string) (string, bool) {
	return func(id string) (string, bool) {
		e, ok := idx[id]
		if !ok {
			return "", false
		}
		return e.Node.Str(cir.AttrName), true
	}
}
