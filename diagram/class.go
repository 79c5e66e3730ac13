package diagram

import (
	"strings"

	"github.com/viant/umlforge/cir"
)

// Class renders the CIR class diagram (spec §4.4.a): one block per
// TypeDecl with its fields and non-constructor methods, followed by
// the deduplicated, sorted relationship lines.
func Class(g *cir.Graph) string {
	idx := buildIndex(g)
	ids := sortedTypeIDs(idx)

	var b strings.Builder
	b.WriteString("@startuml\n")
	for _, id := range ids {
		renderTypeBlock(&b, g, idx[id], "")
	}
	for _, line := range relationLines(g, nameOfFunc(idx)) {
		b.WriteString(line + "\n")
	}
	b.WriteString("@enduml\n")
	return b.String()
}
