package diagram

import (
	"strings"

	"github.com/viant/umlforge/cir"
)

func modifierTags(isStatic, isAbstract bool) string {
	var tags []string
	if isStatic {
		tags = append(tags, "{static}")
	}
	if isAbstract {
		tags = append(tags, "{abstract}")
	}
	if len(tags) == 0 {
		return ""
	}
	return strings.Join(tags, " ") + " "
}

func hasModifier(modifiers []string, tok string) bool {
	for _, m := range modifiers {
		if strings.EqualFold(m, tok) {
			return true
		}
	}
	return false
}

// fieldLine renders one field per spec §4.4.a: "<sigil> [<tags>] <name> : <type>[<mult>]".
func fieldLine(f *cir.Node) string {
	sigil := visibilitySigil(f.Str(cir.AttrVisibility))
	mods := f.Strs(cir.AttrModifiers)
	tags := modifierTags(hasModifier(mods, "static"), hasModifier(mods, "abstract"))
	dt := displayType(f.Str(cir.AttrRawType))
	suffix := multiplicitySuffix(f.Str(cir.AttrMultiplicity))
	return sigil + " " + tags + f.Str(cir.AttrName) + " : " + dt + suffix
}

// methodParams renders a method's parameter list "name: type, ...",
// recovered from PARAM_OF edges (spec §3: edges point Parameter -> Method).
func methodParams(g *cir.Graph, methodID string) string {
	var parts []string
	for _, e := range g.EdgesTo(methodID, cir.ParamOf) {
		p, ok := g.GetNode(e.Src)
		if !ok {
			continue
		}
		parts = append(parts, p.Str(cir.AttrName)+": "+displayType(p.Str(cir.AttrRawType)))
	}
	return strings.Join(parts, ", ")
}

// methodLine renders one method per spec §4.4.a: "<sigil> [<tags>] <name>(<params>) : <return>".
func methodLine(g *cir.Graph, m *cir.Node) string {
	sigil := visibilitySigil(m.Str(cir.AttrVisibility))
	tags := modifierTags(m.Bool(cir.AttrIsStatic), m.Bool(cir.AttrIsAbstract))
	params := methodParams(g, m.ID)
	dt := displayType(m.Str(cir.AttrRawReturnType))
	return sigil + " " + tags + m.Str(cir.AttrName) + "(" + params + ") : " + dt
}
