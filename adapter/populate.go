package adapter

import "github.com/viant/umlforge/cir"

// PopulateGraph adds a Unit's TypeDecl, Field, Method and Parameter
// nodes plus their HAS_FIELD/HAS_METHOD/PARAM_OF edges to g. It never
// touches Extends/Implements/Calls — those are cross-file references
// resolved later by package resolve (spec §4.1, §4.2).
func PopulateGraph(g *cir.Graph, u *Unit) {
	g.AddNode(NewTypeDeclNode(u))

	for _, f := range u.Fields {
		g.AddNode(fieldNodeArgs(f))
		g.AddEdge(u.TypeID, f.ID, cir.HasField, nil)
	}

	for _, m := range u.Methods {
		g.AddNode(methodNodeArgs(u, m))
		g.AddEdge(u.TypeID, m.ID, cir.HasMethod, nil)

		for _, p := range m.Parameters {
			g.AddNode(paramNodeArgs(p))
			g.AddEdge(p.ID, m.ID, cir.ParamOf, nil)
		}
	}
}

func NewTypeDeclNode(u *Unit) (string, cir.NodeKind, map[string]interface{}) {
	id, kind, attrs := cir.NewTypeDeclNode(u.TypeID, u.Short, u.Kind, u.Visibility, u.Package, u.Modifiers, u.IsAbstract, u.IsFinal)
	return id, kind, attrs
}

func fieldNodeArgs(f *FieldUnit) (string, cir.NodeKind, map[string]interface{}) {
	id, kind, attrs := cir.NewFieldNode(f.ID, f.Name, f.TypeName, f.RawType, f.Visibility, f.Modifiers, f.Multiplicity)
	return id, kind, attrs
}

func methodNodeArgs(u *Unit, m *MethodUnit) (string, cir.NodeKind, map[string]interface{}) {
	id, kind, attrs := cir.NewMethodNode(m.ID, m.Name, m.ReturnType, m.RawReturnType, m.Visibility, m.Modifiers, m.IsConstructor, m.IsStatic, m.IsAbstract, m.IsFinal)
	return id, kind, attrs
}

func paramNodeArgs(p *ParamUnit) (string, cir.NodeKind, map[string]interface{}) {
	id, kind, attrs := cir.NewParameterNode(p.ID, p.Name, p.TypeName, p.RawType)
	return id, kind, attrs
}
