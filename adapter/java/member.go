package java

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// parseFieldDeclaration extracts every declarator in a field_declaration
// (Java allows "int a, b;") as a separate FieldUnit, grounded on
// inspector/java/declaration.go's parseFieldDeclaration.
func parseFieldDeclaration(node *sitter.Node, src []byte, typeFQN string) []*adapter.FieldUnit {
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}
	logical, raw, mult := typeInfo(typeNode, src)
	modifiers := modifierTokens(node, src)
	visibility := adapter.VisibilityFromModifiers(modifiers)

	var out []*adapter.FieldUnit
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		nameNode := child.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		name := nameNode.Content(src)
		out = append(out, &adapter.FieldUnit{
			ID:           cir.FieldID(typeFQN, name),
			Name:         name,
			TypeName:     logical,
			RawType:      raw,
			Visibility:   visibility,
			Modifiers:    modifiers,
			Multiplicity: mult,
		})
	}
	return out
}

// parseMethodDeclaration extracts one MethodUnit (ID left for the
// caller to set with the enclosing type's FQN).
func parseMethodDeclaration(node *sitter.Node, src []byte) *adapter.MethodUnit {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	modifiers := modifierTokens(node, src)
	logical, raw, _ := typeInfo(node.ChildByFieldName("type"), src)

	m := &adapter.MethodUnit{
		Name:          nameNode.Content(src),
		ReturnType:    logical,
		RawReturnType: raw,
		Visibility:    adapter.VisibilityFromModifiers(modifiers),
		Modifiers:     modifiers,
		IsStatic:      adapter.HasModifier(modifiers, "static"),
		IsAbstract:    adapter.HasModifier(modifiers, "abstract"),
		IsFinal:       adapter.HasModifier(modifiers, "final"),
		Parameters:    parseParameters(node.ChildByFieldName("parameters"), src, ""),
	}
	return m
}

// parseConstructorDeclaration extracts a constructor as a MethodUnit
// with IsConstructor set, using the enclosing class's name.
func parseConstructorDeclaration(node *sitter.Node, src []byte, className string) *adapter.MethodUnit {
	modifiers := modifierTokens(node, src)
	return &adapter.MethodUnit{
		Name:          className,
		IsConstructor: true,
		Visibility:    adapter.VisibilityFromModifiers(modifiers),
		Modifiers:     modifiers,
		Parameters:    parseParameters(node.ChildByFieldName("parameters"), src, ""),
	}
}

// parseParameters extracts formal and variadic parameters. methodID is
// filled in by the caller once the enclosing method's id is known;
// here the Parameter ids are finalised lazily via finalizeParamIDs.
func parseParameters(params *sitter.Node, src []byte, methodID string) []*adapter.ParamUnit {
	if params == nil {
		return nil
	}
	var out []*adapter.ParamUnit
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		switch p.Type() {
		case "formal_parameter":
			typeNode := p.ChildByFieldName("type")
			nameNode := p.ChildByFieldName("name")
			if typeNode == nil || nameNode == nil {
				continue
			}
			logical, raw, _ := typeInfo(typeNode, src)
			out = append(out, &adapter.ParamUnit{Name: nameNode.Content(src), TypeName: logical, RawType: raw})
		case "spread_parameter":
			if p.NamedChildCount() < 2 {
				continue
			}
			typeNode := p.NamedChild(0)
			declNode := p.NamedChild(1)
			nameNode := declNode.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			logical, raw, _ := typeInfo(typeNode, src)
			out = append(out, &adapter.ParamUnit{Name: nameNode.Content(src), TypeName: logical, RawType: raw + "..."})
		}
	}
	return out
}

// finalizeParamIDs assigns Parameter ids once the enclosing method's
// FQN and name are known (parseParameters runs before the method id exists).
func finalizeParamIDs(typeFQN string, m *adapter.MethodUnit) {
	for _, p := range m.Parameters {
		p.ID = cir.ParamID(typeFQN, m.Name, p.Name)
	}
}

// scanConstructorFields is a no-op for Java: fields must be declared
// explicitly at class level, so there is no constructor
// self-assignment synthesis rule to apply here (contrast with the
// Python adapter, spec §4.2.b).
func scanConstructorFields(u *adapter.Unit, src []byte) {}
