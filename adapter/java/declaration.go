package java

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// parseFile extracts package + top-level type declarations from a
// parsed Java file, grounded on inspector/java/inspector.go's
// processJavaFile.
func parseFile(root *sitter.Node, src []byte, path string) ([]*adapter.Unit, error) {
	pkg := ""
	var typeNodes []*sitter.Node

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			if n := child.NamedChild(0); n != nil {
				pkg = n.Content(src)
			}
		case "class_declaration", "interface_declaration", "enum_declaration":
			typeNodes = append(typeNodes, child)
		}
	}

	var units []*adapter.Unit
	for _, tn := range typeNodes {
		u := parseTypeDeclaration(tn, src, pkg, path)
		if u != nil {
			units = append(units, u)
		}
	}
	return units, nil
}

func parseTypeDeclaration(node *sitter.Node, src []byte, pkg, path string) *adapter.Unit {
	switch node.Type() {
	case "class_declaration":
		return parseClassDeclaration(node, src, pkg, path)
	case "interface_declaration":
		return parseInterfaceDeclaration(node, src, pkg, path)
	case "enum_declaration":
		return parseEnumDeclaration(node, src, pkg, path)
	}
	return nil
}

func newUnit(name, pkg, path string, kind cir.TypeKind, modifiers []string, isAbstract, isFinal bool) *adapter.Unit {
	fqn := cir.FQN(pkg, name)
	return &adapter.Unit{
		TypeID:     cir.TypeID(fqn),
		Short:      name,
		FQN:        fqn,
		Package:    pkg,
		Path:       path,
		Kind:       kind,
		Visibility: adapter.VisibilityFromModifiers(modifiers),
		Modifiers:  modifiers,
		IsAbstract: isAbstract,
		IsFinal:    isFinal,
	}
}

func parseClassDeclaration(node *sitter.Node, src []byte, pkg, path string) *adapter.Unit {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(src)
	modifiers := modifierTokens(node, src)

	u := newUnit(name, pkg, path, cir.ClassKind, modifiers,
		adapter.HasModifier(modifiers, "abstract"), adapter.HasModifier(modifiers, "final"))

	if superNode := node.ChildByFieldName("superclass"); superNode != nil {
		if t := superTypeNode(superNode); t != nil {
			u.Extends = append(u.Extends, adapter.ShortName(t.Content(src)))
		}
	}
	if ifaceNode := node.ChildByFieldName("interfaces"); ifaceNode != nil {
		u.Implements = append(u.Implements, extractTypeList(ifaceNode, src)...)
	}

	if body := node.ChildByFieldName("body"); body != nil {
		parseClassBody(body, src, u)
	}
	return u
}

func parseInterfaceDeclaration(node *sitter.Node, src []byte, pkg, path string) *adapter.Unit {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(src)
	modifiers := modifierTokens(node, src)

	u := newUnit(name, pkg, path, cir.InterfaceKind, modifiers, true, false)

	extNode := node.ChildByFieldName("interfaces")
	for i := 0; extNode == nil && i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == "extends_interfaces" {
			extNode = child
		}
	}
	if extNode != nil {
		// interfaces extend other interfaces; the spec models
		// interface-to-interface extension as INHERITS, matching the
		// single-parent EXTENDS semantics of spec §4.2.a.
		u.Extends = append(u.Extends, extractTypeList(extNode, src)...)
	}

	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			child := body.NamedChild(i)
			if child.Type() == "method_declaration" {
				if m := parseMethodDeclaration(child, src); m != nil {
					m.ID = cir.MethodID(u.FQN, m.Name, false)
					finalizeParamIDs(u.FQN, m)
					u.Methods = append(u.Methods, m)
					u.Calls = append(u.Calls, extractCalls(child, src, m.ID)...)
				}
			}
		}
	}
	return u
}

func parseEnumDeclaration(node *sitter.Node, src []byte, pkg, path string) *adapter.Unit {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(src)
	modifiers := modifierTokens(node, src)

	u := newUnit(name, pkg, path, cir.EnumKind, modifiers, false, true)

	if ifaceNode := node.ChildByFieldName("interfaces"); ifaceNode != nil {
		u.Implements = append(u.Implements, extractTypeList(ifaceNode, src)...)
	}

	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			child := body.NamedChild(i)
			if child.Type() == "enum_body_declarations" {
				parseClassBody(child, src, u)
			}
		}
	}
	return u
}

// parseClassBody walks field/method/constructor declarations directly
// under a class or enum-body-declarations node into Unit members.
func parseClassBody(body *sitter.Node, src []byte, u *adapter.Unit) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		switch child.Type() {
		case "field_declaration":
			if fs := parseFieldDeclaration(child, src, u.FQN); fs != nil {
				u.Fields = append(u.Fields, fs...)
			}
		case "method_declaration":
			if m := parseMethodDeclaration(child, src); m != nil {
				m.ID = cir.MethodID(u.FQN, m.Name, false)
				finalizeParamIDs(u.FQN, m)
				u.Methods = append(u.Methods, m)
				u.Calls = append(u.Calls, extractCalls(child, src, m.ID)...)
			}
		case "constructor_declaration":
			if m := parseConstructorDeclaration(child, src, u.Short); m != nil {
				m.ID = cir.MethodID(u.FQN, m.Name, true)
				finalizeParamIDs(u.FQN, m)
				u.Methods = append(u.Methods, m)
				u.Calls = append(u.Calls, extractCalls(child, src, m.ID)...)
			}
		}
	}
	scanConstructorFields(u, src)
}

// superTypeNode unwraps the "superclass" field's wrapper node down to
// the actual type node (tree-sitter-java wraps it as a "superclass" node).
func superTypeNode(n *sitter.Node) *sitter.Node {
	if n.NamedChildCount() > 0 {
		return n.NamedChild(0)
	}
	return n
}

func extractTypeList(listNode *sitter.Node, src []byte) []string {
	var out []string
	for i := 0; i < int(listNode.NamedChildCount()); i++ {
		child := listNode.NamedChild(i)
		if child.Type() == "type_list" {
			out = append(out, extractTypeList(child, src)...)
			continue
		}
		out = append(out, adapter.ShortName(child.Content(src)))
	}
	return out
}

// modifierTokens extracts modifier keywords (public, static, abstract,
// final, ...) from a declaration's leading "modifiers" child, grounded
// on inspector/java/declaration.go's isNodePublic helper generalised
// to collect every modifier rather than just "public".
func modifierTokens(node *sitter.Node, src []byte) []string {
	if node.NamedChildCount() == 0 || node.NamedChild(0).Type() != "modifiers" {
		return nil
	}
	modsNode := node.NamedChild(0)
	var out []string
	for i := 0; i < int(modsNode.ChildCount()); i++ {
		m := modsNode.Child(i)
		if m.Type() == "marker_annotation" || m.Type() == "annotation" {
			continue
		}
		out = append(out, m.Content(src))
	}
	return out
}
