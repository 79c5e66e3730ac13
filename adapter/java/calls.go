package java

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/umlforge/adapter"
)

// extractCalls walks a method's body in pre-order source order,
// recording one CallRef per method_invocation with a strictly
// increasing order counter starting at 0 (spec §4.2.e). Grounded on
// analyzer/java_analyzer.go's processExpressions, generalised to
// classify the call-site qualifier instead of merely locating it.
func extractCalls(methodNode *sitter.Node, src []byte, methodID string) []*adapter.CallRef {
	body := methodNode.ChildByFieldName("body")
	if body == nil {
		return nil
	}

	var calls []*adapter.CallRef
	order := 0

	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.Type() == "method_invocation" {
			if call := classifyMethodInvocation(n, src, methodID, &order); call != nil {
				calls = append(calls, call)
			}
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			visit(n.NamedChild(i))
		}
	}
	visit(body)
	return calls
}

// classifyMethodInvocation classifies a single call site's qualifier
// per spec §4.2.e / GLOSSARY "Qualifier kind".
func classifyMethodInvocation(n *sitter.Node, src []byte, methodID string, order *int) *adapter.CallRef {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	member := nameNode.Content(src)
	objectNode := n.ChildByFieldName("object")

	var kind adapter.QualifierKind
	var qualifier string

	switch {
	case objectNode == nil:
		kind = adapter.QualNone
	case objectNode.Type() == "this":
		// Java's explicit "this" receiver plays the role that
		// self/cls play in languages with an implicit receiver.
		kind = adapter.QualSelf
	case objectNode.Type() == "super":
		kind = adapter.QualSuper
	case objectNode.Type() == "object_creation_expression":
		kind = adapter.QualNew
		if t := objectNode.ChildByFieldName("type"); t != nil {
			qualifier = adapter.ShortName(t.Content(src))
		}
	case objectNode.Type() == "identifier":
		name := objectNode.Content(src)
		qualifier = name
		if isUpperFirst(name) {
			kind = adapter.QualStatic
		} else {
			kind = adapter.QualVar
		}
	case objectNode.Type() == "field_access":
		if f := objectNode.ChildByFieldName("field"); f != nil {
			qualifier = f.Content(src)
			kind = adapter.QualVar
		} else {
			kind = adapter.QualNone
		}
	default:
		kind = adapter.QualNone
	}

	ref := &adapter.CallRef{SrcMethodID: methodID, Qualifier: kind, Qualifiers: qualifier, Member: member, Order: *order}
	*order++
	return ref
}

func isUpperFirst(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}
