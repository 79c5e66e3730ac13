package python

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/umlforge/adapter"
)

// extractCalls walks a function body in pre-order source order,
// recording one CallRef per call expression with a strictly increasing
// order counter starting at 0 (spec §4.2.e), grounded on
// python_adapter.py's _extract_ordered_calls.
func extractCalls(funcNode *sitter.Node, src []byte, methodID string) []*adapter.CallRef {
	body := funcNode.ChildByFieldName("body")
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
		if n.Type() == "call" {
			if call := classifyCall(n, src, methodID, &order); call != nil {
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

func classifyCall(n *sitter.Node, src []byte, methodID string, order *int) *adapter.CallRef {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return nil
	}

	var kind adapter.QualifierKind
	var qualifier, member string

	switch fn.Type() {
	case "attribute":
		obj := fn.ChildByFieldName("object")
		attr := fn.ChildByFieldName("attribute")
		if obj == nil || attr == nil {
			return nil
		}
		member = attr.Content(src)

		switch {
		case obj.Type() == "call" && isSuperCall(obj, src):
			kind = adapter.QualSuper
		case obj.Type() == "identifier" && obj.Content(src) == "self":
			kind = adapter.QualSelf
		case obj.Type() == "identifier" && obj.Content(src) == "cls":
			kind = adapter.QualCls
		case obj.Type() == "identifier":
			name := obj.Content(src)
			qualifier = name
			if isUpperFirst(name) {
				kind = adapter.QualStatic
			} else {
				kind = adapter.QualVar
			}
		default:
			// Chained/complex receivers (e.g. obj.attr.method()) are
			// not classifiable under the spec's qualifier kinds.
			return nil
		}
	case "identifier":
		name := fn.Content(src)
		member = name
		if isUpperFirst(name) {
			kind = adapter.QualNew
			qualifier = name
		} else {
			kind = adapter.QualNone
		}
	default:
		return nil
	}

	ref := &adapter.CallRef{SrcMethodID: methodID, Qualifier: kind, Qualifiers: qualifier, Member: member, Order: *order}
	*order++
	return ref
}

func isSuperCall(n *sitter.Node, src []byte) bool {
	fn := n.ChildByFieldName("function")
	return fn != nil && fn.Type() == "identifier" && fn.Content(src) == "super"
}

func isUpperFirst(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}
