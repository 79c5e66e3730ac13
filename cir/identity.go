package cir

import "fmt"

// FQN computes the fully qualified name of a type: "<package>.<short>"
// when a package is present, else just the short name (spec §3).
func FQN(pkg, short string) string {
	if pkg == "" {
		return short
	}
	return pkg + "." + short
}

// TypeID returns the stable node id for a TypeDecl.
func TypeID(fqn string) string {
	return "type:" + fqn
}

// FieldID returns the stable node id for a Field.
func FieldID(typeFQN, fieldName string) string {
	return fmt.Sprintf("field:%s:%s", typeFQN, fieldName)
}

// MethodID returns the stable node id for a Method. Constructors use
// the "ctor:" prefix instead of "method:" (spec §3).
func MethodID(typeFQN, methodName string, isConstructor bool) string {
	prefix := "method"
	if isConstructor {
		prefix = "ctor"
	}
	return fmt.Sprintf("%s:%s:%s", prefix, typeFQN, methodName)
}

// ParamID returns the stable node id for a Parameter.
func ParamID(typeFQN, methodName, paramName string) string {
	return fmt.Sprintf("param:%s:%s:%s", typeFQN, methodName, paramName)
}
