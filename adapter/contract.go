// Package adapter defines the contract shared by every language adapter
// (C2 in spec §4.2): parse_file/parse_project, the adapter-local Unit
// record, and the extraction helpers (visibility, multiplicity,
// annotation classification) that are identical in spirit across
// host languages even though each adapter's AST traversal differs.
package adapter

import "github.com/viant/umlforge/cir"

// SourceFile is one input to a project-level parse.
type SourceFile struct {
	Path string
	Code []byte
}

// FileError records a per-file parse failure collected during a
// tolerant project parse (spec §4.2, §7).
type FileError struct {
	Path  string
	Error string
}

// QualifierKind classifies a call site's receiver expression (spec §4.2.e, GLOSSARY).
type QualifierKind string

const (
	QualNew    QualifierKind = "new"
	QualStatic QualifierKind = "static"
	QualVar    QualifierKind = "var"
	QualSuper  QualifierKind = "super"
	QualSelf   QualifierKind = "self"
	QualCls    QualifierKind = "cls"
	QualNone   QualifierKind = "none"
)

// CallRef is one pending, unresolved call record extracted from a
// method body in source order (spec §4.2.e). The resolver (package
// resolve) turns it into a CALLS edge.
type CallRef struct {
	SrcMethodID string
	Qualifier   QualifierKind
	Qualifiers  string // bare qualifier name (class/variable); empty for self/cls/none/super
	Member      string
	Order       int
}

// ParamUnit is a pending Parameter extraction.
type ParamUnit struct {
	ID       string
	Name     string
	TypeName string
	RawType  string
}

// FieldUnit is a pending Field extraction.
type FieldUnit struct {
	ID           string
	Name         string
	TypeName     string
	RawType      string
	Visibility   cir.Visibility
	Modifiers    []string
	Multiplicity cir.Multiplicity
}

// MethodUnit is a pending Method extraction.
type MethodUnit struct {
	ID            string
	Name          string
	ReturnType    string
	RawReturnType string
	Visibility    cir.Visibility
	Modifiers     []string
	IsConstructor bool
	IsStatic      bool
	IsAbstract    bool
	IsFinal       bool
	Parameters    []*ParamUnit
}

// Unit is the adapter-local, per-type record produced while parsing a
// single file. The resolver consumes Units, never AST nodes, which is
// what keeps package resolve language-agnostic (spec §4.2, GLOSSARY).
type Unit struct {
	TypeID     string // cir.TypeID(FQN)
	Short      string
	FQN        string
	Package    string
	Path       string
	Kind       cir.TypeKind
	Visibility cir.Visibility
	Modifiers  []string
	IsAbstract bool
	IsFinal    bool

	Fields  []*FieldUnit
	Methods []*MethodUnit

	Extends    []string // pending superclass references
	Implements []string // pending interface/ABC references
	Calls      []*CallRef
}

// Adapter is implemented once per host language (spec §4.2). A
// registry of adapters is built once at init and never mutated
// afterwards (spec §9 "Global state... eliminated").
type Adapter interface {
	// ParseFile parses one file's source into its Units. A syntax
	// error here is the adapter's own business; ParseProject decides
	// whether to surface or collect it.
	ParseFile(source []byte, path string) ([]*Unit, error)

	// ParseProject parses every file, tolerating per-file failures,
	// and returns the populated CIR plus the collected per-file
	// errors. It does not run the cross-file resolver: that is
	// package resolve's job, kept separate so a caller can inspect
	// the pre-resolution graph if desired.
	ParseProject(files []SourceFile) (*cir.Graph, []FileError, []*Unit)
}
