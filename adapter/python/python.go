// Package python implements the Python language adapter (C2): it walks
// a tree-sitter Python AST and produces adapter.Unit records plus the
// intra-file CIR nodes/edges, grounded on the Java adapter's shape and
// on original_source/backend/parse-core/adapters/python_adapter.py for
// the language-specific extraction rules (decorators, self-assignment
// field synthesis, name-convention visibility).
package python

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// Adapter parses Python source into CIR units.
type Adapter struct{}

// New returns a ready to use Python Adapter.
func New() *Adapter { return &Adapter{} }

// ParseFile parses one Python source file into its top-level class
// Units (spec §4.2).
func (a *Adapter) ParseFile(source []byte, path string) ([]*adapter.Unit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("python: failed to parse %s: %w", path, err)
	}
	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("python: syntax error in %s", path)
	}

	return parseFile(root, source, path)
}

// ParseProject parses every file, tolerating per-file syntax errors,
// and populates one shared CIR graph from all successfully parsed
// Units (spec §4.2, §5).
func (a *Adapter) ParseProject(files []adapter.SourceFile) (*cir.Graph, []adapter.FileError, []*adapter.Unit) {
	g := cir.NewGraph()
	var errs []adapter.FileError
	var allUnits []*adapter.Unit

	for _, f := range files {
		units, err := a.ParseFile(f.Code, f.Path)
		if err != nil {
			errs = append(errs, adapter.FileError{Path: f.Path, Error: err.Error()})
			continue
		}
		for _, u := range units {
			adapter.PopulateGraph(g, u)
			allUnits = append(allUnits, u)
		}
	}

	if len(errs) > 0 {
		g.Attributes["parse_errors"] = errs
	}

	return g, errs, allUnits
}
