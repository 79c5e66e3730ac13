package dispatch

import (
	"context"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// Facade is the stateless C5 dispatch façade (spec §4.5): a thin,
// zero-value-usable wrapper over the package-level parse/diagram
// operations, named Facade so a caller can hold one value and pass it
// around instead of importing the package functions directly.
type Facade struct{}

// NewFacade returns a ready to use Facade. It carries no state (§5:
// "pure, stateless transformation"), so the zero value works equally
// well; NewFacade exists for callers that prefer explicit construction.
func NewFacade() *Facade { return &Facade{} }

// ParseSingle see the package-level ParseSingle.
func (Facade) ParseSingle(code []byte, filename, language string) (*cir.Graph, error) {
	return ParseSingle(code, filename, language)
}

// ParseProject see the package-level ParseProject.
func (Facade) ParseProject(language string, files []adapter.SourceFile) (*cir.Graph, []adapter.FileError, error) {
	return ParseProject(language, files)
}

// ParseDirectory see the package-level ParseDirectory.
func (Facade) ParseDirectory(ctx context.Context, root, language string) (*cir.Graph, []adapter.FileError, error) {
	return ParseDirectory(ctx, root, language)
}

// Diagram see the package-level Diagram.
func (Facade) Diagram(g *cir.Graph, diagramType string) (ok bool, plantuml string, validationErrors []string, err error) {
	return Diagram(g, diagramType)
}

// DebugJSON renders the CIR debug view (spec §6 "CIR debug JSON").
func (Facade) DebugJSON(g *cir.Graph) ([]byte, error) {
	return g.DebugJSON()
}
