package dispatch

import (
	"fmt"

	"github.com/viant/umlforge/cir"
	"github.com/viant/umlforge/diagram"
)

// diagramEmitters maps a diagram_type name to its emitter function
// (spec §4.4, §6 "Diagram contract").
var diagramEmitters = map[string]func(*cir.Graph) string{
	"class":     diagram.Class,
	"package":   diagram.Package,
	"sequence":  diagram.Sequence,
	"component": diagram.Component,
}

// Diagram implements the diagram contract (spec §6): it renders g as
// the requested diagram_type and validates the result, returning
// ok:false with validation_errors rather than failing outright when
// the emitted text is malformed (spec §7 "Validation failure").
func Diagram(g *cir.Graph, diagramType string) (ok bool, plantuml string, validationErrors []string, err error) {
	emit, known := diagramEmitters[diagramType]
	if !known {
		return false, "", nil, fmt.Errorf("%w: %s", ErrUnsupportedDiagramType, diagramType)
	}

	text := emit(g)
	valid, errs := diagram.Validate(text)
	return valid, text, errs, nil
}
