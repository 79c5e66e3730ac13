// Package dispatch implements the dispatch façade (C5): language
// selection and the parse_single / parse_project / diagram operations
// defined in spec §4.5 and the external interface contract in spec §6,
// grounded on the teacher's inspector/golang package-level entry
// points and on original_source/backend/uml-gen-regex/main.py's
// {cir, diagram_type} -> {ok, plantuml, validation_errors} contract.
package dispatch

import "errors"

// ErrUnsupportedLanguage is returned when no adapter is registered for
// the resolved (explicit, extension-derived, or heuristic) language.
var ErrUnsupportedLanguage = errors.New("dispatch: unsupported language")

// ErrSyntax wraps a single-file adapter parse failure (spec §7
// "raised as a terminal failure in single-file mode").
var ErrSyntax = errors.New("dispatch: syntax error")

// ErrUnsupportedDiagramType is returned by Diagram for any
// diagram_type outside {class, package, sequence, component}.
var ErrUnsupportedDiagramType = errors.New("dispatch: unsupported diagram type")
