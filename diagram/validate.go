// Package diagram implements the CIR→PlantUML emitters (C4): class,
// package, sequence, and component diagrams, plus the output
// validator, grounded on
// original_source/backend/uml-gen-regex/uml_rules.py's
// _clean_type_for_display and
// original_source/backend/uml-gen-ai/uml_validate.py's validate_plantuml.
package diagram

import (
	"regexp"
	"strings"
)

const (
	startMarker = "@startuml"
	endMarker   = "@enduml"
	maxSize     = 200_000
)

var disallowedDirectives = []*regexp.Regexp{
	regexp.MustCompile(`(?mi)^\s*!include`),
	regexp.MustCompile(`(?mi)^\s*!includeurl`),
	regexp.MustCompile(`(?mi)^\s*!pragma`),
	regexp.MustCompile(`(?mi)^\s*!unquoted`),
}

// Validate checks emitted PlantUML text against spec §4.4 "Output
// validity" / §7 "Validation failure": it never mutates text, only
// reports whether it is acceptable and why not.
func Validate(text string) (ok bool, errs []string) {
	if strings.TrimSpace(text) == "" {
		return false, []string{"empty PlantUML text"}
	}
	if !strings.Contains(text, startMarker) {
		errs = append(errs, "missing @startuml")
	}
	if !strings.Contains(text, endMarker) {
		errs = append(errs, "missing @enduml")
	}
	for _, pat := range disallowedDirectives {
		if pat.MatchString(text) {
			errs = append(errs, "disallowed directive found: "+pat.String())
		}
	}
	if len(text) > maxSize {
		errs = append(errs, "PlantUML text too large")
	}
	return len(errs) == 0, errs
}
