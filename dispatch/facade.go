package dispatch

import (
	"fmt"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
	"github.com/viant/umlforge/resolve"
)

// ParseSingle implements parse_single (spec §4.5, §6): it parses one
// file's source into a fully resolved CIR, or fails with
// ErrUnsupportedLanguage or ErrSyntax.
func ParseSingle(code []byte, filename, language string) (*cir.Graph, error) {
	lang, ok := detectLanguage(language, filename, code)
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	a, ok := lookupAdapter(lang)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}

	units, err := a.ParseFile(code, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	g := cir.NewGraph()
	for _, u := range units {
		adapter.PopulateGraph(g, u)
	}
	resolve.Resolve(g, units)
	return g, nil
}

// ParseProject implements parse_project (spec §4.5, §6): it builds one
// CIR from many source files under a single language, tolerating
// per-file parse failures, and runs the cross-file resolver once over
// every Unit that did parse.
func ParseProject(language string, files []adapter.SourceFile) (*cir.Graph, []adapter.FileError, error) {
	lang, ok := resolveProjectLanguage(language, files)
	if !ok {
		return nil, nil, ErrUnsupportedLanguage
	}
	a, ok := lookupAdapter(lang)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}

	g, errs, units := a.ParseProject(files)
	resolve.Resolve(g, units)
	return g, errs, nil
}

// resolveProjectLanguage honors an explicit language, else picks the
// language implied by the majority of file extensions, else falls
// back to heuristic scoring over every file's content.
func resolveProjectLanguage(language string, files []adapter.SourceFile) (string, bool) {
	if language != "" {
		return language, true
	}

	votes := map[string]int{}
	for _, f := range files {
		if lang, ok := extensionLanguages[extensionOf(f.Path)]; ok {
			votes[lang]++
		}
	}
	best, bestCount := "", 0
	for lang, count := range votes {
		if count > bestCount || (count == bestCount && lang < best) {
			best, bestCount = lang, count
		}
	}
	if bestCount > 0 {
		return best, true
	}

	for _, f := range files {
		if lang, ok := detectLanguage("", "", f.Code); ok {
			return lang, true
		}
	}
	return "", false
}
