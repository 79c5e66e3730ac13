package dispatch

import (
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// projectMarkers is the teacher's marker-file list (detector.go), pared
// down to the markers relevant to language selection for a parse-project
// call: a marker present at root nudges the default language before
// falling back to extension counting.
var projectMarkers = map[string]string{
	"pom.xml":          "java",
	"build.gradle":     "java",
	"build.gradle.kts": "java",
	"pyproject.toml":   "python",
	"requirements.txt": "python",
	"setup.py":         "python",
}

// detectProjectLanguage inspects root for a well-known marker file and
// returns the language it implies, grounded on the teacher's
// Detector.findProjectRoot marker scan. It never errs: an absent or
// unreadable marker simply yields no hint, leaving the caller to fall
// back to extension counting.
func detectProjectLanguage(root string) (string, bool) {
	for marker, lang := range projectMarkers {
		if _, err := os.Stat(filepath.Join(root, marker)); err == nil {
			return lang, true
		}
	}
	return "", false
}

// goModuleName reads a go.mod at root, if any, and returns its module
// path. A directory parsed for Java/Python CIR extraction may still sit
// inside a Go module (e.g. embedded testdata fixtures under a Go tool's
// tree); when it does, the module path is recorded on the resulting
// graph as a diagnostic attribute rather than treated as a language
// signal, since Go itself is outside this package's supported set.
// Grounded on the teacher's extractGoModuleName, which parses go.mod
// purely to recover a display name.
func goModuleName(root string) (string, bool) {
	path := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	mod, err := modfile.Parse(path, data, nil)
	if err != nil || mod.Module == nil {
		return "", false
	}
	return mod.Module.Mod.Path, true
}
