package dispatch

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// languageExtensions is the reverse of extensionLanguages, used to
// pick which files under a directory belong to a given language when
// walking it (spec §4.5 extension-based selection, applied here to a
// whole-tree convenience entry point rather than one filename).
var languageExtensions = map[string][]string{
	"java":       {".java"},
	"python":     {".py"},
	"typescript": {".ts", ".tsx"},
	"javascript": {".js"},
}

// ParseDirectory walks root and parses every file matching language's
// extensions into one project-wide CIR, grounded on the teacher's
// analyzer.AnalyzeDir/analyzePackages afs.Service.Walk visitor pattern.
// When language is empty, a project marker file at root (pom.xml,
// requirements.txt, ...) decides it; without one, it is detected from
// the extensions present under root (the language with the most
// matching files wins).
func ParseDirectory(ctx context.Context, root, language string) (*cir.Graph, []adapter.FileError, error) {
	fs := afs.New()

	counts := map[string]int{}
	var paths []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		ext := extensionOf(info.Name())
		for lang, exts := range languageExtensions {
			for _, e := range exts {
				if e == ext {
					counts[lang]++
				}
			}
		}
		paths = append(paths, url.Join(baseURL, parent, info.Name()))
		return true, nil
	}
	if err := fs.Walk(ctx, root, visitor); err != nil {
		return nil, nil, err
	}

	lang := language
	if lang == "" {
		if marked, ok := detectProjectLanguage(root); ok {
			lang = marked
		}
	}
	if lang == "" {
		best, bestCount := "", 0
		for l, c := range counts {
			if c > bestCount || (c == bestCount && l < best) {
				best, bestCount = l, c
			}
		}
		if bestCount == 0 {
			return nil, nil, ErrUnsupportedLanguage
		}
		lang = best
	}

	wantExts := languageExtensions[lang]
	if len(wantExts) == 0 {
		return nil, nil, ErrUnsupportedLanguage
	}

	var files []adapter.SourceFile
	for _, p := range paths {
		ext := extensionOf(p)
		if !containsString(wantExts, ext) {
			continue
		}
		code, err := fs.DownloadWithURL(ctx, p)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, adapter.SourceFile{Path: relativePath(root, p), Code: code})
	}

	g, fileErrs, err := ParseProject(lang, files)
	if err != nil {
		return nil, nil, err
	}
	if modulePath, ok := goModuleName(root); ok {
		g.Attributes["go_module"] = modulePath
	}
	return g, fileErrs, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func relativePath(root, path string) string {
	root = strings.TrimSuffix(root, "/")
	if strings.HasPrefix(path, root+"/") {
		return strings.TrimPrefix(path, root+"/")
	}
	return path
}
