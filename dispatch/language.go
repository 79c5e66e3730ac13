package dispatch

import (
	"regexp"
	"strings"
)

// extensionLanguages maps a file extension to the language it implies
// (spec §4.5 "otherwise by file extension").
var extensionLanguages = map[string]string{
	".java": "java",
	".py":    "python",
	".ts":    "typescript",
	".tsx":   "typescript",
	".js":    "javascript",
}

// javaHints and pythonHints are keyword-pattern heuristics for the
// last-resort language detection pass (spec §4.5 "otherwise by
// heuristic keyword-pattern scoring"), grounded on
// original_source/backend/parse-core/detect.py's _JAVA_HINTS/_PY_HINTS.
var javaHints = compileHints(
	`\bclass\s+\w+`,
	`\binterface\s+\w+`,
	`\bpublic\b`,
	`\bprivate\b`,
	`\bprotected\b`,
	`\bpackage\s+\w+`,
	`\bimport\s+java\.`,
	`\bvoid\s+\w+\s*\(`,
	`System\.out\.println`,
	`new\s+\w+\s*\(`,
	`\bpublic\s+static\s+void\s+main\s*\(`,
	`\bextends\s+\w+`,
	`\bimplements\s+\w+`,
	`\bthrows\s+\w+`,
	`\btry\s*\{`,
	`\bcatch\s*\(`,
)

var pythonHints = compileHints(
	`\bdef\b`,
	`\bclass\b`,
	`\bimport\b`,
	`\bself\b`,
	`__init__\s*\(`,
	`print\s*\(`,
	`if\s+__name__\s*==\s*['"]__main__['"]`,
	`lambda\s+`,
	`\basync\s+def\b`,
	`\bawait\b`,
	`\btry\s*:\s*\n`,
	`\bexcept\s+\w+\s*:\s*\n`,
	`\bwith\s+\w+`,
	`\bfrom\s+\w+\s+import\b`,
	`\bself\.`,
)

func compileHints(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?m)` + p)
	}
	return out
}

func hintScore(hints []*regexp.Regexp, code string) int {
	hits := 0
	for _, h := range hints {
		if h.MatchString(code) {
			hits++
		}
	}
	return hits
}

// heuristicMinHits is the hit count below which a heuristic guess is
// rejected rather than returned with low confidence (detect.py treats
// fewer than 6 hits as confidence < 0.6 and reports "unknown").
const heuristicMinHits = 6

// detectLanguage resolves the language to parse with per spec §4.5:
// explicit argument, then file extension, then heuristic scoring.
// Only java and python ever resolve via the heuristic pass since those
// are the only registered adapters' hint tables.
func detectLanguage(explicit, filename string, code []byte) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if filename != "" {
		ext := extensionOf(filename)
		if lang, ok := extensionLanguages[ext]; ok {
			return lang, true
		}
	}

	text := string(code)
	javaScore := hintScore(javaHints, text)
	pyScore := hintScore(pythonHints, text)

	lang, score := "java", javaScore
	if pyScore > score {
		lang, score = "python", pyScore
	}
	if score < heuristicMinHits {
		return "", false
	}
	return lang, true
}

func extensionOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx:])
}
