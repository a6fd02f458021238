package scoring

import "strings"

// skillSynonyms maps each canonical skill form to its known variants. The
// vocabulary is deliberately not closed: tokens not covered here pass through
// Normalize lowercased but otherwise unchanged.
var skillSynonyms = map[string][]string{
	// JavaScript ecosystem
	"javascript": {"js", "es6", "es2015", "ecmascript"},
	"typescript": {"ts"},
	"react":      {"reactjs", "react.js", "react js"},
	"vue":        {"vuejs", "vue.js", "vue js"},
	"angular":    {"angularjs", "angular.js"},
	"node.js":    {"nodejs", "node", "node js"},
	"next.js":    {"nextjs", "next"},
	"express":    {"expressjs", "express.js"},

	// Python ecosystem
	"python":  {"py", "python3", "python 3"},
	"django":  {"django rest", "drf"},
	"fastapi": {"fast api"},
	"flask":   {"flask api"},
	"pandas":  {"pd"},
	"numpy":   {"np"},

	// Databases
	"postgresql":    {"postgres", "psql", "pg"},
	"mongodb":       {"mongo"},
	"mysql":         {"mariadb"},
	"redis":         {"redis cache"},
	"elasticsearch": {"elastic", "es"},

	// Cloud and DevOps
	"aws":        {"amazon web services", "amazon aws"},
	"gcp":        {"google cloud", "google cloud platform"},
	"azure":      {"microsoft azure", "ms azure"},
	"docker":     {"containerization", "containers"},
	"kubernetes": {"k8s", "kube"},
	"ci/cd":      {"cicd", "ci cd", "continuous integration"},

	// General
	"rest api":                {"restful", "rest", "restful api"},
	"graphql":                 {"graph ql"},
	"git":                     {"github", "gitlab", "version control"},
	"agile":                   {"scrum", "kanban"},
	"machine learning":        {"ml", "deep learning", "dl"},
	"artificial intelligence": {"ai"},
}

// canonicalForms is the variant-to-canonical reverse lookup, built once at
// process start and read-only afterwards.
var canonicalForms = buildCanonicalForms()

func buildCanonicalForms() map[string]string {
	lookup := make(map[string]string, len(skillSynonyms)*4)
	for canonical, variants := range skillSynonyms {
		lookup[canonical] = canonical
		for _, variant := range variants {
			lookup[variant] = canonical
		}
	}
	return lookup
}

// Normalize maps a free-form skill token to its canonical lowercase form.
// Unknown tokens pass through lowercased and trimmed; the operation is
// idempotent.
func Normalize(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := canonicalForms[lower]; ok {
		return canonical
	}
	return lower
}
