package scoring

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "canonical passes through", input: "python", expected: "python"},
		{name: "lowercases", input: "Python", expected: "python"},
		{name: "trims whitespace", input: "  JS  ", expected: "javascript"},
		{name: "k8s variant", input: "K8s", expected: "kubernetes"},
		{name: "postgres variant", input: "Postgres", expected: "postgresql"},
		{name: "node variant", input: "node", expected: "node.js"},
		{name: "scrum folds into agile", input: "Scrum", expected: "agile"},
		{name: "unknown token unchanged", input: "COBOL", expected: "cobol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, input := range []string{"JS", "k8s", "Postgres", "REST", "unknown skill"} {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
