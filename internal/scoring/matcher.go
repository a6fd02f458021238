package scoring

import "strings"

// MatchSkills canonicalizes both sides and partitions the required-skill list
// into matched and missing, preserving required order and original casing.
// A job with no required skills is trivially fully matched.
//
// A required skill counts as matched on an exact canonical hit, or when a
// substring relationship holds in either direction with any candidate skill.
// The substring rule is intentionally loose so that compound terms like
// "rest api" still match a bare "api".
func MatchSkills(candidateSkills []string, requiredSkills []string) (score float64, matched, missing []string) {
	matched = []string{}
	missing = []string{}

	if len(requiredSkills) == 0 {
		return 100.0, matched, missing
	}

	candidateSet := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidateSet[Normalize(skill)] = struct{}{}
	}

	for _, required := range requiredSkills {
		normalized := Normalize(required)
		if _, ok := candidateSet[normalized]; ok {
			matched = append(matched, required)
			continue
		}
		if partialMatch(normalized, candidateSet) {
			matched = append(matched, required)
			continue
		}
		missing = append(missing, required)
	}

	score = float64(len(matched)) / float64(len(requiredSkills)) * 100
	return score, matched, missing
}

func partialMatch(required string, candidateSet map[string]struct{}) bool {
	for candidate := range candidateSet {
		if strings.Contains(candidate, required) || strings.Contains(required, candidate) {
			return true
		}
	}
	return false
}
