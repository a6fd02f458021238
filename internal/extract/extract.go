package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"talentsift/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)

	// Phone patterns are tried in order; the first candidate whose digit-only
	// projection has at least minPhoneDigits digits wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?[\d\s\-()]{10,}`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-\s]?\d{3}[-\s]?\d{4}`),
	}

	// Years-of-experience phrasings, tried in order against lowercased text.
	yearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?(?:professional\s+)?experience`),
		regexp.MustCompile(`experience\s*[:\-]?\s*(\d+)\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s+(?:in|of|working)`),
	}

	nonDigitPattern = regexp.MustCompile(`\D`)
	longDigitRun    = regexp.MustCompile(`\d{5,}`)
)

const (
	minPhoneDigits = 9
	maxSaneYears   = 50
	nameScanLines  = 5
)

// Extract pulls structured fields out of raw resume text. It never fails:
// empty or whitespace-only input yields a ParsedResume with all optional
// fields unset and ExtractionFailed set.
func Extract(rawText string) types.ParsedResume {
	if strings.TrimSpace(rawText) == "" {
		return types.ParsedResume{
			Skills:           []string{},
			ExtractionFailed: true,
		}
	}

	return types.ParsedResume{
		RawText:           truncateRunes(rawText, types.MaxStoredTextLength),
		Email:             extractEmail(rawText),
		Phone:             extractPhone(rawText),
		Name:              extractName(rawText),
		Skills:            extractSkills(rawText),
		YearsOfExperience: extractYearsOfExperience(rawText),
	}
}

// extractEmail returns the first email-like token. Shape only, no validation.
func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractPhone returns the first plausible phone-number token. Country-code
// structure is not validated.
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		match := pattern.FindString(text)
		if match == "" {
			continue
		}
		phone := strings.TrimSpace(match)
		digits := nonDigitPattern.ReplaceAllString(phone, "")
		if len(digits) >= minPhoneDigits {
			return phone
		}
	}
	return ""
}

// extractSkills matches every vocabulary term against the text with
// case-insensitive whole-word matching. The result is deduplicated and
// sorted, in the vocabulary's canonical casing.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, 16)
	for _, sp := range skillPatterns {
		if sp.pattern.MatchString(lower) {
			found = append(found, sp.canonical)
		}
	}
	sort.Strings(found)
	return found
}

// extractYearsOfExperience tries each years phrasing in order and accepts the
// first match inside the sanity bound (0, 50].
func extractYearsOfExperience(text string) *int {
	lower := strings.ToLower(text)
	for _, pattern := range yearsPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if years > 0 && years <= maxSaneYears {
			return &years
		}
	}
	return nil
}

// extractName inspects the first few lines for something name-shaped: two to
// four words, each starting with an uppercase letter, no email or long digit
// run, under 50 characters. Best-effort only.
func extractName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "@") || longDigitRun.MatchString(line) {
			continue
		}
		if len([]rune(line)) >= 50 {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allWordsCapitalized(words) {
			return line
		}
	}
	return ""
}

func allWordsCapitalized(words []string) bool {
	for _, word := range words {
		runes := []rune(word)
		if len(runes) == 0 {
			continue
		}
		if !unicode.IsUpper(runes[0]) {
			return false
		}
	}
	return true
}

// truncateRunes cuts s to at most n characters.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
