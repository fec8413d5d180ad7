package labels

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/seasonhq/scorecard/pkg/document"
)

var titleCaser = cases.Title(language.English)

// Humanize converts an identifier like "COMM_REC_Q2a" or "someKeyName"
// into display text ("Comm Rec Q2A", "Some Key Name"). It is a pure string
// transform and never fails.
func Humanize(key string) string {
	words := splitWords(key)
	for i, word := range words {
		words[i] = titleWord(strings.ToLower(word))
	}
	return strings.Join(words, " ")
}

// splitWords breaks an identifier on underscores and lower-to-upper camel
// boundaries.
func splitWords(key string) []string {
	var words []string
	var current []rune
	var prev rune
	for _, r := range key {
		if r == '_' || r == ' ' {
			if len(current) > 0 {
				words = append(words, string(current))
				current = nil
			}
			prev = r
			continue
		}
		if unicode.IsUpper(r) && unicode.IsLower(prev) && len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
		current = append(current, r)
		prev = r
	}
	if len(current) > 0 {
		words = append(words, string(current))
	}
	return words
}

// titleWord uppercases the first letter and any letter following a
// non-letter, so "q2a" becomes "Q2A".
func titleWord(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		if i == 0 || !unicode.IsLetter(runes[i-1]) {
			runes[i] = unicode.ToUpper(r)
		}
	}
	return string(runes)
}

// KPIDescription renders a KPI identity for display:
// "DONATIONS/General/–" becomes "Donations > General". A trailing
// placeholder component is dropped rather than shown.
func KPIDescription(key document.KPIKey) string {
	components := []string{key.Area, key.Category, key.SubCategory}
	var parts []string
	for _, c := range components {
		if c == "" || c == document.MissingKeyComponent {
			continue
		}
		parts = append(parts, titleCaser.String(strings.ToLower(strings.ReplaceAll(c, "_", " "))))
	}
	if len(parts) == 0 {
		return KPISectionLabel
	}
	return strings.Join(parts, " > ")
}

// sectionPrefixes maps question-id prefixes to the strategic section they
// belong to, used when neither path nor registry yields a section. Longer
// prefixes are listed first so COMM_ACCESS is tried before any shorter
// overlap; a match requires the next character to be a non-letter.
var sectionPrefixes = []struct {
	prefix  string
	section string
}{
	{"COMM_ACCESS", "Community Access Programs"},
	{"COMM_REC", "Recreational Classes"},
	{"CORP_GP", "Global Presence"},
	{"CORP_LS", "Leadership & Culture"},
	{"SCH_CT", "Classical Training"},
	{"SCH_AS", "Attracting Students"},
	{"ACSI", "Artistic Contributions & Social Impact"},
	{"ATI", "Artistic & Technical Innovation"},
	{"CR", "Collaborations & Residencies"},
}

// SectionFromQuestionID derives a section label from a question-id prefix,
// or returns "" when no prefix matches.
func SectionFromQuestionID(questionID string) string {
	for _, entry := range sectionPrefixes {
		if !strings.HasPrefix(questionID, entry.prefix) {
			continue
		}
		rest := questionID[len(entry.prefix):]
		if rest == "" || !unicode.IsLetter(rune(rest[0])) {
			return entry.section
		}
	}
	return ""
}
