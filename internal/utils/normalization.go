package utils

import (
	"sort"
	"strings"
	"unicode"
)

func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

func NormalizeGrade(grade string) string {
	return strings.TrimSpace(grade)
}

// NormalizeQuestion reduces a question to a duplicate-detection key:
// lower-cased, punctuation stripped, words sorted. Reorderings and
// case/punctuation variants of the same question collapse to one key.
func NormalizeQuestion(question string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(question) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	sort.Strings(words)
	return strings.Join(words, " ")
}
