// Package textutil provides text normalization helpers used by the
// classification pipeline.
package textutil

import "strings"

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Clean lowercases the input, strips ASCII punctuation, and collapses runs
// of whitespace into single spaces with trimmed ends.
func Clean(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if r < 128 && strings.ContainsRune(asciiPunctuation, r) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits text on whitespace. Empty input yields an empty slice.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Normalize runs the full pipeline: clean then tokenize.
func Normalize(text string) []string {
	return Tokenize(Clean(text))
}
