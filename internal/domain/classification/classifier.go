package classification

import (
	"strings"

	"helpdesk/internal/shared/textutil"
)

// Classifier scores free text against a category table. It is safe for
// concurrent use; the table is immutable after construction.
type Classifier struct {
	table *Table
}

func NewClassifier(table *Table) *Classifier {
	if table == nil {
		table = DefaultTable()
	}
	return &Classifier{table: table}
}

// Classify returns the best-scoring category for the text. The text is
// cleaned first (lowercased, punctuation stripped, whitespace collapsed); a
// category's score is the number of its keywords occurring as substrings of
// the cleaned text. Ties go to the category defined first in the table; a
// zero maximum yields the fallback category. Never errors.
func (c *Classifier) Classify(text string) string {
	cleaned := textutil.Clean(text)

	bestCategory := c.table.Fallback()
	bestScore := 0
	for _, category := range c.table.Categories() {
		score := 0
		for _, keyword := range category.Keywords {
			if keyword != "" && strings.Contains(cleaned, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestCategory = category.Name
		}
	}

	return bestCategory
}
