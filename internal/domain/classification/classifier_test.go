package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(DefaultTable())

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "account access keywords",
			text:     "I forgot my password and my account is locked",
			expected: "account_access",
		},
		{
			name:     "billing keywords",
			text:     "Please refund the duplicate charge on my invoice",
			expected: "billing",
		},
		{
			name:     "bug report keywords",
			text:     "The app will crash with an error on startup",
			expected: "bug_report",
		},
		{
			name:     "feature request keywords",
			text:     "Feature request: an enhancement to the export flow",
			expected: "feature_request",
		},
		{
			name:     "case insensitive matching",
			text:     "MY PASSWORD DOES NOT WORK",
			expected: "account_access",
		},
		{
			name:     "keyword matches as substring",
			text:     "problems with my signin",
			expected: "account_access",
		},
		{
			name:     "punctuation is stripped before matching",
			text:     "my sign-in stopped working",
			expected: "account_access",
		},
		{
			name:     "no keyword falls back",
			text:     "what are your opening hours",
			expected: FallbackCategory,
		},
		{
			name:     "empty input falls back",
			text:     "",
			expected: FallbackCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.text))
		})
	}
}

func TestClassifier_HighestScoreWins(t *testing.T) {
	c := NewClassifier(DefaultTable())

	// One billing keyword against two account_access keywords.
	got := c.Classify("my password is wrong and my account shows a stray charge")
	assert.Equal(t, "account_access", got)
}

func TestClassifier_TieBreakIsTableOrder(t *testing.T) {
	table := NewTable([]Category{
		{Name: "alpha", Keywords: []string{"shared"}},
		{Name: "beta", Keywords: []string{"shared"}},
	}, FallbackCategory)
	c := NewClassifier(table)

	// Both categories score 1; the first-defined category must win, every
	// time.
	for i := 0; i < 100; i++ {
		assert.Equal(t, "alpha", c.Classify("a shared keyword"))
	}

	reversed := NewTable([]Category{
		{Name: "beta", Keywords: []string{"shared"}},
		{Name: "alpha", Keywords: []string{"shared"}},
	}, FallbackCategory)
	assert.Equal(t, "beta", NewClassifier(reversed).Classify("a shared keyword"))
}

func TestClassifier_NilTableUsesDefault(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, "billing", c.Classify("refund please"))
}
