package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		contains []string
	}{
		{
			name:     "account access reply carries password guidance",
			query:    "I forgot my password",
			category: "account_access",
			contains: []string{"I forgot my password", "Forgot Password", "password"},
		},
		{
			name:     "billing reply",
			query:    "why was I charged",
			category: "billing",
			contains: []string{"why was I charged", "billing"},
		},
		{
			name:     "data reply",
			query:    "export my data",
			category: "data",
			contains: []string{"export my data", "Data Export"},
		},
		{
			name:     "unknown category gets generic acknowledgment",
			query:    "hello there",
			category: "nonexistent",
			contains: []string{"hello there", "human agent"},
		},
		{
			name:     "fallback category",
			query:    "anything",
			category: FallbackCategory,
			contains: []string{"anything", "human agent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := Respond(tt.query, tt.category)
			for _, want := range tt.contains {
				assert.Contains(t, reply, want)
			}
		})
	}
}

func TestRespond_EveryTemplateInterpolatesQuery(t *testing.T) {
	const query = "some unique query text"
	for category := range responseTemplates {
		assert.Contains(t, Respond(query, category), query, "category %s", category)
	}
}
