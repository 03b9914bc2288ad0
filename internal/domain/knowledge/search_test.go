package knowledge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []*Entry {
	now := time.Now()
	return []*Entry{
		ReconstructEntry(1, "How do I request a refund?", "Open Account Settings and select Billing.", "billing", now, now),
		ReconstructEntry(2, "How do I reset my password?", "Use the Forgot Password link on the login page.", "account_access", now, now),
		ReconstructEntry(3, "Why was I charged twice?", "Duplicate charges are refunded automatically within 5 days.", "billing", now, now),
	}
}

func TestSearch(t *testing.T) {
	entries := testEntries()

	tests := []struct {
		name        string
		query       string
		expectedIDs []uint
	}{
		{
			name:        "matches question",
			query:       "refund",
			expectedIDs: []uint{1, 3},
		},
		{
			name:        "case insensitive",
			query:       "REFUND",
			expectedIDs: []uint{1, 3},
		},
		{
			name:        "matches answer only",
			query:       "forgot password",
			expectedIDs: []uint{2},
		},
		{
			name:        "no match",
			query:       "kubernetes",
			expectedIDs: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(tt.query, entries)

			ids := make([]uint, 0, len(results))
			for _, e := range results {
				ids = append(ids, e.ID())
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestSearch_EmptyCollection(t *testing.T) {
	results := Search("refund", nil)
	require.NotNil(t, results)
	assert.Empty(t, results)
}
