package knowledge

import "strings"

// Search returns the entries whose question or answer contains the query,
// case-insensitive, in the collection's natural order. It never errors; no
// match yields an empty slice.
func Search(query string, entries []*Entry) []*Entry {
	queryLower := strings.ToLower(query)

	matches := make([]*Entry, 0)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Question()), queryLower) ||
			strings.Contains(strings.ToLower(e.Answer()), queryLower) {
			matches = append(matches, e)
		}
	}
	return matches
}
