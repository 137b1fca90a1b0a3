package schedule

import (
	"strings"
)

// FilterSearch keeps entries matching query on any of title, subject,
// description or teacher names. A blank query returns entries unchanged.
func FilterSearch(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}

	var out []Entry
	for _, e := range entries {
		if MatchesQuery(e, q) {
			out = append(out, e)
		}
	}
	return out
}

// MatchesQuery expects q to be lower-cased and trimmed already.
func MatchesQuery(e Entry, q string) bool {
	if containsFold(e.Title, q) || containsFold(e.Subject, q) {
		return true
	}
	if e.Description != nil && containsFold(*e.Description, q) {
		return true
	}
	for _, t := range e.Teachers {
		if containsFold(t.FullName(), q) || containsFold(t.FirstName, q) || containsFold(t.LastName, q) {
			return true
		}
	}
	return false
}

func containsFold(s, lowerQuery string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), lowerQuery)
}
