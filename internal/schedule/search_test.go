package schedule

import (
	"testing"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFilterSearch(t *testing.T) {
	maths := testEntry("Algebra I", "2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z")
	maths.Subject = "Mathematics"

	taughtByMatt := testEntry("Reading club", "2024-01-02T09:00:00Z", "2024-01-02T10:00:00Z")
	taughtByMatt.Subject = "English"
	taughtByMatt.Teachers = []model.Person{{ID: uuid.New(), FirstName: "Matt", LastName: "Mathers"}}

	description := "Essay writing and grammar"
	described := testEntry("Writing", "2024-01-03T09:00:00Z", "2024-01-03T10:00:00Z")
	described.Subject = "English"
	described.Description = &description

	other := testEntry("Chemistry lab", "2024-01-04T09:00:00Z", "2024-01-04T10:00:00Z")
	other.Subject = "Science"

	all := []Entry{maths, taughtByMatt, described, other}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"subject and teacher name parts", "math", []string{"Algebra I", "Reading club"}},
		{"case insensitive", "MATT", []string{"Reading club"}},
		{"full teacher name", "matt mathers", []string{"Reading club"}},
		{"description", "GRAMMAR", []string{"Writing"}},
		{"title", "lab", []string{"Chemistry lab"}},
		{"no match", "history", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range FilterSearch(all, tt.query) {
				got = append(got, e.Title)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterSearchBlankQueryIsIdentity(t *testing.T) {
	entries := []Entry{
		testEntry("b", "2024-01-02T09:00:00Z", "2024-01-02T10:00:00Z"),
		testEntry("a", "2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z"),
	}

	assert.Equal(t, entries, FilterSearch(entries, ""))
	assert.Equal(t, entries, FilterSearch(entries, "   \t"))
}
