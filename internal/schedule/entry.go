package schedule

import (
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/formatting"
	"github.com/Freeeeeet/tutorcenter/internal/model"
)

// Entry is a session with parsed times and the placement fields a render
// pass stamps on it. Entries are rebuilt on every pass and never stored.
type Entry struct {
	model.Session

	Start    time.Time
	End      time.Time
	Duration string

	GroupIndex int
	ClassIndex int
	GroupSize  int
}

// DurationMinutes returns the length of the session in whole minutes.
func (e Entry) DurationMinutes() int {
	return int(e.End.Sub(e.Start) / time.Minute)
}

// newEntry parses both ends of the session in loc. An end before the start is
// read as crossing midnight.
func newEntry(s model.Session, loc *time.Location) (Entry, error) {
	start, err := ParseInstant(s.StartDate, loc)
	if err != nil {
		return Entry{}, err
	}
	end, err := ParseInstant(s.EndDate, loc)
	if err != nil {
		return Entry{}, err
	}
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	e := Entry{
		Session:   s,
		Start:     start,
		End:       end,
		GroupSize: 1,
	}
	e.Duration = formatting.FormatDuration(e.DurationMinutes())
	return e, nil
}
