package schedule

import (
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/google/uuid"
)

func testSession(title, start, end string) model.Session {
	return model.Session{
		SessionID: uuid.New(),
		ClassID:   uuid.New(),
		Title:     title,
		Subject:   "Mathematics",
		StartDate: start,
		EndDate:   end,
		Status:    model.SessionStatusScheduled,
	}
}

func testEntry(title, start, end string) Entry {
	e, err := newEntry(testSession(title, start, end), time.UTC)
	if err != nil {
		panic(err)
	}
	return e
}

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
