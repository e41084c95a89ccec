package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/threestrands/threestrands/pkg/event"
)

const today = "2026-05-02" // 90 days forward lands on 2026-07-31

func TestFilterEvents_SelectedDate(t *testing.T) {
	events := []event.Event{
		{ID: "a", Name: "Farm Tour", Date: "2026-05-09"},
		{ID: "b", Name: "Market Day", Date: "2026-05-02"},
		{ID: "c", Name: "Tasting", Date: "2026-05-09"},
	}

	filtered, msg := FilterEvents(events, today, "2026-05-09")
	assert.Equal(t, "No events on this date.", msg)
	assert.Len(t, filtered, 2)
	// Input order, no re-sorting.
	assert.Equal(t, "a", filtered[0].ID)
	assert.Equal(t, "c", filtered[1].ID)
}

func TestFilterEvents_SelectedDateWithNoEvents(t *testing.T) {
	filtered, msg := FilterEvents([]event.Event{{ID: "a", Date: "2026-05-09"}}, today, "2026-05-10")
	assert.Empty(t, filtered)
	assert.Equal(t, "No events on this date.", msg)
}

func TestFilterEvents_UpcomingWindowIsInclusive(t *testing.T) {
	events := []event.Event{
		{ID: "past", Date: "2026-05-01"},
		{ID: "today", Date: "2026-05-02"},
		{ID: "edge", Date: "2026-07-31"},
		{ID: "beyond", Date: "2026-08-01"},
	}

	filtered, msg := FilterEvents(events, today, "")
	assert.Equal(t, "No upcoming events scheduled. Check back soon!", msg)
	assert.Len(t, filtered, 2)
	assert.Equal(t, "today", filtered[0].ID)
	assert.Equal(t, "edge", filtered[1].ID)
}

func TestFilterEvents_UpcomingSortsByDateThenTime(t *testing.T) {
	events := []event.Event{
		{ID: "d", Date: "2026-05-09", Time: "18:00"},
		{ID: "a", Date: "2026-05-03", Time: "10:00"},
		{ID: "c", Date: "2026-05-09", Time: "09:00"},
		{ID: "b", Date: "2026-05-09"}, // no time sorts before any time
	}

	filtered, _ := FilterEvents(events, today, "")
	got := make([]string, 0, len(filtered))
	for _, e := range filtered {
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}
