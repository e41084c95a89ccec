package calendar

import (
	"sort"

	"github.com/threestrands/threestrands/pkg/event"
)

const upcomingWindowDays = 90

const (
	emptySelectedMessage = "No events on this date."
	emptyUpcomingMessage = "No upcoming events scheduled. Check back soon!"
)

// FilterEvents picks the events to show beside the grid. With a selected
// date: that date's events in input order. Without: events inside the
// inclusive 90-day forward window from today, sorted by date then time. The
// time sort is a lexicographic compare of zero-padded "HH:MM" strings, so an
// empty time sorts first. The returned message is the empty-state text for
// whichever view is active.
func FilterEvents(events []event.Event, today string, selected string) ([]event.Event, string) {
	if selected != "" {
		filtered := make([]event.Event, 0, len(events))
		for _, e := range events {
			if e.Date == selected {
				filtered = append(filtered, e)
			}
		}
		return filtered, emptySelectedMessage
	}

	horizon, err := event.AddDays(today, upcomingWindowDays)
	if err != nil {
		return []event.Event{}, emptyUpcomingMessage
	}

	filtered := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.Date >= today && e.Date <= horizon {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Time < filtered[j].Time
	})
	return filtered, emptyUpcomingMessage
}
