package event

import (
	"errors"
	"fmt"
)

var ErrInvalidDraft = errors.New("invalid event")

// Event is a single dated calendar entry. Instances generated from one
// recurring submission share a SeriesID; a standalone event has none.
// Date is a literal "YYYY-MM-DD" calendar date and Time/EndTime are
// zero-padded "HH:MM" strings, both compared lexicographically.
type Event struct {
	ID          string `json:"id"`
	SeriesID    string `json:"seriesId,omitempty"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// Draft is an admin form submission: one event plus an optional recurrence
// rule to expand it into a series.
type Draft struct {
	Name          string     `json:"name"`
	Date          string     `json:"date"`
	Time          string     `json:"time,omitempty"`
	EndTime       string     `json:"endTime,omitempty"`
	Location      string     `json:"location,omitempty"`
	Description   string     `json:"description,omitempty"`
	Recurrence    Recurrence `json:"recurrence,omitempty"`
	RecurrenceEnd string     `json:"recurrenceEnd,omitempty"`
}

func (d Draft) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDraft)
	}
	if _, err := parseDate(d.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidDraft, d.Date)
	}
	switch d.Recurrence {
	case "", RecurrenceNone, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly:
	default:
		return fmt.Errorf("%w: unknown recurrence %q", ErrInvalidDraft, d.Recurrence)
	}
	if d.RecurrenceEnd != "" {
		if _, err := parseDate(d.RecurrenceEnd); err != nil {
			return fmt.Errorf("%w: bad recurrence end date %q", ErrInvalidDraft, d.RecurrenceEnd)
		}
	}
	return nil
}
