package calendar

import (
	"fmt"
	"time"
)

// Day is one cell of the month grid. Adjacent-month filler cells carry only
// the day number; current-month cells carry the full date and flags.
type Day struct {
	Day        int    `json:"day"`
	Date       string `json:"date,omitempty"`
	OtherMonth bool   `json:"otherMonth,omitempty"`
	IsToday    bool   `json:"isToday,omitempty"`
	HasEvent   bool   `json:"hasEvent,omitempty"`
	IsSelected bool   `json:"isSelected,omitempty"`
}

type Grid struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
	Days  []Day  `json:"days"`
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthGrid lays out a month as a 7-column grid, padded with trailing days
// of the previous month and leading days of the next so the cell count is
// always a multiple of 7. Weeks start on Sunday. An out-of-range month
// normalizes into the adjacent year, as time.Date does.
func MonthGrid(year, month int, eventDates map[string]bool, today, selected string) Grid {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	year, month = first.Year(), int(first.Month())
	firstWeekday := int(first.Weekday()) // Sunday == 0
	daysInMonth := first.AddDate(0, 1, -1).Day()
	daysInPrevMonth := first.AddDate(0, 0, -1).Day()

	days := make([]Day, 0, 42)

	for i := firstWeekday - 1; i >= 0; i-- {
		days = append(days, Day{Day: daysInPrevMonth - i, OtherMonth: true})
	}

	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
		days = append(days, Day{
			Day:        d,
			Date:       date,
			IsToday:    date == today,
			HasEvent:   eventDates[date],
			IsSelected: date == selected,
		})
	}

	remaining := (7 - len(days)%7) % 7
	for n := 1; n <= remaining; n++ {
		days = append(days, Day{Day: n, OtherMonth: true})
	}

	return Grid{
		Year:  year,
		Month: month,
		Label: fmt.Sprintf("%s %d", monthNames[month-1], year),
		Days:  days,
	}
}
