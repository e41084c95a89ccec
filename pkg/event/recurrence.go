package event

import (
	"fmt"
	"time"
)

type Recurrence string

const (
	RecurrenceNone     Recurrence = "none"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiweekly Recurrence = "biweekly"
	RecurrenceMonthly  Recurrence = "monthly"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// AddDays shifts a calendar date by a number of days. The arithmetic is on
// the literal date in a fixed location, so DST transitions cannot alter it.
func AddDays(date string, days int) (string, error) {
	t, err := parseDate(date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return formatDate(t.AddDate(0, 0, days)), nil
}

// Expand generates the ordered sequence of dates for a recurrence rule,
// always beginning with the start date.
//
// Weekly and biweekly step by a fixed day interval. Monthly keeps the start's
// day-of-month, clamped to the last day of shorter months, so a series
// started on the 31st lands on the 28th/29th/30th where it must. An end date
// before the start date yields just the start date. Dates are zero-padded ISO
// strings, so the "next > end" comparison is a plain string compare.
func Expand(start string, recurrence Recurrence, end string) ([]string, error) {
	startTime, err := parseDate(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}

	dates := []string{start}
	if recurrence == RecurrenceNone || recurrence == "" || end == "" {
		return dates, nil
	}
	if _, err := parseDate(end); err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	switch recurrence {
	case RecurrenceWeekly, RecurrenceBiweekly:
		interval := 7
		if recurrence == RecurrenceBiweekly {
			interval = 14
		}
		current := startTime
		for {
			current = current.AddDate(0, 0, interval)
			next := formatDate(current)
			if next > end {
				break
			}
			dates = append(dates, next)
		}
	case RecurrenceMonthly:
		dayOfMonth := startTime.Day()
		year, month := startTime.Year(), int(startTime.Month())
		for {
			month++
			if month > 12 {
				month = 1
				year++
			}
			day := dayOfMonth
			if last := daysInMonth(year, month); day > last {
				day = last
			}
			next := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			if next > end {
				break
			}
			dates = append(dates, next)
		}
	default:
		return nil, fmt.Errorf("unknown recurrence %q", recurrence)
	}

	return dates, nil
}

func daysInMonth(year, month int) int {
	// Day zero of the following month normalizes to this month's last day.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
