package event

import (
	"net/url"
	"strings"

	ical "github.com/arran4/golang-ical"
)

// Export composes floating local timestamps from the event's calendar date
// and "HH:MM" times: a missing start time becomes midnight and a missing end
// time falls back to the start time, or 01:00 when there is no start either.

func exportTimes(e Event) (start, end string) {
	date := strings.ReplaceAll(e.Date, "-", "")
	startTime := e.Time
	if startTime == "" {
		startTime = "00:00"
	}
	endTime := e.EndTime
	if endTime == "" {
		endTime = e.Time
	}
	if endTime == "" {
		endTime = "01:00"
	}
	start = date + "T" + strings.ReplaceAll(startTime, ":", "") + "00"
	end = date + "T" + strings.ReplaceAll(endTime, ":", "") + "00"
	return start, end
}

// ICS renders the event as a single-VEVENT calendar.
func ICS(e Event) string {
	start, end := exportTimes(e)

	cal := ical.NewCalendar()
	cal.SetProductId("-//3 Strands Cattle Co.//Events//EN")

	ev := cal.AddEvent(e.ID + "@3strands.co")
	ev.SetProperty(ical.ComponentPropertyDtStart, start)
	ev.SetProperty(ical.ComponentPropertyDtEnd, end)
	ev.SetProperty(ical.ComponentPropertySummary, e.Name)
	if e.Description != "" {
		ev.SetProperty(ical.ComponentPropertyDescription, e.Description)
	}
	if e.Location != "" {
		ev.SetProperty(ical.ComponentPropertyLocation, e.Location)
	}

	return cal.Serialize()
}

// ICSFilename is the suggested download name for the event's calendar file.
func ICSFilename(e Event) string {
	name := strings.Join(strings.Fields(e.Name), "_")
	if name == "" {
		name = "event"
	}
	return name + ".ics"
}

// GoogleCalendarURL builds the calendar.google.com pre-filled event link.
func GoogleCalendarURL(e Event) string {
	start, end := exportTimes(e)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Name)
	q.Set("dates", start+"/"+end)
	q.Set("location", e.Location)
	q.Set("details", e.Description)

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
