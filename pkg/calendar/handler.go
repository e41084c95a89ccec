package calendar

import (
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/threestrands/threestrands/internal/rest"
	"github.com/threestrands/threestrands/internal/utils"
	"github.com/threestrands/threestrands/pkg/event"
)

type Handler struct {
	events *event.Service
	clock  utils.Clock
}

type ViewDTO struct {
	Grid         Grid          `json:"grid"`
	Events       []event.Event `json:"events"`
	EmptyMessage string        `json:"emptyMessage,omitempty"`
}

func NewHandler(events *event.Service, clock utils.Clock) *Handler {
	return &Handler{events: events, clock: clock}
}

// GetView returns the month grid plus the event list for an optional
// selected date. Year and month default to the current month.
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	today := now.Format("2006-01-02")

	year := now.Year()
	month := int(now.Month())
	if s := r.URL.Query().Get("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			rest.WriteError(w, http.StatusBadRequest, "Invalid year", "'year' must be a positive integer")
			return
		}
		year = v
	}
	if s := r.URL.Query().Get("month"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 12 {
			rest.WriteError(w, http.StatusBadRequest, "Invalid month", "'month' must be between 1 and 12")
			return
		}
		month = v
	}
	selected := r.URL.Query().Get("selected")

	events, err := h.events.List(r.Context())
	if err != nil {
		log.Errorf("failed to load events for calendar view: %v", err)
		events = []event.Event{}
	}

	eventDates := make(map[string]bool, len(events))
	for _, e := range events {
		eventDates[e.Date] = true
	}

	grid := MonthGrid(year, month, eventDates, today, selected)
	filtered, emptyMessage := FilterEvents(events, today, selected)

	view := ViewDTO{Grid: grid, Events: filtered}
	if len(filtered) == 0 {
		view.EmptyMessage = emptyMessage
	}
	rest.WriteJSON(w, http.StatusOK, view)
}
