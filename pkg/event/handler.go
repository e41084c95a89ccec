package event

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/threestrands/threestrands/internal/rest"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListEvents returns every stored event. Read failures degrade to an empty
// array so the public calendar keeps rendering.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		log.Errorf("failed to list events: %v", err)
		events = []Event{}
	}
	rest.WriteJSON(w, http.StatusOK, events)
}

// ReplaceEvents overwrites the whole store with the posted array.
func (h *Handler) ReplaceEvents(w http.ResponseWriter, r *http.Request) {
	var events []Event
	if err := json.NewDecoder(r.Body).Decode(&events); err != nil || events == nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", "body must be a JSON array of events")
		return
	}

	if err := h.service.Replace(r.Context(), events); err != nil {
		log.Errorf("admin event replace failed: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to save events", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CreateEvent creates one event, or a whole series when the draft carries a
// recurrence rule. Responds with the created instances.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), draft)
	if err != nil {
		if errors.Is(err, ErrInvalidDraft) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid event", err.Error())
			return
		}
		log.Errorf("admin event create failed: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to save events", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.service.Update(r.Context(), eventID, draft)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Event not found", "")
			return
		}
		if errors.Is(err, ErrInvalidDraft) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid event", err.Error())
			return
		}
		log.Errorf("admin event update failed for %s: %v", eventID, err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to save events", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, updated)
}

// DeleteEvent removes one instance, or the whole series with ?series=true.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	var err error
	if r.URL.Query().Get("series") == "true" {
		err = h.service.DeleteSeries(r.Context(), eventID)
	} else {
		err = h.service.DeleteInstance(r.Context(), eventID)
	}
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Event not found", "")
			return
		}
		log.Errorf("admin event delete failed for %s: %v", eventID, err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to save events", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportICS serves the event as a downloadable calendar file.
func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	e, err := h.service.Get(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Event not found", "")
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, "Failed to load event", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+ICSFilename(*e)+"\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(ICS(*e))); err != nil {
		log.Errorf("failed to write ICS response: %v", err)
	}
}

// ExportGoogleLink returns the Google Calendar pre-fill URL for the event.
func (h *Handler) ExportGoogleLink(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	e, err := h.service.Get(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Event not found", "")
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, "Failed to load event", err.Error())
		return
	}

	rest.WriteJSON(w, http.StatusOK, map[string]string{"url": GoogleCalendarURL(*e)})
}
