package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/threestrands/threestrands/internal/config"
	"github.com/threestrands/threestrands/internal/rest"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// CORS preflight. The middleware answers before this handler runs; the
	// route only has to match so preflights work with the frontend disabled.
	r.PathPrefix("/api/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods("OPTIONS")

	// Catalog proxy
	r.HandleFunc("/api/catalog", deps.CatalogHandler.GetCatalog).Methods("GET")
	r.HandleFunc("/api/catalog/{itemId}", deps.CatalogHandler.GetItem).Methods("GET")

	// Events (public reads)
	r.HandleFunc("/api/events", deps.EventHandler.ListEvents).Methods("GET")
	r.HandleFunc("/api/calendar", deps.CalendarHandler.GetView).Methods("GET")
	r.HandleFunc("/api/event/{eventId}/export/ics", deps.EventHandler.ExportICS).Methods("GET")
	r.HandleFunc("/api/event/{eventId}/export/google", deps.EventHandler.ExportGoogleLink).Methods("GET")

	// Events (admin writes)
	admin := deps.AuthHandler.Middleware
	r.Handle("/api/events", admin(http.HandlerFunc(deps.EventHandler.ReplaceEvents))).Methods("POST")
	r.Handle("/api/event", admin(http.HandlerFunc(deps.EventHandler.CreateEvent))).Methods("POST")
	r.Handle("/api/event/{eventId}", admin(http.HandlerFunc(deps.EventHandler.UpdateEvent))).Methods("PUT")
	r.Handle("/api/event/{eventId}", admin(http.HandlerFunc(deps.EventHandler.DeleteEvent))).Methods("DELETE")

	// Admin session
	r.HandleFunc("/api/admin/login", deps.AuthHandler.Login).Methods("POST")

	// Newsletter + contact
	r.HandleFunc("/api/subscribe", deps.NewsletterHandler.Subscribe).Methods("POST")
	r.HandleFunc("/api/contact", deps.ContactHandler.Submit).Methods("POST")

	// Health check
	r.HandleFunc("/api/health", func(w http.ResponseWriter, req *http.Request) {
		rest.WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "ok",
			"environment": cfg.Square.Environment,
		})
	}).Methods("GET")
}
