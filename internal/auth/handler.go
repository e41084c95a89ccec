package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/threestrands/threestrands/internal/rest"
)

type Handler struct {
	sessions *Sessions
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func NewHandler(sessions *Sessions) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	token, err := h.sessions.Login(req.Username, req.Password)
	if err != nil {
		log.Infof("Rejected admin login for %q", req.Username)
		rest.WriteError(w, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}

	rest.WriteJSON(w, http.StatusOK, loginResponse{Token: token})
}

// Middleware rejects requests that do not carry a valid admin session token.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			rest.WriteError(w, http.StatusUnauthorized, "Missing session token", "")
			return
		}
		if err := h.sessions.Verify(token); err != nil {
			log.Debugf("session token rejected: %v", err)
			rest.WriteError(w, http.StatusUnauthorized, "Invalid or expired session token", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}
