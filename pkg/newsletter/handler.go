package newsletter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/threestrands/threestrands/internal/rest"
)

type Handler struct {
	client Client
}

type subscribeRequest struct {
	EmailAddress string `json:"email_address"`
}

type subscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

// Subscribe forwards a signup to the mailing-list provider.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteJSON(w, http.StatusBadRequest, subscribeResponse{Success: false, Error: "Invalid request body"})
		return
	}

	email := strings.TrimSpace(req.EmailAddress)
	if email == "" || !strings.Contains(email, "@") {
		rest.WriteJSON(w, http.StatusBadRequest, subscribeResponse{Success: false, Error: "A valid email address is required"})
		return
	}

	if err := h.client.Subscribe(r.Context(), email); err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			rest.WriteJSON(w, http.StatusOK, subscribeResponse{Success: true, Message: "You're already on the list!"})
			return
		}
		log.Errorf("newsletter signup failed: %v", err)
		rest.WriteJSON(w, http.StatusBadGateway, subscribeResponse{Success: false, Error: "Signup failed, please try again later"})
		return
	}

	rest.WriteJSON(w, http.StatusOK, subscribeResponse{Success: true, Message: "Thanks for subscribing!"})
}
