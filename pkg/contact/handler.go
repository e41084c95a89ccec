package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/threestrands/threestrands/internal/rest"
)

type Handler struct {
	mailer    Mailer
	toAddress string
	timeout   time.Duration
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewHandler(mailer Mailer, toAddress string, timeout time.Duration) *Handler {
	return &Handler{mailer: mailer, toAddress: toAddress, timeout: timeout}
}

// Submit forwards a contact-form message to the site owner's inbox. The send
// runs under a fixed timeout so a slow provider surfaces as a user-facing
// error instead of a hung request.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteJSON(w, http.StatusBadRequest, contactResponse{Success: false, Error: "Invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		rest.WriteJSON(w, http.StatusBadRequest, contactResponse{Success: false, Error: "Name, email and message are all required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	subject := fmt.Sprintf("Website contact from %s", req.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message)
	if err := h.mailer.Send(ctx, h.toAddress, subject, body); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Errorf("contact send timed out after %s", h.timeout)
			rest.WriteJSON(w, http.StatusGatewayTimeout, contactResponse{Success: false, Error: "Sending took too long, please try again"})
			return
		}
		log.Errorf("contact send failed: %v", err)
		rest.WriteJSON(w, http.StatusBadGateway, contactResponse{Success: false, Error: "Message could not be sent, please try again later"})
		return
	}

	rest.WriteJSON(w, http.StatusOK, contactResponse{Success: true, Message: "Thanks for reaching out! We'll get back to you soon."})
}
