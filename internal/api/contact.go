// internal/api/contact.go
//
// Public contact-form endpoint.  Unauthenticated, so it is the most
// exposed write in the system: strict field validation, a per-IP rate
// limit, and server-side origin capture (client input never reaches the
// Origin field).

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skjuv/portfolio/internal/metrics"
	"github.com/skjuv/portfolio/internal/portfolio"
	"github.com/skjuv/portfolio/internal/requestinfo"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type contactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handlers) PostContact(w http.ResponseWriter, r *http.Request) {
	info := requestinfo.Collect(r)

	if h.contact != nil && !h.contact.Allow(info.IP) {
		metrics.RateLimitedTotal.Inc()
		writeError(w, http.StatusTooManyRequests, "too many messages, retry later")
		return
	}

	var req contactRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, contactValidationMsg(err))
		return
	}

	msg := portfolio.Message{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
		Date:    time.Now().UTC().Format(time.RFC3339),
		Read:    false,
		Origin:  info.Origin(),
	}

	// Newest first, matching the admin messages screen.
	_, err := h.store.Update(r.Context(), func(d *portfolio.Data) *portfolio.Data {
		d.Messages = append([]portfolio.Message{msg}, d.Messages...)
		return d
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "saving message failed")
		return
	}

	metrics.ContactMessagesTotal.Inc()
	zap.S().Infow("contact message received", "ip", info.IP, "origin", msg.Origin)
	writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: "message sent"})
}

// contactValidationMsg maps the first failed field to a client-facing
// message without leaking validator internals.
func contactValidationMsg(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid submission"
	}
	switch errs[0].Field() {
	case "Name":
		return "name is required and must be at most 100 characters"
	case "Email":
		return "a valid email address is required"
	case "Subject":
		return "subject is required and must be at most 200 characters"
	case "Message":
		return "message is required and must be at most 5000 characters"
	}
	return "invalid submission"
}
