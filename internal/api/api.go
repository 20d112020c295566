// internal/api/api.go
//
// HTTP handlers for the admin and public JSON APIs.
//
// Context
// -------
// Every admin mutation is a read-transform-write cycle through the store,
// so handlers stay thin: decode, transform, encode.  Authentication is not
// checked here; the gate middleware has already rejected unauthenticated
// requests for everything under /api/admin except /api/admin/auth.
//
// Responses follow one shape: the requested resource on success, or
// {"error": "..."} with a matching status code on failure.

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/skjuv/portfolio/internal/ratelimit"
	"github.com/skjuv/portfolio/internal/session"
	"github.com/skjuv/portfolio/internal/store"
)

// Request bodies are small JSON documents; anything larger is abuse.
const maxBodyBytes = 1 << 20

// Handlers carries the shared dependencies of every route.
type Handlers struct {
	store    *store.Store
	sessions *session.Manager
	logins   *ratelimit.Limiter // per-IP login attempts
	contact  *ratelimit.Limiter // per-IP contact submissions
}

// New wires the handler set.  Either limiter may be nil to disable that
// limit (tests do this).
func New(st *store.Store, sm *session.Manager, logins, contact *ratelimit.Limiter) *Handlers {
	return &Handlers{store: st, sessions: sm, logins: logins, contact: contact}
}

// Routes returns the router for everything under /api.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	// Public surface.
	r.Get("/portfolio", h.GetPortfolio)
	r.Post("/contact", h.PostContact)

	// Admin surface, gated upstream.
	r.Route("/admin", func(r chi.Router) {
		r.Post("/auth", h.Auth)
		r.Get("/data", h.GetData)

		mountCollection(r, "/projects", h, projects())
		mountCollection(r, "/certifications", h, certifications())
		mountCollection(r, "/stacks", h, technologies())

		r.Route("/sections", func(r chi.Router) {
			r.Get("/", h.GetSections)
			r.Put("/", h.PutSections)
			r.Post("/", h.PostSection)
			r.Delete("/", h.DeleteSection)
		})

		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.PutSettings)

		r.Get("/chatbot", h.GetChatBot)
		r.Put("/chatbot", h.PutChatBot)

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.GetMessages)
			r.Put("/", h.PutMessage)
			r.Delete("/", h.DeleteMessage)
		})
	})

	return r
}

type errResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status.  Encoding failures are logged
// and swallowed; the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("encoding API response failed", "err", err)
	}
}

// writeError emits the uniform error shape.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errResponse{Error: msg})
}

// readJSON decodes the request body into v, rejecting oversize bodies and
// unknown fields left to the caller's taste (collections tolerate extras,
// matching the permissive admin UI).
func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}
