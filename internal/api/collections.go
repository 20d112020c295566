// internal/api/collections.go
//
// Shared CRUD plumbing for the flat record collections (projects,
// certifications, technologies).  Each collection is described once by a
// pair of accessors plus an ID getter/setter; the handlers are generated
// from that description.  Sections and messages have bespoke semantics and
// live in their own files.

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skjuv/portfolio/internal/portfolio"
)

type collection[T any] struct {
	name  string // used in error messages, e.g. "project"
	items func(*portfolio.Data) []T
	set   func(*portfolio.Data, []T)
	id    func(T) string
	setID func(*T, string)
}

func projects() collection[portfolio.Project] {
	return collection[portfolio.Project]{
		name:  "project",
		items: func(d *portfolio.Data) []portfolio.Project { return d.Projects },
		set:   func(d *portfolio.Data, v []portfolio.Project) { d.Projects = v },
		id:    func(p portfolio.Project) string { return p.ID },
		setID: func(p *portfolio.Project, id string) { p.ID = id },
	}
}

func certifications() collection[portfolio.Certification] {
	return collection[portfolio.Certification]{
		name:  "certification",
		items: func(d *portfolio.Data) []portfolio.Certification { return d.Certifications },
		set:   func(d *portfolio.Data, v []portfolio.Certification) { d.Certifications = v },
		id:    func(c portfolio.Certification) string { return c.ID },
		setID: func(c *portfolio.Certification, id string) { c.ID = id },
	}
}

func technologies() collection[portfolio.Technology] {
	return collection[portfolio.Technology]{
		name:  "technology",
		items: func(d *portfolio.Data) []portfolio.Technology { return d.Technologies },
		set:   func(d *portfolio.Data, v []portfolio.Technology) { d.Technologies = v },
		id:    func(t portfolio.Technology) string { return t.ID },
		setID: func(t *portfolio.Technology, id string) { t.ID = id },
	}
}

// mountCollection registers GET/POST/PUT/DELETE for one collection under
// path.  POST appends (minting an ID when the client sends none), PUT
// replaces by ID, DELETE removes by ID; every mutation responds with the
// full updated collection so the admin UI can re-render from the response.
func mountCollection[T any](r chi.Router, path string, h *Handlers, c collection[T]) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", listCollection(h, c))
		r.Post("/", createInCollection(h, c))
		r.Put("/", updateInCollection(h, c))
		r.Delete("/", deleteFromCollection(h, c))
	})
}

func listCollection[T any](h *Handlers, c collection[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := h.store.Read(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "reading portfolio data failed")
			return
		}
		writeJSON(w, http.StatusOK, c.items(data))
	}
}

func createInCollection[T any](h *Handlers, c collection[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := readJSON(r, &item); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if c.id(item) == "" {
			c.setID(&item, uuid.NewString())
		}

		updated, err := h.store.Update(r.Context(), func(d *portfolio.Data) *portfolio.Data {
			c.set(d, append(c.items(d), item))
			return d
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "saving "+c.name+" failed")
			return
		}
		writeJSON(w, http.StatusOK, c.items(updated))
	}
}

func updateInCollection[T any](h *Handlers, c collection[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := readJSON(r, &item); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if c.id(item) == "" {
			writeError(w, http.StatusBadRequest, "id required")
			return
		}

		found := false
		updated, err := h.store.Update(r.Context(), func(d *portfolio.Data) *portfolio.Data {
			items := c.items(d)
			for i := range items {
				if c.id(items[i]) == c.id(item) {
					items[i] = item
					found = true
				}
			}
			return d
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "saving "+c.name+" failed")
			return
		}
		if !found {
			writeError(w, http.StatusNotFound, c.name+" not found")
			return
		}
		writeJSON(w, http.StatusOK, c.items(updated))
	}
}

type deleteRequest struct {
	ID string `json:"id"`
}

func deleteFromCollection[T any](h *Handlers, c collection[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.ID == "" {
			writeError(w, http.StatusBadRequest, "id required")
			return
		}

		found := false
		updated, err := h.store.Update(r.Context(), func(d *portfolio.Data) *portfolio.Data {
			items := c.items(d)
			kept := items[:0:0]
			for _, it := range items {
				if c.id(it) == req.ID {
					found = true
					continue
				}
				kept = append(kept, it)
			}
			c.set(d, kept)
			return d
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "deleting "+c.name+" failed")
			return
		}
		if !found {
			writeError(w, http.StatusNotFound, c.name+" not found")
			return
		}
		writeJSON(w, http.StatusOK, c.items(updated))
	}
}
