// internal/api/sections.go
//
// Section management.  Sections differ from the flat collections: the
// admin screen reorders them as a whole (PUT replaces the array), new
// sections slot in after the current maximum order, and every create or
// update must name a component the site can actually render.

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/skjuv/portfolio/internal/portfolio"
)

func (h *Handlers) GetSections(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reading portfolio data failed")
		return
	}
	writeJSON(w, http.StatusOK, data.Sections)
}

// PutSections replaces the whole section list, which is how the admin UI
// persists drag-and-drop reordering and enable/disable toggles.
func (h *Handlers) PutSections(w http.ResponseWriter, r *http.Request) {
	var sections []portfolio.Section
	if err := readJSON(r, &sections); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, s := range sections {
		if !portfolio.KnownComponent(s.Component) {
			writeError(w, http.StatusBadRequest, unknownComponentMsg(s.Component))
			return
		}
	}

	updated, err := h.store.Update(r.Context(), func(d *portfolio.Data) *portfolio.Data {
		d.Sections = sections
		return d
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "saving sections failed")
		return
	}
	writeJSON(w, http.StatusOK, updated.Sections)
}

// PostSection appends a section at the end of the navigation order.
func (h *Handlers) PostSection(w http.ResponseWriter, r *http.Request) {
	var section portfolio.Section
	if err := readJSON(r, &section); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !portfolio.KnownComponent(section.Component) {
		writeError(w, http.StatusBadRequest, unknownComponentMsg(section.Component))
		return
	}
	if section.ID == "" {
		section.ID = uuid.NewString()
	}

	updated, err := h.store.Update(r.Context(), func(d *portfolio.Data) *portfolio.Data {
		maxOrder := -1
		for _, s := range d.Sections {
			if s.Order > maxOrder {
				maxOrder = s.Order
			}
		}
		section.Order = maxOrder + 1
		d.Sections = append(d.Sections, section)
		return d
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "saving section failed")
		return
	}
	writeJSON(w, http.StatusOK, updated.Sections)
}

func (h *Handlers) DeleteSection(w http.ResponseWriter, r *http.Request) {
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
		kept := d.Sections[:0:0]
		for _, s := range d.Sections {
			if s.ID == req.ID {
				found = true
				continue
			}
			kept = append(kept, s)
		}
		d.Sections = kept
		return d
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "deleting section failed")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "section not found")
		return
	}
	writeJSON(w, http.StatusOK, updated.Sections)
}

func unknownComponentMsg(name string) string {
	return "unknown component " + strconv.Quote(name) + ", valid components: " +
		strings.Join(portfolio.ComponentNames(), ", ")
}
