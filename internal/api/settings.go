package api

import (
	"net/http"

	"github.com/skjuv/portfolio/internal/portfolio"
)

func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reading portfolio data failed")
		return
	}
	writeJSON(w, http.StatusOK, data.Settings)
}

// PutSettings replaces the whole settings struct.  The admin screen always
// submits every field, so partial updates are not a case to handle.
func (h *Handlers) PutSettings(w http.ResponseWriter, r *http.Request) {
	var settings portfolio.Settings
	if err := readJSON(r, &settings); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.store.Update(r.Context(), func(d *portfolio.Data) *portfolio.Data {
		d.Settings = settings
		return d
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "saving settings failed")
		return
	}
	writeJSON(w, http.StatusOK, updated.Settings)
}
