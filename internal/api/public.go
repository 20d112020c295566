package api

import "net/http"

// GetPortfolio serves the whole record to the public site.  The record is
// small and changes rarely, so a short shared cache keeps the CDN warm
// without making admin edits invisible for long.
func (h *Handlers) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reading portfolio data failed")
		return
	}
	w.Header().Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=300")
	writeJSON(w, http.StatusOK, data)
}

// GetData serves the whole record to the admin dashboard overview.  Same
// payload as GetPortfolio but never cached.
func (h *Handlers) GetData(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reading portfolio data failed")
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, data)
}
