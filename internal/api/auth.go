package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/skjuv/portfolio/internal/metrics"
	"github.com/skjuv/portfolio/internal/requestinfo"
)

type authRequest struct {
	Password string `json:"password"`
	Action   string `json:"action"`
}

type authResponse struct {
	Success bool `json:"success"`
}

// Auth handles POST /api/admin/auth: password login or explicit logout.
// Logout always succeeds so a client holding a stale cookie can clear it.
func (h *Handlers) Auth(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Action == "logout" {
		h.sessions.Logout(w)
		writeJSON(w, http.StatusOK, authResponse{Success: true})
		return
	}

	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "password required")
		return
	}

	ip := requestinfo.ClientIP(r)
	if h.logins != nil && !h.logins.Allow(ip) {
		metrics.RateLimitedTotal.Inc()
		writeError(w, http.StatusTooManyRequests, "too many login attempts, retry later")
		return
	}

	ok, err := h.sessions.Login(w, req.Password)
	if err != nil {
		zap.S().Errorw("issuing admin session failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		metrics.LoginFailureTotal.Inc()
		zap.S().Infow("admin login rejected", "ip", ip)
		writeError(w, http.StatusUnauthorized, "incorrect password")
		return
	}

	metrics.LoginSuccessTotal.Inc()
	zap.S().Infow("admin login", "ip", ip)
	writeJSON(w, http.StatusOK, authResponse{Success: true})
}
