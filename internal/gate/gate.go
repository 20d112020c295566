// internal/gate/gate.go
//
// Access-control checkpoint for admin routes.
//
// Context
// -------
// Every request to an admin-prefixed path passes through here before any
// handler runs.  The gate decodes and verifies the session cookie with its
// own verifier instance (the portable signer – this layer ran in a
// constrained runtime in the original deployment and keeps its independent
// implementation), then either forwards the request or denies it:
//
//   - page requests under /admin      → 307 redirect to /admin/login,
//   - API requests under /api/admin   → structured JSON 401.
//
// The login page and the auth endpoint are exempt, otherwise nobody could
// ever sign in.  Verification happens fresh on every request; a token can
// expire between two clicks and the gate must notice.

package gate

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/skjuv/portfolio/internal/metrics"
	"github.com/skjuv/portfolio/internal/session"
	"github.com/skjuv/portfolio/internal/token"
)

const (
	adminPrefix = "/admin"
	apiPrefix   = "/api/admin"

	loginPage = "/admin/login"
	authAPI   = "/api/admin/auth"
)

// Gate verifies session cookies on protected paths.
type Gate struct {
	secret []byte
	signer token.Signer
}

// New returns a Gate bound to the signing secret.
func New(secret []byte) *Gate {
	return &Gate{secret: secret, signer: token.PortableSigner{}}
}

// Middleware wraps next with the allow/deny decision.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case strings.HasPrefix(path, apiPrefix) && !strings.HasPrefix(path, authAPI):
			if !g.verified(r) {
				metrics.GateDenialsTotal.Inc()
				zap.S().Infow("gate denied api request", "path", path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
		case strings.HasPrefix(path, adminPrefix) && !strings.HasPrefix(path, loginPage):
			if !g.verified(r) {
				metrics.GateDenialsTotal.Inc()
				zap.S().Infow("gate redirected page request", "path", path)
				http.Redirect(w, r, loginPage, http.StatusTemporaryRedirect)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// verified reports whether r carries a valid admin token.  A malformed
// cookie and a missing cookie are indistinguishable to the caller: both
// fail closed.
func (g *Gate) verified(r *http.Request) bool {
	c, err := r.Cookie(session.CookieName)
	if err != nil || c.Value == "" {
		return false
	}
	_, ok := token.DecodeAndVerify(g.signer, c.Value, g.secret)
	return ok
}
