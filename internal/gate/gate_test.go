// internal/gate/gate_test.go
//
// Allow/deny matrix for the admin gate.
//
// Context
// -------
// Each sub-case fires an httptest request through Middleware wrapping a
// handler that records whether it ran, then asserts status, redirect
// target, and pass-through.  Cookies are minted with the std signer to
// prove the gate's portable verifier accepts tokens issued by the other
// implementation.
//
// Run: go test ./internal/gate -v

package gate

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skjuv/portfolio/internal/session"
	"github.com/skjuv/portfolio/internal/token"
)

var secret = []byte("gate-test-secret")

func mintCookie(t *testing.T, exp time.Time) *http.Cookie {
	t.Helper()
	tok, err := token.Encode(token.StdSigner{}, token.Payload{
		Role:  token.RoleAdmin,
		Exp:   exp.UnixMilli(),
		Nonce: "0123456789abcdef",
	}, secret)
	if err != nil {
		t.Fatalf("encode token: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: tok}
}

func fire(t *testing.T, path string, cookie *http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	New(secret).Middleware(next).ServeHTTP(rr, req)
	return rr, reached
}

func TestGate_LoginPage_AlwaysAllowed(t *testing.T) {
	rr, reached := fire(t, "/admin/login", nil)
	if !reached || rr.Code != http.StatusOK {
		t.Fatalf("login page blocked: code %d, reached %v", rr.Code, reached)
	}
}

func TestGate_AuthAPI_AlwaysAllowed(t *testing.T) {
	rr, reached := fire(t, "/api/admin/auth", nil)
	if !reached || rr.Code != http.StatusOK {
		t.Fatalf("auth endpoint blocked: code %d, reached %v", rr.Code, reached)
	}
}

func TestGate_AdminPage_NoCookie_Redirects(t *testing.T) {
	rr, reached := fire(t, "/admin/projects", nil)
	if reached {
		t.Fatal("handler ran for unauthenticated page request")
	}
	if rr.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want 307", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("redirect target = %q, want /admin/login", loc)
	}
}

func TestGate_AdminAPI_NoCookie_401(t *testing.T) {
	rr, reached := fire(t, "/api/admin/messages", nil)
	if reached {
		t.Fatal("handler ran for unauthenticated API request")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
}

func TestGate_ValidCookie_Allowed(t *testing.T) {
	cookie := mintCookie(t, time.Now().Add(time.Hour))

	for _, path := range []string{"/admin/projects", "/api/admin/messages"} {
		rr, reached := fire(t, path, cookie)
		if !reached || rr.Code != http.StatusOK {
			t.Fatalf("%s: blocked with valid cookie (code %d)", path, rr.Code)
		}
	}
}

func TestGate_ExpiredCookie_Denied(t *testing.T) {
	cookie := mintCookie(t, time.Now().Add(-time.Minute))

	if rr, reached := fire(t, "/api/admin/messages", cookie); reached || rr.Code != http.StatusUnauthorized {
		t.Fatalf("expired cookie passed the gate (code %d)", rr.Code)
	}
}

func TestGate_TamperedCookie_Denied(t *testing.T) {
	cookie := mintCookie(t, time.Now().Add(time.Hour))
	cookie.Value += "00" // extend the hex signature

	if rr, reached := fire(t, "/api/admin/messages", cookie); reached || rr.Code != http.StatusUnauthorized {
		t.Fatalf("tampered cookie passed the gate (code %d)", rr.Code)
	}
}

func TestGate_PublicPaths_Untouched(t *testing.T) {
	for _, path := range []string{"/", "/api/portfolio", "/api/contact"} {
		rr, reached := fire(t, path, nil)
		if !reached || rr.Code != http.StatusOK {
			t.Fatalf("%s: public path blocked (code %d)", path, rr.Code)
		}
	}
}
