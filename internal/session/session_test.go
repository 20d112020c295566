// internal/session/session_test.go
//
// Login/logout cookie behaviour.
//
// Run: go test ./internal/session -v

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skjuv/portfolio/internal/token"
)

func TestLogin_CorrectPassword(t *testing.T) {
	m := New([]byte("secret"), "hunter2", true)

	rr := httptest.NewRecorder()
	ok, err := m.Login(rr, "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !ok {
		t.Fatal("correct password rejected")
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName {
		t.Errorf("cookie name = %q, want %q", c.Name, CookieName)
	}
	if !c.HttpOnly {
		t.Error("cookie is not HttpOnly")
	}
	if !c.Secure {
		t.Error("cookie is not Secure in production mode")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Errorf("SameSite = %v, want Strict", c.SameSite)
	}
	if c.Path != "/" {
		t.Errorf("Path = %q, want /", c.Path)
	}
	if c.MaxAge != 86400 {
		t.Errorf("MaxAge = %d, want 86400", c.MaxAge)
	}
	if _, valid := token.DecodeAndVerify(token.StdSigner{}, c.Value, []byte("secret")); !valid {
		t.Error("cookie value is not a valid token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	m := New([]byte("secret"), "hunter2", false)

	rr := httptest.NewRecorder()
	ok, err := m.Login(rr, "letmein")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if ok {
		t.Fatal("wrong password accepted")
	}
	if got := rr.Result().Cookies(); len(got) != 0 {
		t.Fatalf("cookie set on failed login: %v", got)
	}
}

func TestLogout_ExpiresCookie(t *testing.T) {
	m := New([]byte("secret"), "hunter2", false)

	rr := httptest.NewRecorder()
	m.Logout(rr)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if c := cookies[0]; c.Name != CookieName || c.Value != "" || c.MaxAge != -1 {
		t.Fatalf("logout cookie = %+v, want empty %s with MaxAge -1", c, CookieName)
	}

	// Idempotent: a second logout behaves identically.
	rr2 := httptest.NewRecorder()
	m.Logout(rr2)
	if len(rr2.Result().Cookies()) != 1 {
		t.Fatal("second logout did not set the expiry cookie")
	}
}

func TestIsAuthenticated(t *testing.T) {
	m := New([]byte("secret"), "hunter2", false)

	// No cookie.
	r := httptest.NewRequest(http.MethodGet, "/api/admin/data", nil)
	if m.IsAuthenticated(r) {
		t.Fatal("request without cookie authenticated")
	}

	// Cookie from a real login.
	rr := httptest.NewRecorder()
	if ok, _ := m.Login(rr, "hunter2"); !ok {
		t.Fatal("login failed")
	}
	r = httptest.NewRequest(http.MethodGet, "/api/admin/data", nil)
	r.AddCookie(rr.Result().Cookies()[0])
	if !m.IsAuthenticated(r) {
		t.Fatal("request with fresh session rejected")
	}

	// Garbage cookie.
	r = httptest.NewRequest(http.MethodGet, "/api/admin/data", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "not.a.token"})
	if m.IsAuthenticated(r) {
		t.Fatal("garbage cookie authenticated")
	}

	// Token signed under another secret.
	other := New([]byte("other-secret"), "hunter2", false)
	rr = httptest.NewRecorder()
	_, _ = other.Login(rr, "hunter2")
	r = httptest.NewRequest(http.MethodGet, "/api/admin/data", nil)
	r.AddCookie(rr.Result().Cookies()[0])
	if m.IsAuthenticated(r) {
		t.Fatal("foreign-secret token authenticated")
	}
}
