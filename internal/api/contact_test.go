package api

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/skjuv/portfolio/internal/ratelimit"
	"github.com/skjuv/portfolio/internal/store"
)

func contactBody(overrides map[string]string) map[string]string {
	body := map[string]string{
		"name":    "Alice",
		"email":   "alice@example.org",
		"subject": "Opportunity",
		"message": "Hi, I saw your work.",
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

func TestContactAccepted(t *testing.T) {
	h, st := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/api/contact", contactBody(nil), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	data, err := st.Read(context.Background())
	if err != nil {
		t.Fatalf("reading store: %v", err)
	}
	if len(data.Messages) != 3 {
		t.Fatalf("%d messages, want 3", len(data.Messages))
	}

	// Newest first.
	msg := data.Messages[0]
	if msg.Name != "Alice" || msg.Subject != "Opportunity" {
		t.Fatalf("stored message: %+v", msg)
	}
	if msg.ID == "" {
		t.Fatal("message must get a server-minted ID")
	}
	if msg.Read {
		t.Fatal("new messages arrive unread")
	}
	if _, err := time.Parse(time.RFC3339, msg.Date); err != nil {
		t.Fatalf("date %q is not RFC 3339: %v", msg.Date, err)
	}
	if msg.Origin == "" {
		t.Fatal("origin must be captured server-side")
	}
}

func TestContactOriginNotClientSupplied(t *testing.T) {
	h, st := newTestRouter(t)

	body := contactBody(nil)
	body["origin"] = "spoofed"
	rec := doJSON(t, h, http.MethodPost, "/api/contact", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data, err := st.Read(context.Background())
	if err != nil {
		t.Fatalf("reading store: %v", err)
	}
	if data.Messages[0].Origin == "spoofed" {
		t.Fatal("client-supplied origin must be ignored")
	}
}

func TestContactValidation(t *testing.T) {
	h, _ := newTestRouter(t)

	cases := []struct {
		name      string
		overrides map[string]string
	}{
		{"missing name", map[string]string{"name": ""}},
		{"name too long", map[string]string{"name": strings.Repeat("a", 101)}},
		{"bad email", map[string]string{"email": "not-an-address"}},
		{"subject too long", map[string]string{"subject": strings.Repeat("s", 201)}},
		{"message too long", map[string]string{"message": strings.Repeat("m", 5001)}},
		{"missing message", map[string]string{"message": "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/contact", contactBody(tc.overrides), nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestContactRateLimited(t *testing.T) {
	// The shared router helper disables limits, so wire a tight limiter
	// by hand.
	st := store.New(store.NewFileBackend(filepath.Join(t.TempDir(), "data.json")), nil)
	if err := st.Write(context.Background(), seedData()); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	limited := New(st, nil, nil, ratelimit.New(1, time.Minute))
	router := limited.Routes()

	rec := doJSON(t, router, http.MethodPost, "/contact", contactBody(nil), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("first: status = %d, want 200", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/contact", contactBody(nil), nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second: status = %d, want 429", rec.Code)
	}
}
