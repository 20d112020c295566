// internal/requestinfo/requestinfo.go
//
// Per-request metadata: client IP, parsed user agent, and best-effort
// geolocation.
//
// Context
// -------
// The contact endpoint annotates each stored message with a compact origin
// line ("Chrome 124 / macOS / FR") so the admin messages screen can spot
// obvious spam.  The structs here are inert – no handles, no buffers –
// and safe to log or JSON-encode.
//
// Geolocation is optional: InitGeo is only called when a GeoLite2 database
// path is configured, and every lookup degrades to empty fields when the
// reader is absent or has no match.

package requestinfo

import (
	"net"
	"net/http"
	"strings"

	"github.com/oschwald/geoip2-golang"

	"github.com/skjuv/portfolio/internal/ua"
)

// Geo holds IP-based geolocation hints.
type Geo struct {
	CountryISO string // "US", "CM", "FR", ...
	City       string // "Yaoundé", "Paris", ...
}

// Info is the metadata captured for one request.
type Info struct {
	IP  string
	UA  ua.Info
	Geo Geo
}

// geoReader is a process-wide MaxMind handle; safe for concurrent reads,
// which is all we ever perform.  nil disables lookups.
var geoReader *geoip2.Reader

// InitGeo opens the GeoLite2 database at startup.  Call once from cmd/web
// when a path is configured.
func InitGeo(dbPath string) error {
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoReader = r
	return nil
}

// Collect gathers metadata for r.
func Collect(r *http.Request) Info {
	ip := ClientIP(r)
	return Info{
		IP:  ip,
		UA:  ua.Parse(r.UserAgent()),
		Geo: lookupGeo(ip),
	}
}

// Origin renders the short line stored on contact messages.
func (i Info) Origin() string {
	parts := []string{i.UA.Summary()}
	if i.Geo.CountryISO != "" {
		parts = append(parts, i.Geo.CountryISO)
	}
	return strings.Join(parts, " / ")
}

// ClientIP extracts the originating address, preferring proxy headers:
// first hop of X-Forwarded-For, then X-Real-IP, then RemoteAddr.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if real := r.Header.Get("X-Real-Ip"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// lookupGeo returns best-effort Geo data using the global reader.
func lookupGeo(ipStr string) Geo {
	if geoReader == nil {
		return Geo{}
	}
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return Geo{}
	}
	rec, err := geoReader.City(ip)
	if err != nil {
		return Geo{}
	}
	return Geo{
		CountryISO: rec.Country.IsoCode,
		City:       rec.City.Names["en"],
	}
}
