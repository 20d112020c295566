// internal/ua/ua.go
//
// User-Agent parsing helpers.
//
// This wrapper isolates the third-party `github.com/avct/uasurfer` API so
// the rest of the codebase never sees its enums or structs.  Contact
// messages store the compact Summary string; nothing else needs the full
// breakdown.

package ua

import (
	"fmt"
	"strconv"
	"strings"

	surfer "github.com/avct/uasurfer"
)

// Info carries the UA attributes captured on inbound contact messages.
type Info struct {
	Browser   string
	Version   string
	OS        string
	OSVersion string
	Device    string // "Desktop", "Mobile", "Tablet", or "Other"
	IsBot     bool
	Raw       string
}

// Parse converts a raw User-Agent header into an Info struct.
func Parse(raw string) Info {
	u := surfer.Parse(raw)

	info := Info{
		Browser:   strings.TrimPrefix(u.Browser.Name.String(), "Browser"),
		Version:   versionToString(u.Browser.Version),
		OS:        strings.TrimPrefix(u.OS.Name.String(), "OS"),
		OSVersion: versionToString(u.OS.Version),
		IsBot:     u.IsBot(),
		Raw:       raw,
	}
	if info.OS == "MacOSX" {
		info.OS = "macOS"
	}

	switch u.DeviceType {
	case surfer.DeviceComputer:
		info.Device = "Desktop"
	case surfer.DeviceTablet:
		info.Device = "Tablet"
	case surfer.DevicePhone, surfer.DeviceWearable:
		info.Device = "Mobile"
	default:
		info.Device = "Other"
	}
	return info
}

// Summary renders a short human-readable fingerprint for the admin
// messages screen, e.g. "Chrome 124 / macOS / Desktop".
func (i Info) Summary() string {
	if i.IsBot {
		return "Bot"
	}
	browser := i.Browser
	if browser == "" || browser == "Unknown" {
		return "Unknown"
	}
	if v := majorVersion(i.Version); v != "" {
		browser += " " + v
	}
	parts := []string{browser}
	if i.OS != "" && i.OS != "Unknown" {
		parts = append(parts, i.OS)
	}
	parts = append(parts, i.Device)
	return strings.Join(parts, " / ")
}

// versionToString renders a semantic version in dotted form while trimming
// trailing zeros, e.g. 17.0.0 → "17", 17.3.0 → "17.3".
func versionToString(v surfer.Version) string {
	if v.Major == 0 && v.Minor == 0 && v.Patch == 0 {
		return ""
	}
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Minor != 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return strconv.Itoa(int(v.Major))
}

// majorVersion returns the leading numeric component of a dotted version.
func majorVersion(v string) string {
	if v == "" {
		return ""
	}
	if i := strings.IndexByte(v, '.'); i != -1 {
		return v[:i]
	}
	return v
}
