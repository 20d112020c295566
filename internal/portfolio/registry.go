// internal/portfolio/registry.go
//
// Known renderable section components.
//
// Every Section in the record names the front-end component that renders it.
// The admin sections screen is free-form, so the API must reject names the
// site cannot render; a typo there would silently blank a whole section.

package portfolio

import "sort"

// knownComponents mirrors the section components shipped with the site.
var knownComponents = map[string]struct{}{
	"Hero":                  {},
	"Terminal":              {},
	"ProfileSection":        {},
	"ProjectsSection":       {},
	"SkillsSection":         {},
	"SecuritySection":       {},
	"CertificationsSection": {},
	"VisionSection":         {},
	"Footer":                {},
}

// KnownComponent reports whether name resolves to a renderable section.
func KnownComponent(name string) bool {
	_, ok := knownComponents[name]
	return ok
}

// ComponentNames returns the sorted list of valid component names, used by
// the sections API to build its error message.
func ComponentNames() []string {
	out := make([]string, 0, len(knownComponents))
	for n := range knownComponents {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
