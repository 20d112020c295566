// internal/portfolio/model.go
//
// Typed model for the portfolio record.
//
// Context
// -------
// The whole site is driven by one JSON document: settings, toggleable page
// sections, projects, skills, certifications, technologies, inbound contact
// messages, and chatbot configuration.  The store layer persists this
// document verbatim (local file or remote row); every mutation is a full
// read-transform-write cycle, so the structs below carry no storage handles
// and are safe to copy, log, or JSON-encode.
//
// Notes
// -----
//   - `id` fields are the sole update/delete key inside each collection.
//   - Section order drives navigation; ties break by array position.
//   - JSON tags match the on-disk document exactly; renaming a tag is a
//     data-migration event, not a refactor.

package portfolio

// Settings holds the site-wide strings edited on the admin settings screen.
type Settings struct {
	SiteTitle       string `json:"siteTitle"`
	SiteDescription string `json:"siteDescription"`
	HeroTitle       string `json:"heroTitle"`
	HeroSubtitle    string `json:"heroSubtitle"`
	HeroDescription string `json:"heroDescription"`
	FooterText      string `json:"footerText"`
	ContactEmail    string `json:"contactEmail"`
	ContactGithub   string `json:"contactGithub"`
	ContactLinkedin string `json:"contactLinkedin"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// Section is one toggleable page section.  Component must name a known
// renderable section (see registry.go); Order drives navigation.
type Section struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Icon      string `json:"icon"`
	Enabled   bool   `json:"enabled"`
	Order     int    `json:"order"`
	Component string `json:"component"`
}

// Project is a portfolio entry rendered as a card on the public site.
type Project struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle"`
	Description    string   `json:"description"`
	Badge          string   `json:"badge"`
	BadgeType      string   `json:"badgeType"`
	Stack          []string `json:"stack"`
	SecurityPoints []string `json:"securityPoints"`
	GithubURL      string   `json:"githubUrl"`
	LiveURL        string   `json:"liveUrl,omitempty"`
}

// SecuritySkill is one card on the security showcase section.
type SecuritySkill struct {
	ID          string   `json:"id"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// SkillCategory groups free-form skill items under an icon + title.
type SkillCategory struct {
	ID    string   `json:"id"`
	Icon  string   `json:"icon"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ProfileCategory groups bullet points on the profile section.
type ProfileCategory struct {
	ID     string   `json:"id"`
	Icon   string   `json:"icon"`
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// Certification is one certificate shown on the certifications section.
type Certification struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Platform        string `json:"platform"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	VerificationURL string `json:"verificationUrl,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
}

// Technology is one entry in the tech-stack grid.
type Technology struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Category string `json:"category"` // frontend, backend, devops, security, data, other
}

// TerminalLine is one command/output pair of the animated hero terminal.
type TerminalLine struct {
	Command string `json:"command"`
	Output  string `json:"output"`
}

// Message is an inbound contact-form submission.  Origin is filled
// server-side from request metadata and is never client-supplied.
type Message struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
	Date    string `json:"date"` // RFC 3339
	Read    bool   `json:"read"`
	Origin  string `json:"origin,omitempty"` // e.g. "Chrome / macOS / FR"
}

// CustomResponse is one keyword-triggered canned chatbot answer.
type CustomResponse struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords"`
	Response string   `json:"response"`
}

// ChatBotSettings configures the public chatbot widget.
type ChatBotSettings struct {
	Enabled          bool             `json:"enabled"`
	BotName          string           `json:"botName"`
	BotDescription   string           `json:"botDescription"`
	WelcomeMessage   string           `json:"welcomeMessage"`
	FallbackMessage  string           `json:"fallbackMessage"`
	InputPlaceholder string           `json:"inputPlaceholder"`
	CustomResponses  []CustomResponse `json:"customResponses"`
}

// Data is the whole portfolio record.  One value of this type is the unit
// of persistence; the store layer replaces it atomically on every write.
type Data struct {
	Settings          Settings          `json:"settings"`
	Sections          []Section         `json:"sections"`
	Projects          []Project         `json:"projects"`
	SecuritySkills    []SecuritySkill   `json:"securitySkills"`
	SkillCategories   []SkillCategory   `json:"skillCategories"`
	ProfileCategories []ProfileCategory `json:"profileCategories"`
	Certifications    []Certification   `json:"certifications"`
	Technologies      []Technology      `json:"technologies"`
	TerminalLines     []TerminalLine    `json:"terminalLines"`
	Messages          []Message         `json:"messages"`
	ChatBot           ChatBotSettings   `json:"chatBotSettings"`
}

// Clone returns a deep copy of d.  Update transforms receive a clone so a
// transform that fails halfway never corrupts the caller's copy.
func (d *Data) Clone() *Data {
	out := *d

	out.Sections = append([]Section(nil), d.Sections...)
	out.Certifications = append([]Certification(nil), d.Certifications...)
	out.Technologies = append([]Technology(nil), d.Technologies...)
	out.TerminalLines = append([]TerminalLine(nil), d.TerminalLines...)
	out.Messages = append([]Message(nil), d.Messages...)

	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Stack = append([]string(nil), p.Stack...)
		p.SecurityPoints = append([]string(nil), p.SecurityPoints...)
		out.Projects[i] = p
	}
	out.SecuritySkills = make([]SecuritySkill, len(d.SecuritySkills))
	for i, s := range d.SecuritySkills {
		s.Tags = append([]string(nil), s.Tags...)
		out.SecuritySkills[i] = s
	}
	out.SkillCategories = make([]SkillCategory, len(d.SkillCategories))
	for i, s := range d.SkillCategories {
		s.Items = append([]string(nil), s.Items...)
		out.SkillCategories[i] = s
	}
	out.ProfileCategories = make([]ProfileCategory, len(d.ProfileCategories))
	for i, p := range d.ProfileCategories {
		p.Points = append([]string(nil), p.Points...)
		out.ProfileCategories[i] = p
	}
	out.ChatBot.CustomResponses = make([]CustomResponse, len(d.ChatBot.CustomResponses))
	for i, c := range d.ChatBot.CustomResponses {
		c.Keywords = append([]string(nil), c.Keywords...)
		out.ChatBot.CustomResponses[i] = c
	}
	return &out
}
