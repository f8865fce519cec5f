package catalog

// Dictionary is the complete copy for one locale. Every field is required;
// rendering never falls back to another locale field by field.
type Dictionary struct {
	Nav      Nav      `yaml:"nav"`
	CTA      CTA      `yaml:"cta"`
	Hero     Hero     `yaml:"hero"`
	Sections Sections `yaml:"sections"`
	Project  Project  `yaml:"project"`
	NotFound NotFound `yaml:"not_found"`
	Footer   Footer   `yaml:"footer"`
	Chrome   Chrome   `yaml:"chrome"`
}

// Nav holds the header navigation labels.
type Nav struct {
	Features string `yaml:"features"`
	Rails    string `yaml:"rails"`
	Proof    string `yaml:"proof"`
	Security string `yaml:"security"`
	FAQ      string `yaml:"faq"`
	Project  string `yaml:"project"`
}

// CTA holds call-to-action labels.
type CTA struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	GitHub    string `yaml:"github"`
}

// Hero holds the above-the-fold copy.
type Hero struct {
	Badge    string `yaml:"badge"`
	TitleA   string `yaml:"title_a"`
	TitleB   string `yaml:"title_b"`
	Subtitle string `yaml:"subtitle"`
	Stat1K   string `yaml:"stat_1k"`
	Stat2K   string `yaml:"stat_2k"`
}

// Sections holds the home page sections in render order.
type Sections struct {
	Features FeaturesSection `yaml:"features"`
	Rails    RailsSection    `yaml:"rails"`
	Proof    ProofSection    `yaml:"proof"`
	Security SecuritySection `yaml:"security"`
	FAQ      FAQSection      `yaml:"faq"`
	FinalCTA FinalCTASection `yaml:"final_cta"`
}

// Card is a titled paragraph.
type Card struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// KeyValue is a short label with its explanation.
type KeyValue struct {
	K string `yaml:"k"`
	V string `yaml:"v"`
}

// QA is one FAQ entry.
type QA struct {
	Q string `yaml:"q"`
	A string `yaml:"a"`
}

type FeaturesSection struct {
	Eyebrow  string `yaml:"eyebrow"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Cards    []Card `yaml:"cards"`
}

type RailsSection struct {
	Eyebrow  string     `yaml:"eyebrow"`
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Items    []KeyValue `yaml:"items"`
}

type ProofSection struct {
	Eyebrow  string   `yaml:"eyebrow"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Bullets  []string `yaml:"bullets"`
	Button   string   `yaml:"button"`
}

type SecuritySection struct {
	Eyebrow  string `yaml:"eyebrow"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Points   []Card `yaml:"points"`
}

type FAQSection struct {
	Eyebrow string `yaml:"eyebrow"`
	Title   string `yaml:"title"`
	Items   []QA   `yaml:"items"`
}

type FinalCTASection struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Primary  string `yaml:"primary"`
}

// Project holds the project details page copy.
type Project struct {
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	Intro            string   `yaml:"intro"`
	Stack            string   `yaml:"stack"`
	ModuleCount      string   `yaml:"module_count"`
	Ops              string   `yaml:"ops"`
	Reuse            string   `yaml:"reuse"`
	Rendering        string   `yaml:"rendering"`
	Indexing         string   `yaml:"indexing"`
	IndexingEnabled  string   `yaml:"indexing_enabled"`
	IndexingDisabled string   `yaml:"indexing_disabled"`
	SitemapRobots    string   `yaml:"sitemap_robots"`
	Enabled          string   `yaml:"enabled"`
	ActiveLocale     string   `yaml:"active_locale"`
	Repository       string   `yaml:"repository"`
	Notes            []string `yaml:"notes"`
	LandingNote      string   `yaml:"landing_note"`
}

// NotFound holds the 404 page copy.
type NotFound struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Back  string `yaml:"back"`
}

// Footer holds footer copy. Rights is a format string taking year and name.
type Footer struct {
	Explore string `yaml:"explore"`
	Project string `yaml:"project"`
	Rights  string `yaml:"rights"`
}

// Chrome holds accessibility labels for interactive controls.
type Chrome struct {
	OpenMenu       string `yaml:"open_menu"`
	CloseMenu      string `yaml:"close_menu"`
	ToggleTheme    string `yaml:"toggle_theme"`
	LanguageSwitch string `yaml:"language_switch"`
	SkipToContent  string `yaml:"skip_to_content"`
}
