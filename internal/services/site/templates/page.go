package templates

import (
	"html/template"

	"github.com/louisbranch/klyrapay/internal/platform/branding"
	"github.com/louisbranch/klyrapay/internal/platform/i18n"
	"github.com/louisbranch/klyrapay/internal/platform/i18n/catalog"
	"github.com/louisbranch/klyrapay/internal/services/site/projectinfo"
	"github.com/louisbranch/klyrapay/internal/services/site/routepath"
	"github.com/louisbranch/klyrapay/internal/services/site/seo"
)

// Page is the data every page template receives.
type Page struct {
	Locale   i18n.Locale
	Dict     catalog.Dictionary
	Site     branding.SiteConfig
	Head     seo.Head
	JSONLD   template.JS
	Links    Links
	Nav      []NavLink
	Switcher []SwitchLink
	Rights   string
	Assets   Assets
	Project  ProjectView
}

// Links are the localized in-site destinations.
type Links struct {
	Home     string
	Project  string
	CTA      string
	Features string
	Rails    string
	Proof    string
	Security string
	FAQ      string
}

func newLinks(locale i18n.Locale) Links {
	return Links{
		Home:     routepath.Home(locale),
		Project:  routepath.ProjectPage(locale),
		CTA:      i18n.LocalePath(locale, "/#cta"),
		Features: i18n.LocalePath(locale, "/#features"),
		Rails:    i18n.LocalePath(locale, "/#rails"),
		Proof:    i18n.LocalePath(locale, "/#case-study"),
		Security: i18n.LocalePath(locale, "/#security"),
		FAQ:      i18n.LocalePath(locale, "/#faq"),
	}
}

// NavLink is one header navigation entry.
type NavLink struct {
	Label string
	Href  string
}

// navLinks keeps the project page as the last entry.
func navLinks(dict catalog.Dictionary, links Links) []NavLink {
	return []NavLink{
		{Label: dict.Nav.Features, Href: links.Features},
		{Label: dict.Nav.Rails, Href: links.Rails},
		{Label: dict.Nav.Proof, Href: links.Proof},
		{Label: dict.Nav.Security, Href: links.Security},
		{Label: dict.Nav.FAQ, Href: links.FAQ},
		{Label: dict.Nav.Project, Href: links.Project},
	}
}

// SwitchLink points at the current page in another locale.
type SwitchLink struct {
	Locale i18n.Locale
	Label  string
	Name   string
	Href   string
	Active bool
}

// switcherLinks maps path to the same page under every locale.
func switcherLinks(current i18n.Locale, path string) []SwitchLink {
	rest := i18n.StripLocalePrefix(path)
	if rest == "/" {
		rest = ""
	}
	locales := i18n.Supported()
	out := make([]SwitchLink, 0, len(locales))
	for _, locale := range locales {
		out = append(out, SwitchLink{
			Locale: locale,
			Label:  locale.Label(),
			Name:   locale.DisplayName(),
			Href:   "/" + locale.String() + rest,
			Active: locale == current,
		})
	}
	return out
}

// Assets are the public paths of the embedded static files.
type Assets struct {
	Stylesheet  string
	ThemeScript string
	SiteScript  string
	Favicon     string
}

var defaultAssets = Assets{
	Stylesheet:  routepath.Asset("site.css"),
	ThemeScript: routepath.Asset("theme-init.js"),
	SiteScript:  routepath.Asset("site.js"),
	Favicon:     routepath.Favicon,
}

// ProjectView is the project page's build summary.
type ProjectView struct {
	GoVersion   string
	Modules     []projectinfo.Module
	ModuleCount string
	Indexing    string
}
