// Package templates renders the localized site pages.
//
// Pages are html/template documents sharing one layout. Each page is handed
// to HTTP handlers as a templ.Component so rendering, status codes and error
// handling go through templ.Handler.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/klyrapay/internal/platform/branding"
	"github.com/louisbranch/klyrapay/internal/platform/i18n"
	"github.com/louisbranch/klyrapay/internal/platform/i18n/catalog"
	"github.com/louisbranch/klyrapay/internal/services/site/projectinfo"
	"github.com/louisbranch/klyrapay/internal/services/site/routepath"
	"github.com/louisbranch/klyrapay/internal/services/site/seo"
	"golang.org/x/text/message"
)

//go:embed html/*.gohtml
var templateFS embed.FS

const (
	pageHome     = "home"
	pageProject  = "project"
	pageNotFound = "not_found"
)

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// Config wires a Renderer.
type Config struct {
	Site    branding.SiteConfig
	Catalog *catalog.Bundle
	Project projectinfo.Info
	Now     func() time.Time
}

// Renderer builds page components for a locale.
type Renderer struct {
	site    branding.SiteConfig
	catalog *catalog.Bundle
	project projectinfo.Info
	now     func() time.Time
	jsonLD  template.JS
	pages   map[string]*template.Template
}

// New parses the embedded templates and prepares shared page data.
func New(cfg Config) (*Renderer, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	jsonLD, err := seo.OrganizationJSONLD(cfg.Site)
	if err != nil {
		return nil, fmt.Errorf("organization json-ld: %w", err)
	}
	base, err := template.New("layout.gohtml").Funcs(funcs).ParseFS(templateFS, "html/layout.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	pages := make(map[string]*template.Template, 3)
	for _, name := range []string{pageHome, pageProject, pageNotFound} {
		page, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := page.ParseFS(templateFS, "html/"+name+".gohtml"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = page.Lookup("layout")
	}
	return &Renderer{
		site:    cfg.Site,
		catalog: cfg.Catalog,
		project: cfg.Project,
		now:     now,
		jsonLD:  template.JS(jsonLD),
		pages:   pages,
	}, nil
}

// Home renders the landing page.
func (r *Renderer) Home(locale i18n.Locale, path string) (templ.Component, error) {
	dict, err := r.dictionary(locale)
	if err != nil {
		return nil, err
	}
	data := r.page(locale, dict, path, seo.Input{
		Title:       r.site.Tagline,
		Description: r.site.Description,
		Locale:      locale,
		Path:        routepath.Root,
	})
	return templ.FromGoHTML(r.pages[pageHome], data), nil
}

// Project renders the project details page.
func (r *Renderer) Project(locale i18n.Locale, path string) (templ.Component, error) {
	dict, err := r.dictionary(locale)
	if err != nil {
		return nil, err
	}
	data := r.page(locale, dict, path, seo.Input{
		Title:       dict.Project.Title,
		Description: dict.Project.Description,
		Locale:      locale,
		Path:        routepath.Project,
	})
	indexing := dict.Project.IndexingDisabled
	if r.site.AllowIndexing {
		indexing = dict.Project.IndexingEnabled
	}
	data.Project = ProjectView{
		GoVersion:   r.project.GoVersion,
		Modules:     r.project.Modules,
		ModuleCount: message.NewPrinter(locale.Tag()).Sprintf(dict.Project.ModuleCount, r.project.ModuleCount()),
		Indexing:    indexing,
	}
	return templ.FromGoHTML(r.pages[pageProject], data), nil
}

// NotFound renders the localized 404 page.
func (r *Renderer) NotFound(locale i18n.Locale, path string) (templ.Component, error) {
	dict, err := r.dictionary(locale)
	if err != nil {
		return nil, err
	}
	data := r.page(locale, dict, path, seo.Input{
		Title:  dict.NotFound.Title,
		Locale: locale,
		Path:   i18n.StripLocalePrefix(path),
	})
	data.Head.Robots = seo.RobotsNoIndex
	return templ.FromGoHTML(r.pages[pageNotFound], data), nil
}

func (r *Renderer) dictionary(locale i18n.Locale) (catalog.Dictionary, error) {
	dict, ok := r.catalog.Dictionary(locale)
	if !ok {
		return catalog.Dictionary{}, fmt.Errorf("no catalog for locale %q", locale)
	}
	return dict, nil
}

func (r *Renderer) page(locale i18n.Locale, dict catalog.Dictionary, path string, head seo.Input) Page {
	links := newLinks(locale)
	return Page{
		Locale:   locale,
		Dict:     dict,
		Site:     r.site,
		Head:     seo.Metadata(r.site, head),
		JSONLD:   r.jsonLD,
		Links:    links,
		Nav:      navLinks(dict, links),
		Switcher: switcherLinks(locale, path),
		Rights:   fmt.Sprintf(dict.Footer.Rights, r.now().Year(), r.site.Name),
		Assets:   defaultAssets,
	}
}
