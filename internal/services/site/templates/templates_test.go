package templates

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/klyrapay/internal/platform/branding"
	"github.com/louisbranch/klyrapay/internal/platform/i18n"
	"github.com/louisbranch/klyrapay/internal/platform/i18n/catalog"
	"github.com/louisbranch/klyrapay/internal/services/site/projectinfo"
)

func newTestRenderer(t *testing.T, allowIndexing bool) *Renderer {
	t.Helper()
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	renderer, err := New(Config{
		Site: branding.NewSiteConfig(branding.Options{
			URL:           "https://klyrapay.example",
			AllowIndexing: allowIndexing,
			GitHubRepoURL: "https://github.com/example/klyrapay",
		}),
		Catalog: bundle,
		Project: projectinfo.Info{
			GoVersion: "go1.26.0",
			Modules: []projectinfo.Module{
				{Path: "github.com/a-h/templ", Version: "v0.3.977"},
				{Path: "go.uber.org/zap", Version: "v1.27.0"},
			},
		},
		Now: func() time.Time { return time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return renderer
}

func render(t *testing.T, component templ.Component, err error) string {
	t.Helper()
	if err != nil {
		t.Fatalf("build component: %v", err)
	}
	var b strings.Builder
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func assertContains(t *testing.T, body string, markers ...string) {
	t.Helper()
	for _, marker := range markers {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestNewRequiresCatalog(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestHomeRendersEveryLocale(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, true)
	bundle, _ := catalog.LoadEmbedded()
	for _, locale := range i18n.Supported() {
		dict, _ := bundle.Dictionary(locale)
		component, err := renderer.Home(locale, "/"+locale.String())
		body := render(t, component, err)
		assertContains(t, body,
			`<html lang="`+locale.String()+`">`,
			`<link rel="canonical" href="https://klyrapay.example/`+locale.String()+`">`,
			`href="/`+locale.String()+`/project"`,
			`id="features"`,
			`id="case-study"`,
			`id="cta"`,
			`<meta name="robots" content="index, follow">`,
			`"@type":"Organization"`,
			dict.Sections.Features.Cards[0].Title,
		)
	}
}

func TestHomeLocaleSwitcherKeepsPath(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, true)
	component, err := renderer.Home(i18n.German, "/de")
	body := render(t, component, err)
	assertContains(t, body,
		`<a href="/en" hreflang="en"`,
		`<a href="/fr" hreflang="fr"`,
		`<a href="/de" hreflang="de" title="Deutsch" class="active" aria-current="true">DE</a>`,
	)

	component, err = renderer.Project(i18n.Spanish, "/es/project")
	body = render(t, component, err)
	assertContains(t, body, `<a href="/fr/project" hreflang="fr"`, `<a href="/en/project" hreflang="en"`)
}

func TestHomeFooterUsesClockYear(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, true)
	component, err := renderer.Home(i18n.English, "/en")
	body := render(t, component, err)
	assertContains(t, body, "© 2026 KlyraPay. All rights reserved.")
}

func TestProjectPage(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, false)
	component, err := renderer.Project(i18n.French, "/fr/project")
	body := render(t, component, err)
	assertContains(t, body,
		`<html lang="fr">`,
		"go1.26.0",
		"github.com/a-h/templ",
		"v0.3.977",
		"2 modules Go dans ce build",
		`<meta name="robots" content="noindex, nofollow">`,
		`<meta name="googlebot" content="noindex, nofollow">`,
		`<code>/fr</code>`,
		`https://github.com/example/klyrapay`,
		"<dd>FR</dd>",
	)
}

func TestNotFoundPage(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, true)
	component, err := renderer.NotFound(i18n.Spanish, "/es/missing")
	body := render(t, component, err)
	assertContains(t, body,
		`<html lang="es">`,
		`<meta name="robots" content="noindex, nofollow">`,
		`href="/es"`,
		`<a href="/de/missing" hreflang="de"`,
	)
}

func TestUnknownLocaleIsAnError(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, true)
	if _, err := renderer.Home(i18n.Locale("pt"), "/pt"); err == nil {
		t.Fatal("expected error")
	}
}

func TestSwitcherLinks(t *testing.T) {
	t.Parallel()

	links := switcherLinks(i18n.English, "/en")
	if len(links) != len(i18n.Supported()) {
		t.Fatalf("links = %d, want %d", len(links), len(i18n.Supported()))
	}
	for _, link := range links {
		if link.Href != "/"+link.Locale.String() {
			t.Fatalf("href = %q, want %q", link.Href, "/"+link.Locale.String())
		}
		if link.Active != (link.Locale == i18n.English) {
			t.Fatalf("%s active = %t", link.Locale, link.Active)
		}
	}
}

func TestNavLinksEndWithProject(t *testing.T) {
	t.Parallel()

	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	dict, _ := bundle.Dictionary(i18n.German)
	nav := navLinks(dict, newLinks(i18n.German))
	last := nav[len(nav)-1]
	if last.Href != "/de/project" || last.Label != dict.Nav.Project {
		t.Fatalf("last nav = %+v, want project link", last)
	}
	if nav[0].Href != "/de/#features" {
		t.Fatalf("first nav href = %q, want %q", nav[0].Href, "/de/#features")
	}
}
