// Package routepath stores canonical HTTP paths for the site.
package routepath

import "github.com/louisbranch/klyrapay/internal/platform/i18n"

const (
	Root          = "/"
	Project       = "/project"
	Health        = "/api/health"
	Metrics       = "/api/metrics"
	Sitemap       = "/sitemap.xml"
	Robots        = "/robots.txt"
	Favicon       = "/favicon.ico"
	AssetsPrefix  = "/assets/"
	AssetsExclude = "/assets"
)

// Mux patterns. Locale wildcards are validated by the handlers. Pages under a
// locale share one pattern so literal second segments never collide with
// AssetsPrefix.
const (
	LocaleHomePattern = "GET /{locale}"
	LocalePagePattern = "GET /{locale}/{rest...}"
	HealthPattern     = "GET " + Health
	MetricsPattern    = "GET " + Metrics
	SitemapPattern    = "GET " + Sitemap
	RobotsPattern     = "GET " + Robots
	FaviconPattern    = "GET " + Favicon
	AssetsPattern     = "GET " + AssetsPrefix
	LocalePathValue   = "locale"
	RestPathValue     = "rest"
)

// Home returns the localized home page path.
func Home(locale i18n.Locale) string {
	return i18n.LocalePath(locale, Root)
}

// ProjectPage returns the localized project page path.
func ProjectPage(locale i18n.Locale) string {
	return i18n.LocalePath(locale, Project)
}

// Asset returns the public path of an embedded asset.
func Asset(name string) string {
	return AssetsPrefix + name
}
