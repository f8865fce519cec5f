package seo

import (
	"io"
	"net/http"
	"strings"

	"github.com/louisbranch/klyrapay/internal/platform/branding"
	"github.com/louisbranch/klyrapay/internal/services/site/routepath"
)

// RobotsTxt renders robots.txt. Indexing allows every agent and links the
// sitemap; otherwise the whole site is disallowed.
func RobotsTxt(site branding.SiteConfig) string {
	var b strings.Builder
	b.WriteString("User-Agent: *\n")
	if !site.AllowIndexing {
		b.WriteString("Disallow: /\n")
		return b.String()
	}
	b.WriteString("Allow: /\n\n")
	b.WriteString("Sitemap: " + AbsoluteURL(site, routepath.Sitemap) + "\n")
	return b.String()
}

// RobotsHandler serves /robots.txt.
func RobotsHandler(site branding.SiteConfig) http.Handler {
	body := RobotsTxt(site)
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, body)
	})
}
