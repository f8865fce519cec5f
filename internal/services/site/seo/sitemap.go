package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/klyrapay/internal/platform/branding"
	"github.com/louisbranch/klyrapay/internal/platform/i18n"
	"github.com/louisbranch/klyrapay/internal/services/site/routepath"
	"go.uber.org/zap"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Change frequencies used by the sitemap.
const (
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

// SitemapEntry is one <url> element.
type SitemapEntry struct {
	Loc             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}

// SitemapEntries lists the root URL, then each locale's home and project pages.
func SitemapEntries(site branding.SiteConfig, now time.Time) []SitemapEntry {
	entries := []SitemapEntry{{
		Loc:             site.URL,
		LastModified:    now,
		ChangeFrequency: ChangeMonthly,
		Priority:        0.2,
	}}
	for _, locale := range i18n.Supported() {
		entries = append(entries,
			SitemapEntry{
				Loc:             AbsoluteURL(site, routepath.Home(locale)),
				LastModified:    now,
				ChangeFrequency: ChangeWeekly,
				Priority:        1,
			},
			SitemapEntry{
				Loc:             AbsoluteURL(site, routepath.ProjectPage(locale)),
				LastModified:    now,
				ChangeFrequency: ChangeMonthly,
				Priority:        0.5,
			},
		)
	}
	return entries
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// WriteSitemap encodes entries as a sitemaps.org urlset document.
func WriteSitemap(w io.Writer, entries []SitemapEntry) error {
	set := urlSet{XMLNS: sitemapNamespace, URLs: make([]sitemapURL, 0, len(entries))}
	for _, entry := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        entry.Loc,
			LastMod:    entry.LastModified.UTC().Format(time.RFC3339),
			ChangeFreq: entry.ChangeFrequency,
			Priority:   fmt.Sprintf("%.1f", entry.Priority),
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return encoder.Close()
}

// SitemapHandler serves /sitemap.xml with lastmod taken from now.
func SitemapHandler(site branding.SiteConfig, now func() time.Time, logger *zap.Logger) http.Handler {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		var body strings.Builder
		if err := WriteSitemap(&body, SitemapEntries(site, now())); err != nil {
			logger.Error("render sitemap", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = io.WriteString(w, body.String())
	})
}
