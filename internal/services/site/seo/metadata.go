// Package seo builds page metadata, the sitemap and robots rules from the
// site configuration.
package seo

import (
	"encoding/json"
	"net/url"

	"github.com/louisbranch/klyrapay/internal/platform/branding"
	"github.com/louisbranch/klyrapay/internal/platform/i18n"
)

// Robots directives.
const (
	RobotsIndex   = "index, follow"
	RobotsNoIndex = "noindex, nofollow"
)

// Input describes one page. Zero fields fall back to site defaults.
type Input struct {
	Title       string
	Description string
	Locale      i18n.Locale
	Path        string
}

// Head is the metadata rendered into a page's <head>.
type Head struct {
	Title       string
	Description string
	Canonical   string
	Alternates  []Alternate
	Robots      string
	GoogleBot   string
	OpenGraph   OpenGraph
	Twitter     Twitter
}

// Alternate links a page to its translation.
type Alternate struct {
	Locale i18n.Locale
	Href   string
}

// OpenGraph is the og:* card.
type OpenGraph struct {
	Type        string
	URL         string
	SiteName    string
	Title       string
	Description string
	Locale      string
}

// Twitter is the twitter:* card.
type Twitter struct {
	Card        string
	Title       string
	Description string
}

// Metadata builds the head metadata for a page.
func Metadata(site branding.SiteConfig, in Input) Head {
	title := site.Name
	if in.Title != "" {
		title = in.Title + " · " + site.Name
	}
	description := in.Description
	if description == "" {
		description = site.Description
	}
	locale := in.Locale
	if !i18n.IsLocale(locale.String()) {
		locale = i18n.Default
	}
	path := in.Path
	if path == "" {
		path = "/"
	}

	canonical := AbsoluteURL(site, i18n.LocalePath(locale, path))
	alternates := make([]Alternate, 0, len(i18n.Supported()))
	for _, l := range i18n.Supported() {
		alternates = append(alternates, Alternate{Locale: l, Href: AbsoluteURL(site, i18n.LocalePath(l, path))})
	}

	head := Head{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Alternates:  alternates,
		Robots:      RobotsIndex,
		OpenGraph: OpenGraph{
			Type:        "website",
			URL:         canonical,
			SiteName:    site.Name,
			Title:       title,
			Description: description,
			Locale:      locale.String(),
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
		},
	}
	if !site.AllowIndexing {
		head.Robots = RobotsNoIndex
		head.GoogleBot = RobotsNoIndex
	}
	return head
}

// AbsoluteURL resolves an absolute path against the site URL. The site URL's
// own path is replaced, matching browser URL resolution.
func AbsoluteURL(site branding.SiteConfig, path string) string {
	base, err := url.Parse(site.URL)
	if err != nil || base.Scheme == "" {
		return site.URL + path
	}
	return base.ResolveReference(&url.URL{Path: path}).String()
}

type organization struct {
	Context string `json:"@context"`
	Type    string `json:"@type"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

// OrganizationJSONLD returns the schema.org Organization document.
func OrganizationJSONLD(site branding.SiteConfig) (string, error) {
	data, err := json.Marshal(organization{
		Context: "https://schema.org",
		Type:    "Organization",
		Name:    site.Name,
		URL:     site.URL,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
