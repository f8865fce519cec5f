// Package branding holds the brand identity and public site settings.
package branding

import (
	"strings"
)

// Brand defaults used when configuration leaves a field empty.
const (
	AppName       = "KlyraPay"
	Tagline       = "Glass-smooth payments for modern fintech teams."
	Description   = "KlyraPay is a landing page template for a next-gen payment and banking platform: realistic visuals, SEO-first architecture, dark/light theming, and multi-language support."
	DefaultURL    = "http://localhost:3000"
	DefaultGitHub = "https://github.com/louisbranch/klyrapay"
)

// SiteConfig is the immutable site identity handed to rendering and SEO.
type SiteConfig struct {
	Name          string
	Tagline       string
	Description   string
	URL           string
	AllowIndexing bool
	GitHubRepoURL string
}

// Options are the operator-controlled inputs for NewSiteConfig.
type Options struct {
	URL           string
	AllowIndexing bool
	GitHubRepoURL string
}

// NewSiteConfig builds a SiteConfig from options, filling brand defaults.
func NewSiteConfig(opts Options) SiteConfig {
	url := NormalizeURL(opts.URL)
	if url == "" {
		url = DefaultURL
	}
	github := strings.TrimSpace(opts.GitHubRepoURL)
	if github == "" {
		github = DefaultGitHub
	}
	return SiteConfig{
		Name:          AppName,
		Tagline:       Tagline,
		Description:   Description,
		URL:           url,
		AllowIndexing: opts.AllowIndexing,
		GitHubRepoURL: github,
	}
}

// NormalizeURL trims whitespace and trailing slashes.
func NormalizeURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// Flag is a permissive boolean accepting 1/true/yes/on, case-insensitive.
// It implements encoding.TextUnmarshaler for environment parsing.
type Flag bool

// UnmarshalText parses the flag. Unknown values are false.
func (f *Flag) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "1", "true", "yes", "on":
		*f = true
	default:
		*f = false
	}
	return nil
}

// String implements flag.Value.
func (f *Flag) String() string {
	if f != nil && bool(*f) {
		return "true"
	}
	return "false"
}

// Set implements flag.Value.
func (f *Flag) Set(value string) error {
	return f.UnmarshalText([]byte(value))
}

// IsBoolFlag lets the flag package accept a bare -flag.
func (f *Flag) IsBoolFlag() bool {
	return true
}
