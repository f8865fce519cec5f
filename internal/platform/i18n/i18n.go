// Package i18n defines the locales the site is published in and the path
// helpers shared by routing, rendering and SEO.
package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is one supported language tag. The zero value is not a valid locale.
type Locale string

// Supported locales.
const (
	English Locale = "en"
	German  Locale = "de"
	Spanish Locale = "es"
	French  Locale = "fr"
)

// Default is served when no preference signal resolves to a supported locale.
const Default = English

// supported keeps Default first so language matching falls back to it.
var supported = []Locale{English, German, Spanish, French}

var supportedTags = func() []language.Tag {
	tags := make([]language.Tag, 0, len(supported))
	for _, locale := range supported {
		tags = append(tags, language.Make(string(locale)))
	}
	return tags
}()

var matcher = language.NewMatcher(supportedTags)

// Supported returns the supported locales in display order.
func Supported() []Locale {
	return slices.Clone(supported)
}

// Parse reports whether value names a supported locale after lower-casing.
func Parse(value string) (Locale, bool) {
	candidate := Locale(strings.ToLower(value))
	if slices.Contains(supported, candidate) {
		return candidate, true
	}
	return "", false
}

// IsLocale reports whether value names a supported locale after lower-casing.
func IsLocale(value string) bool {
	_, ok := Parse(value)
	return ok
}

// Match lower-cases value, drops any region suffix after the first hyphen and
// reports whether the remainder is a supported locale.
func Match(value string) (Locale, bool) {
	if value == "" {
		return "", false
	}
	base, _, _ := strings.Cut(strings.ToLower(value), "-")
	return Parse(base)
}

// Normalize coerces any input into a supported locale. Unknown or empty input
// yields Default.
func Normalize(value string) Locale {
	if locale, ok := Match(value); ok {
		return locale
	}
	return Default
}

// MatchAcceptLanguage resolves a full quality-weighted Accept-Language header
// against the supported locales.
func MatchAcceptLanguage(header string) (Locale, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return "", false
	}
	return supported[index], true
}

// String returns the locale tag.
func (l Locale) String() string {
	return string(l)
}

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	return language.Make(string(l))
}

// Label returns the short switcher label, e.g. "DE".
func (l Locale) Label() string {
	return strings.ToUpper(string(l))
}

// DisplayName returns the locale's name written in its own language.
func (l Locale) DisplayName() string {
	name := display.Self.Name(l.Tag())
	if name == "" {
		return l.Label()
	}
	return name
}

// Segments splits a URL path into its non-empty segments.
func Segments(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LocalePath prefixes path with the locale. The root path maps to "/{locale}".
func LocalePath(locale Locale, path string) string {
	if path == "" || path == "/" {
		return "/" + string(locale)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + string(locale) + path
}

// StripLocalePrefix removes a leading locale segment from path.
func StripLocalePrefix(path string) string {
	segments := Segments(path)
	if len(segments) > 0 && IsLocale(segments[0]) {
		return "/" + strings.Join(segments[1:], "/")
	}
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
