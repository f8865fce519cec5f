// Package localeroute keeps every page request locale-prefixed and keeps the
// persisted locale preference cookie in sync with the routed locale.
//
// Resolution order for un-prefixed paths is cookie, then Accept-Language,
// then the default locale. Routing never fails: every input resolves to a
// supported locale and exactly one of bypass, pass or redirect.
package localeroute

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/louisbranch/klyrapay/internal/platform/i18n"
	"github.com/louisbranch/klyrapay/internal/platform/requestctx"
	"github.com/louisbranch/klyrapay/internal/services/site/platform/httpx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// CookieName is the persisted locale preference cookie.
const CookieName = "klyra_locale"

// Action is the routing outcome for one request.
type Action string

const (
	// ActionBypass leaves excluded paths untouched and writes no cookie.
	ActionBypass Action = "bypass"
	// ActionPass forwards a locale-prefixed path and refreshes the cookie.
	ActionPass Action = "pass"
	// ActionRedirect sends the client to the locale-prefixed path.
	ActionRedirect Action = "redirect"
)

// Source names the signal the locale was taken from.
type Source string

const (
	SourcePath    Source = "path"
	SourceCookie  Source = "cookie"
	SourceHeader  Source = "header"
	SourceDefault Source = "default"
)

// Decision is the result of resolving one request.
type Decision struct {
	Action   Action
	Locale   i18n.Locale
	Source   Source
	Location string
}

// DecisionRecorder receives one call per routed request.
type DecisionRecorder interface {
	RecordLocaleDecision(action string, locale string)
}

// Options configures a Router. Nil exclusion lists use the defaults.
type Options struct {
	ExcludedPrefixes    []string
	ExcludedPaths       []string
	MatchAcceptLanguage bool
	Logger              *zap.Logger
	Recorder            DecisionRecorder
}

// DefaultExcludedPrefixes returns the path prefixes that bypass routing.
func DefaultExcludedPrefixes() []string {
	return []string{"/_next", "/api"}
}

// DefaultExcludedPaths returns the exact paths that bypass routing.
func DefaultExcludedPaths() []string {
	return []string{"/favicon.ico"}
}

// Router resolves and enforces the locale of page requests.
type Router struct {
	excludedPrefixes    []string
	excludedPaths       []string
	matchAcceptLanguage bool
	logger              *zap.Logger
	recorder            DecisionRecorder
}

// New builds a Router from opts.
func New(opts Options) *Router {
	prefixes := opts.ExcludedPrefixes
	if prefixes == nil {
		prefixes = DefaultExcludedPrefixes()
	}
	paths := opts.ExcludedPaths
	if paths == nil {
		paths = DefaultExcludedPaths()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		excludedPrefixes:    slices.Clone(prefixes),
		excludedPaths:       slices.Clone(paths),
		matchAcceptLanguage: opts.MatchAcceptLanguage,
		logger:              logger,
		recorder:            opts.Recorder,
	}
}

// Excluded reports whether path bypasses routing entirely.
func (r *Router) Excluded(path string) bool {
	if strings.Contains(path, ".") {
		return true
	}
	if slices.Contains(r.excludedPaths, path) {
		return true
	}
	for _, prefix := range r.excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Resolve decides how a request for path is routed given the raw cookie value
// and Accept-Language header. Empty strings mean the signal is absent.
func (r *Router) Resolve(path string, cookie string, acceptLanguage string) Decision {
	if r.Excluded(path) {
		return Decision{Action: ActionBypass}
	}
	if segments := i18n.Segments(path); len(segments) > 0 {
		if locale, ok := i18n.Parse(segments[0]); ok {
			return Decision{Action: ActionPass, Locale: locale, Source: SourcePath}
		}
	}
	locale, source := r.preferredLocale(cookie, acceptLanguage)
	return Decision{
		Action:   ActionRedirect,
		Locale:   locale,
		Source:   source,
		Location: i18n.LocalePath(locale, path),
	}
}

func (r *Router) preferredLocale(cookie string, acceptLanguage string) (i18n.Locale, Source) {
	if locale, ok := i18n.Match(cookie); ok {
		return locale, SourceCookie
	}
	if r.matchAcceptLanguage {
		if locale, ok := i18n.MatchAcceptLanguage(acceptLanguage); ok {
			return locale, SourceHeader
		}
		return i18n.Default, SourceDefault
	}
	if locale, ok := i18n.Match(firstLanguageTag(acceptLanguage)); ok {
		return locale, SourceHeader
	}
	return i18n.Default, SourceDefault
}

// firstLanguageTag returns the first comma-separated entry, trimmed. Quality
// values are not interpreted.
func firstLanguageTag(header string) string {
	first, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(first)
}

// Middleware applies Resolve to each request.
func (r *Router) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			decision := r.Resolve(req.URL.Path, cookieValue(req), req.Header.Get("Accept-Language"))
			r.observe(req, decision)

			switch decision.Action {
			case ActionPass:
				setCookie(w, decision.Locale)
				next.ServeHTTP(w, req.WithContext(requestctx.WithLocale(req.Context(), decision.Locale)))
			case ActionRedirect:
				setCookie(w, decision.Locale)
				httpx.WriteTemporaryRedirect(w, redirectLocation(decision.Locale, req.URL))
			default:
				next.ServeHTTP(w, req)
			}
		})
	}
}

func (r *Router) observe(req *http.Request, decision Decision) {
	locale := decision.Locale.String()
	if r.recorder != nil {
		r.recorder.RecordLocaleDecision(string(decision.Action), locale)
	}
	trace.SpanFromContext(req.Context()).SetAttributes(
		attribute.String("locale.action", string(decision.Action)),
		attribute.String("locale.value", locale),
	)
	if decision.Action == ActionRedirect {
		r.logger.Debug("locale redirect",
			zap.String("path", req.URL.Path),
			zap.String("locale", locale),
			zap.String("source", string(decision.Source)),
			zap.String("request_id", httpx.RequestIDFrom(req)),
		)
	}
}

// redirectLocation keeps the escaped path and the raw query of the request.
func redirectLocation(locale i18n.Locale, u *url.URL) string {
	location := i18n.LocalePath(locale, u.EscapedPath())
	if u.RawQuery != "" {
		location += "?" + u.RawQuery
	}
	return location
}

func cookieValue(req *http.Request) string {
	cookie, err := req.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setCookie writes a session-scoped preference cookie for the whole site.
func setCookie(w http.ResponseWriter, locale i18n.Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    locale.String(),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}
