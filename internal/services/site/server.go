// Package site hosts the localized KlyraPay landing site.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/klyrapay/internal/platform/branding"
	"github.com/louisbranch/klyrapay/internal/platform/i18n"
	"github.com/louisbranch/klyrapay/internal/platform/i18n/catalog"
	"github.com/louisbranch/klyrapay/internal/platform/requestctx"
	"github.com/louisbranch/klyrapay/internal/platform/timeouts"
	"github.com/louisbranch/klyrapay/internal/services/site/localeroute"
	"github.com/louisbranch/klyrapay/internal/services/site/platform/httpx"
	"github.com/louisbranch/klyrapay/internal/services/site/platform/observability"
	"github.com/louisbranch/klyrapay/internal/services/site/projectinfo"
	"github.com/louisbranch/klyrapay/internal/services/site/routepath"
	"github.com/louisbranch/klyrapay/internal/services/site/seo"
	"github.com/louisbranch/klyrapay/internal/services/site/static"
	"github.com/louisbranch/klyrapay/internal/services/site/templates"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr            string
	Site                branding.SiteConfig
	Catalog             *catalog.Bundle
	MatchAcceptLanguage bool
	Logger              *zap.Logger
	// Metrics defaults to a fresh registry.
	Metrics *observability.Metrics
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
	Project        projectinfo.Info
	Now            func() time.Time
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler: static, SEO and API routes bypass the
// locale router, every other path is locale-prefixed before it reaches a page.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	renderer, err := templates.New(templates.Config{
		Site:    cfg.Site,
		Catalog: cfg.Catalog,
		Project: cfg.Project,
		Now:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}
	pages := pageHandlers{logger: logger}

	mux := http.NewServeMux()
	mux.Handle(routepath.LocaleHomePattern, pages.render(renderer.Home, http.StatusOK))
	mux.Handle(routepath.LocalePagePattern, pages.dispatch(renderer))
	mux.HandleFunc(routepath.HealthPattern, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteText(w, http.StatusOK, "OK")
	})
	mux.Handle(routepath.MetricsPattern, metrics.Handler())
	mux.Handle(routepath.SitemapPattern, seo.SitemapHandler(cfg.Site, now, logger))
	mux.Handle(routepath.RobotsPattern, seo.RobotsHandler(cfg.Site))
	mux.Handle(routepath.FaviconPattern, static.FaviconHandler())
	mux.Handle(routepath.AssetsPattern, static.Handler(routepath.AssetsPrefix))

	router := localeroute.New(localeroute.Options{
		ExcludedPrefixes:    append(localeroute.DefaultExcludedPrefixes(), routepath.AssetsExclude),
		ExcludedPaths:       localeroute.DefaultExcludedPaths(),
		MatchAcceptLanguage: cfg.MatchAcceptLanguage,
		Logger:              logger,
		Recorder:            metrics,
	})

	return httpx.Chain(mux,
		httpx.RequestID(),
		observability.Tracing(cfg.TracerProvider),
		observability.RequestLogger(logger),
		metrics.Middleware(),
		httpx.RecoverPanic(logger),
		router.Middleware(),
	), nil
}

type pageHandlers struct {
	logger *zap.Logger
}

type pageBuilder func(locale i18n.Locale, path string) (templ.Component, error)

// dispatch routes the path after the locale segment to a page.
func (p pageHandlers) dispatch(renderer *templates.Renderer) http.Handler {
	home := p.render(renderer.Home, http.StatusOK)
	project := p.render(renderer.Project, http.StatusOK)
	notFound := p.render(renderer.NotFound, http.StatusNotFound)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch "/" + strings.Trim(r.PathValue(routepath.RestPathValue), "/") {
		case routepath.Root:
			home.ServeHTTP(w, r)
		case routepath.Project:
			project.ServeHTTP(w, r)
		default:
			notFound.ServeHTTP(w, r)
		}
	})
}

func (p pageHandlers) render(build pageBuilder, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale, ok := requestctx.LocaleFromContext(r.Context())
		if !ok {
			locale, ok = i18n.Parse(r.PathValue(routepath.LocalePathValue))
		}
		if !ok {
			http.NotFound(w, r)
			return
		}
		component, err := build(locale, r.URL.Path)
		if err != nil {
			p.renderFailed(r, err).ServeHTTP(w, r)
			return
		}
		templ.Handler(component,
			templ.WithStatus(status),
			templ.WithErrorHandler(p.renderFailed),
		).ServeHTTP(w, r)
	})
}

func (p pageHandlers) renderFailed(r *http.Request, err error) http.Handler {
	p.logger.Error("render page",
		zap.String("path", r.URL.Path),
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.Error(err),
	)
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			IdleTimeout:       timeouts.Idle,
			ErrorLog:          zap.NewStdLog(logger.Named("http")),
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("site listening", zap.String("addr", s.httpAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
