// Package site parses landing site flags and launches the service.
package site

import (
	"context"
	"flag"
	"fmt"

	"github.com/louisbranch/klyrapay/internal/platform/branding"
	entrypoint "github.com/louisbranch/klyrapay/internal/platform/cmd"
	"github.com/louisbranch/klyrapay/internal/platform/i18n/catalog"
	"github.com/louisbranch/klyrapay/internal/platform/logging"
	server "github.com/louisbranch/klyrapay/internal/services/site"
	"github.com/louisbranch/klyrapay/internal/services/site/projectinfo"
	"go.uber.org/zap"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr            string        `env:"KLYRAPAY_SITE_HTTP_ADDR" envDefault:"localhost:3000"`
	SiteURL             string        `env:"KLYRAPAY_SITE_URL"`
	AllowIndexing       branding.Flag `env:"KLYRAPAY_SITE_ALLOW_INDEXING" envDefault:"true"`
	GitHubRepoURL       string        `env:"KLYRAPAY_SITE_GITHUB_REPO_URL"`
	MatchAcceptLanguage branding.Flag `env:"KLYRAPAY_LOCALE_MATCH_ACCEPT_LANGUAGE"`
	LogLevel            string        `env:"KLYRAPAY_LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"KLYRAPAY_LOG_FORMAT" envDefault:"console"`
	LogFile             string        `env:"KLYRAPAY_LOG_FILE"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	bindFlags(fs, &cfg)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	if fs == nil {
		return
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "Public base URL used for canonical links and the sitemap")
	fs.Var(&cfg.AllowIndexing, "allow-indexing", "Allow search engines to index the site")
	fs.StringVar(&cfg.GitHubRepoURL, "github-url", cfg.GitHubRepoURL, "Repository URL linked from the site")
	fs.Var(&cfg.MatchAcceptLanguage, "match-accept-language", "Match every Accept-Language entry by quality instead of the first tag only")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (console, json)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Optional rotated log file")
}

// Run starts the landing site.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Options{
		Level:    cfg.LogLevel,
		Format:   cfg.LogFormat,
		FilePath: cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load catalogs: %w", err)
	}
	siteConfig := branding.NewSiteConfig(branding.Options{
		URL:           cfg.SiteURL,
		AllowIndexing: bool(cfg.AllowIndexing),
		GitHubRepoURL: cfg.GitHubRepoURL,
	})
	if !siteConfig.AllowIndexing {
		logger.Info("search indexing disabled", zap.String("url", siteConfig.URL))
	}

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSite, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		srv, err := server.NewServer(ctx, server.Config{
			HTTPAddr:            cfg.HTTPAddr,
			Site:                siteConfig,
			Catalog:             bundle,
			MatchAcceptLanguage: bool(cfg.MatchAcceptLanguage),
			Logger:              logger,
			Project:             projectinfo.Read(),
		})
		if err != nil {
			return fmt.Errorf("init site server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}
