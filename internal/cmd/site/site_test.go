package site

import (
	"context"
	"flag"
	"io"
	"strings"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:3000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:3000")
	}
	if !cfg.AllowIndexing {
		t.Fatal("AllowIndexing = false, want true")
	}
	if cfg.MatchAcceptLanguage {
		t.Fatal("MatchAcceptLanguage = true, want false")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Fatalf("log = (%q, %q), want (info, console)", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestParseConfigFromEnv(t *testing.T) {
	t.Setenv("KLYRAPAY_SITE_HTTP_ADDR", "0.0.0.0:8080")
	t.Setenv("KLYRAPAY_SITE_URL", "https://klyrapay.example/")
	t.Setenv("KLYRAPAY_SITE_ALLOW_INDEXING", "no")
	t.Setenv("KLYRAPAY_LOCALE_MATCH_ACCEPT_LANGUAGE", "yes")
	t.Setenv("KLYRAPAY_LOG_FORMAT", "json")

	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:8080")
	}
	if cfg.SiteURL != "https://klyrapay.example/" {
		t.Fatalf("SiteURL = %q", cfg.SiteURL)
	}
	if cfg.AllowIndexing {
		t.Fatal("AllowIndexing = true, want false")
	}
	if !cfg.MatchAcceptLanguage {
		t.Fatal("MatchAcceptLanguage = false, want true")
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("KLYRAPAY_SITE_HTTP_ADDR", "0.0.0.0:8080")

	cfg, err := ParseConfig(newFlagSet(), []string{
		"-http-addr", "127.0.0.1:9000",
		"-allow-indexing=false",
		"-match-accept-language",
		"-log-level", "debug",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9000")
	}
	if cfg.AllowIndexing {
		t.Fatal("AllowIndexing = true, want false")
	}
	if !cfg.MatchAcceptLanguage {
		t.Fatal("MatchAcceptLanguage = false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	if _, err := ParseConfig(newFlagSet(), []string{"-nope"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	err := Run(context.Background(), Config{HTTPAddr: "127.0.0.1:0", LogLevel: "loud"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "init logger") {
		t.Fatalf("error = %v, want init logger failure", err)
	}
}

func TestRunRejectsMissingAddress(t *testing.T) {
	err := Run(context.Background(), Config{HTTPAddr: " ", LogLevel: "error"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "http address is required") {
		t.Fatalf("error = %v, want missing address", err)
	}
}

func TestRunStopsWhenContextEnds(t *testing.T) {
	t.Setenv("KLYRAPAY_OTEL_ENDPOINT", "")
	t.Setenv("KLYRAPAY_OTEL_ENABLED", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, Config{HTTPAddr: "127.0.0.1:0", LogLevel: "error", LogFormat: "json"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
