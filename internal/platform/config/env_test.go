package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int    `env:"KLYRAPAY_TEST_PORT" envDefault:"123"`
	Name string `env:"KLYRAPAY_TEST_NAME" envDefault:"site"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("KLYRAPAY_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromIgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("KLYRAPAY_TEST_NAME", "from-process")

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, map[string]string{"KLYRAPAY_TEST_PORT": "9000"}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.Name != "site" {
		t.Fatalf("Name = %q, want default %q", cfg.Name, "site")
	}
}

func TestParseEnvFromNilMapUsesDefaults(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, nil); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("Port = %d, want 123", cfg.Port)
	}
}
