package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "SHUTDOWN_TIMEOUT_SECONDS", "CORS_ORIGINS", "CATALOG_FILE"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Fatalf("expected no CORS origins by default, got %v", cfg.CORSOrigins)
	}
	if cfg.CatalogFile != "" {
		t.Fatalf("expected no catalog file by default, got %q", cfg.CatalogFile)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com")
	t.Setenv("CATALOG_FILE", "/tmp/catalog.json")

	cfg := FromEnv()

	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected addr :9090, got %q", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected shutdown timeout 3s, got %v", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.com" {
		t.Fatalf("expected trimmed origin list, got %v", cfg.CORSOrigins)
	}
}

func TestFromEnvBadDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")

	cfg := FromEnv()
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected fallback to default, got %v", cfg.ShutdownTimeout)
	}
}
