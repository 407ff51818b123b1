package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsA4AtPort8080(t *testing.T) {
	cfg := Default()
	if cfg.Addr != ":8080" || cfg.PaperSize != A4 {
		t.Fatalf("default = %+v, want addr :8080 paper a4", cfg)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want Default", cfg)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	if err := os.WriteFile(path, []byte("addr: \":9090\"\npaperSize: letter\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.PaperSize != Letter {
		t.Fatalf("cfg = %+v, want addr :9090 paper letter", cfg)
	}
	if cfg.DefaultFont != "Helvetica" {
		t.Fatalf("cfg.DefaultFont = %q, want untouched default", cfg.DefaultFont)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load(missing) error = nil, want error")
	}
}
