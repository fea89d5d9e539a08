package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Ollama.URL != "http://localhost:11434" {
		t.Fatalf("ollama url = %q", cfg.Ollama.URL)
	}
	if cfg.Ollama.EmbedModel != "nomic-embed-text" || cfg.Ollama.GenerateModel != "llama3" {
		t.Fatalf("models = %q / %q", cfg.Ollama.EmbedModel, cfg.Ollama.GenerateModel)
	}
}

func TestLoadFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  addr: \":9000\"\nollama:\n  url: http://file:1234\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("OLLAMA_HOST", "http://env:5678")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Ollama.URL != "http://env:5678" {
		t.Fatalf("ollama url = %q, env must win over file", cfg.Ollama.URL)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
