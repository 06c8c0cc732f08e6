package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, DefaultPort)
	}
	if cfg.Preview.Host != DefaultHost {
		t.Errorf("Preview.Host = %q, want %q", cfg.Preview.Host, DefaultHost)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.Render.Indent != DefaultIndent {
		t.Errorf("Render.Indent = %q, want %q", cfg.Render.Indent, DefaultIndent)
	}
	if cfg.Render.Lang != DefaultLang {
		t.Errorf("Render.Lang = %q, want %q", cfg.Render.Lang, DefaultLang)
	}
	if !cfg.Preview.Reload {
		t.Error("Preview.Reload should default to true")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	if err == nil {
		t.Error("Expected error for missing config")
	}
	if !strings.Contains(err.Error(), "E103") {
		t.Errorf("Expected E103 error, got: %v", err)
	}

	// Create a config file
	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "name": "docs-site",
  "output": "public",
  "generator": "site",
  "render": {
    "indent": "  ",
    "lang": "de"
  },
  "preview": {
    "port": 8080,
    "host": "0.0.0.0"
  },
  "publish": {
    "bucket": "docs-bucket",
    "region": "eu-central-1",
    "prefix": "www"
  }
}
`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	// Load the config
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Name != "docs-site" {
		t.Errorf("Name = %q, want %q", cfg.Name, "docs-site")
	}
	if cfg.Output != "public" {
		t.Errorf("Output = %q, want %q", cfg.Output, "public")
	}
	if cfg.Generator != "site" {
		t.Errorf("Generator = %q, want %q", cfg.Generator, "site")
	}
	if cfg.Render.Indent != "  " {
		t.Errorf("Render.Indent = %q, want %q", cfg.Render.Indent, "  ")
	}
	if cfg.Render.Lang != "de" {
		t.Errorf("Render.Lang = %q, want %q", cfg.Render.Lang, "de")
	}
	if cfg.Preview.Port != 8080 {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, 8080)
	}
	if cfg.Preview.Host != "0.0.0.0" {
		t.Errorf("Preview.Host = %q, want %q", cfg.Preview.Host, "0.0.0.0")
	}
	if cfg.Publish.Bucket != "docs-bucket" {
		t.Errorf("Publish.Bucket = %q, want %q", cfg.Publish.Bucket, "docs-bucket")
	}
	if cfg.Publish.Region != "eu-central-1" {
		t.Errorf("Publish.Region = %q, want %q", cfg.Publish.Region, "eu-central-1")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	if err := os.WriteFile(configPath, []byte(`{"name": "minimal"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want default %q", cfg.Output, DefaultOutput)
	}
	if cfg.Generator != "." {
		t.Errorf("Generator = %q, want %q", cfg.Generator, ".")
	}
	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Preview.Port = %d, want default %d", cfg.Preview.Port, DefaultPort)
	}
	if cfg.Render.Indent != DefaultIndent {
		t.Errorf("Render.Indent = %q, want default %q", cfg.Render.Indent, DefaultIndent)
	}
	if len(cfg.Preview.Watch) == 0 {
		t.Error("Preview.Watch should default to the project root")
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	// Write invalid JSON
	if err := os.WriteFile(configPath, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(configPath)
	if err == nil {
		t.Error("Expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "E100") {
		t.Errorf("Expected E100 error, got: %v", err)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Name = "saved-site"
	cfg.Preview.Port = 9000

	// Save should fail without configPath set
	err := cfg.Save()
	if err == nil {
		t.Error("Expected error when saving without path")
	}

	// SaveTo should work
	err = cfg.SaveTo(configPath)
	if err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	// Reload and verify
	loaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if loaded.Name != "saved-site" {
		t.Errorf("Name = %q, want %q", loaded.Name, "saved-site")
	}
	if loaded.Preview.Port != 9000 {
		t.Errorf("Preview.Port = %d, want %d", loaded.Preview.Port, 9000)
	}

	// Now Save should work
	loaded.Preview.Port = 9001
	err = loaded.Save()
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// Reload again
	reloaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if reloaded.Preview.Port != 9001 {
		t.Errorf("Preview.Port = %d, want %d", reloaded.Preview.Port, 9001)
	}
}

func TestValidate(t *testing.T) {
	cfg := New()

	// Valid config
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate should pass for valid config: %v", err)
	}

	// Invalid port
	cfg.Preview.Port = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should fail for negative port")
	}

	cfg.Preview.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should fail for port > 65535")
	}

	// Output escaping the root
	cfg = New()
	cfg.Output = "../elsewhere"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should fail for output outside the project root")
	}

	// Invalid indent
	cfg = New()
	cfg.Render.Indent = "ab"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should fail for non-whitespace indent")
	}

	// Tab indent is fine
	cfg = New()
	cfg.Render.Indent = "\t"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate should accept tab indent: %v", err)
	}
}

func TestPreviewAddress(t *testing.T) {
	cfg := New()
	cfg.Preview.Port = 8080
	cfg.Preview.Host = "0.0.0.0"

	addr := cfg.PreviewAddress()
	if addr != "0.0.0.0:8080" {
		t.Errorf("PreviewAddress = %q, want %q", addr, "0.0.0.0:8080")
	}
}

func TestPreviewURL(t *testing.T) {
	cfg := New()

	url := cfg.PreviewURL()
	if url != "http://localhost:3000" {
		t.Errorf("PreviewURL = %q, want %q", url, "http://localhost:3000")
	}
}

func TestPaths(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	configJSON := `{"output": "public", "generator": "site"}`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got, want := cfg.OutputPath(), filepath.Join(tmpDir, "public"); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
	if got, want := cfg.GeneratorPath(), filepath.Join(tmpDir, "site"); got != want {
		t.Errorf("GeneratorPath = %q, want %q", got, want)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestWatchPaths(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	configJSON := `{"preview": {"watch": ["site", "assets"]}}`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	paths := cfg.WatchPaths()
	if len(paths) != 2 {
		t.Fatalf("len(WatchPaths()) = %d, want 2", len(paths))
	}
	if paths[0] != filepath.Join(tmpDir, "site") {
		t.Errorf("WatchPaths()[0] = %q, want %q", paths[0], filepath.Join(tmpDir, "site"))
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	if Exists(tmpDir) {
		t.Error("Exists should be false for empty dir")
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	if !Exists(tmpDir) {
		t.Error("Exists should be true after writing config")
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	// Resolve symlinks for comparison; macOS tempdirs live behind /var.
	wantRoot, _ := filepath.EvalSymlinks(tmpDir)
	gotRoot, _ := filepath.EvalSymlinks(root)
	if gotRoot != wantRoot {
		t.Errorf("FindProjectRoot = %q, want %q", gotRoot, wantRoot)
	}
}

func TestFindProjectRootNotFound(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := FindProjectRoot(tmpDir)
	if err == nil {
		t.Error("Expected error when no htmlkit.json exists")
	}
	if !strings.Contains(err.Error(), "E103") {
		t.Errorf("Expected E103 error, got: %v", err)
	}
}
