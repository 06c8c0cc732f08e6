package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/htmlkit-dev/htmlkit/internal/config"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"minimal", false},
		{"full", false},
		{"blog", false},
		{"nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				if !strings.Contains(err.Error(), "E902") {
					t.Errorf("Expected E902 error, got: %v", err)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if tmpl == nil {
					t.Error("Template should not be nil")
				}
				if tmpl.Name != tt.name {
					t.Errorf("Name = %q, want %q", tmpl.Name, tt.name)
				}
			}
		})
	}
}

func TestList(t *testing.T) {
	names := List()
	if len(names) < 3 {
		t.Errorf("Expected at least 3 templates, got %d", len(names))
	}

	// Check that all expected templates are present
	expected := map[string]bool{
		"minimal": false,
		"full":    false,
		"blog":    false,
	}

	for _, name := range names {
		if _, ok := expected[name]; ok {
			expected[name] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("Template %q not found in list", name)
		}
	}
}

func TestTemplate_Create_Minimal(t *testing.T) {
	tmpDir := t.TempDir()

	tmpl, _ := Get("minimal")
	cfg := Config{
		ProjectName: "test-site",
		ModulePath:  "github.com/test/test-site",
		Description: "A test site",
	}

	if err := tmpl.Create(tmpDir, cfg); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Check that files were created
	expectedFiles := []string{
		"main.go",
		"go.mod",
		"htmlkit.json",
		".gitignore",
	}

	for _, file := range expectedFiles {
		path := filepath.Join(tmpDir, file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("File %q not created", file)
		}
	}

	// Check content substitution in main.go
	mainGo, _ := os.ReadFile(filepath.Join(tmpDir, "main.go"))
	if !strings.Contains(string(mainGo), "test-site") {
		t.Error("Project name not substituted in main.go")
	}
	if !strings.Contains(string(mainGo), "A test site") {
		t.Error("Description not substituted in main.go")
	}
	if !strings.Contains(string(mainGo), "HTMLKIT_OUTPUT") {
		t.Error("Generator should read the output directory from the environment")
	}

	// Check go.mod has module path
	goMod, _ := os.ReadFile(filepath.Join(tmpDir, "go.mod"))
	if !strings.Contains(string(goMod), "github.com/test/test-site") {
		t.Error("Module path not substituted in go.mod")
	}
	if !strings.Contains(string(goMod), "github.com/htmlkit-dev/htmlkit") {
		t.Error("Scaffolded go.mod should require htmlkit")
	}
}

func TestTemplate_Create_Full(t *testing.T) {
	tmpDir := t.TempDir()

	tmpl, _ := Get("full")
	cfg := Config{
		ProjectName: "my-site",
		ModulePath:  "mysite",
		Description: "My awesome site",
		WithPublish: true,
	}

	if err := tmpl.Create(tmpDir, cfg); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Check core files
	expectedFiles := []string{
		"main.go",
		"go.mod",
		"htmlkit.json",
		"README.md",
		".gitignore",
	}

	for _, file := range expectedFiles {
		path := filepath.Join(tmpDir, file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("File %q not created", file)
		}
	}

	// Check main.go contains the layout pieces
	mainGo, _ := os.ReadFile(filepath.Join(tmpDir, "main.go"))
	mainGoStr := string(mainGo)
	if !strings.Contains(mainGoStr, "navbar") {
		t.Error("navbar not in main.go")
	}
	if !strings.Contains(mainGoStr, "homePage") {
		t.Error("homePage not in main.go")
	}
	if !strings.Contains(mainGoStr, "writePage") {
		t.Error("writePage not in main.go")
	}
	if !strings.Contains(mainGoStr, "about.html") {
		t.Error("about page not in main.go")
	}

	// Check README
	readme, _ := os.ReadFile(filepath.Join(tmpDir, "README.md"))
	if !strings.Contains(string(readme), "my-site") {
		t.Error("Project name not in README")
	}

	// Check publish block when enabled
	kitJSON, _ := os.ReadFile(filepath.Join(tmpDir, "htmlkit.json"))
	if !strings.Contains(string(kitJSON), "publish") {
		t.Error("Publish block should be in htmlkit.json when enabled")
	}
	if !strings.Contains(string(kitJSON), "my-site-site") {
		t.Error("Bucket name not derived from project name")
	}
}

func TestTemplate_Create_Full_NoPublish(t *testing.T) {
	tmpDir := t.TempDir()

	tmpl, _ := Get("full")
	cfg := Config{
		ProjectName: "plain-site",
		ModulePath:  "plainsite",
		Description: "No publishing here",
	}

	if err := tmpl.Create(tmpDir, cfg); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	kitJSON, _ := os.ReadFile(filepath.Join(tmpDir, "htmlkit.json"))
	if strings.Contains(string(kitJSON), "publish") {
		t.Error("Publish block should be absent when disabled")
	}
}

func TestTemplate_Create_Blog(t *testing.T) {
	tmpDir := t.TempDir()

	tmpl, _ := Get("blog")
	cfg := Config{
		ProjectName: "my-blog",
		ModulePath:  "myblog",
		Description: "My blog",
	}

	if err := tmpl.Create(tmpDir, cfg); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Check core files
	expectedFiles := []string{
		"main.go",
		"go.mod",
		"htmlkit.json",
		"README.md",
	}

	for _, file := range expectedFiles {
		path := filepath.Join(tmpDir, file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("File %q not created", file)
		}
	}

	// Check main.go has posts and per-post pages
	mainGo, _ := os.ReadFile(filepath.Join(tmpDir, "main.go"))
	mainGoStr := string(mainGo)
	if !strings.Contains(mainGoStr, "type Post struct") {
		t.Error("Post type not in main.go")
	}
	if !strings.Contains(mainGoStr, "postPage") {
		t.Error("postPage not in main.go")
	}
	if !strings.Contains(mainGoStr, "Range(posts") {
		t.Error("Post listing not in main.go")
	}
}

// Every template's htmlkit.json must load and validate through the
// config package, publish block or not.
func TestScaffoldedConfigLoads(t *testing.T) {
	for _, name := range List() {
		for _, withPublish := range []bool{false, true} {
			tmpDir := t.TempDir()

			tmpl, err := Get(name)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", name, err)
			}

			cfg := Config{
				ProjectName: "probe",
				ModulePath:  "probe",
				Description: "probe",
				WithPublish: withPublish,
			}
			if err := tmpl.Create(tmpDir, cfg); err != nil {
				t.Fatalf("Create(%q) error: %v", name, err)
			}

			loaded, err := config.Load(tmpDir)
			if err != nil {
				t.Fatalf("config.Load after %q scaffold: %v", name, err)
			}
			if loaded.Name != "probe" {
				t.Errorf("%s: Name = %q, want %q", name, loaded.Name, "probe")
			}
			if err := loaded.Validate(); err != nil {
				t.Errorf("%s: scaffolded config should validate: %v", name, err)
			}
		}
	}
}

func TestConfig_Fields(t *testing.T) {
	cfg := Config{
		ProjectName: "test",
		ModulePath:  "github.com/test/test",
		Description: "Test desc",
		WithPublish: true,
	}

	if cfg.ProjectName != "test" {
		t.Error("ProjectName mismatch")
	}
	if !cfg.WithPublish {
		t.Error("WithPublish should be true")
	}
}

func TestTemplate_Description(t *testing.T) {
	for _, name := range []string{"minimal", "full", "blog"} {
		tmpl, _ := Get(name)
		if tmpl.Description == "" {
			t.Errorf("Template %q should have description", name)
		}
	}
}
