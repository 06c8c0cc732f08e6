package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlkit.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultIndent is the default render indent unit.
	DefaultIndent = "    "

	// DefaultLang is the default document language code.
	DefaultLang = "en"

	// OutputEnvVar is the environment variable carrying the absolute
	// output directory into the project generator.
	OutputEnvVar = "HTMLKIT_OUTPUT"

	// IndentEnvVar carries the configured indent unit into the generator.
	IndentEnvVar = "HTMLKIT_INDENT"

	// LangEnvVar carries the configured language code into the generator.
	LangEnvVar = "HTMLKIT_LANG"
)

// Config represents the complete htmlkit.json configuration.
type Config struct {
	// Name is the site name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Output is the build output directory, relative to the project root.
	Output string `json:"output,omitempty"`

	// Generator is the directory holding the generator program,
	// relative to the project root. Defaults to the root itself.
	Generator string `json:"generator,omitempty"`

	// Render contains document rendering settings.
	Render RenderConfig `json:"render,omitempty"`

	// Preview contains preview server settings.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Publish contains publishing settings.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains document rendering settings.
type RenderConfig struct {
	// Indent is the indent unit, spaces or a tab.
	Indent string `json:"indent,omitempty"`

	// Lang is the document language code.
	Lang string `json:"lang,omitempty"`
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// OpenBrowser opens the browser automatically on start.
	OpenBrowser bool `json:"openBrowser,omitempty"`

	// Watch contains paths to watch for changes, relative to the root.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains patterns to ignore during watch.
	Ignore []string `json:"ignore,omitempty"`

	// Reload enables live reload in the preview server.
	Reload bool `json:"reload,omitempty"`
}

// PublishConfig contains publishing settings.
type PublishConfig struct {
	// Bucket is the S3 bucket to publish to.
	Bucket string `json:"bucket,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`

	// Prefix is the object key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`

	// CacheControl is the Cache-Control header applied to uploads.
	CacheControl string `json:"cacheControl,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version:   "0.1.0",
		Output:    DefaultOutput,
		Generator: ".",
		Render: RenderConfig{
			Indent: DefaultIndent,
			Lang:   DefaultLang,
		},
		Preview: PreviewConfig{
			Port:   DefaultPort,
			Host:   DefaultHost,
			Reload: true,
			Watch:  []string{"."},
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for htmlkit.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E103").
				WithDetail("No htmlkit.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'htmlkit new' to create a project or create htmlkit.json manually")
		}
		return nil, errors.New("E100").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E100").
			WithDetail("Failed to parse htmlkit.json: " + err.Error()).
			WithSuggestion("Check that htmlkit.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E100").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E100").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Generator == "" {
		c.Generator = "."
	}

	// Render
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
	if c.Render.Lang == "" {
		c.Render.Lang = DefaultLang
	}

	// Preview
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Watch == nil {
		c.Preview.Watch = []string{"."}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 1 || c.Preview.Port > 65535 {
		return errors.New("E102").
			WithDetail("Port must be between 1 and 65535")
	}
	if filepath.IsAbs(c.Output) || strings.HasPrefix(filepath.Clean(c.Output), "..") {
		return errors.New("E104").
			WithDetail("The output directory must stay inside the project root")
	}
	if strings.Trim(c.Render.Indent, " ") != "" && c.Render.Indent != "\t" {
		return errors.New("E105").
			WithDetail("render.indent must be spaces or a single tab")
	}
	return nil
}

// PreviewAddress returns the address string for the preview server.
func (c *Config) PreviewAddress() string {
	return c.Preview.Host + ":" + itoa(c.Preview.Port)
}

// PreviewURL returns the full URL for the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(c.Dir(), c.Output)
}

// GeneratorPath returns the absolute path to the generator directory.
func (c *Config) GeneratorPath() string {
	if filepath.IsAbs(c.Generator) {
		return c.Generator
	}
	return filepath.Join(c.Dir(), c.Generator)
}

// WatchPaths returns the absolute paths to watch for changes.
func (c *Config) WatchPaths() []string {
	paths := make([]string, 0, len(c.Preview.Watch))
	for _, p := range c.Preview.Watch {
		if !filepath.IsAbs(p) {
			p = filepath.Join(c.Dir(), p)
		}
		paths = append(paths, p)
	}
	return paths
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing htmlkit.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E103").
				WithDetail("No htmlkit.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'htmlkit new' to create a project")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// itoa converts int to string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	// Reverse
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
