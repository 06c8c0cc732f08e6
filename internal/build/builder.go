package build

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/htmlkit-dev/htmlkit/internal/config"
	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

// DefaultTimeout bounds a single generator run.
const DefaultTimeout = 2 * time.Minute

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Output is the path to the output directory.
	Output string

	// Pages is the number of HTML files produced.
	Pages int

	// Files is the total number of files produced.
	Files int

	// TotalSize is the combined size of all output files in bytes.
	TotalSize int64

	// Manifest maps output-relative paths to short content hashes.
	Manifest map[string]string
}

// Options configures the builder.
type Options struct {
	// Timeout bounds the generator run. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Verbose streams generator stdout to the terminal.
	Verbose bool

	// OnProgress is called with progress updates.
	OnProgress func(step string)

	// Logger is the structured logger for the builder.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Builder renders a project by running its generator program.
type Builder struct {
	config  *config.Config
	options Options
	logger  *slog.Logger
}

// New creates a new builder.
func New(cfg *config.Config, options Options) *Builder {
	if options.Timeout == 0 {
		options.Timeout = DefaultTimeout
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{
		config:  cfg,
		options: options,
		logger:  logger,
	}
}

// Build runs the generator and verifies its output.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()

	// Generator directory must exist before anything else runs
	genDir := b.config.GeneratorPath()
	if info, err := os.Stat(genDir); err != nil || !info.IsDir() {
		return nil, errors.New("E203").
			WithDetail("Looked in " + genDir).
			WithSuggestion("Set \"generator\" in htmlkit.json to the directory holding your main.go")
	}

	b.progress("Checking toolchain...")
	if _, err := exec.LookPath("go"); err != nil {
		return nil, errors.New("E201").
			WithSuggestion("Install Go from https://go.dev/dl and make sure it is on your PATH")
	}

	// Clean output so deleted pages do not linger between builds
	b.progress("Cleaning output directory...")
	outputDir := b.config.OutputPath()
	if err := os.RemoveAll(outputDir); err != nil {
		return nil, errors.New("E200").Wrap(err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, errors.New("E200").Wrap(err)
	}

	b.progress("Running generator...")
	if err := b.runGenerator(ctx, genDir); err != nil {
		return nil, err
	}

	b.progress("Scanning output...")
	result, err := b.scan()
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	return result, nil
}

// runGenerator executes `go run .` in the generator directory with the
// contract environment set.
func (b *Builder) runGenerator(ctx context.Context, genDir string) error {
	timeout := b.options.Timeout
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	b.logger.Debug("running generator", "dir", genDir, "timeout", timeout)

	cmd := exec.CommandContext(ctx, "go", "run", ".")
	cmd.Dir = genDir
	cmd.Env = generatorEnv(b.config)

	if b.options.Verbose {
		cmd.Stdout = os.Stdout
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.New("E204").
				WithDetail("Generator exceeded " + timeout.String()).
				WithSuggestion("Raise the timeout with --timeout or check the generator for a hang")
		}
		return errors.New("E200").
			WithDetail(stderr.String()).
			Wrap(err)
	}

	return nil
}

// generatorEnv builds the environment for a generator run: the parent
// environment plus the output directory and render settings.
func generatorEnv(cfg *config.Config) []string {
	env := os.Environ()
	env = append(env, config.OutputEnvVar+"="+cfg.OutputPath())
	if cfg.Render.Indent != "" {
		env = append(env, config.IndentEnvVar+"="+cfg.Render.Indent)
	}
	if cfg.Render.Lang != "" {
		env = append(env, config.LangEnvVar+"="+cfg.Render.Lang)
	}
	return env
}

// scan walks the output directory and collects page counts, sizes and
// the content manifest. A run that produced no HTML is a failed build.
func (b *Builder) scan() (*Result, error) {
	outputDir := b.config.OutputPath()
	result := &Result{
		Output:   outputDir,
		Manifest: make(map[string]string),
	}

	err := filepath.Walk(outputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, _ := filepath.Rel(outputDir, path)

		result.Files++
		result.TotalSize += info.Size()
		if strings.EqualFold(filepath.Ext(relPath), ".html") {
			result.Pages++
		}

		hash, err := hashFile(path)
		if err != nil {
			return err
		}
		result.Manifest[filepath.ToSlash(relPath)] = hash[:8]

		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, noOutputError(outputDir)
		}
		return nil, err
	}

	if result.Pages == 0 {
		return nil, noOutputError(outputDir)
	}

	b.logger.Debug("scanned output",
		"pages", result.Pages, "files", result.Files, "bytes", result.TotalSize)

	return result, nil
}

func noOutputError(outputDir string) error {
	return errors.New("E202").
		WithDetail("The generator exited cleanly but wrote no .html files to " + outputDir).
		WithSuggestion("Make sure the generator writes into the directory named by " + config.OutputEnvVar)
}

// progress reports build progress.
func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

// hashFile returns the SHA256 hash of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	return os.RemoveAll(b.config.OutputPath())
}
