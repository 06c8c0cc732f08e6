package publish

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/htmlkit-dev/htmlkit/internal/config"
	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

// FileMeta describes an object being written to a Target.
type FileMeta struct {
	// ContentType is the MIME type of the object.
	ContentType string

	// CacheControl is the Cache-Control header to store, if any.
	CacheControl string

	// Size is the object size in bytes.
	Size int64
}

// Target is the interface for publish destinations.
// Implement this interface to publish to S3, a CDN, or a directory.
type Target interface {
	// Put writes an object under the given site-relative key.
	Put(ctx context.Context, key string, body io.Reader, meta FileMeta) error

	// List returns the site-relative keys currently at the destination.
	List(ctx context.Context) ([]string, error)

	// Delete removes the object with the given key.
	Delete(ctx context.Context, key string) error
}

// Options configures a publish run.
type Options struct {
	// CacheControl is applied to every uploaded object.
	CacheControl string

	// Prune deletes remote objects that no local file maps to.
	Prune bool

	// DryRun reports what would happen without writing anything.
	DryRun bool

	// OnProgress is called with progress messages.
	OnProgress func(step string)

	// Logger is the structured logger for the publisher.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Result contains the outcome of a publish run.
type Result struct {
	// Uploaded is the number of files written.
	Uploaded int

	// Deleted is the number of stale remote objects removed.
	Deleted int

	// TotalSize is the total bytes uploaded.
	TotalSize int64

	// Duration is how long the publish took.
	Duration time.Duration

	// DryRun indicates nothing was actually written.
	DryRun bool
}

// Publisher syncs the build output directory to a Target.
type Publisher struct {
	config  *config.Config
	target  Target
	options Options
	logger  *slog.Logger
}

// New creates a Publisher for the given project and destination.
func New(cfg *config.Config, target Target, options Options) *Publisher {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{
		config:  cfg,
		target:  target,
		options: options,
		logger:  logger,
	}
}

// Publish uploads the output directory. With Options.Prune it also
// removes remote objects no longer present locally.
func (p *Publisher) Publish(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	result := &Result{DryRun: p.options.DryRun}

	outputDir := p.config.OutputPath()
	files, err := collectFiles(outputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("E403").
			WithDetail("No files found in " + outputDir).
			WithSuggestion("Run 'htmlkit build' before publishing")
	}

	p.progress("Uploading " + strconv.Itoa(len(files)) + " files...")

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.progress("  " + file.key)
		p.logger.Debug("uploading", "key", file.key, "bytes", file.size)
		if !p.options.DryRun {
			if err := p.upload(ctx, file); err != nil {
				return nil, errors.New("E400").
					WithDetail("Failed to upload " + file.key + ": " + err.Error()).
					Wrap(err)
			}
		}
		result.Uploaded++
		result.TotalSize += file.size
	}

	if p.options.Prune {
		deleted, err := p.prune(ctx, files)
		if err != nil {
			return nil, err
		}
		result.Deleted = deleted
	}

	result.Duration = time.Since(startTime)
	return result, nil
}

// upload sends a single file to the target.
func (p *Publisher) upload(ctx context.Context, file localFile) error {
	f, err := os.Open(file.path)
	if err != nil {
		return err
	}
	defer f.Close()

	return p.target.Put(ctx, file.key, f, FileMeta{
		ContentType:  DetectContentType(file.key),
		CacheControl: p.options.CacheControl,
		Size:         file.size,
	})
}

// prune removes remote objects that no local file maps to.
func (p *Publisher) prune(ctx context.Context, files []localFile) (int, error) {
	local := make(map[string]struct{}, len(files))
	for _, file := range files {
		local[file.key] = struct{}{}
	}

	remote, err := p.target.List(ctx)
	if err != nil {
		return 0, errors.New("E400").
			WithDetail("Failed to list remote objects: " + err.Error()).
			Wrap(err)
	}

	deleted := 0
	for _, key := range remote {
		if _, ok := local[key]; ok {
			continue
		}

		p.progress("  delete " + key)
		p.logger.Debug("deleting stale object", "key", key)
		if !p.options.DryRun {
			if err := p.target.Delete(ctx, key); err != nil {
				return deleted, errors.New("E400").
					WithDetail("Failed to delete " + key + ": " + err.Error()).
					Wrap(err)
			}
		}
		deleted++
	}

	return deleted, nil
}

func (p *Publisher) progress(step string) {
	if p.options.OnProgress != nil {
		p.options.OnProgress(step)
	}
}

// localFile is a file in the output directory keyed by its
// site-relative slash path.
type localFile struct {
	key  string
	path string
	size int64
}

// collectFiles walks the output directory. Keys are sorted so uploads
// happen in a stable order.
func collectFiles(outputDir string) ([]localFile, error) {
	var files []localFile

	err := filepath.Walk(outputDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(outputDir, p)
		if err != nil {
			return err
		}

		files = append(files, localFile{
			key:  filepath.ToSlash(relPath),
			path: p,
			size: info.Size(),
		})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E403").
				WithDetail("The output directory " + outputDir + " does not exist").
				WithSuggestion("Run 'htmlkit build' before publishing")
		}
		return nil, errors.New("E400").Wrap(err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].key < files[j].key })
	return files, nil
}

// contentTypes pins MIME types for common site files so published
// headers do not depend on the host's mime database.
var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".htm":   "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "text/javascript; charset=utf-8",
	".mjs":   "text/javascript; charset=utf-8",
	".json":  "application/json",
	".xml":   "application/xml",
	".txt":   "text/plain; charset=utf-8",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".pdf":   "application/pdf",
}

// DetectContentType returns the MIME type for a site file.
func DetectContentType(key string) string {
	ext := strings.ToLower(filepath.Ext(key))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
