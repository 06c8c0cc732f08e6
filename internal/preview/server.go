package preview

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/htmlkit-dev/htmlkit/internal/build"
	"github.com/htmlkit-dev/htmlkit/internal/config"
	"github.com/htmlkit-dev/htmlkit/internal/errors"
	"github.com/htmlkit-dev/htmlkit/pkg/middleware"
)

// ServerOptions configures the preview server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Verbose enables verbose logging.
	Verbose bool

	// OnBuildStart is called when a rebuild starts.
	OnBuildStart func()

	// OnBuildComplete is called when a rebuild completes.
	OnBuildComplete func(result *build.Result, err error)

	// OnReload is called when browsers are reloaded.
	OnReload func(clients int)

	// Logger is the structured logger for the server.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Server serves the built site over HTTP, rebuilding and reloading
// browsers when project files change.
type Server struct {
	config       *config.Config
	options      ServerOptions
	builder      *build.Builder
	watcher      *Watcher
	reloadServer *ReloadServer
	changeCh     chan Change
	httpServer   *http.Server
	mu           sync.Mutex
	running      bool
	lastManifest map[string]string
	liveReload   bool
	logger       *slog.Logger
}

// NewServer creates a new preview server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	liveReload := cfg.Preview.Reload

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	builder := build.New(cfg, build.Options{
		Verbose: options.Verbose,
		Logger:  logger,
	})

	// Never watch the output directory: the generator writes there on
	// every build and watching it would rebuild forever.
	ignore := append([]string{}, DefaultIgnore...)
	ignore = append(ignore, cfg.Preview.Ignore...)
	ignore = append(ignore, cfg.Output)

	watcher := NewWatcher(WatcherConfig{
		Paths:    cfg.WatchPaths(),
		Ignore:   ignore,
		Debounce: 100 * time.Millisecond,
	})

	var reloadServer *ReloadServer
	if liveReload {
		reloadServer = NewReloadServer()
	}

	return &Server{
		config:       cfg,
		options:      options,
		builder:      builder,
		watcher:      watcher,
		reloadServer: reloadServer,
		liveReload:   liveReload,
		logger:       logger,
	}
}

// Start starts the preview server. It blocks until the context is
// cancelled or the server fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	for _, p := range s.config.WatchPaths() {
		if _, err := os.Stat(p); err != nil {
			return errors.New("E301").
				WithDetail("Watch path does not exist: " + p).
				WithSuggestion("Check preview.watch in htmlkit.json")
		}
	}

	// Initial build
	s.log("Building...")
	start := time.Now()
	result, err := s.builder.Build(ctx)
	middleware.RecordRebuild(time.Since(start), err)
	if err != nil {
		if ke, ok := err.(*errors.KitError); ok && ke.Code == "E203" && !s.hasExistingOutput() {
			return errors.New("E302").Wrap(err)
		}
		s.logError("Build failed: %v", err)
		s.notifyError(buildErrorText(err))
	} else {
		s.lastManifest = result.Manifest
		s.log("Built %d pages in %s", result.Pages, result.Duration.Round(time.Millisecond))
	}

	// Set up watcher callback
	s.changeCh = make(chan Change, 64)
	s.watcher.OnChange(func(change Change) {
		select {
		case s.changeCh <- change:
		default:
		}
	})

	// Start watcher in background
	s.logger.Debug("watching for changes", "paths", s.config.WatchPaths())
	go s.watcher.Start(ctx)
	go s.processChanges(ctx)

	s.httpServer = &http.Server{
		Addr:    s.config.PreviewAddress(),
		Handler: s.routes(),
	}

	s.log("Preview running at %s", s.config.PreviewURL())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- errors.New("E300").
				WithDetail(err.Error()).
				WithSuggestion("Try a different port with --port or preview.port in htmlkit.json").
				Wrap(err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the preview server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	s.watcher.Stop()
	if s.reloadServer != nil {
		s.reloadServer.Close()
	}

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// routes builds the preview HTTP handler.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	if s.reloadEnabled() {
		r.Get(ReloadEndpoint, s.reloadServer.HandleWebSocket)
	}

	// Page serving gets metrics and tracing; the operational endpoints
	// above stay out of the counters.
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.Prometheus())
		gr.Use(middleware.OpenTelemetry())
		gr.Handle("/*", http.HandlerFunc(s.serveFile))
	})

	return r
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(ctx, changes)
		}
	}
}

// handleChanges handles a batch of file changes. Every change runs the
// generator again; only it knows which pages a source file affects. The
// output manifest diff then decides how browsers get refreshed.
func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	if len(changes) == 0 {
		return
	}

	hasConfig := false
	for _, change := range changes {
		s.log("Changed: %s", change.Path)
		s.logger.Debug("file changed", "path", change.Path, "type", change.Type)
		if change.Type == ChangeConfig {
			hasConfig = true
		}
	}

	if hasConfig {
		s.reloadConfig()
	}

	s.rebuild(ctx)
}

// reloadConfig re-reads htmlkit.json so render settings reach the next
// generator run. Address, output, and generator changes need a restart
// because the HTTP handlers read those concurrently.
func (s *Server) reloadConfig() {
	fresh, err := config.LoadFile(s.config.Path())
	if err != nil {
		s.logError("Failed to reload htmlkit.json: %v", err)
		return
	}
	if err := fresh.Validate(); err != nil {
		s.logError("Invalid htmlkit.json: %v", err)
		return
	}

	if fresh.PreviewAddress() != s.config.PreviewAddress() ||
		fresh.Output != s.config.Output ||
		fresh.Generator != s.config.Generator {
		s.log("Note: server settings changed; restart to apply")
	}

	s.config.Render = fresh.Render
	s.log("Reloaded htmlkit.json")
}

// rebuild runs the generator and notifies connected browsers.
func (s *Server) rebuild(ctx context.Context) {
	if s.options.OnBuildStart != nil {
		s.options.OnBuildStart()
	}

	s.log("Rebuilding...")
	start := time.Now()
	result, err := s.builder.Build(ctx)
	middleware.RecordRebuild(time.Since(start), err)

	if s.options.OnBuildComplete != nil {
		s.options.OnBuildComplete(result, err)
	}

	if err != nil {
		s.logError("Build failed: %v", err)
		s.notifyError(buildErrorText(err))
		return
	}

	s.log("Built %d pages in %s", result.Pages, result.Duration.Round(time.Millisecond))
	s.clearReloadError()

	changed := diffManifests(s.lastManifest, result.Manifest)
	s.lastManifest = result.Manifest

	switch {
	case len(changed) == 0:
		s.log("Output unchanged")
	case allCSS(changed):
		s.notifyCSS(changed[0])
	default:
		s.notifyReload()
	}
}

// diffManifests returns the output paths that were added, removed, or
// rewritten between two builds.
func diffManifests(prev, next map[string]string) []string {
	var changed []string
	for p, hash := range next {
		if prevHash, ok := prev[p]; !ok || prevHash != hash {
			changed = append(changed, p)
		}
	}
	for p := range prev {
		if _, ok := next[p]; !ok {
			changed = append(changed, p)
		}
	}
	return changed
}

// allCSS reports whether every changed path is a stylesheet.
func allCSS(paths []string) bool {
	for _, p := range paths {
		if strings.ToLower(path.Ext(p)) != ".css" {
			return false
		}
	}
	return len(paths) > 0
}

// =============================================================================
// File Serving
// =============================================================================

// serveFile serves a file from the output directory, injecting the live
// reload script into HTML pages.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	rel, ok := relFilePath(r.URL.Path)
	if !ok {
		s.serveNotFound(w, r)
		return
	}

	outputDir := s.config.OutputPath()
	fsPath := filepath.Join(outputDir, filepath.FromSlash(rel))

	info, err := os.Stat(fsPath)
	if err == nil && info.IsDir() {
		// Directory requests serve the directory index.
		fsPath = filepath.Join(fsPath, "index.html")
		info, err = os.Stat(fsPath)
	}
	if err != nil && !strings.Contains(path.Base(rel), ".") {
		// Extensionless pretty URL: /about tries about.html.
		fsPath = filepath.Join(outputDir, filepath.FromSlash(rel)+".html")
		info, err = os.Stat(fsPath)
	}
	if err != nil || info.IsDir() {
		s.serveNotFound(w, r)
		return
	}

	if isHTMLFile(fsPath) {
		s.serveHTML(w, r, fsPath, http.StatusOK)
		return
	}

	f, err := os.Open(fsPath)
	if err != nil {
		s.serveNotFound(w, r)
		return
	}
	defer f.Close()

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	http.ServeContent(w, r, filepath.Base(fsPath), info.ModTime(), f)
}

// serveHTML writes an HTML file with the reload script injected.
func (s *Server) serveHTML(w http.ResponseWriter, r *http.Request, fsPath string, status int) {
	data, err := os.ReadFile(fsPath)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html := string(data)
	if s.reloadEnabled() {
		html = injectReloadScript(html)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(html)))
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	w.Write([]byte(html))
}

// serveNotFound serves the site's 404.html if the build produced one,
// falling back to a plain page. Both carry the reload script so a fixed
// build refreshes the browser.
func (s *Server) serveNotFound(w http.ResponseWriter, r *http.Request) {
	custom := filepath.Join(s.config.OutputPath(), "404.html")
	if info, err := os.Stat(custom); err == nil && !info.IsDir() {
		s.serveHTML(w, r, custom, http.StatusNotFound)
		return
	}

	reloadScript := ""
	if s.reloadEnabled() {
		reloadScript = ClientScript
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>404 Not Found</title></head>
<body style="font-family: system-ui; padding: 40px; background: #1a1a1a; color: #fff;">
<h1 style="color: #ff5555;">404 Not Found</h1>
<p>No page exists at <code>%s</code>.</p>
<p style="color: #888;">The page will reload when the next build produces it.</p>
%s
</body>
</html>`, htmlEscape(r.URL.Path), reloadScript)
}

// relFilePath returns a sanitized output-relative path for a request.
// It rejects traversal and absolute-path tricks so serving cannot escape
// the output directory.
func relFilePath(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" {
		rel = "index.html"
	}

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, "\\") {
		return "", false
	}

	// After prefix stripping, a leading "/" indicates an absolute-path
	// attempt (e.g. "//etc/passwd" => "/etc/passwd").
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning to avoid "cleaning away"
	// traversal attempts and changing the meaning of the request path.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == "" || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	// Defense-in-depth: reject OS-absolute/volume paths after slash conversion.
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}

// injectReloadScript inserts the live reload client before </body>,
// falling back to </html> or appending.
func injectReloadScript(html string) string {
	if idx := strings.LastIndex(html, "</body>"); idx != -1 {
		return html[:idx] + ClientScript + html[idx:]
	}
	if idx := strings.LastIndex(html, "</html>"); idx != -1 {
		return html[:idx] + ClientScript + html[idx:]
	}
	return html + ClientScript
}

// isHTMLFile reports whether a path looks like an HTML page.
func isHTMLFile(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".html" || ext == ".htm"
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// =============================================================================
// Notifications
// =============================================================================

func (s *Server) reloadEnabled() bool {
	return s.liveReload && s.reloadServer != nil
}

func (s *Server) notifyReload() {
	if !s.reloadEnabled() {
		s.log("Live reload disabled; rebuild complete")
		return
	}

	s.reloadServer.NotifyReload()
	if s.options.OnReload != nil {
		s.options.OnReload(s.reloadServer.ClientCount())
	}
	s.log("Reloaded %d browsers", s.reloadServer.ClientCount())
}

func (s *Server) notifyCSS(file string) {
	if !s.reloadEnabled() {
		s.log("CSS changed (live reload disabled)")
		return
	}

	s.reloadServer.NotifyCSS(file)
	s.log("CSS reloaded")
}

func (s *Server) notifyError(errMsg string) {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.NotifyError(errMsg)
}

func (s *Server) clearReloadError() {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.ClearError()
}

// hasExistingOutput reports whether a previous build left anything to
// serve.
func (s *Server) hasExistingOutput() bool {
	entries, err := os.ReadDir(s.config.OutputPath())
	return err == nil && len(entries) > 0
}

// buildErrorText extracts the text shown on the browser error overlay.
func buildErrorText(err error) string {
	if ke, ok := err.(*errors.KitError); ok && ke.Detail != "" {
		return ke.Error() + "\n\n" + ke.Detail
	}
	return err.Error()
}

// log prints a timestamped message.
func (s *Server) log(format string, args ...any) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// logError prints a timestamped error message.
func (s *Server) logError(format string, args ...any) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Fprintf(os.Stderr, "[%s] %s%s%s\n", timestamp, "\033[31m", fmt.Sprintf(format, args...), "\033[0m")
}
