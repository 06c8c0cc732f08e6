// Package preview provides the preview server and live reload functionality.
//
// This package implements:
//   - File watching for generator, stylesheet, and config changes
//   - Rebuilds via the project generator on change
//   - Static serving of the output directory
//   - WebSocket-based browser refresh
//   - Error overlay in browser
//
// # Architecture
//
// The preview server consists of several components:
//
//   - Watcher: Monitors the file system for changes
//   - Server: Rebuilds on change and serves the output directory
//   - ReloadServer: Notifies browsers of changes via WebSocket
//
// # Usage
//
//	srv := preview.NewServer(preview.ServerOptions{
//	    Config: cfg,
//	})
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Live reload can be disabled via htmlkit.json (preview.reload=false).
// Watch paths come from preview.watch; the output directory is always
// excluded so builds do not retrigger themselves.
//
// # Live Reload Protocol
//
// The browser connects to /_htmlkit/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload"}                // Triggers full page reload
//	{"type": "css"}                   // Triggers CSS-only reload
//	{"type": "error", "error": "..."} // Shows error overlay
//	{"type": "clear"}                 // Clears error overlay
//
// After each successful rebuild the server compares output manifests:
// if only stylesheets changed it sends a CSS refresh, otherwise a full
// reload. Unchanged output sends nothing.
package preview
