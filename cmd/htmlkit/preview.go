package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/htmlkit-dev/htmlkit/internal/build"
	"github.com/htmlkit-dev/htmlkit/internal/config"
	"github.com/htmlkit-dev/htmlkit/internal/preview"
)

func previewCmd() *cobra.Command {
	var (
		port        int
		host        string
		openBrowser bool
		noReload    bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the site with live reload",
		Long: `Serve the built site and rebuild on source changes.

The preview server watches the project, reruns the generator, and
refreshes connected browsers when the output changes.

Features:
  • Live reload on file change
  • Error overlay in browser
  • CSS-only changes swap stylesheets without a full reload
  • Prometheus metrics at /metrics

Examples:
  htmlkit preview
  htmlkit preview --port=8080
  htmlkit preview --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host, openBrowser, noReload)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to serve on (default from htmlkit.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmlkit.json)")
	cmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open browser on start")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}

func runPreview(port int, host string, openBrowser, noReload bool) error {
	// Load config
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}
	if openBrowser {
		cfg.Preview.OpenBrowser = true
	}
	if noReload {
		cfg.Preview.Reload = false
	}

	// Print banner
	printBanner()
	fmt.Println("  preview")
	fmt.Println()

	// Create server
	server := preview.NewServer(preview.ServerOptions{
		Config:  cfg,
		Verbose: true,
		OnBuildComplete: func(result *build.Result, err error) {
			if err == nil {
				success("Built in %s", result.Duration.Round(1000000))
			}
		},
		OnReload: func(clients int) {
			success("Reloaded %d browsers", clients)
		},
	})

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
		server.Stop()
	}()

	// Open browser if requested
	if cfg.Preview.OpenBrowser {
		go func() {
			// Best effort; the server may still be binding
			openURL(cfg.PreviewURL())
		}()
	}

	// Start server
	return server.Start(ctx)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd

	switch {
	case commandExists("xdg-open"):
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"):
		cmd = exec.Command("open", url)
	case commandExists("start"):
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}

	cmd.Start()
}

// commandExists checks if a command exists in PATH.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
