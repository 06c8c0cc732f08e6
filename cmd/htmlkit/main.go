package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦ ╦╔╦╗╔╦╗╦  ╦╔═╦╔╦╗
  ╠═╣ ║ ║║║║  ╠╩╗║ ║
  ╩ ╩ ╩ ╩ ╩╩═╝╩ ╩╩ ╩
`

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "htmlkit",
		Short: "Build HTML sites with Go",
		Long: `HTMLKit is a programmatic HTML generator for Go.

Write pages as Go programs with a typed element DSL, then build,
preview, and publish the rendered output. Features include:

  • Typed element and attribute builders
  • Deterministic, indented HTML rendering
  • Preview server with live reload
  • Prometheus metrics and OpenTelemetry tracing
  • One-command publishing to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add commands
	rootCmd.AddCommand(
		newCmd(),
		buildCmd(),
		previewCmd(),
		publishCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// configureLogging installs the default logger used by the tooling
// packages. Debug level is opt-in via --verbose.
func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// printBanner prints the HTMLKit ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
