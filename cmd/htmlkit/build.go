package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/htmlkit-dev/htmlkit/internal/build"
	"github.com/htmlkit-dev/htmlkit/internal/config"
)

func buildCmd() *cobra.Command {
	var (
		output  string
		timeout time.Duration
		clean   bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site",
		Long: `Run the project generator and verify the output.

This command:
  • Locates the project root by finding htmlkit.json
  • Runs the generator program with the output directory exported
  • Verifies at least one HTML page was produced
  • Records a content manifest of the output

Examples:
  htmlkit build
  htmlkit build --output=public
  htmlkit build --timeout=30s --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildCmd(output, timeout, verbose, clean)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from htmlkit.json)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Generator timeout (default 2m)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")

	return cmd
}

func runBuildCmd(output string, timeout time.Duration, verbose, clean bool) error {
	// Load config
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if output != "" {
		cfg.Output = output
	}

	fmt.Println("  Building site...")
	fmt.Println()

	builder := build.New(cfg, build.Options{
		Timeout: timeout,
		Verbose: verbose,
		OnProgress: func(step string) {
			info(step)
		},
	})

	// Clean if requested
	if clean {
		info("Cleaning output directory...")
		if err := builder.Clean(); err != nil {
			return err
		}
	}

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	// Build
	result, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	// Print results
	fmt.Println()
	success("Built %d pages in %s", result.Pages, result.Duration.Round(1000000))
	fmt.Println()
	fmt.Println("  Output:")
	fmt.Printf("    %s/  (%d files, %s)\n", cfg.Output, result.Files, formatBytes(result.TotalSize))
	fmt.Println()
	fmt.Println("  To preview:")
	fmt.Println("    htmlkit preview")
	fmt.Println()

	return nil
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
