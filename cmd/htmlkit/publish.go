package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/htmlkit-dev/htmlkit/internal/config"
	"github.com/htmlkit-dev/htmlkit/internal/errors"
	"github.com/htmlkit-dev/htmlkit/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket       string
		region       string
		prefix       string
		cacheControl string
		to           string
		prune        bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the site to S3",
		Long: `Upload the built output directory to an S3 bucket.

Content types are set per file and uploads happen in deterministic
order. With --prune, remote objects that no longer exist locally are
deleted after all uploads succeed.

Credentials come from the standard AWS chain: environment variables,
shared config files, or an attached role.

Examples:
  htmlkit publish
  htmlkit publish --bucket=my-site --region=eu-west-1
  htmlkit publish --prune --dry-run
  htmlkit publish --to=dir:/var/www/site`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(bucket, region, prefix, cacheControl, to, prune, dryRun)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from htmlkit.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from htmlkit.json or AWS config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&cacheControl, "cache-control", "", "Cache-Control header for uploaded objects")
	cmd.Flags().StringVar(&to, "to", "", "Alternate target, e.g. dir:/var/www/site")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete remote objects missing locally")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be published without uploading")

	return cmd
}

func runPublish(bucket, region, prefix, cacheControl, to string, prune, dryRun bool) error {
	// Load config
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if region != "" {
		cfg.Publish.Region = region
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if cacheControl != "" {
		cfg.Publish.CacheControl = cacheControl
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

	target, desc, err := resolveTarget(ctx, cfg, to)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Printf("  Dry run: publishing %s to %s\n", cfg.Output, desc)
	} else {
		fmt.Printf("  Publishing %s to %s\n", cfg.Output, desc)
	}
	fmt.Println()

	pub := publish.New(cfg, target, publish.Options{
		CacheControl: cfg.Publish.CacheControl,
		Prune:        prune,
		DryRun:       dryRun,
		OnProgress: func(step string) {
			info(step)
		},
	})

	result, err := pub.Publish(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	if result.DryRun {
		success("Would publish %d files (%s)", result.Uploaded, formatBytes(result.TotalSize))
		if result.Deleted > 0 {
			info("Would delete %d stale objects", result.Deleted)
		}
		return nil
	}

	success("Published %d files (%s) in %s", result.Uploaded, formatBytes(result.TotalSize), result.Duration.Round(1000000))
	if result.Deleted > 0 {
		info("Deleted %d stale objects", result.Deleted)
	}

	return nil
}

// resolveTarget builds the publish target from config and the --to flag.
func resolveTarget(ctx context.Context, cfg *config.Config, to string) (publish.Target, string, error) {
	if strings.HasPrefix(to, "dir:") {
		dir := strings.TrimPrefix(to, "dir:")
		target, err := publish.NewDirTarget(dir)
		if err != nil {
			return nil, "", err
		}
		return target, dir, nil
	}
	if to != "" {
		return nil, "", errors.Newf(errors.CategoryPublish, "unknown publish target %q", to).
			WithSuggestion("Use dir:<path> or configure an S3 bucket")
	}

	if cfg.Publish.Bucket == "" {
		return nil, "", errors.New("E401").
			WithSuggestion("Set publish.bucket in htmlkit.json or pass --bucket")
	}

	client, err := publish.NewS3Client(ctx, cfg.Publish.Region)
	if err != nil {
		return nil, "", err
	}

	desc := "s3://" + cfg.Publish.Bucket
	if cfg.Publish.Prefix != "" {
		desc += "/" + strings.Trim(cfg.Publish.Prefix, "/")
	}
	return publish.NewS3Target(client, cfg.Publish.Bucket, cfg.Publish.Prefix), desc, nil
}
