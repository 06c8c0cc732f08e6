// Package publish syncs a built site to a hosting destination.
//
// Publishing walks the output directory, uploads every file with a
// content type derived from its extension, and optionally prunes
// remote objects that no longer exist locally.
//
// # Targets
//
// Destinations implement the Target interface. Two are provided:
//
//   - S3Target: uploads to an AWS S3 bucket, with optional key prefix
//     and Cache-Control headers
//   - DirTarget: copies into a local directory
//
// # Usage
//
//	client, err := publish.NewS3Client(ctx, cfg.Publish.Region)
//	if err != nil {
//	    return err
//	}
//
//	target := publish.NewS3Target(client, cfg.Publish.Bucket, cfg.Publish.Prefix)
//	pub := publish.New(cfg, target, publish.Options{
//	    CacheControl: cfg.Publish.CacheControl,
//	    Prune:        true,
//	})
//
//	result, err := pub.Publish(ctx)
//
// # Sync Semantics
//
// Uploads happen in sorted key order and overwrite unconditionally;
// there is no remote change detection. Prune runs after all uploads
// succeed so a failed publish never deletes anything.
package publish
