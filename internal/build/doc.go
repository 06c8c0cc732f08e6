// Package build renders an htmlkit project by running its generator.
//
// A project's generator is an ordinary Go program. The builder runs it
// with `go run .` in the configured generator directory, then verifies
// that it wrote at least one HTML page into the output directory.
//
// # Generator Contract
//
// The builder passes three environment variables to the generator:
//
//	HTMLKIT_OUTPUT    absolute path of the output directory
//	HTMLKIT_INDENT    indent unit from htmlkit.json, if configured
//	HTMLKIT_LANG      language code from htmlkit.json, if configured
//
// The generator must write its pages under HTMLKIT_OUTPUT. Anything
// else it writes there (stylesheets, images, feeds) is carried along
// into the result and later publishes.
//
// # Usage
//
//	builder := build.New(cfg, build.Options{})
//	result, err := builder.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Built %d pages in %s\n", result.Pages, result.Duration)
//
// # Manifest
//
// The result carries a manifest mapping output-relative paths to short
// content hashes, used for change summaries:
//
//	{
//	  "index.html": "a1b2c3d4",
//	  "about.html": "d4e5f6a7",
//	  "styles.css": "97f8c9b0"
//	}
package build
