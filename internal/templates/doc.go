// Package templates provides project scaffolding templates.
//
// This package contains embedded templates for creating new htmlkit
// projects. Templates include all necessary files for a working site
// generator.
//
// # Available Templates
//
//   - minimal: A single page and nothing else
//   - full: Multi-page starter with a shared layout and stylesheet
//   - blog: Post listing plus one page per post
//
// # Usage
//
//	tmpl := templates.Get("full")
//	if err := tmpl.Create(projectDir, config); err != nil {
//	    log.Fatal(err)
//	}
//
// # Template Variables
//
// Templates support variable substitution:
//
//	{{.ProjectName}}     - Name of the project
//	{{.ModulePath}}      - Go module path
//	{{.Description}}     - Project description
//	{{.WithPublish}}     - Whether an S3 publish block is included
package templates
