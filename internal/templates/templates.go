package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// ModulePath is the Go module path.
	ModulePath string

	// Description is a short project description.
	Description string

	// WithPublish adds an S3 publish block to htmlkit.json.
	WithPublish bool
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"full":    fullTemplate(),
	"blog":    blogTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E902").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: minimal, full, blog")
	}
	return tmpl, nil
}

// List returns all available template names.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}

// Create generates a project from the template.
func (t *Template) Create(dir string, cfg Config) error {
	for relPath, content := range t.Files {
		// Execute template
		tmpl, err := template.New(relPath).Parse(content)
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		// Write file
		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}

		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return err
		}
	}

	return nil
}

// minimalTemplate returns the minimal template.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A single page and nothing else",
		Files: map[string]string{
			"main.go": `package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/htmlkit-dev/htmlkit"
	. "github.com/htmlkit-dev/htmlkit/el"
)

func main() {
	out := os.Getenv("HTMLKIT_OUTPUT")
	if out == "" {
		out = "dist"
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		log.Fatal(err)
	}

	doc := NewDocument()
	doc.Title = "{{.ProjectName}}"
	doc.Body.Append(
		Main(
			H1("Welcome to {{.ProjectName}}"),
			P("{{.Description}}"),
		),
	)

	html, err := htmlkit.Render(doc.Node)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(out, "index.html"), []byte(html), 0644); err != nil {
		log.Fatal(err)
	}
}
`,
			"go.mod": `module {{.ModulePath}}

go 1.22

require github.com/htmlkit-dev/htmlkit v0.1.0
`,
			"htmlkit.json": `{
  "name": "{{.ProjectName}}",
  "output": "dist",
  "preview": {
    "port": 3000,
    "openBrowser": true
  }
}
`,
			".gitignore": `dist/
`,
		},
	}
}

// fullTemplate returns the full template with a shared layout and styles.
func fullTemplate() *Template {
	return &Template{
		Name:        "full",
		Description: "Multi-page starter with a shared layout and stylesheet",
		Files: map[string]string{
			"main.go": `package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/htmlkit-dev/htmlkit"
	. "github.com/htmlkit-dev/htmlkit/el"
)

func main() {
	out := os.Getenv("HTMLKIT_OUTPUT")
	if out == "" {
		out = "dist"
	}

	pages := map[string]*Document{
		"index.html": homePage(),
		"about.html": aboutPage(),
	}

	for name, doc := range pages {
		if err := writePage(filepath.Join(out, name), doc); err != nil {
			log.Fatal(err)
		}
	}

	if err := os.WriteFile(filepath.Join(out, "styles.css"), []byte(styles), 0644); err != nil {
		log.Fatal(err)
	}
}

// page builds the shared document shell around the given content.
func page(title string, content *Node) *Document {
	doc := NewDocument()
	doc.Title = title
	doc.Head.Append(Fragment(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		Link(Rel("stylesheet"), Href("/styles.css")),
	))
	doc.Body.Append(Fragment(
		navbar(),
		Main(Class("container"), content),
		pageFooter(),
	))
	return doc
}

// homePage is the front page.
func homePage() *Document {
	return page("{{.ProjectName}}", Fragment(
		H1("Welcome to {{.ProjectName}}"),
		P("{{.Description}}"),
		P("Edit main.go and run htmlkit preview to see changes live."),
	))
}

// aboutPage is the about page.
func aboutPage() *Document {
	return page("About - {{.ProjectName}}", Fragment(
		H1("About"),
		P("{{.ProjectName}} is a static site generated from plain Go."),
	))
}

// navbar is the shared navigation bar.
func navbar() *Node {
	return Nav(Class("site-nav"),
		A(Href("/"), Class("brand"), "{{.ProjectName}}"),
		A(Href("/"), "Home"),
		A(Href("/about.html"), "About"),
	)
}

// pageFooter is the shared footer.
func pageFooter() *Node {
	return Footer(Class("site-footer"),
		Small("Built with htmlkit."),
	)
}

// renderer honors the indent configured in htmlkit.json, which the
// build tool passes down as HTMLKIT_INDENT.
var renderer = htmlkit.NewRenderer(htmlkit.RendererConfig{
	Indent: os.Getenv("HTMLKIT_INDENT"),
})

// writePage renders a document and writes it to path.
func writePage(path string, doc *Document) error {
	html, err := renderer.RenderToString(doc.Node)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(html), 0644)
}

const styles = ` + "`" + `
body { font-family: system-ui, sans-serif; margin: 0; color: #1f2937; }
.container { max-width: 720px; margin: 0 auto; padding: 2rem 1rem; }
.site-nav { display: flex; gap: 1rem; padding: 1rem; border-bottom: 1px solid #e5e7eb; }
.site-nav .brand { font-weight: 700; margin-right: auto; }
.site-nav a { color: inherit; text-decoration: none; }
.site-footer { padding: 1rem; border-top: 1px solid #e5e7eb; color: #6b7280; }
h1 { color: #2563eb; }
` + "`" + `
`,
			"go.mod": `module {{.ModulePath}}

go 1.22

require github.com/htmlkit-dev/htmlkit v0.1.0
`,
			"htmlkit.json": `{
  "name": "{{.ProjectName}}",
  "output": "dist",
  "preview": {
    "port": 3000,
    "host": "localhost",
    "openBrowser": true,
    "watch": ["."]
  }{{if .WithPublish}},
  "publish": {
    "bucket": "{{.ProjectName}}-site",
    "region": "us-east-1",
    "cacheControl": "public, max-age=300"
  }{{end}}
}
`,
			".gitignore": `dist/
`,
			"README.md": `# {{.ProjectName}}

{{.Description}}

## Getting Started

` + "```" + `bash
# Preview with live reload
htmlkit preview

# Render the site into dist/
htmlkit build

# Upload dist/ to S3
htmlkit publish
` + "```" + `

## Project Structure

` + "```" + `
{{.ProjectName}}/
├── main.go          # Page generator: every page is a Go function
├── htmlkit.json     # Project configuration
└── dist/            # Rendered output (ignored by git)
` + "```" + `

## Learn More

- [htmlkit Documentation](https://htmlkit.dev/docs)
- [API Reference](https://htmlkit.dev/docs/api)
`,
		},
	}
}

// blogTemplate returns the blog template.
func blogTemplate() *Template {
	return &Template{
		Name:        "blog",
		Description: "Post listing plus one page per post",
		Files: map[string]string{
			"main.go": `package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/htmlkit-dev/htmlkit"
	. "github.com/htmlkit-dev/htmlkit/el"
)

// Post is a single blog entry.
type Post struct {
	Slug  string
	Title string
	Date  string
	Body  string
}

var posts = []Post{
	{
		Slug:  "hello-world",
		Title: "Hello, World",
		Date:  "2025-01-02",
		Body:  "The first post on {{.ProjectName}}.",
	},
	{
		Slug:  "writing-pages-in-go",
		Title: "Writing Pages in Go",
		Date:  "2025-02-10",
		Body:  "Every page on this site is a Go function. No template files.",
	},
}

func main() {
	out := os.Getenv("HTMLKIT_OUTPUT")
	if out == "" {
		out = "dist"
	}

	if err := writePage(filepath.Join(out, "index.html"), indexPage()); err != nil {
		log.Fatal(err)
	}
	for _, p := range posts {
		path := filepath.Join(out, "posts", p.Slug, "index.html")
		if err := writePage(path, postPage(p)); err != nil {
			log.Fatal(err)
		}
	}
}

// indexPage lists every post.
func indexPage() *Document {
	doc := NewDocument()
	doc.Title = "{{.ProjectName}}"
	doc.Body.Append(
		Main(
			H1("{{.ProjectName}}"),
			Ul(Range(posts, func(p Post, _ int) *Node {
				return Li(
					A(Href("/posts/"+p.Slug+"/"), p.Title),
					Small(" - "+p.Date),
				)
			})),
		),
	)
	return doc
}

// postPage renders a single post.
func postPage(p Post) *Document {
	doc := NewDocument()
	doc.Title = p.Title + " - {{.ProjectName}}"
	doc.Body.Append(
		Main(
			H1(p.Title),
			P(Small(p.Date)),
			P(p.Body),
			P(A(Href("/"), "Back to all posts")),
		),
	)
	return doc
}

// writePage renders a document and writes it to path.
func writePage(path string, doc *Document) error {
	html, err := htmlkit.Render(doc.Node)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(html), 0644)
}
`,
			"go.mod": `module {{.ModulePath}}

go 1.22

require github.com/htmlkit-dev/htmlkit v0.1.0
`,
			"htmlkit.json": `{
  "name": "{{.ProjectName}}",
  "output": "dist",
  "preview": {
    "port": 3000,
    "openBrowser": true,
    "watch": ["."]
  }
}
`,
			".gitignore": `dist/
`,
			"README.md": `# {{.ProjectName}}

{{.Description}}

Posts live in main.go as plain Go values; each entry renders to
posts/<slug>/index.html plus a listing on the front page.

` + "```" + `bash
htmlkit preview   # live reload while writing
htmlkit build     # render into dist/
` + "```" + `
`,
		},
	}
}
