package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
	"github.com/htmlkit-dev/htmlkit/internal/templates"
)

func newCmd() *cobra.Command {
	var (
		template    string
		modulePath  string
		description string
		withPublish bool
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new HTMLKit project",
		Long: `Create a new HTMLKit project with the specified name.

Templates:
  minimal   A single generator producing one page (default)
  full      Multi-page site with shared layout and stylesheet
  blog      Index plus per-post pages from a content slice

Examples:
  htmlkit new my-site
  htmlkit new my-site --template=full
  htmlkit new my-blog --template=blog --publish`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return runNew(name, template, modulePath, description, withPublish)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "minimal", "Project template (minimal, full, blog)")
	cmd.Flags().StringVarP(&modulePath, "module", "m", "", "Go module path (default: project name)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().BoolVar(&withPublish, "publish", false, "Include an S3 publish block in htmlkit.json")

	return cmd
}

func runNew(name, templateName, modulePath, description string, withPublish bool) error {
	printBanner()
	fmt.Println("  Creating a new HTMLKit project...")
	fmt.Println()

	// Validate project name
	if !isValidProjectName(name) {
		return errors.New("E901").
			WithDetail("Project name must be a valid Go module name").
			WithSuggestion("Use lowercase letters, numbers, and hyphens")
	}

	// Check if directory exists
	projectDir, err := filepath.Abs(name)
	if err != nil {
		return err
	}

	if !isEmptyDir(projectDir) {
		return errors.New("E900").
			WithDetail("Directory '" + name + "' already exists").
			WithSuggestion("Choose a different name or remove the existing directory")
	}

	// Set defaults
	if description == "" {
		description = "An HTMLKit site"
	}
	if modulePath == "" {
		modulePath = name
	}

	// Get template
	tmpl, err := templates.Get(templateName)
	if err != nil {
		return err
	}

	// Create project directory
	info("Creating project directory...")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return errors.New("E903").WithDetail(err.Error()).Wrap(err)
	}

	config := templates.Config{
		ProjectName: name,
		ModulePath:  modulePath,
		Description: description,
		WithPublish: withPublish,
	}

	info("Creating project from '%s' template...", templateName)
	if err := tmpl.Create(projectDir, config); err != nil {
		// Clean up on error
		os.RemoveAll(projectDir)
		if _, ok := err.(*errors.KitError); ok {
			return err
		}
		return errors.New("E903").WithDetail(err.Error()).Wrap(err)
	}

	// Fetch the library so the generator runs out of the box
	info("Installing dependencies...")
	if err := goModTidy(projectDir); err != nil {
		warn("Could not run 'go mod tidy': %v", err)
	}

	// Print success message
	fmt.Println()
	success("Created %s/", name)
	fmt.Println()
	fmt.Println("  To get started:")
	fmt.Println()
	fmt.Printf("    cd %s\n", name)
	fmt.Println("    htmlkit build")
	fmt.Println("    htmlkit preview")
	fmt.Println()
	fmt.Printf("  Your site will be running at http://localhost:3000\n")
	fmt.Println()

	return nil
}

func isValidProjectName(name string) bool {
	if name == "" {
		return false
	}
	// Basic validation: no spaces, no path separators, no leading digit
	for i, r := range name {
		if r == ' ' || r == '/' || r == '\\' {
			return false
		}
		if i == 0 && r >= '0' && r <= '9' {
			return false
		}
	}
	return !strings.HasPrefix(name, ".")
}

// isEmptyDir reports whether the path is absent or an empty directory.
func isEmptyDir(dir string) bool {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return true
	}
	return err == nil && len(entries) == 0
}

func goModTidy(dir string) error {
	cmd := exec.Command("go", "mod", "tidy")
	cmd.Dir = dir
	return cmd.Run()
}
