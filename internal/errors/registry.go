package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Invalid htmlkit.json",
		Detail:   "The htmlkit.json configuration file is malformed.",
		DocURL:   "https://htmlkit.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Missing required configuration",
		Detail:   "A required configuration value is not set.",
		DocURL:   "https://htmlkit.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port number is outside the valid range (1-65535).",
		DocURL:   "https://htmlkit.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Not an htmlkit project",
		Detail:   "The current directory is not an htmlkit project. Run this command from a directory with htmlkit.json.",
		DocURL:   "https://htmlkit.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid output directory",
		Detail:   "The configured output directory is empty or escapes the project root.",
		DocURL:   "https://htmlkit.dev/docs/errors/E104",
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Invalid indent setting",
		Detail:   "The render indent must be spaces or a tab.",
		DocURL:   "https://htmlkit.dev/docs/errors/E105",
	},

	// ============================================
	// Build Errors (E200-E219)
	// ============================================

	"E200": {
		Category: CategoryBuild,
		Message:  "Generator failed",
		Detail:   "The project generator exited with an error. Check the output for compiler errors.",
		DocURL:   "https://htmlkit.dev/docs/errors/E200",
	},
	"E201": {
		Category: CategoryBuild,
		Message:  "Go not found",
		Detail:   "Go is not installed or not in PATH.",
		DocURL:   "https://htmlkit.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryBuild,
		Message:  "No output produced",
		Detail:   "The generator completed but wrote no HTML files to the output directory.",
		DocURL:   "https://htmlkit.dev/docs/errors/E202",
	},
	"E203": {
		Category: CategoryBuild,
		Message:  "Generator directory missing",
		Detail:   "The configured generator directory does not exist or contains no Go files.",
		DocURL:   "https://htmlkit.dev/docs/errors/E203",
	},
	"E204": {
		Category: CategoryBuild,
		Message:  "Build timed out",
		Detail:   "The generator did not finish within the configured timeout.",
		DocURL:   "https://htmlkit.dev/docs/errors/E204",
	},

	// ============================================
	// Preview Errors (E300-E319)
	// ============================================

	"E300": {
		Category: CategoryPreview,
		Message:  "Preview server failed to start",
		Detail:   "The preview address may be invalid or already in use.",
		DocURL:   "https://htmlkit.dev/docs/errors/E300",
	},
	"E301": {
		Category: CategoryPreview,
		Message:  "File watcher failed",
		Detail:   "The file watcher could not scan the watched paths.",
		DocURL:   "https://htmlkit.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryPreview,
		Message:  "Nothing to preview",
		Detail:   "The output directory does not exist yet. Run `htmlkit build` first.",
		DocURL:   "https://htmlkit.dev/docs/errors/E302",
	},

	// ============================================
	// Publish Errors (E400-E419)
	// ============================================

	"E400": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "One or more files could not be uploaded.",
		DocURL:   "https://htmlkit.dev/docs/errors/E400",
	},
	"E401": {
		Category: CategoryPublish,
		Message:  "Missing bucket configuration",
		Detail:   "Publishing to S3 requires publish.bucket in htmlkit.json or the --bucket flag.",
		DocURL:   "https://htmlkit.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryPublish,
		Message:  "AWS credentials not found",
		Detail:   "No AWS credentials were found in the environment or shared config.",
		DocURL:   "https://htmlkit.dev/docs/errors/E402",
	},
	"E403": {
		Category: CategoryPublish,
		Message:  "Nothing to publish",
		Detail:   "The output directory is empty. Run `htmlkit build` first.",
		DocURL:   "https://htmlkit.dev/docs/errors/E403",
	},

	// ============================================
	// CLI Errors (E900-E919)
	// ============================================

	"E900": {
		Category: CategoryCLI,
		Message:  "Project directory already exists",
		Detail:   "A directory with this name already exists and is not empty.",
		DocURL:   "https://htmlkit.dev/docs/errors/E900",
	},
	"E901": {
		Category: CategoryCLI,
		Message:  "Invalid project name",
		Detail:   "Project names must be valid Go module names.",
		DocURL:   "https://htmlkit.dev/docs/errors/E901",
	},
	"E902": {
		Category: CategoryCLI,
		Message:  "Invalid template",
		Detail:   "The specified project template doesn't exist.",
		DocURL:   "https://htmlkit.dev/docs/errors/E902",
	},
	"E903": {
		Category: CategoryCLI,
		Message:  "Scaffold failed",
		Detail:   "Project files could not be written.",
		DocURL:   "https://htmlkit.dev/docs/errors/E903",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
