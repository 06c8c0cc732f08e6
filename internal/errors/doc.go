// Package errors provides structured, actionable error messages for the
// htmlkit toolchain.
//
// The errors package implements an error system that:
//   - Shows exact source locations (file, line, column)
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with code examples
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: htmlkit.json problems (malformed file, bad port)
//   - build: generator failures (compile errors, missing output)
//   - preview: preview server and file watcher failures
//   - publish: upload failures (missing bucket, credentials)
//   - cli: command usage errors (bad project name, existing directory)
//
// # Error Codes
//
// Each error has a unique code (e.g., "E200") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E200").
//	    WithLocation("site/main.go", 15, 12).
//	    WithSuggestion("Check the generator output for compiler errors")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E200: Generator failed
//	//
//	//   site/main.go:15:12
//	//
//	//     13 │ func main() {
//	//     14 │     doc := htmlkit.NewDocument()
//	//   → 15 │     doc.Body.Append(page)
//	//        │             ^
//	//     16 │     html, err := htmlkit.Render(doc.Node)
//	//     17 │ }
//	//
//	//   Hint: Check the generator output for compiler errors
//	//
//	//   Learn more: https://htmlkit.dev/docs/errors/E200
package errors
