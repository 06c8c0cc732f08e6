// Package render serializes dom node trees to indented HTML text.
//
// The renderer walks the tree depth-first. Each node's preprocess hook
// runs exactly once per render pass before the node is formatted, so
// composites such as dom.Document can assemble themselves lazily.
// Elements open with their attributes in insertion order, place each
// rendered child on its own line one indent level deeper, and close on
// a fresh line at their own level. An element with no rendered content
// closes adjacent to its opening tag, and void elements never close.
//
// Output is deterministic for a given tree and configuration: lines are
// joined with "\n" and the result carries no trailing newline. Text and
// attribute values pass through verbatim; callers own escaping.
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To stream HTML to a writer:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	err := renderer.RenderToWriter(w, node)
//
// # Documents
//
// A dom.Document renders as a doctype line followed by the html
// element. The skeleton is assembled on first render and reused by
// later passes, so rendering the same document twice yields identical
// output:
//
//	doc := dom.NewDocument()
//	html, err := renderer.RenderToString(doc.Node)
//
// # Errors
//
// Trees that cannot be serialized, such as a nil node, an element with
// an empty tag, or a node appended to itself, surface a *RenderError.
// RenderToString is all-or-nothing; RenderToWriter may have written a
// prefix of the output before the error is reported.
package render
