// Package htmlkit builds HTML documents programmatically.
//
// This is the recommended import for most programs:
//
//	import "github.com/htmlkit-dev/htmlkit"
//
// Trees are assembled from element, text, and comment nodes, then
// serialized with a deterministic, indentation-aware renderer:
//
//	doc := htmlkit.NewDocument()
//	doc.Title = "Hello"
//	doc.Body.AddText("Hi there!")
//	html, err := htmlkit.Render(doc.Node)
//
// The element DSL lives in github.com/htmlkit-dev/htmlkit/el and is
// designed for dot-importing:
//
//	page := Div(Class("hero"),
//	    H1("Welcome"),
//	    P("Build HTML in plain Go."),
//	)
//
// The node model is in pkg/dom and the renderer in pkg/render; this
// package re-exports the everyday surface of both. The htmlkit command
// (cmd/htmlkit) adds project scaffolding, builds, a live-reloading
// preview server, and publishing.
package htmlkit
