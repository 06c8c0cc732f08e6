// Package el provides the document-building DSL for htmlkit.
//
// It re-exports element constructors, attribute helpers, and tree
// utilities from github.com/htmlkit-dev/htmlkit/pkg/dom so generator
// code can dot-import one package:
//
//	import (
//	    "github.com/htmlkit-dev/htmlkit/pkg/render"
//	    . "github.com/htmlkit-dev/htmlkit/el"
//	)
//
//	page := Div(Class("hero"),
//	    H1("Welcome"),
//	    P("Build HTML in plain Go."),
//	)
//
// This keeps the DSL in a dedicated package while the node model and
// renderer live in pkg/dom and pkg/render.
package el
