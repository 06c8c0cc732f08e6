package el

import "github.com/htmlkit-dev/htmlkit/pkg/dom"

// Type aliases for the dom primitives used by the DSL.
type Node = dom.Node
type Kind = dom.Kind
type Attr = dom.Attr
type Component = dom.Component
type Document = dom.Document
