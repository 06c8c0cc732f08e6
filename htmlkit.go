package htmlkit

import (
	"io"

	"github.com/htmlkit-dev/htmlkit/pkg/dom"
	"github.com/htmlkit-dev/htmlkit/pkg/render"
)

// Version is the library version, also reported by the htmlkit CLI.
const Version = "0.1.0"

// Aliases for the core types so everyday use needs only this package.
type (
	Node           = dom.Node
	Kind           = dom.Kind
	Attr           = dom.Attr
	Component      = dom.Component
	Document       = dom.Document
	Renderer       = render.Renderer
	RendererConfig = render.RendererConfig
	RenderError    = render.RenderError
)

// ErrInvalidTag is returned by New for malformed tag names.
var ErrInvalidTag = dom.ErrInvalidTag

var defaultRenderer = render.NewRenderer(render.RendererConfig{})

// New creates an element node with the given tag.
func New(tag string) (*Node, error) {
	return dom.New(tag)
}

// Text creates a text leaf node.
func Text(content string) *Node {
	return dom.Text(content)
}

// Textf creates a formatted text leaf node.
func Textf(format string, args ...any) *Node {
	return dom.Textf(format, args...)
}

// Comment creates a comment leaf node.
func Comment(content string) *Node {
	return dom.Comment(content)
}

// Func creates a component from a render function.
func Func(render func() *Node) Component {
	return dom.Func(render)
}

// NewDocument creates an empty document with head and body containers.
func NewDocument() *Document {
	return dom.NewDocument()
}

// NewRenderer creates a renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return render.NewRenderer(config)
}

// Render serializes a node tree with the default four-space indent.
func Render(node *Node) (string, error) {
	return defaultRenderer.RenderToString(node)
}

// RenderTo streams a node tree to w with the default four-space indent.
func RenderTo(w io.Writer, node *Node) error {
	return defaultRenderer.RenderToWriter(w, node)
}
