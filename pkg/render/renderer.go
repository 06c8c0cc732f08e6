package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/htmlkit-dev/htmlkit/pkg/dom"
)

// DefaultIndent is the indent unit used when RendererConfig.Indent is empty.
const DefaultIndent = "    "

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Indent is the string prepended once per nesting level.
	// Defaults to four spaces if not specified.
	Indent string
}

// Renderer serializes node trees to indented HTML text.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = DefaultIndent
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to a string. The result is
// all-or-nothing: on error the returned string is empty.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer. Unlike
// RenderToString, output written before an error surfaces stays written.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	if node == nil {
		return &RenderError{Reason: "nil node"}
	}
	return r.renderNode(w, node, 0)
}

// renderNode runs the node's preprocess hook, then dispatches on kind.
// The hook runs exactly once per node per render pass, before the node's
// own markup is formatted and before any child renders.
func (r *Renderer) renderNode(w io.Writer, n *dom.Node, depth int) error {
	n.Preprocess()

	switch n.Kind {
	case dom.KindElement:
		return r.renderElement(w, n, depth)
	case dom.KindText:
		return r.renderText(w, n, depth)
	case dom.KindComment:
		return r.renderComment(w, n, depth)
	case dom.KindFragment:
		lines := 0
		return r.renderChildren(w, n, n.Children, depth, &lines)
	case dom.KindComponent:
		return r.renderComponent(w, n, depth)
	case dom.KindDocument:
		return r.renderDocument(w, n, depth)
	default:
		return &RenderError{Tag: n.Tag(), Reason: fmt.Sprintf("unknown node kind %d", n.Kind)}
	}
}

// renderElement writes the opening tag with attributes in insertion
// order, the children one level deeper on their own lines, and the
// closing tag back at this element's level. Void elements emit the
// opening tag alone, even if children were appended. An element with
// nothing rendered between the tags closes adjacently.
func (r *Renderer) renderElement(w io.Writer, n *dom.Node, depth int) error {
	tag := n.Tag()
	if tag == "" {
		return &RenderError{Reason: "element has empty tag"}
	}

	if err := r.writeIndent(w, depth); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := writeAttrs(w, n); err != nil {
		return err
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if dom.IsVoidElement(tag) {
		return nil
	}

	lines := 1
	if err := r.renderChildren(w, n, n.Children, depth+1, &lines); err != nil {
		return err
	}
	if lines > 1 {
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", tag)
	return err
}

// renderChildren walks a child list, splicing fragment and component
// children in at the same depth and writing a line separator before
// each rendered child. lines counts lines already open; a zero start
// suppresses the separator before the first child.
func (r *Renderer) renderChildren(w io.Writer, parent *dom.Node, children []*dom.Node, depth int, lines *int) error {
	for _, child := range children {
		if child == nil {
			return &RenderError{Tag: parent.Tag(), Reason: "nil child"}
		}
		if child == parent {
			return &RenderError{Tag: parent.Tag(), Reason: "node appended to itself"}
		}

		switch child.Kind {
		case dom.KindFragment:
			child.Preprocess()
			if err := r.renderChildren(w, child, child.Children, depth, lines); err != nil {
				return err
			}
		case dom.KindComponent:
			child.Preprocess()
			if child.Comp == nil {
				continue
			}
			rendered := child.Comp.Render()
			if rendered == nil {
				continue
			}
			if err := r.renderChildren(w, child, []*dom.Node{rendered}, depth, lines); err != nil {
				return err
			}
		default:
			if *lines > 0 {
				if _, err := w.Write([]byte{'\n'}); err != nil {
					return err
				}
			}
			*lines++
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderText writes the payload verbatim after the indent prefix.
// No escaping is performed; embedded newlines are not re-indented.
func (r *Renderer) renderText(w io.Writer, n *dom.Node, depth int) error {
	if err := r.writeIndent(w, depth); err != nil {
		return err
	}
	_, err := io.WriteString(w, n.Text)
	return err
}

// renderComment writes the payload wrapped in the comment delimiters.
func (r *Renderer) renderComment(w io.Writer, n *dom.Node, depth int) error {
	if err := r.writeIndent(w, depth); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "<!-- %s -->", n.Text)
	return err
}

// renderComponent resolves the component and renders its output.
func (r *Renderer) renderComponent(w io.Writer, n *dom.Node, depth int) error {
	if n.Comp == nil {
		return nil
	}
	rendered := n.Comp.Render()
	if rendered == nil {
		return nil
	}
	return r.renderNode(w, rendered, depth)
}

// renderDocument writes the doctype line, then the html element. The
// document's skeleton was assembled by its preprocess hook before this
// dispatch ran.
func (r *Renderer) renderDocument(w io.Writer, n *dom.Node, depth int) error {
	if err := r.writeIndent(w, depth); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return r.renderElement(w, n, depth)
}

// writeAttrs writes the attributes in insertion order as name="value",
// values verbatim. Empty class and style entries are omitted entirely
// so that untouched accumulation helpers leave no trace in the output.
func writeAttrs(w io.Writer, n *dom.Node) error {
	for _, a := range n.Attrs() {
		if (a.Key == "class" || a.Key == "style") && a.Value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.Key, a.Value); err != nil {
			return err
		}
	}
	return nil
}

// writeIndent writes the line prefix for the given depth.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
