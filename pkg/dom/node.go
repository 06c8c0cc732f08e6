package dom

import (
	"errors"
	"fmt"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <section>, etc.
	KindText                 // Raw text payload
	KindComment              // <!-- comment -->
	KindFragment             // Grouping without wrapper
	KindComponent            // Nested component
	KindDocument             // Full page with doctype
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindDocument:
		return "Document"
	default:
		return "Unknown"
	}
}

// ErrInvalidTag is returned by New when the tag name is empty or not a
// bare identifier-like token.
var ErrInvalidTag = errors.New("invalid tag name")

// Node is one unit of the document tree.
//
// Children is an ordered list; the same child instance may appear under
// several parents or several times under one parent, and renders once per
// reference. Text carries the payload for text and comment leaves. The
// tag and the attribute list are kept unexported so the construction and
// mutation invariants hold: the tag never changes after construction, and
// attribute keys stay unique with insertion order preserved.
type Node struct {
	Kind     Kind
	Children []*Node
	Text     string    // For KindText and KindComment
	Comp     Component // For KindComponent

	tag     string
	attrs   []Attr
	attrIdx map[string]int
	doc     *Document // For KindDocument
}

// Component is anything that can render to a Node.
type Component interface {
	Render() *Node
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *Node
}

// Render implements Component.
func (f *FuncComponent) Render() *Node {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *Node) Component {
	return &FuncComponent{render: render}
}

// New creates an element node with the given tag, no attributes and no
// children. The tag must start with an ASCII letter and contain only
// ASCII letters, digits and hyphens; anything else fails with
// ErrInvalidTag.
func New(tag string) (*Node, error) {
	if !validTag(tag) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	return newElement(tag), nil
}

// newElement creates an element node without tag validation. The factory
// functions in elements.go use it with known-good literal tags.
func newElement(tag string) *Node {
	return &Node{Kind: KindElement, tag: tag}
}

func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-'):
		default:
			return false
		}
	}
	return true
}

// Text creates a text leaf node. The payload is rendered verbatim.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// Textf creates a formatted text leaf node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Comment creates a comment leaf node rendered as <!-- payload -->.
func Comment(content string) *Node {
	return &Node{Kind: KindComment, Text: content}
}

// Tag returns the element name the node was constructed with.
func (n *Node) Tag() string {
	return n.tag
}

// Append adds child to the end of this node's children and returns the
// receiver, so building continues on the parent.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// AppendTo adds this node to the end of parent's children and returns
// parent, not the receiver. Together with Append this keeps a chain
// anchored on the parent regardless of which side initiates the link.
func (n *Node) AppendTo(parent *Node) *Node {
	parent.Children = append(parent.Children, n)
	return parent
}

// AddText appends a text leaf child carrying s and returns the receiver.
func (n *Node) AddText(s string) *Node {
	return n.Append(Text(s))
}

// AddComment appends a comment leaf child carrying s and returns the
// receiver.
func (n *Node) AddComment(s string) *Node {
	return n.Append(Comment(s))
}

// Preprocess runs the node's before-render hook. It is a no-op for every
// kind except the document composite, which assembles its skeleton here.
// The renderer calls it exactly once per node per render pass, before the
// node's own markup is formatted.
func (n *Node) Preprocess() {
	if n.Kind == KindDocument && n.doc != nil {
		n.doc.assemble()
	}
}

// Document returns the document composite this node belongs to, or nil
// for ordinary nodes.
func (n *Node) Document() *Document {
	return n.doc
}
