package dom

// Document is the full-page composite: an html root node that renders
// behind a doctype line and assembles its head and body sections in its
// preprocess hook rather than at construction time.
//
// Callers populate Head and Body (and optionally Title and Lang) and
// render the document once or many times; the skeleton is appended to
// the root's children on the first render only.
type Document struct {
	*Node // the <html> element

	// Lang becomes the root's lang attribute. Defaults to "en".
	Lang string

	// Title, when non-empty, becomes a <title> element appended to Head
	// after everything the caller put there.
	Title string

	// Head holds document metadata and renders as the first child.
	Head *Node

	// Body holds document content and renders as the second child.
	Body *Node

	built bool
}

// NewDocument creates an empty document with an "en" language code and
// fresh head and body containers.
func NewDocument() *Document {
	d := &Document{
		Node: &Node{Kind: KindDocument, tag: "html"},
		Lang: "en",
		Head: newElement("head"),
		Body: newElement("body"),
	}
	d.Node.doc = d
	return d
}

// assemble runs the document's preprocess step once per instance.
// Without the guard, every render pass would append head and body again
// and duplicate them in the output.
func (d *Document) assemble() {
	if d.built {
		return
	}
	d.built = true
	d.buildSkeleton()
}

// buildSkeleton appends the skeleton unconditionally: lang attribute,
// title into head, then head and body onto the root's children, after
// anything the caller appended directly.
func (d *Document) buildSkeleton() {
	d.SetAttr("lang", d.Lang)
	if d.Title != "" {
		d.Head.Append(newElement("title").AddText(d.Title))
	}
	d.Head.AppendTo(d.Node)
	d.Body.AppendTo(d.Node)
}
