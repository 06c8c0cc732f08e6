// Package dom provides the document tree model for htmlkit.
//
// A tree is built from Node values: elements with a tag, an ordered
// attribute list and ordered children, plus leaf nodes carrying raw text
// or comment payloads. The Document composite wraps an html root that
// assembles its head and body sections just before rendering and prefixes
// its output with a doctype line.
//
// # Core Types
//
// Node is the fundamental building block representing elements, text,
// comments, fragments, components, and documents. Attr is a single
// key/value attribute. Component is anything that can render to a Node.
//
// # Builder API
//
// Nodes are mutated through chainable methods:
//
//	card, _ := dom.New("div")
//	card.AddClass("card").
//	    SetAttr("id", "main").
//	    AddText("hello")
//
// Append returns the receiver so building continues on the parent;
// AppendTo returns the parent for the same reason. Both choices are part
// of the API contract.
//
// # Element API
//
// Elements can also be created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments apply in order, so attribute order in the output matches
// argument order.
//
// # Raw Output
//
// Text payloads and attribute values are emitted verbatim by the
// renderer. No escaping is performed anywhere; callers are responsible
// for escaping markup-sensitive characters when they need it.
package dom
