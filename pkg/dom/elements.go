package dom

// voidElements are elements that cannot have children and render without
// a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element node with the given tag and applies args in
// order. Arguments can be: nil, Attr, []Attr, *Node, []*Node, Component,
// string (shorthand for a text child). Because args apply in order,
// attribute insertion order in the output matches argument order. The
// tag is not validated here; rendering rejects empty tags.
func El(tag string, args ...any) *Node {
	node := newElement(tag)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case Attr:
			node.setAttr(v)

		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}

		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*Node:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, &Node{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			node.Children = append(node.Children, Text(v))
		}
	}
	return node
}

// Document structure elements

func Html(args ...any) *Node  { return El("html", args...) }
func Head(args ...any) *Node  { return El("head", args...) }
func Body(args ...any) *Node  { return El("body", args...) }
func Title(args ...any) *Node { return El("title", args...) }
func Meta(args ...any) *Node  { return El("meta", args...) }
func Link(args ...any) *Node  { return El("link", args...) }
func Base(args ...any) *Node  { return El("base", args...) }

// Content sectioning elements

func Header(args ...any) *Node  { return El("header", args...) }
func Footer(args ...any) *Node  { return El("footer", args...) }
func Main(args ...any) *Node    { return El("main", args...) }
func Nav(args ...any) *Node     { return El("nav", args...) }
func Section(args ...any) *Node { return El("section", args...) }
func Article(args ...any) *Node { return El("article", args...) }
func Aside(args ...any) *Node   { return El("aside", args...) }
func Address(args ...any) *Node { return El("address", args...) }
func H1(args ...any) *Node      { return El("h1", args...) }
func H2(args ...any) *Node      { return El("h2", args...) }
func H3(args ...any) *Node      { return El("h3", args...) }
func H4(args ...any) *Node      { return El("h4", args...) }
func H5(args ...any) *Node      { return El("h5", args...) }
func H6(args ...any) *Node      { return El("h6", args...) }
func Hgroup(args ...any) *Node  { return El("hgroup", args...) }

// Text content elements

func Div(args ...any) *Node        { return El("div", args...) }
func P(args ...any) *Node          { return El("p", args...) }
func Span(args ...any) *Node       { return El("span", args...) }
func Pre(args ...any) *Node        { return El("pre", args...) }
func Blockquote(args ...any) *Node { return El("blockquote", args...) }
func Ul(args ...any) *Node         { return El("ul", args...) }
func Ol(args ...any) *Node         { return El("ol", args...) }
func Li(args ...any) *Node         { return El("li", args...) }
func Dl(args ...any) *Node         { return El("dl", args...) }
func Dt(args ...any) *Node         { return El("dt", args...) }
func Dd(args ...any) *Node         { return El("dd", args...) }
func Hr(args ...any) *Node         { return El("hr", args...) }
func Figure(args ...any) *Node     { return El("figure", args...) }
func Figcaption(args ...any) *Node { return El("figcaption", args...) }

// Inline text semantics

func A(args ...any) *Node      { return El("a", args...) }
func Strong(args ...any) *Node { return El("strong", args...) }
func Em(args ...any) *Node     { return El("em", args...) }
func B(args ...any) *Node      { return El("b", args...) }
func I(args ...any) *Node      { return El("i", args...) }
func U(args ...any) *Node      { return El("u", args...) }
func S(args ...any) *Node      { return El("s", args...) }
func Small(args ...any) *Node  { return El("small", args...) }
func Mark(args ...any) *Node   { return El("mark", args...) }
func Sub(args ...any) *Node    { return El("sub", args...) }
func Sup(args ...any) *Node    { return El("sup", args...) }
func Code(args ...any) *Node   { return El("code", args...) }
func Kbd(args ...any) *Node    { return El("kbd", args...) }
func Samp(args ...any) *Node   { return El("samp", args...) }
func Var(args ...any) *Node    { return El("var", args...) }
func Abbr(args ...any) *Node   { return El("abbr", args...) }
func Time_(args ...any) *Node  { return El("time", args...) }
func Cite(args ...any) *Node   { return El("cite", args...) }
func Q(args ...any) *Node      { return El("q", args...) }
func Dfn(args ...any) *Node    { return El("dfn", args...) }
func Bdi(args ...any) *Node    { return El("bdi", args...) }
func Bdo(args ...any) *Node    { return El("bdo", args...) }
func Br(args ...any) *Node     { return El("br", args...) }
func Wbr(args ...any) *Node    { return El("wbr", args...) }

// Form elements

func Form(args ...any) *Node     { return El("form", args...) }
func Input(args ...any) *Node    { return El("input", args...) }
func Textarea(args ...any) *Node { return El("textarea", args...) }
func Select(args ...any) *Node   { return El("select", args...) }
func Option(args ...any) *Node   { return El("option", args...) }
func Optgroup(args ...any) *Node { return El("optgroup", args...) }
func Button(args ...any) *Node   { return El("button", args...) }
func Label(args ...any) *Node    { return El("label", args...) }
func Fieldset(args ...any) *Node { return El("fieldset", args...) }
func Legend(args ...any) *Node   { return El("legend", args...) }
func Datalist(args ...any) *Node { return El("datalist", args...) }
func Output(args ...any) *Node   { return El("output", args...) }
func Progress(args ...any) *Node { return El("progress", args...) }
func Meter(args ...any) *Node    { return El("meter", args...) }

// Table elements

func Table(args ...any) *Node    { return El("table", args...) }
func Thead(args ...any) *Node    { return El("thead", args...) }
func Tbody(args ...any) *Node    { return El("tbody", args...) }
func Tfoot(args ...any) *Node    { return El("tfoot", args...) }
func Tr(args ...any) *Node       { return El("tr", args...) }
func Th(args ...any) *Node       { return El("th", args...) }
func Td(args ...any) *Node       { return El("td", args...) }
func Caption(args ...any) *Node  { return El("caption", args...) }
func Colgroup(args ...any) *Node { return El("colgroup", args...) }
func Col(args ...any) *Node      { return El("col", args...) }

// Media elements

func Img(args ...any) *Node     { return El("img", args...) }
func Picture(args ...any) *Node { return El("picture", args...) }
func Source(args ...any) *Node  { return El("source", args...) }
func Video(args ...any) *Node   { return El("video", args...) }
func Audio(args ...any) *Node   { return El("audio", args...) }
func Track(args ...any) *Node   { return El("track", args...) }
func Iframe(args ...any) *Node  { return El("iframe", args...) }
func Embed(args ...any) *Node   { return El("embed", args...) }
func Object(args ...any) *Node  { return El("object", args...) }
func Param(args ...any) *Node   { return El("param", args...) }
func Canvas(args ...any) *Node  { return El("canvas", args...) }
func Svg(args ...any) *Node     { return El("svg", args...) }
func Map_(args ...any) *Node    { return El("map", args...) }
func Area(args ...any) *Node    { return El("area", args...) }

// Interactive elements

func Details(args ...any) *Node { return El("details", args...) }
func Summary(args ...any) *Node { return El("summary", args...) }
func Dialog(args ...any) *Node  { return El("dialog", args...) }
func Menu(args ...any) *Node    { return El("menu", args...) }

// Scripting elements

func Script(args ...any) *Node   { return El("script", args...) }
func Noscript(args ...any) *Node { return El("noscript", args...) }
func Template(args ...any) *Node { return El("template", args...) }
func Style(args ...any) *Node    { return El("style", args...) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *Node {
	return El(tag, args...)
}
