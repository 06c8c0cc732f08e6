// This file re-exports dom element constructors for the el package.
package el

import "github.com/htmlkit-dev/htmlkit/pkg/dom"

func IsVoidElement(tag string) bool {
	return dom.IsVoidElement(tag)
}
func El(tag string, args ...any) *Node {
	return dom.El(tag, args...)
}

// Document structure elements

func Html(args ...any) *Node {
	return dom.Html(args...)
}
func Head(args ...any) *Node {
	return dom.Head(args...)
}
func Body(args ...any) *Node {
	return dom.Body(args...)
}
func Title(args ...any) *Node {
	return dom.Title(args...)
}
func Meta(args ...any) *Node {
	return dom.Meta(args...)
}
func Link(args ...any) *Node {
	return dom.Link(args...)
}
func Base(args ...any) *Node {
	return dom.Base(args...)
}

// Sectioning elements

func Header(args ...any) *Node {
	return dom.Header(args...)
}
func Footer(args ...any) *Node {
	return dom.Footer(args...)
}
func Main(args ...any) *Node {
	return dom.Main(args...)
}
func Nav(args ...any) *Node {
	return dom.Nav(args...)
}
func Section(args ...any) *Node {
	return dom.Section(args...)
}
func Article(args ...any) *Node {
	return dom.Article(args...)
}
func Aside(args ...any) *Node {
	return dom.Aside(args...)
}
func Address(args ...any) *Node {
	return dom.Address(args...)
}
func H1(args ...any) *Node {
	return dom.H1(args...)
}
func H2(args ...any) *Node {
	return dom.H2(args...)
}
func H3(args ...any) *Node {
	return dom.H3(args...)
}
func H4(args ...any) *Node {
	return dom.H4(args...)
}
func H5(args ...any) *Node {
	return dom.H5(args...)
}
func H6(args ...any) *Node {
	return dom.H6(args...)
}
func Hgroup(args ...any) *Node {
	return dom.Hgroup(args...)
}

// Content elements

func Div(args ...any) *Node {
	return dom.Div(args...)
}
func P(args ...any) *Node {
	return dom.P(args...)
}
func Span(args ...any) *Node {
	return dom.Span(args...)
}
func Pre(args ...any) *Node {
	return dom.Pre(args...)
}
func Blockquote(args ...any) *Node {
	return dom.Blockquote(args...)
}
func Ul(args ...any) *Node {
	return dom.Ul(args...)
}
func Ol(args ...any) *Node {
	return dom.Ol(args...)
}
func Li(args ...any) *Node {
	return dom.Li(args...)
}
func Dl(args ...any) *Node {
	return dom.Dl(args...)
}
func Dt(args ...any) *Node {
	return dom.Dt(args...)
}
func Dd(args ...any) *Node {
	return dom.Dd(args...)
}
func Hr(args ...any) *Node {
	return dom.Hr(args...)
}
func Figure(args ...any) *Node {
	return dom.Figure(args...)
}
func Figcaption(args ...any) *Node {
	return dom.Figcaption(args...)
}

// Text-level elements

func A(args ...any) *Node {
	return dom.A(args...)
}
func Strong(args ...any) *Node {
	return dom.Strong(args...)
}
func Em(args ...any) *Node {
	return dom.Em(args...)
}
func B(args ...any) *Node {
	return dom.B(args...)
}
func I(args ...any) *Node {
	return dom.I(args...)
}
func U(args ...any) *Node {
	return dom.U(args...)
}
func S(args ...any) *Node {
	return dom.S(args...)
}
func Small(args ...any) *Node {
	return dom.Small(args...)
}
func Mark(args ...any) *Node {
	return dom.Mark(args...)
}
func Sub(args ...any) *Node {
	return dom.Sub(args...)
}
func Sup(args ...any) *Node {
	return dom.Sup(args...)
}
func Code(args ...any) *Node {
	return dom.Code(args...)
}
func Kbd(args ...any) *Node {
	return dom.Kbd(args...)
}
func Samp(args ...any) *Node {
	return dom.Samp(args...)
}
func Var(args ...any) *Node {
	return dom.Var(args...)
}
func Abbr(args ...any) *Node {
	return dom.Abbr(args...)
}
func Time_(args ...any) *Node {
	return dom.Time_(args...)
}
func Cite(args ...any) *Node {
	return dom.Cite(args...)
}
func Q(args ...any) *Node {
	return dom.Q(args...)
}
func Dfn(args ...any) *Node {
	return dom.Dfn(args...)
}
func Bdi(args ...any) *Node {
	return dom.Bdi(args...)
}
func Bdo(args ...any) *Node {
	return dom.Bdo(args...)
}
func Br(args ...any) *Node {
	return dom.Br(args...)
}
func Wbr(args ...any) *Node {
	return dom.Wbr(args...)
}

// Form elements

func Form(args ...any) *Node {
	return dom.Form(args...)
}
func Input(args ...any) *Node {
	return dom.Input(args...)
}
func Textarea(args ...any) *Node {
	return dom.Textarea(args...)
}
func Select(args ...any) *Node {
	return dom.Select(args...)
}
func Option(args ...any) *Node {
	return dom.Option(args...)
}
func Optgroup(args ...any) *Node {
	return dom.Optgroup(args...)
}
func Button(args ...any) *Node {
	return dom.Button(args...)
}
func Label(args ...any) *Node {
	return dom.Label(args...)
}
func Fieldset(args ...any) *Node {
	return dom.Fieldset(args...)
}
func Legend(args ...any) *Node {
	return dom.Legend(args...)
}
func Datalist(args ...any) *Node {
	return dom.Datalist(args...)
}
func Output(args ...any) *Node {
	return dom.Output(args...)
}
func Progress(args ...any) *Node {
	return dom.Progress(args...)
}
func Meter(args ...any) *Node {
	return dom.Meter(args...)
}

// Table elements

func Table(args ...any) *Node {
	return dom.Table(args...)
}
func Thead(args ...any) *Node {
	return dom.Thead(args...)
}
func Tbody(args ...any) *Node {
	return dom.Tbody(args...)
}
func Tfoot(args ...any) *Node {
	return dom.Tfoot(args...)
}
func Tr(args ...any) *Node {
	return dom.Tr(args...)
}
func Th(args ...any) *Node {
	return dom.Th(args...)
}
func Td(args ...any) *Node {
	return dom.Td(args...)
}
func Caption(args ...any) *Node {
	return dom.Caption(args...)
}
func Colgroup(args ...any) *Node {
	return dom.Colgroup(args...)
}
func Col(args ...any) *Node {
	return dom.Col(args...)
}

// Media elements

func Img(args ...any) *Node {
	return dom.Img(args...)
}
func Picture(args ...any) *Node {
	return dom.Picture(args...)
}
func Source(args ...any) *Node {
	return dom.Source(args...)
}
func Video(args ...any) *Node {
	return dom.Video(args...)
}
func Audio(args ...any) *Node {
	return dom.Audio(args...)
}
func Track(args ...any) *Node {
	return dom.Track(args...)
}
func Iframe(args ...any) *Node {
	return dom.Iframe(args...)
}
func Embed(args ...any) *Node {
	return dom.Embed(args...)
}
func Object(args ...any) *Node {
	return dom.Object(args...)
}
func Param(args ...any) *Node {
	return dom.Param(args...)
}
func Canvas(args ...any) *Node {
	return dom.Canvas(args...)
}
func Svg(args ...any) *Node {
	return dom.Svg(args...)
}
func Map_(args ...any) *Node {
	return dom.Map_(args...)
}
func Area(args ...any) *Node {
	return dom.Area(args...)
}

// Interactive elements

func Details(args ...any) *Node {
	return dom.Details(args...)
}
func Summary(args ...any) *Node {
	return dom.Summary(args...)
}
func Dialog(args ...any) *Node {
	return dom.Dialog(args...)
}
func Menu(args ...any) *Node {
	return dom.Menu(args...)
}

// Script elements

func Script(args ...any) *Node {
	return dom.Script(args...)
}
func Noscript(args ...any) *Node {
	return dom.Noscript(args...)
}
func Template(args ...any) *Node {
	return dom.Template(args...)
}
func Style(args ...any) *Node {
	return dom.Style(args...)
}

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *Node {
	return dom.CustomElement(tag, args...)
}
