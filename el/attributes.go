// This file re-exports dom attribute helpers for the el package.
package el

import "github.com/htmlkit-dev/htmlkit/pkg/dom"

// Identity attributes

func ID(id string) Attr {
	return dom.ID(id)
}
func Class(classes ...string) Attr {
	return dom.Class(classes...)
}
func StyleAttr(style string) Attr {
	return dom.StyleAttr(style)
}
func Data(key, value string) Attr {
	return dom.Data(key, value)
}

// Accessibility attributes

func Role(role string) Attr {
	return dom.Role(role)
}
func AriaLabel(label string) Attr {
	return dom.AriaLabel(label)
}
func AriaHidden(hidden bool) Attr {
	return dom.AriaHidden(hidden)
}
func AriaExpanded(expanded bool) Attr {
	return dom.AriaExpanded(expanded)
}
func AriaDescribedBy(id string) Attr {
	return dom.AriaDescribedBy(id)
}
func AriaLabelledBy(id string) Attr {
	return dom.AriaLabelledBy(id)
}
func AriaLive(mode string) Attr {
	return dom.AriaLive(mode)
}
func AriaCurrent(value string) Attr {
	return dom.AriaCurrent(value)
}
func TabIndex(index int) Attr {
	return dom.TabIndex(index)
}
func Hidden() Attr {
	return dom.Hidden()
}
func TitleAttr(title string) Attr {
	return dom.TitleAttr(title)
}
func Lang(lang string) Attr {
	return dom.Lang(lang)
}
func Dir(dir string) Attr {
	return dom.Dir(dir)
}

// Link attributes

func Href(url string) Attr {
	return dom.Href(url)
}
func Target(target string) Attr {
	return dom.Target(target)
}
func Rel(rel string) Attr {
	return dom.Rel(rel)
}
func Hreflang(lang string) Attr {
	return dom.Hreflang(lang)
}

// Form attributes

func Name(name string) Attr {
	return dom.Name(name)
}
func Value(value string) Attr {
	return dom.Value(value)
}
func Type(t string) Attr {
	return dom.Type(t)
}
func Placeholder(text string) Attr {
	return dom.Placeholder(text)
}
func Disabled() Attr {
	return dom.Disabled()
}
func Readonly() Attr {
	return dom.Readonly()
}
func Required() Attr {
	return dom.Required()
}
func Checked() Attr {
	return dom.Checked()
}
func Selected() Attr {
	return dom.Selected()
}
func Multiple() Attr {
	return dom.Multiple()
}
func Autofocus() Attr {
	return dom.Autofocus()
}
func Autocomplete(value string) Attr {
	return dom.Autocomplete(value)
}
func Pattern(pattern string) Attr {
	return dom.Pattern(pattern)
}
func MinLength(n int) Attr {
	return dom.MinLength(n)
}
func MaxLength(n int) Attr {
	return dom.MaxLength(n)
}
func Min(value string) Attr {
	return dom.Min(value)
}
func Max(value string) Attr {
	return dom.Max(value)
}
func Step(value string) Attr {
	return dom.Step(value)
}
func Rows(n int) Attr {
	return dom.Rows(n)
}
func Cols(n int) Attr {
	return dom.Cols(n)
}
func Action(url string) Attr {
	return dom.Action(url)
}
func Method(method string) Attr {
	return dom.Method(method)
}
func Enctype(enctype string) Attr {
	return dom.Enctype(enctype)
}
func For(id string) Attr {
	return dom.For(id)
}

// Media attributes

func Src(url string) Attr {
	return dom.Src(url)
}
func Alt(text string) Attr {
	return dom.Alt(text)
}
func Width(w int) Attr {
	return dom.Width(w)
}
func Height(h int) Attr {
	return dom.Height(h)
}
func Loading(mode string) Attr {
	return dom.Loading(mode)
}
func Srcset(srcset string) Attr {
	return dom.Srcset(srcset)
}
func Controls() Attr {
	return dom.Controls()
}
func Autoplay() Attr {
	return dom.Autoplay()
}
func Loop() Attr {
	return dom.Loop()
}
func Preload(mode string) Attr {
	return dom.Preload(mode)
}
func Poster(url string) Attr {
	return dom.Poster(url)
}

// Table attributes

func Colspan(n int) Attr {
	return dom.Colspan(n)
}
func Rowspan(n int) Attr {
	return dom.Rowspan(n)
}
func Scope(scope string) Attr {
	return dom.Scope(scope)
}

// Meta and link attributes

func Charset(charset string) Attr {
	return dom.Charset(charset)
}
func Content(content string) Attr {
	return dom.Content(content)
}
func HttpEquiv(value string) Attr {
	return dom.HttpEquiv(value)
}

// Script attributes

func Defer_() Attr {
	return dom.Defer_()
}
func Async() Attr {
	return dom.Async()
}
func Crossorigin(value string) Attr {
	return dom.Crossorigin(value)
}
func Integrity(value string) Attr {
	return dom.Integrity(value)
}
func Open() Attr {
	return dom.Open()
}

// Conditional attributes

func ClassIf(condition bool, class string) Attr {
	return dom.ClassIf(condition, class)
}
func AttrIf(condition bool, a Attr) Attr {
	return dom.AttrIf(condition, a)
}
func Classes(classes ...any) Attr {
	return dom.Classes(classes...)
}
