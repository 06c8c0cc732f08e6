// This file re-exports dom tree utilities for the el package.
package el

import "github.com/htmlkit-dev/htmlkit/pkg/dom"

// Node constructors

func New(tag string) (*Node, error) {
	return dom.New(tag)
}
func Text(content string) *Node {
	return dom.Text(content)
}
func Textf(format string, args ...any) *Node {
	return dom.Textf(format, args...)
}
func Comment(content string) *Node {
	return dom.Comment(content)
}
func Func(render func() *Node) Component {
	return dom.Func(render)
}
func NewDocument() *Document {
	return dom.NewDocument()
}

// Grouping and conditionals

func Fragment(children ...any) *Node {
	return dom.Fragment(children...)
}
func Group(children ...any) *Node {
	return dom.Group(children...)
}
func If(condition bool, node *Node) *Node {
	return dom.If(condition, node)
}
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	return dom.IfElse(condition, ifTrue, ifFalse)
}
func When(condition bool, fn func() *Node) *Node {
	return dom.When(condition, fn)
}
func Unless(condition bool, node *Node) *Node {
	return dom.Unless(condition, node)
}
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	return dom.Range(items, fn)
}
func Repeat(n int, fn func(i int) *Node) []*Node {
	return dom.Repeat(n, fn)
}
func Nothing() *Node {
	return dom.Nothing()
}
