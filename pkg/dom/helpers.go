package dom

// Fragment groups children without a wrapper element. At render time the
// children splice into the surrounding element at the same depth, and an
// empty fragment produces no output at all.
func Fragment(children ...any) *Node {
	node := &Node{Kind: KindFragment}
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, &Node{
				Kind: KindComponent,
				Comp: v,
			})
		}
	}
	return node
}

// Group is an alias for Fragment.
func Group(children ...any) *Node {
	return Fragment(children...)
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
// Returns the node if condition is false.
func Unless(condition bool, node *Node) *Node {
	if !condition {
		return node
	}
	return nil
}

// Range maps a slice to nodes.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *Node) []*Node {
	if n <= 0 {
		return nil
	}
	result := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *Node {
	return nil
}
