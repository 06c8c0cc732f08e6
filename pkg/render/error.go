package render

import "fmt"

// RenderError reports a tree that cannot be serialized, such as a nil
// node, an element with an empty tag, or a node appended to itself.
type RenderError struct {
	// Tag identifies the nearest enclosing element, when known.
	Tag string

	// Reason describes why rendering stopped.
	Reason string
}

func (e *RenderError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("render: %s", e.Reason)
	}
	return fmt.Sprintf("render: <%s>: %s", e.Tag, e.Reason)
}
