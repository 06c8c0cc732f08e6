package dom

import "strings"

// Attr is a single attribute as it will appear in the output.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// SetAttr inserts or updates an attribute and returns the receiver.
// A key keeps the position of its first write; later writes replace the
// value in place. Values are stored and later emitted verbatim, with no
// validation or escaping.
func (n *Node) SetAttr(key, value string) *Node {
	if key == "" {
		return n
	}
	if i, ok := n.attrIdx[key]; ok {
		n.attrs[i].Value = value
		return n
	}
	if n.attrIdx == nil {
		n.attrIdx = make(map[string]int)
	}
	n.attrIdx[key] = len(n.attrs)
	n.attrs = append(n.attrs, Attr{Key: key, Value: value})
	return n
}

// Attr returns the value stored under key and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	i, ok := n.attrIdx[key]
	if !ok {
		return "", false
	}
	return n.attrs[i].Value, true
}

// Attrs returns the attributes in insertion order. The slice is shared
// with the node; callers must not modify it.
func (n *Node) Attrs() []Attr {
	return n.attrs
}

// AddClass appends name to the class attribute unless it is already
// present, and returns the receiver. The class value is a space-joined
// set-like sequence; first-addition order is preserved. Empty names are
// ignored.
func (n *Node) AddClass(name string) *Node {
	if name == "" {
		return n
	}
	cur, _ := n.Attr("class")
	for _, c := range strings.Fields(cur) {
		if c == name {
			return n
		}
	}
	if cur == "" {
		return n.SetAttr("class", name)
	}
	return n.SetAttr("class", cur+" "+name)
}

// AddClasses applies AddClass for each space-separated name in names and
// returns the receiver.
func (n *Node) AddClasses(names string) *Node {
	for _, c := range strings.Fields(names) {
		n.AddClass(c)
	}
	return n
}

// AddStyle adds a single "property: value" declaration to the style
// attribute and returns the receiver. Declarations join with "; ". Adding
// a property that is already present replaces its value in place, at the
// position of the first addition, mirroring attribute semantics.
func (n *Node) AddStyle(declaration string) *Node {
	prop, value := splitStyleDecl(declaration)
	if prop == "" {
		return n
	}
	cur, _ := n.Attr("style")
	var parts []string
	replaced := false
	if cur != "" {
		for _, d := range strings.Split(cur, ";") {
			p, v := splitStyleDecl(d)
			if p == "" {
				continue
			}
			if p == prop {
				v = value
				replaced = true
			}
			parts = append(parts, p+": "+v)
		}
	}
	if !replaced {
		parts = append(parts, prop+": "+value)
	}
	return n.SetAttr("style", strings.Join(parts, "; "))
}

// AddStyles applies AddStyle for each semicolon-separated declaration in
// declarations and returns the receiver.
func (n *Node) AddStyles(declarations string) *Node {
	for _, d := range strings.Split(declarations, ";") {
		if strings.TrimSpace(d) == "" {
			continue
		}
		n.AddStyle(d)
	}
	return n
}

// splitStyleDecl splits "property: value" on the first colon. A missing
// colon yields the whole trimmed string as the property with an empty
// value; nothing beyond trimming is validated.
func splitStyleDecl(declaration string) (prop, value string) {
	prop, value, _ = strings.Cut(declaration, ":")
	return strings.TrimSpace(prop), strings.TrimSpace(value)
}

// setAttr applies a in the way the variadic element factories need:
// class and style values route through the accumulation helpers so that
// repeated Class and StyleAttr arguments merge instead of overwriting.
func (n *Node) setAttr(a Attr) {
	switch a.Key {
	case "":
	case "class":
		n.AddClasses(a.Value)
	case "style":
		n.AddStyles(a.Value)
	default:
		n.SetAttr(a.Key, a.Value)
	}
}
