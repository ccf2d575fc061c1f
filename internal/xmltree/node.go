package xmltree

// Node is a generic XML element. It knows nothing about the dictionary grammar.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	// Text is the character data preceding the first child element, or nil
	// when the element has none (<keb/> and <keb></keb> both give nil).
	Text *string
}

// Attr is a single element attribute. Name includes the prefix, e.g. "xml:lang".
type Attr struct {
	Name  string
	Value string
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}
