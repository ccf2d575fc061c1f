// Package xmltree turns raw dictionary XML into a generic element tree.
// It checks well-formedness only; grammar rules live in package jmdict.
package xmltree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ErrMalformedDocument is returned when the input is not well-formed XML
// after entity unescaping.
var ErrMalformedDocument = errors.New("malformed document")

// Parse unescapes entity references in src and parses the result into a tree
// rooted at the document element.
func Parse(src []byte) (*Node, error) {
	doc := etree.NewDocument()

	if err := doc.ReadFromBytes(Unescape(src)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	root, err := documentElement(doc)
	if err != nil {
		return nil, err
	}
	return convert(root), nil
}

// documentElement returns the single root element, rejecting what a strict
// parser would: no root, several roots, or text outside the root.
func documentElement(doc *etree.Document) (*etree.Element, error) {
	var root *etree.Element
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if root != nil {
				return nil, fmt.Errorf("%w: junk after document element <%s>", ErrMalformedDocument, root.FullTag())
			}
			root = t
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return nil, fmt.Errorf("%w: text outside document element", ErrMalformedDocument)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no document element", ErrMalformedDocument)
	}
	return root, nil
}

func convert(el *etree.Element) *Node {
	n := &Node{Tag: el.FullTag()}

	if len(el.Attr) > 0 {
		n.Attrs = make([]Attr, 0, len(el.Attr))
		for _, a := range el.Attr {
			n.Attrs = append(n.Attrs, Attr{Name: a.FullKey(), Value: a.Value})
		}
	}

	var (
		text      strings.Builder
		hasText   bool
		seenChild bool
	)
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			seenChild = true
			n.Children = append(n.Children, convert(t))
		case *etree.CharData:
			// Text after a child element is tail text of that child; it has no
			// meaning in the dictionary grammar.
			if !seenChild {
				hasText = true
				text.WriteString(t.Data)
			}
		}
	}
	if hasText {
		s := text.String()
		n.Text = &s
	}
	return n
}
