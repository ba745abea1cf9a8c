// ABOUTME: XML tree adapter implementing the core Element contract over xmlquery nodes
// ABOUTME: Maps namespace declarations onto xmlns attributes of the wrapped node

package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	"feedkit/core/domain"
	"feedkit/core/interfaces"
)

const xmlnsAttr = "xmlns"

// Node adapts an xmlquery node to interfaces.Element. Two Node values are
// equal when they wrap the same xmlquery node.
type Node struct {
	n *xmlquery.Node
}

var _ interfaces.Element = Node{}

// Wrap adapts n
func Wrap(n *xmlquery.Node) Node {
	return Node{n: n}
}

// NewElement creates a detached element in ns
func NewElement(name string, ns domain.Namespace) Node {
	return Node{n: &xmlquery.Node{
		Type:         xmlquery.ElementNode,
		Data:         name,
		Prefix:       ns.Prefix,
		NamespaceURI: ns.URI,
	}}
}

// Parse reads an XML document and returns its root element
func Parse(r io.Reader) (Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return Node{}, fmt.Errorf("parse xml: %w", err)
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return Node{n: c}, nil
		}
	}
	return Node{}, errors.New("parse xml: document has no root element")
}

// Unwrap returns the underlying xmlquery node
func (e Node) Unwrap() *xmlquery.Node {
	return e.n
}

// Name returns the local name
func (e Node) Name() string {
	return e.n.Data
}

// NamespacePrefix returns the prefix of the element's own namespace
func (e Node) NamespacePrefix() string {
	return e.n.Prefix
}

// Namespace returns the element's own namespace
func (e Node) Namespace() domain.Namespace {
	return domain.NewNamespace(e.n.Prefix, e.n.NamespaceURI)
}

// AdditionalNamespaces returns the xmlns declarations on the element other
// than the one binding its own namespace
func (e Node) AdditionalNamespaces() []domain.Namespace {
	own := e.Namespace()
	var out []domain.Namespace
	for _, a := range e.n.Attr {
		ns, ok := declaration(a)
		if !ok || ns == own {
			continue
		}
		out = append(out, ns)
	}
	return out
}

// AddNamespaceDeclaration adds an xmlns attribute for ns. A prefix that is
// already bound on this element keeps its existing binding.
func (e Node) AddNamespaceDeclaration(ns domain.Namespace) {
	for _, a := range e.n.Attr {
		if existing, ok := declaration(a); ok && existing.Prefix == ns.Prefix {
			return
		}
	}

	name := xml.Name{Space: xmlnsAttr, Local: ns.Prefix}
	if ns.Prefix == "" {
		name = xml.Name{Local: xmlnsAttr}
	}
	e.n.Attr = append(e.n.Attr, xmlquery.Attr{Name: name, Value: ns.URI})
}

// RemoveNamespaceDeclaration drops the xmlns attribute binding ns
func (e Node) RemoveNamespaceDeclaration(ns domain.Namespace) {
	attrs := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if existing, ok := declaration(a); ok && existing == ns {
			continue
		}
		attrs = append(attrs, a)
	}
	e.n.Attr = attrs
}

// Children returns element children in document order
func (e Node) Children() []interfaces.Element {
	var out []interfaces.Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, Node{n: c})
		}
	}
	return out
}

// AddContent appends child, detaching it from any previous parent first.
// It panics when child is not a Node.
func (e Node) AddContent(child interfaces.Element) {
	c := mustNode(child)
	if c.Parent != nil {
		xmlquery.RemoveFromTree(c)
	}
	xmlquery.AddChild(e.n, c)
}

// RemoveContent detaches child when it is a child of this element
func (e Node) RemoveContent(child interfaces.Element) bool {
	c, ok := child.(Node)
	if !ok || c.n == nil || c.n.Parent != e.n {
		return false
	}
	xmlquery.RemoveFromTree(c.n)
	return true
}

// Parent returns the parent node, which is the document node for a parsed root
func (e Node) Parent() interfaces.Element {
	if e.n.Parent == nil {
		return nil
	}
	return Node{n: e.n.Parent}
}

// AddElement creates a child element in ns and appends it
func (e Node) AddElement(name string, ns domain.Namespace) interfaces.Element {
	child := NewElement(name, ns)
	xmlquery.AddChild(e.n, child.n)
	return child
}

// SetText replaces the text and character data children of the element
func (e Node) SetText(text string) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			xmlquery.RemoveFromTree(c)
		}
		c = next
	}
	if text != "" {
		xmlquery.AddChild(e.n, &xmlquery.Node{Type: xmlquery.TextNode, Data: text})
	}
}

// SetAttr sets an attribute, splitting a "prefix:local" key into its parts
func (e Node) SetAttr(key, value string) {
	name := xml.Name{Local: key}
	if i := strings.IndexByte(key, ':'); i > 0 {
		name = xml.Name{Space: key[:i], Local: key[i+1:]}
	}
	for i, a := range e.n.Attr {
		if a.Name == name {
			e.n.Attr[i].Value = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, xmlquery.Attr{Name: name, Value: value})
}

// Text returns the concatenated text of the element and its descendants
func (e Node) Text() string {
	return e.n.InnerText()
}

// OutputXML serializes the element and its subtree
func (e Node) OutputXML() string {
	return e.n.OutputXML(true)
}

func declaration(a xmlquery.Attr) (domain.Namespace, bool) {
	switch {
	case a.Name.Space == xmlnsAttr:
		return domain.NewNamespace(a.Name.Local, a.Value), true
	case a.Name.Space == "" && a.Name.Local == xmlnsAttr:
		return domain.NewNamespace("", a.Value), true
	}
	return domain.Namespace{}, false
}

func mustNode(el interfaces.Element) *xmlquery.Node {
	c, ok := el.(Node)
	if !ok || c.n == nil {
		panic(fmt.Sprintf("xmltree: cannot attach %T", el))
	}
	return c.n
}
