// ABOUTME: Element interface describes the XML tree capabilities the core relies on
// ABOUTME: Allows different DOM implementations to back document generation

package interfaces

import "feedkit/core/domain"

// Element is a node of an XML document tree.
//
// An element has at most one parent at any time, an ordered list of element
// children and zero or more namespace declarations beyond its own namespace.
type Element interface {
	// Name returns the local name of the element.
	Name() string

	// NamespacePrefix returns the prefix of the element's own namespace,
	// empty when the element is in the default or no namespace.
	NamespacePrefix() string

	// AdditionalNamespaces returns the namespace declarations made on this
	// element, excluding the element's own namespace.
	AdditionalNamespaces() []domain.Namespace

	// AddNamespaceDeclaration declares ns on this element. Declaring a
	// namespace twice has no further effect.
	AddNamespaceDeclaration(ns domain.Namespace)

	// RemoveNamespaceDeclaration removes the declaration of ns, if present.
	RemoveNamespaceDeclaration(ns domain.Namespace)

	// Children returns the element children in document order.
	Children() []Element

	// AddContent appends child as the last child of this element. The child
	// must not currently have a parent.
	AddContent(child Element)

	// RemoveContent detaches child from this element. It reports whether
	// child was found.
	RemoveContent(child Element) bool

	// Parent returns the parent node, or nil for a detached element.
	Parent() Element

	// AddElement creates a child element in ns and appends it.
	AddElement(name string, ns domain.Namespace) Element

	// SetText replaces the text content of the element.
	SetText(text string)
}
