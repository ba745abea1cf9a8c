// ABOUTME: Namespace domain model binds an XML prefix to a URI
// ABOUTME: Provides set helpers used when aggregating module namespaces

package domain

import "sort"

// Namespace is an XML namespace binding. Two namespaces are equal when both
// prefix and URI match; the empty prefix denotes the default namespace.
type Namespace struct {
	// Prefix is the namespace prefix, empty for the default namespace
	Prefix string

	// URI is the namespace name
	URI string
}

// NewNamespace creates a namespace binding
func NewNamespace(prefix, uri string) Namespace {
	return Namespace{Prefix: prefix, URI: uri}
}

// IsDefault reports whether the namespace has no prefix
func (n Namespace) IsDefault() bool {
	return n.Prefix == ""
}

// String renders the namespace as an xmlns declaration
func (n Namespace) String() string {
	if n.Prefix == "" {
		return `xmlns="` + n.URI + `"`
	}
	return "xmlns:" + n.Prefix + `="` + n.URI + `"`
}

// NamespaceSet is a deduplicated collection of namespaces
type NamespaceSet map[Namespace]struct{}

// NewNamespaceSet creates a set holding the given namespaces
func NewNamespaceSet(namespaces ...Namespace) NamespaceSet {
	set := make(NamespaceSet, len(namespaces))
	set.Add(namespaces...)
	return set
}

// Add inserts namespaces into the set
func (s NamespaceSet) Add(namespaces ...Namespace) {
	for _, ns := range namespaces {
		s[ns] = struct{}{}
	}
}

// Contains reports whether ns is in the set
func (s NamespaceSet) Contains(ns Namespace) bool {
	_, ok := s[ns]
	return ok
}

// Sorted freezes the set into a slice ordered by prefix, then URI
func (s NamespaceSet) Sorted() []Namespace {
	out := make([]Namespace, 0, len(s))
	for ns := range s {
		out = append(out, ns)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Prefix != out[j].Prefix {
			return out[i].Prefix < out[j].Prefix
		}
		return out[i].URI < out[j].URI
	})
	return out
}
