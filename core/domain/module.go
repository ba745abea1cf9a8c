// ABOUTME: Module domain model for pluggable feed extensions
// ABOUTME: Defines the scopes in which module content is generated

package domain

// Module is a pluggable extension of a feed, item or person. Its URI is the
// module type identity used to find a generator.
type Module interface {
	URI() string
}

// Scope is the context in which a module is rendered
type Scope string

const (
	// ScopeFeed renders modules attached to the feed itself
	ScopeFeed Scope = "feed"

	// ScopeItem renders modules attached to feed items
	ScopeItem Scope = "item"

	// ScopePerson renders modules attached to authors and contributors
	ScopePerson Scope = "person"
)

// Scopes lists every scope in generation order
var Scopes = []Scope{ScopeFeed, ScopeItem, ScopePerson}

// Valid reports whether s is a known scope
func (s Scope) Valid() bool {
	switch s {
	case ScopeFeed, ScopeItem, ScopePerson:
		return true
	}
	return false
}
