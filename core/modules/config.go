// ABOUTME: Declarative module generator configuration and scope loading
// ABOUTME: Builds per-scope registries from identifier lists keyed by feed type

package modules

import (
	"fmt"
	"sort"
	"strings"

	"feedkit/core/domain"
	coreerrors "feedkit/core/errors"
	"feedkit/core/interfaces"
)

// Config maps configuration keys such as "rss_2.0.item.ModuleGenerator.classes"
// to lists of generator identifiers separated by whitespace or commas.
type Config map[string]string

// Key returns the configuration key listing the generators of scope for feedType
func Key(feedType string, scope domain.Scope) string {
	return feedType + "." + string(scope) + ".ModuleGenerator.classes"
}

// ParseIdentifierList splits a configuration value into identifiers
func ParseIdentifierList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// Factory creates a module generator
type Factory func() interfaces.ModuleGenerator

// Catalog maps generator identifiers to factories
type Catalog map[string]Factory

// Identifiers lists the catalog entries in sorted order
func (c Catalog) Identifiers() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Scopes groups the registries of the three generation scopes
type Scopes struct {
	Feed   *Registry
	Item   *Registry
	Person *Registry
}

// NewScopes creates empty registries for every scope
func NewScopes(deps interfaces.Dependencies) Scopes {
	return Scopes{
		Feed:   NewRegistry(domain.ScopeFeed, deps),
		Item:   NewRegistry(domain.ScopeItem, deps),
		Person: NewRegistry(domain.ScopePerson, deps),
	}
}

// For returns the registry of scope
func (s Scopes) For(scope domain.Scope) *Registry {
	switch scope {
	case domain.ScopeFeed:
		return s.Feed
	case domain.ScopeItem:
		return s.Item
	case domain.ScopePerson:
		return s.Person
	}
	return nil
}

// LoadScopes instantiates the generators configured for feedType in each
// scope. A missing key leaves that scope empty; an identifier missing from
// the catalog is an error.
func LoadScopes(feedType string, cfg Config, catalog Catalog, deps interfaces.Dependencies) (Scopes, error) {
	scopes := NewScopes(deps)
	logger := deps.LoggerOrNop()

	for _, scope := range domain.Scopes {
		key := Key(feedType, scope)
		registry := scopes.For(scope)
		for _, id := range ParseIdentifierList(cfg[key]) {
			factory, ok := catalog[id]
			if !ok {
				return Scopes{}, coreerrors.WrapError(
					&coreerrors.NotFoundError{Resource: "module generator", ID: id},
					fmt.Sprintf("failed to load %s", key),
				)
			}
			registry.Register(factory())
		}
		logger.Debug("Loaded module generators", map[string]interface{}{
			"feed_type":  feedType,
			"scope":      string(scope),
			"generators": len(registry.URIs()),
		})
	}
	return scopes, nil
}
