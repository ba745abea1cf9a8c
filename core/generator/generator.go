// ABOUTME: Generator carries the module namespace lifecycle of one feed type
// ABOUTME: Aggregates scope namespaces once and drives per-document module generation

package generator

import (
	"feedkit/core/domain"
	"feedkit/core/interfaces"
	"feedkit/core/modules"
)

// Generator is the base of a feed generator for one feed type. It is built
// once and is safe for concurrent use by generation calls that each own
// their document tree.
type Generator struct {
	feedType   string
	scopes     modules.Scopes
	namespaces []domain.Namespace
	purge      bool
	logger     interfaces.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithPurge enables or disables purging of unused namespace declarations in Finish
func WithPurge(enabled bool) Option {
	return func(g *Generator) {
		g.purge = enabled
	}
}

// New creates a generator for feedType. The namespaces required by the feed,
// item and person scopes are merged here, deduplicated by prefix and URI.
// Nil registries are treated as empty scopes.
func New(feedType string, scopes modules.Scopes, deps interfaces.Dependencies, opts ...Option) *Generator {
	empty := modules.NewScopes(deps)
	if scopes.Feed == nil {
		scopes.Feed = empty.Feed
	}
	if scopes.Item == nil {
		scopes.Item = empty.Item
	}
	if scopes.Person == nil {
		scopes.Person = empty.Person
	}

	all := domain.NewNamespaceSet()
	all.Add(scopes.Feed.Namespaces()...)
	all.Add(scopes.Item.Namespaces()...)
	all.Add(scopes.Person.Namespaces()...)

	g := &Generator{
		feedType:   feedType,
		scopes:     scopes,
		namespaces: all.Sorted(),
		purge:      true,
		logger:     deps.LoggerOrNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.logger.Debug("Aggregated module namespaces", map[string]interface{}{
		"feed_type":  feedType,
		"namespaces": len(g.namespaces),
	})
	return g
}

// Type returns the feed type the generator produces
func (g *Generator) Type() string {
	return g.feedType
}

// Namespaces returns the aggregated module namespaces in declaration order
func (g *Generator) Namespaces() []domain.Namespace {
	out := make([]domain.Namespace, len(g.namespaces))
	copy(out, g.namespaces)
	return out
}

// GenerateModuleNamespaceDefs declares every aggregated module namespace on
// root. A prefix keeps the first URI bound to it; later bindings of the same
// prefix are logged and skipped.
func (g *Generator) GenerateModuleNamespaceDefs(root interfaces.Element) {
	bound := make(map[string]string)
	for _, ns := range root.AdditionalNamespaces() {
		bound[ns.Prefix] = ns.URI
	}

	for _, ns := range g.namespaces {
		if uri, ok := bound[ns.Prefix]; ok && uri != ns.URI {
			g.logger.Debug("Namespace prefix already bound", map[string]interface{}{
				"feed_type": g.feedType,
				"prefix":    ns.Prefix,
				"uri":       ns.URI,
				"bound_uri": uri,
			})
			continue
		}
		root.AddNamespaceDeclaration(ns)
		bound[ns.Prefix] = ns.URI
	}
}

// GenerateFeedModules renders feed-level modules under feed
func (g *Generator) GenerateFeedModules(mods []domain.Module, feed interfaces.Element) {
	g.scopes.Feed.Generate(mods, feed)
}

// GenerateItemModules renders item-level modules under item
func (g *Generator) GenerateItemModules(mods []domain.Module, item interfaces.Element) {
	g.scopes.Item.Generate(mods, item)
}

// GeneratePersonModules renders person-level modules under person
func (g *Generator) GeneratePersonModules(mods []domain.Module, person interfaces.Element) {
	g.scopes.Person.Generate(mods, person)
}

// GenerateForeignMarkup moves fragments under e, in order
func (g *Generator) GenerateForeignMarkup(e interfaces.Element, fragments []interfaces.Element) {
	MergeForeignMarkup(e, fragments)
}

// Prepare declares the module namespaces on the root of a new document
func (g *Generator) Prepare(root interfaces.Element) {
	g.GenerateModuleNamespaceDefs(root)
}

// Finish runs the final cleanup pass on a generated document
func (g *Generator) Finish(root interfaces.Element) {
	if !g.purge {
		return
	}
	removed := PurgeUnusedNamespaceDeclarations(root)
	if len(removed) > 0 {
		g.logger.Debug("Purged unused namespace declarations", map[string]interface{}{
			"feed_type": g.feedType,
			"removed":   len(removed),
		})
	}
}
