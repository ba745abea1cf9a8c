// ABOUTME: Registry holds the module generators of one generation scope
// ABOUTME: Dispatches module content generation to the generator registered per module type

package modules

import (
	"reflect"

	"feedkit/core/domain"
	"feedkit/core/interfaces"
)

// Registry maps module URIs to generators for a single scope and tracks the
// namespaces those generators require.
type Registry struct {
	scope      domain.Scope
	generators map[string]interfaces.ModuleGenerator
	order      []string
	namespaces domain.NamespaceSet
	logger     interfaces.Logger
}

// NewRegistry creates an empty registry for scope
func NewRegistry(scope domain.Scope, deps interfaces.Dependencies) *Registry {
	return &Registry{
		scope:      scope,
		generators: make(map[string]interfaces.ModuleGenerator),
		namespaces: domain.NewNamespaceSet(),
		logger:     deps.LoggerOrNop(),
	}
}

// Scope returns the scope the registry serves
func (r *Registry) Scope() domain.Scope {
	return r.scope
}

// Register adds gen under its namespace URI, replacing any generator
// registered for the same URI.
func (r *Registry) Register(gen interfaces.ModuleGenerator) {
	uri := gen.NamespaceURI()
	if _, exists := r.generators[uri]; !exists {
		r.order = append(r.order, uri)
	}
	r.generators[uri] = gen
	r.namespaces.Add(gen.Namespaces()...)
}

// Generator returns the generator registered for a module URI
func (r *Registry) Generator(uri string) (interfaces.ModuleGenerator, bool) {
	gen, ok := r.generators[uri]
	return gen, ok
}

// URIs lists registered module URIs in registration order
func (r *Registry) URIs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Namespaces returns every namespace required by the registered generators
func (r *Registry) Namespaces() []domain.Namespace {
	return r.namespaces.Sorted()
}

// Generate renders each module under target with the generator registered
// for its URI. Modules without a generator are skipped; documents commonly
// carry modules handled by other toolkits.
func (r *Registry) Generate(modules []domain.Module, target interfaces.Element) {
	for _, m := range modules {
		if isNil(m) {
			continue
		}
		gen, ok := r.generators[m.URI()]
		if !ok {
			r.logger.Debug("No module generator registered", map[string]interface{}{
				"scope": string(r.scope),
				"uri":   m.URI(),
			})
			continue
		}
		gen.Generate(m, target)
	}
}

// isNil reports whether m is nil or an interface holding a nil pointer
func isNil(m domain.Module) bool {
	if m == nil {
		return true
	}
	switch v := reflect.ValueOf(m); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
