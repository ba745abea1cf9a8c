// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the contract module generators fulfil for each scope

package interfaces

import (
	"feedkit/core/domain"
)

// ModuleGenerator produces the XML content of one module type.
//
// Example usage:
//
//	registry := modules.NewRegistry(domain.ScopeItem, deps)
//	registry.Register(dcGenerator)
//	registry.Generate(item.Modules, itemElement)
type ModuleGenerator interface {
	// NamespaceURI identifies the module type this generator handles.
	NamespaceURI() string

	// Namespaces lists every namespace the generated content may use.
	// They are declared on the document root before generation.
	Namespaces() []domain.Namespace

	// Generate appends the module content under element. Implementations
	// must only mutate the subtree of element.
	Generate(module domain.Module, element Element)
}
