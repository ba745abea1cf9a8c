// Package core contains the feed generation logic of feedkit.
// It is designed to be independent of any XML library and can be used with
// any document tree implementing interfaces.Element.
//
// The core package is organized into several sub-packages:
//
// - domain: Value types (Namespace, Scope, Module)
// - bean: Property descriptor resolution for bean-shaped values
// - modules: Per-scope module generator registries and dispatch
// - generator: Namespace aggregation, foreign markup merge and declaration purge
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (XML tree, logger, generators)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "feedkit/core/generator"
//	    "feedkit/core/interfaces"
//	    "feedkit/core/modules"
//	)
//
//	deps := interfaces.Dependencies{Logger: myLogger}
//
//	scopes := modules.NewScopes(deps)
//	scopes.Item.Register(dcGenerator)
//
//	gen := generator.New("rss_2.0", scopes, deps)
//
//	// per document
//	gen.Prepare(root)
//	gen.GenerateItemModules(item.Modules, itemElement)
//	gen.GenerateForeignMarkup(itemElement, item.ForeignMarkup)
//	gen.Finish(root)
package core
