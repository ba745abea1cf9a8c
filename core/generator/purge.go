package generator

import (
	"feedkit/core/domain"
	"feedkit/core/interfaces"
)

// PurgeUnusedNamespaceDeclarations removes from root every prefixed namespace
// declaration whose prefix no element in the subtree of root is bound to.
// Declarations of the default namespace are kept. It returns the removed
// declarations.
//
// Generators declare every module namespace up front; removing the unused
// ones afterwards is cheaper than re-parsing the generated XML, though not as
// cheap as never declaring them. Modules attached to the tree after this pass
// must declare their own namespaces.
func PurgeUnusedNamespaceDeclarations(root interfaces.Element) []domain.Namespace {
	used := make(map[string]struct{})
	collectUsedPrefixes(root, used)

	// Snapshot before removing.
	declared := root.AdditionalNamespaces()

	var removed []domain.Namespace
	for _, ns := range declared {
		if ns.Prefix == "" {
			continue
		}
		if _, ok := used[ns.Prefix]; !ok {
			root.RemoveNamespaceDeclaration(ns)
			removed = append(removed, ns)
		}
	}
	return removed
}

func collectUsedPrefixes(el interfaces.Element, used map[string]struct{}) {
	if prefix := el.NamespacePrefix(); prefix != "" {
		used[prefix] = struct{}{}
	}
	for _, child := range el.Children() {
		collectUsedPrefixes(child, used)
	}
}
