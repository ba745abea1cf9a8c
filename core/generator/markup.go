package generator

import "feedkit/core/interfaces"

// MergeForeignMarkup appends each fragment to target in order, detaching it
// from its current parent first so no element ever has two parents.
func MergeForeignMarkup(target interfaces.Element, fragments []interfaces.Element) {
	for _, fragment := range fragments {
		if fragment == nil {
			continue
		}
		if parent := fragment.Parent(); parent != nil {
			parent.RemoveContent(fragment)
		}
		target.AddContent(fragment)
	}
}
