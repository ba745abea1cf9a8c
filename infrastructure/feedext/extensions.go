// ABOUTME: Converts gofeed extension trees into foreign markup elements
// ABOUTME: Lets markup read from a parsed feed be carried into generated documents

package feedext

import (
	"sort"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"feedkit/core/domain"
	"feedkit/core/interfaces"
	"feedkit/infrastructure/xml/xmltree"
)

// Converter turns extension elements captured by gofeed into detached
// elements ready to be merged into a generated document.
type Converter struct {
	uris   map[string]string
	skip   map[string]bool
	logger interfaces.Logger
}

// NewConverter creates a converter resolving extension prefixes against namespaces
func NewConverter(namespaces []domain.Namespace, deps interfaces.Dependencies) *Converter {
	uris := make(map[string]string, len(namespaces))
	for _, ns := range namespaces {
		if ns.Prefix != "" {
			uris[ns.Prefix] = ns.URI
		}
	}
	return &Converter{
		uris:   uris,
		skip:   make(map[string]bool),
		logger: deps.LoggerOrNop(),
	}
}

// Skip excludes prefixes whose content is rendered by module generators
func (c *Converter) Skip(prefixes ...string) *Converter {
	for _, p := range prefixes {
		c.skip[p] = true
	}
	return c
}

// FeedMarkup converts the feed-level extensions of f
func (c *Converter) FeedMarkup(f *gofeed.Feed) []interfaces.Element {
	if f == nil {
		return nil
	}
	return c.ForeignMarkup(f.Extensions)
}

// ItemMarkup converts the extensions of item
func (c *Converter) ItemMarkup(item *gofeed.Item) []interfaces.Element {
	if item == nil {
		return nil
	}
	return c.ForeignMarkup(item.Extensions)
}

// ForeignMarkup converts extensions ordered by prefix, then element name.
// Prefixes without a known namespace URI are dropped.
func (c *Converter) ForeignMarkup(exts ext.Extensions) []interfaces.Element {
	var out []interfaces.Element
	for _, prefix := range sortedKeys(exts) {
		if c.skip[prefix] {
			continue
		}
		uri, ok := c.uris[prefix]
		if !ok {
			c.logger.Warn("Dropping extension with unknown namespace prefix", map[string]interface{}{
				"prefix": prefix,
			})
			continue
		}
		ns := domain.NewNamespace(prefix, uri)
		byName := exts[prefix]
		for _, name := range sortedKeys(byName) {
			for _, e := range byName[name] {
				out = append(out, convert(name, e, ns))
			}
		}
	}
	return out
}

// convert builds the element for e. Children inherit the namespace of their parent.
func convert(name string, e ext.Extension, ns domain.Namespace) xmltree.Node {
	if e.Name != "" {
		name = e.Name
	}
	el := xmltree.NewElement(name, ns)

	attrs := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		attrs = append(attrs, k)
	}
	sort.Strings(attrs)
	for _, k := range attrs {
		el.SetAttr(k, e.Attrs[k])
	}

	for _, childName := range sortedKeys(e.Children) {
		for _, child := range e.Children[childName] {
			el.AddContent(convert(childName, child, ns))
		}
	}
	if e.Value != "" {
		el.SetText(e.Value)
	}
	return el
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
