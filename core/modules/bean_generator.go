package modules

import (
	"fmt"
	"reflect"
	"time"

	"feedkit/core/bean"
	"feedkit/core/domain"
	"feedkit/core/interfaces"
)

// BeanGenerator renders any bean-shaped module as a flat list of child
// elements, one per non-empty readable property:
//
//	<dc:creator>Ada</dc:creator>
//	<dc:subject>go</dc:subject>
//	<dc:subject>xml</dc:subject>
//
// Slice and array properties produce one element per entry.
type BeanGenerator struct {
	namespace domain.Namespace
	resolver  *bean.Resolver
	logger    interfaces.Logger
}

// NewBeanGenerator creates a generator for modules identified by ns.URI.
// A nil resolver uses bean.Default.
func NewBeanGenerator(ns domain.Namespace, resolver *bean.Resolver, deps interfaces.Dependencies) *BeanGenerator {
	if resolver == nil {
		resolver = bean.Default
	}
	return &BeanGenerator{
		namespace: ns,
		resolver:  resolver,
		logger:    deps.LoggerOrNop(),
	}
}

// NamespaceURI implements interfaces.ModuleGenerator
func (g *BeanGenerator) NamespaceURI() string {
	return g.namespace.URI
}

// Namespaces implements interfaces.ModuleGenerator
func (g *BeanGenerator) Namespaces() []domain.Namespace {
	return []domain.Namespace{g.namespace}
}

// Generate implements interfaces.ModuleGenerator
func (g *BeanGenerator) Generate(module domain.Module, element interfaces.Element) {
	descriptors, err := g.resolver.Resolve(module)
	if err != nil {
		g.logger.Warn("Skipping module with unresolvable properties", map[string]interface{}{
			"uri":   module.URI(),
			"error": err.Error(),
		})
		return
	}

	for _, d := range descriptors {
		if !d.Readable() {
			continue
		}
		value, err := d.Get(module)
		if err != nil {
			g.logger.Warn("Failed to read module property", map[string]interface{}{
				"uri":      module.URI(),
				"property": d.Name,
				"error":    err.Error(),
			})
			continue
		}
		for _, text := range formatValues(value) {
			element.AddElement(d.Name, g.namespace).SetText(text)
		}
	}
}

// formatValues renders a property value as element texts, dropping zero values
func formatValues(value interface{}) []string {
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return nil
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		var texts []string
		for i := 0; i < v.Len(); i++ {
			texts = append(texts, formatValues(v.Index(i).Interface())...)
		}
		return texts
	case reflect.Ptr:
		return formatValues(v.Elem().Interface())
	}

	switch x := value.(type) {
	case time.Time:
		return []string{x.UTC().Format(time.RFC3339)}
	case []byte:
		return []string{string(x)}
	case fmt.Stringer:
		return []string{x.String()}
	}
	return []string{fmt.Sprint(value)}
}
