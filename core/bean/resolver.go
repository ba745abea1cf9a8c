// ABOUTME: Resolver derives and caches property descriptors per type
// ABOUTME: Supports both reflective scanning and explicit descriptor registration

package bean

import (
	"fmt"
	"reflect"
	"sync"

	coreerrors "feedkit/core/errors"
	"feedkit/core/interfaces"
)

// Resolver resolves property descriptors and memoizes them per type.
// Entries are never evicted; the set of bean types is bounded by the program.
type Resolver struct {
	// mu serializes every resolve-and-cache sequence
	mu     sync.Mutex
	cache  map[reflect.Type][]PropertyDescriptor
	scan   func(reflect.Type) ([]PropertyDescriptor, error)
	logger interfaces.Logger
}

// NewResolver creates a resolver with an empty cache
func NewResolver(deps interfaces.Dependencies) *Resolver {
	return &Resolver{
		cache:  make(map[reflect.Type][]PropertyDescriptor),
		scan:   introspect,
		logger: deps.LoggerOrNop(),
	}
}

// Default is the process-wide resolver used by the package-level functions
var Default = NewResolver(interfaces.Dependencies{})

// PropertyDescriptors resolves t with the Default resolver
func PropertyDescriptors(t reflect.Type) ([]PropertyDescriptor, error) {
	return Default.PropertyDescriptors(t)
}

// PropertyDescriptors returns the descriptors of t, scanning its method set on
// first use. Failed resolutions are not cached.
func (r *Resolver) PropertyDescriptors(t reflect.Type) ([]PropertyDescriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if descriptors, ok := r.cache[t]; ok {
		return clone(descriptors), nil
	}

	descriptors, err := r.scan(t)
	if err != nil {
		r.logger.Warn("Failed to resolve property descriptors", map[string]interface{}{
			"type":  typeName(t),
			"error": err.Error(),
		})
		return nil, err
	}

	r.cache[t] = descriptors
	r.logger.Debug("Resolved property descriptors", map[string]interface{}{
		"type":       typeName(t),
		"properties": len(descriptors),
	})
	return clone(descriptors), nil
}

// Resolve returns the descriptors of the dynamic type of bean
func (r *Resolver) Resolve(bean interface{}) ([]PropertyDescriptor, error) {
	return r.PropertyDescriptors(reflect.TypeOf(bean))
}

// Register stores an explicit descriptor table for t instead of scanning it.
// Every accessor must name a method of t, and a type can only be described once.
func (r *Resolver) Register(t reflect.Type, descriptors ...PropertyDescriptor) error {
	if err := validateTable(t, descriptors); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cache[t]; ok {
		return &coreerrors.ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("descriptors for %s already resolved", t),
		}
	}
	r.cache[t] = clone(descriptors)
	return nil
}

// Properties reads every readable property of bean into a map keyed by name
func (r *Resolver) Properties(bean interface{}) (map[string]interface{}, error) {
	descriptors, err := r.Resolve(bean)
	if err != nil {
		return nil, err
	}

	values := make(map[string]interface{}, len(descriptors))
	for _, d := range descriptors {
		if !d.Readable() {
			continue
		}
		v, err := d.Get(bean)
		if err != nil {
			return nil, err
		}
		values[d.Name] = v
	}
	return values, nil
}

func validateTable(t reflect.Type, descriptors []PropertyDescriptor) error {
	if t == nil {
		return &coreerrors.IntrospectionError{Type: "<nil>", Reason: "nil type"}
	}

	seen := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		fail := func(reason string) error {
			return &coreerrors.IntrospectionError{Type: t.String(), Property: d.Name, Reason: reason}
		}
		switch {
		case d.Name == "":
			return fail("empty property name")
		case seen[d.Name]:
			return fail("duplicate property")
		case d.Reader == nil && d.Writer == nil:
			return fail("no accessor")
		case d.Reader != nil && d.Writer != nil && d.Reader.Type != d.Writer.Type:
			return fail("type mismatch between read and write methods")
		}
		for _, acc := range []*Accessor{d.Reader, d.Writer} {
			if acc == nil {
				continue
			}
			m, ok := t.MethodByName(acc.Method)
			if !ok {
				return fail("missing method " + acc.Method)
			}
			if reason := checkSignature(t, m, acc, acc == d.Reader); reason != "" {
				return fail(reason)
			}
		}
		seen[d.Name] = true
	}
	return nil
}

// checkSignature verifies that m has the shape of a reader or writer of
// acc.Type. It returns an empty string when the method qualifies.
func checkSignature(t reflect.Type, m reflect.Method, acc *Accessor, reader bool) string {
	offset := 1
	if t.Kind() == reflect.Interface {
		offset = 0
	}
	ft := m.Type
	params := ft.NumIn() - offset

	if reader {
		if params != 0 || ft.NumOut() != 1 {
			return fmt.Sprintf("read method %s must take no arguments and return one value", m.Name)
		}
		if ft.Out(0) != acc.Type {
			return fmt.Sprintf("read method %s returns %s, not %s", m.Name, ft.Out(0), typeName(acc.Type))
		}
		return ""
	}

	if params != 1 || ft.NumOut() != 0 || ft.IsVariadic() {
		return fmt.Sprintf("write method %s must take one argument and return nothing", m.Name)
	}
	if ft.In(offset) != acc.Type {
		return fmt.Sprintf("write method %s accepts %s, not %s", m.Name, ft.In(offset), typeName(acc.Type))
	}
	return ""
}

func clone(descriptors []PropertyDescriptor) []PropertyDescriptor {
	out := make([]PropertyDescriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
