package bean

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	coreerrors "feedkit/core/errors"
)

const (
	getterPrefix        = "Get"
	booleanGetterPrefix = "Is"
	setterPrefix        = "Set"
)

// introspect scans the exported method set of t and merges accessors into
// property descriptors: read/write and read-only sorted by name, followed by
// write-only sorted by name.
func introspect(t reflect.Type) ([]PropertyDescriptor, error) {
	if t == nil {
		return nil, &coreerrors.IntrospectionError{Type: "<nil>", Reason: "nil type"}
	}

	getters := make(map[string]PropertyDescriptor)
	setters := make(map[string]PropertyDescriptor)

	// Method receivers are only part of the signature for concrete types.
	offset := 1
	if t.Kind() == reflect.Interface {
		offset = 0
	}

	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() {
			continue
		}
		ft := m.Type
		params := ft.NumIn() - offset

		var (
			target map[string]PropertyDescriptor
			desc   PropertyDescriptor
			ok     bool
		)
		switch {
		case strings.HasPrefix(m.Name, getterPrefix):
			if params == 0 && ft.NumOut() == 1 {
				desc.Name, ok = propertyName(m.Name[len(getterPrefix):])
				desc.Reader = &Accessor{Method: m.Name, Type: ft.Out(0)}
				target = getters
			}
		case strings.HasPrefix(m.Name, booleanGetterPrefix):
			if params == 0 && ft.NumOut() == 1 && ft.Out(0).Kind() == reflect.Bool {
				desc.Name, ok = propertyName(m.Name[len(booleanGetterPrefix):])
				desc.Reader = &Accessor{Method: m.Name, Type: ft.Out(0)}
				target = getters
			}
		case strings.HasPrefix(m.Name, setterPrefix):
			if params == 1 && ft.NumOut() == 0 && !ft.IsVariadic() {
				desc.Name, ok = propertyName(m.Name[len(setterPrefix):])
				desc.Writer = &Accessor{Method: m.Name, Type: ft.In(offset)}
				target = setters
			}
		}
		if !ok {
			continue
		}

		if prev, dup := target[desc.Name]; dup {
			return nil, &coreerrors.IntrospectionError{
				Type:     t.String(),
				Property: desc.Name,
				Reason:   fmt.Sprintf("ambiguous accessors %s and %s", accessorOf(prev).Method, m.Name),
			}
		}
		target[desc.Name] = desc
	}

	return merge(t, getters, setters)
}

func merge(t reflect.Type, getters, setters map[string]PropertyDescriptor) ([]PropertyDescriptor, error) {
	props := make([]PropertyDescriptor, 0, len(getters)+len(setters))
	reconciled := make(map[string]bool)

	for _, name := range sortedNames(getters) {
		getter := getters[name]
		setter, ok := setters[name]
		if !ok {
			props = append(props, getter)
			continue
		}
		if getter.Reader.Type != setter.Writer.Type {
			return nil, &coreerrors.IntrospectionError{
				Type:     t.String(),
				Property: name,
				Reason: fmt.Sprintf("type mismatch between read method %s (%s) and write method %s (%s)",
					getter.Reader.Method, getter.Reader.Type, setter.Writer.Method, setter.Writer.Type),
			}
		}
		reconciled[name] = true
		props = append(props, PropertyDescriptor{Name: name, Reader: getter.Reader, Writer: setter.Writer})
	}

	for _, name := range sortedNames(setters) {
		if !reconciled[name] {
			props = append(props, setters[name])
		}
	}
	return props, nil
}

// propertyName turns an accessor suffix into a property name. The suffix must
// start with an upper-case letter, so GetTitle qualifies while Getaway does not.
func propertyName(suffix string) (string, bool) {
	r, _ := utf8.DecodeRuneInString(suffix)
	if suffix == "" || !unicode.IsUpper(r) {
		return "", false
	}
	return Decapitalize(suffix), true
}

// Decapitalize lower-cases the first letter of s, except when the first two
// letters are both upper case: "Title" becomes "title", "URL" stays "URL".
func Decapitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	if second, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(first) && unicode.IsUpper(second) {
		return s
	}
	return string(unicode.ToLower(first)) + s[size:]
}

func accessorOf(d PropertyDescriptor) *Accessor {
	if d.Reader != nil {
		return d.Reader
	}
	return d.Writer
}

func sortedNames(m map[string]PropertyDescriptor) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
