// ABOUTME: Property descriptors describe one readable and/or writable bean property
// ABOUTME: Provides reflective read and write access through the described accessors

package bean

import (
	"fmt"
	"reflect"

	coreerrors "feedkit/core/errors"
)

// Accessor is a method through which a property is read or written
type Accessor struct {
	// Method is the exported method name, e.g. "GetTitle"
	Method string

	// Type is the property value type: the reader's result or the writer's parameter
	Type reflect.Type
}

// PropertyDescriptor describes a named property. At least one of Reader and
// Writer is set.
type PropertyDescriptor struct {
	Name   string
	Reader *Accessor
	Writer *Accessor
}

// Readable reports whether the property has a reader
func (d PropertyDescriptor) Readable() bool {
	return d.Reader != nil
}

// Writable reports whether the property has a writer
func (d PropertyDescriptor) Writable() bool {
	return d.Writer != nil
}

// PropertyType returns the value type of the property
func (d PropertyDescriptor) PropertyType() reflect.Type {
	if d.Reader != nil {
		return d.Reader.Type
	}
	if d.Writer != nil {
		return d.Writer.Type
	}
	return nil
}

// Get reads the property from bean
func (d PropertyDescriptor) Get(bean interface{}) (interface{}, error) {
	if d.Reader == nil {
		return nil, d.accessError(bean, "property is not readable")
	}
	method, err := d.method(bean, d.Reader)
	if err != nil {
		return nil, err
	}
	return method.Call(nil)[0].Interface(), nil
}

// Set writes value to the property of bean. A nil value writes the zero
// value of the property type.
func (d PropertyDescriptor) Set(bean interface{}, value interface{}) error {
	if d.Writer == nil {
		return d.accessError(bean, "property is not writable")
	}
	method, err := d.method(bean, d.Writer)
	if err != nil {
		return err
	}

	arg := reflect.ValueOf(value)
	switch {
	case !arg.IsValid():
		arg = reflect.Zero(d.Writer.Type)
	case arg.Type().AssignableTo(d.Writer.Type):
	case lossless(arg.Type(), d.Writer.Type):
		arg = arg.Convert(d.Writer.Type)
	default:
		return d.accessError(bean, fmt.Sprintf("cannot assign %s to %s", arg.Type(), d.Writer.Type))
	}

	method.Call([]reflect.Value{arg})
	return nil
}

// lossless reports whether a value of from converts to to without changing
// its meaning: between types of the same kind, such as a named type and its
// underlying type, or by widening within signed integers, unsigned integers
// or floats.
func lossless(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	if from.Kind() == to.Kind() {
		return true
	}
	family := func(k reflect.Kind) int {
		switch k {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return 1
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return 2
		case reflect.Float32, reflect.Float64:
			return 3
		}
		return 0
	}
	f := family(from.Kind())
	return f != 0 && f == family(to.Kind()) && from.Bits() <= to.Bits()
}

// method looks up the bound accessor method on bean
func (d PropertyDescriptor) method(bean interface{}, acc *Accessor) (reflect.Value, error) {
	v := reflect.ValueOf(bean)
	if !v.IsValid() {
		return reflect.Value{}, d.accessError(bean, "nil bean")
	}
	m := v.MethodByName(acc.Method)
	if !m.IsValid() {
		return reflect.Value{}, d.accessError(bean, "missing method "+acc.Method)
	}
	return m, nil
}

func (d PropertyDescriptor) accessError(bean interface{}, reason string) error {
	return &coreerrors.IntrospectionError{
		Type:     fmt.Sprintf("%T", bean),
		Property: d.Name,
		Reason:   reason,
	}
}
