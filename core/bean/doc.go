// Package bean resolves the logical properties of bean-shaped Go values.
//
// A bean exposes its state through accessor methods: GetX for readers, IsX
// for boolean readers and SetX for writers. The Resolver scans the method set
// of a type (interfaces included, with every embedded interface) and derives
// one PropertyDescriptor per property name:
//
//	type Entry interface {
//	    GetTitle() string
//	    SetTitle(string)
//	    IsDraft() bool
//	}
//
//	descriptors, err := bean.PropertyDescriptors(reflect.TypeOf((*Entry)(nil)).Elem())
//	// draft (read-only), title (read/write)
//
// Results are cached per type for the lifetime of the Resolver. Types that
// cannot be described (a getter and setter disagreeing on the value type, or
// two readers mapping to the same name) fail with an IntrospectionError and
// are not cached.
package bean
