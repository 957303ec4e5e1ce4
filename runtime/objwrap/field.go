package objwrap

import (
	"reflect"

	"github.com/xhd2015/mockwire/runtime/lookup"
)

// FindFieldByType returns the field of the held value whose declared
// type is exactly fieldType. Not finding one is not an error.
// If several fields share the type, the first in declaration order
// is returned.
func (c *Object) FindFieldByType(fieldType reflect.Type) (*lookup.Field, bool) {
	return lookup.FieldByType(c.Type(), fieldType)
}

// ReadField reads f from the held value, regardless of whether
// f is exported.
func (c *Object) ReadField(f *lookup.Field) (interface{}, error) {
	if f == nil {
		return nil, c.errorf(ErrAccess, "ReadField", nil, nil, "nil field")
	}
	fv, err := fieldValue(c.v, f)
	if err != nil {
		return nil, c.errorf(ErrAccess, "ReadField", f.Type(), err, "cannot read field %s", f.Name())
	}
	return fv.Interface(), nil
}

// WriteField assigns val to f on the held value. A nil val
// assigns the zero value.
func (c *Object) WriteField(f *lookup.Field, val interface{}) error {
	if f == nil {
		return c.errorf(ErrAccess, "WriteField", nil, nil, "nil field")
	}
	fv, err := fieldValue(c.v, f)
	if err != nil {
		return c.errorf(ErrAccess, "WriteField", f.Type(), err, "cannot write field %s", f.Name())
	}
	if !fv.CanSet() {
		return c.errorf(ErrAccess, "WriteField", f.Type(), errNotAddressable, "cannot write field %s", f.Name())
	}
	v, err := valueFor(val, fv.Type())
	if err != nil {
		return c.errorf(ErrAccess, "WriteField", f.Type(), err, "cannot write field %s", f.Name())
	}
	fv.Set(v)
	return nil
}

// ReadFieldByType reads the field found by FindFieldByType.
// The bool result is false when no such field exists.
func (c *Object) ReadFieldByType(fieldType reflect.Type) (interface{}, bool, error) {
	f, ok := c.FindFieldByType(fieldType)
	if !ok {
		return nil, false, nil
	}
	val, err := c.ReadField(f)
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// ExtractAnnotatedFields returns the fields of the held value
// carrying the struct tag key, in declaration order.
func (c *Object) ExtractAnnotatedFields(key string) []*lookup.Field {
	return lookup.TaggedFields(c.Type(), key)
}
