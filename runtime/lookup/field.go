package lookup

import (
	"reflect"

	"github.com/xhd2015/mockwire/runtime/typetab"
)

// Field identifies a field declared on a struct type.
type Field struct {
	// Owner is the struct type declaring the field
	Owner  reflect.Type
	Index  int
	Struct reflect.StructField
}

func (c *Field) Name() string {
	return c.Struct.Name
}

func (c *Field) Type() reflect.Type {
	return c.Struct.Type
}

func (c *Field) Tag() reflect.StructTag {
	return c.Struct.Tag
}

// StructOf returns the struct type behind t,
// following any number of pointers.
func StructOf(t reflect.Type) (reflect.Type, bool) {
	if t == nil {
		return nil, false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	return t, true
}

// FieldByType finds the first field of t, in declaration order,
// whose declared type is exactly fieldType.
// When several fields share that type, the first one wins,
// callers are expected to avoid such ambiguity.
func FieldByType(t reflect.Type, fieldType reflect.Type) (*Field, bool) {
	st, ok := StructOf(t)
	if !ok || fieldType == nil {
		return nil, false
	}
	for i, f := range typetab.GetTypeFields(st) {
		if f.Type == fieldType {
			return &Field{Owner: st, Index: i, Struct: f}, true
		}
	}
	return nil, false
}

// TaggedFields returns the fields of t carrying the struct tag key,
// in declaration order.
func TaggedFields(t reflect.Type, key string) []*Field {
	st, ok := StructOf(t)
	if !ok {
		return nil
	}
	var fields []*Field
	for i, f := range typetab.GetTypeFields(st) {
		if _, ok := f.Tag.Lookup(key); ok {
			fields = append(fields, &Field{Owner: st, Index: i, Struct: f})
		}
	}
	return fields
}
