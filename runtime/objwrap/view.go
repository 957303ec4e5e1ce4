package objwrap

import (
	"fmt"
	"reflect"

	"github.com/xhd2015/mockwire/runtime/core"
)

type object []field

type field struct {
	name string
	val  reflect.Value
}

var _ core.Object = (object)(nil)
var _ core.Field = field{}

// Fields returns a view over the fields of the held struct,
// exported or not. Writes through the view modify the held
// value. The view is empty when the held value is not a
// struct or a non-nil pointer to one.
func (c *Object) Fields() core.Object {
	sv, err := structValue(c.v)
	if err != nil {
		return object(nil)
	}
	sv = addressable(sv)
	n := sv.NumField()
	obj := make(object, 0, n)
	for i := 0; i < n; i++ {
		fv, err := exposed(sv.Field(i))
		if err != nil {
			continue
		}
		obj = append(obj, field{name: sv.Type().Field(i).Name, val: fv})
	}
	return obj
}

func (c object) GetField(name string) core.Field {
	for _, field := range c {
		if field.name == name {
			return field
		}
	}
	panic(fmt.Errorf("no field: %s", name))
}

func (c object) GetFieldIndex(i int) core.Field {
	return c[i]
}

func (c object) NumField() int {
	return len(c)
}

func (c field) Name() string {
	return c.name
}

func (c field) Type() reflect.Type {
	return c.val.Type()
}

// Set stores val in the field, nil stores the zero value.
// The view has no error result, so a val that is not
// assignable to the field type panics with a descriptive error.
// Use Object.WriteField to get ErrAccess instead.
func (c field) Set(val interface{}) {
	// if val is nil, then reflect.ValueOf(val)
	// is invalid
	if val == nil {
		c.val.Set(reflect.Zero(c.val.Type()))
		return
	}
	v := reflect.ValueOf(val)
	if !v.Type().AssignableTo(c.val.Type()) {
		panic(fmt.Errorf("cannot set field %s: %v is not assignable to %v", c.name, v.Type(), c.val.Type()))
	}
	c.val.Set(v)
}

func (c field) Value() interface{} {
	return c.val.Interface()
}
