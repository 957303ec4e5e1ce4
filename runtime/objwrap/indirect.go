package objwrap

import (
	"reflect"

	"github.com/xhd2015/mockwire/runtime/lookup"
)

// FindIndirectFieldByType returns the field of the held value that
// produces inner on demand: a func() inner, a Lazy[inner] declared
// as such a func, or a single-argument generic type such as
// Provider[inner] with a resolve method. A Ref[inner] whose resolve
// method returns any is found by its type argument.
// Not finding one is not an error.
func (c *Object) FindIndirectFieldByType(inner reflect.Type) (*lookup.IndirectField, bool) {
	return lookup.IndirectFieldByType(c.Type(), inner, c.cfg.ResolveMethod)
}

// ReadIndirectFieldValue resolves the producer field of inner.
// The bool result is false when no such field exists or the
// producer is nil. A producer that fails makes ErrInvocation, one
// that gives a value of another type than inner makes ErrAccess.
func (c *Object) ReadIndirectFieldValue(inner reflect.Type) (interface{}, bool, error) {
	f, ok := c.FindIndirectFieldByType(inner)
	if !ok {
		return nil, false, nil
	}
	fv, err := fieldValue(c.v, &f.Field)
	if err != nil {
		return nil, false, c.errorf(ErrAccess, "ReadIndirectFieldValue", inner, err, "cannot read field %s", f.Name())
	}
	if isNil(fv) {
		c.log().Debug().Str("field", f.Name()).Str("inner", inner.String()).Msg("producer is nil")
		return nil, false, nil
	}

	var fn reflect.Value
	switch f.Kind {
	case lookup.IndirectionFunc:
		fn = fv
	case lookup.IndirectionMethod:
		fn = fv.MethodByName(f.Method)
	}
	out, err := call(fn, nil)
	if err != nil {
		return nil, false, c.errorf(ErrInvocation, "ReadIndirectFieldValue", inner, err, "producer %s failed", f.Name())
	}
	val := out[0].Interface()
	if val != nil && !reflect.TypeOf(val).AssignableTo(inner) {
		return nil, false, c.errorf(ErrAccess, "ReadIndirectFieldValue", inner, nil, "producer %s gave %T, not %v", f.Name(), val, inner)
	}
	c.log().Debug().Str("field", f.Name()).Str("inner", inner.String()).Stringer("kind", f.Kind).Msg("resolved producer")
	return val, true, nil
}

// GetValueByTypeOrIndirection returns the value of the field
// declared as t, or failing that the value produced by the field
// producing t. Callers use it when they do not know whether a
// dependency is held directly or behind a producer.
// A direct field holding nil counts as absent.
func (c *Object) GetValueByTypeOrIndirection(t reflect.Type) (interface{}, error) {
	if f, ok := c.FindFieldByType(t); ok {
		val, err := c.ReadField(f)
		if err != nil {
			return nil, err
		}
		if !isNil(reflect.ValueOf(val)) {
			return val, nil
		}
	}
	val, ok, err := c.ReadIndirectFieldValue(t)
	if err != nil {
		return nil, err
	}
	if !ok || isNil(reflect.ValueOf(val)) {
		return nil, c.errorf(ErrLookup, "GetValueByTypeOrIndirection", t, nil, "%v field not found in %v", t, c.Type())
	}
	return val, nil
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
