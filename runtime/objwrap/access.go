package objwrap

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"unsafe"

	"github.com/xhd2015/mockwire/runtime/lookup"
)

var errNotAddressable = errors.New("value is not addressable")

// exposed returns f with visibility restrictions lifted,
// so that unexported fields can be read and written.
func exposed(f reflect.Value) (reflect.Value, error) {
	if f.CanAddr() {
		return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem(), nil
	}
	if f.CanInterface() {
		return f, nil
	}
	return reflect.Value{}, errNotAddressable
}

// addressable returns v itself when addressable, otherwise
// an addressable copy.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	p := reflect.New(v.Type()).Elem()
	p.Set(v)
	return p
}

// structValue follows pointers from v to the struct value
// holding the fields.
func structValue(v reflect.Value) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, errors.New("no value held")
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("nil %v", v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("not a struct: %v", v.Type())
	}
	return v, nil
}

// fieldValue returns the exposed field f of v.
func fieldValue(v reflect.Value, f *lookup.Field) (reflect.Value, error) {
	sv, err := structValue(v)
	if err != nil {
		return reflect.Value{}, err
	}
	if sv.Type() != f.Owner {
		return reflect.Value{}, fmt.Errorf("field %s belongs to %v", f.Name(), f.Owner)
	}
	return exposed(sv.Field(f.Index))
}

// project moves a value along the embedded field path
// of a resolved setter.
func project(v reflect.Value, path []lookup.Step) (reflect.Value, error) {
	for _, step := range path {
		sv, err := structValue(v)
		if err != nil {
			return reflect.Value{}, err
		}
		f, err := exposed(addressable(sv).Field(step.Index))
		if err != nil {
			return reflect.Value{}, err
		}
		if step.Addr {
			f = f.Addr()
		}
		v = f
	}
	return v, nil
}

// valueFor converts val to a value assignable to t,
// nil is the zero value of t.
func valueFor(val interface{}, t reflect.Type) (reflect.Value, error) {
	if val == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(val)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%v is not assignable to %v", v.Type(), t)
	}
	return v, nil
}

// call invokes fn, turning a panic or a non-nil trailing
// error into err. The error result is stripped from out.
func call(fn reflect.Value, args []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if e := recover(); e != nil {
			out = nil
			err = &PanicError{Value: e, Stack: debug.Stack()}
		}
	}()
	out = fn.Call(args)
	if lookup.ReturnsError(fn.Type()) {
		n := len(out)
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}
	return out, nil
}
