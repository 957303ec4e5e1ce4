// Package objwrap wraps a value whose type is known only at
// runtime, and lets callers construct, inspect and mutate it
// by type rather than by name.
//
// Fields are looked up by their declared type, methods by the type
// they return or accept, and builder setters by naming convention.
// Unexported fields are read and written as if they were exported.
package objwrap

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
)

// Object holds exactly one value. The held value never changes,
// operations that produce a new value return a new Object.
type Object struct {
	v   reflect.Value
	cfg *Config
}

// TypeOf returns the reflect.Type of T, which may be an interface.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Wrap holds instance directly. A struct value is copied into
// addressable storage so its fields can be written; the writes
// are observed through Value(), not in the caller's copy.
func Wrap(instance interface{}, opts ...Option) *Object {
	return wrapValue(reflect.ValueOf(instance), newConfig(opts))
}

func wrapValue(v reflect.Value, cfg *Config) *Object {
	if v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if v.IsValid() && v.Kind() == reflect.Struct {
		v = addressable(v)
	}
	return &Object{v: v, cfg: cfg}
}

func (c *Object) wrap(v reflect.Value) *Object {
	return wrapValue(v, c.cfg)
}

// NewInstance creates a value of type t with its no-arg constructor:
// the constructor registered for t if any, otherwise the zero value,
// with pointer types allocating their element, maps and channels made.
// Interfaces, funcs and unsafe pointers have no no-arg constructor.
func NewInstance(t reflect.Type, opts ...Option) (*Object, error) {
	cfg := newConfig(opts)
	if t == nil {
		return nil, &Error{Kind: ErrInstantiation, Op: "NewInstance", Msg: "nil type"}
	}
	if ctor, ok := cfg.Registry.constructor(t); ok {
		cfg.Logger.Debug().Str("type", t.String()).Msg("instantiate with registered constructor")
		out, err := call(ctor, nil)
		if err != nil {
			return nil, &Error{Kind: ErrInstantiation, Op: "NewInstance", Type: t, Msg: "constructor failed", Err: err}
		}
		return wrapValue(out[0], cfg), nil
	}

	var v reflect.Value
	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.UnsafePointer:
		return nil, &Error{Kind: ErrInstantiation, Op: "NewInstance", Type: t, Msg: fmt.Sprintf("%s has no no-arg constructor", t.Kind())}
	case reflect.Pointer:
		v = reflect.New(t.Elem())
	case reflect.Map:
		v = reflect.MakeMap(t)
	case reflect.Chan:
		v = reflect.MakeChan(t, 0)
	default:
		v = reflect.New(t).Elem()
	}
	cfg.Logger.Debug().Str("type", t.String()).Msg("instantiate zero value")
	return wrapValue(v, cfg), nil
}

// InvokeStaticFactory calls the factory name of t and wraps its result.
// The factory is either registered with RegisterFactory, or a method
// of t with a value receiver and no arguments, called on the zero
// value of t. A method that needs a pointer receiver or arguments is
// not a factory.
func InvokeStaticFactory(t reflect.Type, name string, opts ...Option) (*Object, error) {
	cfg := newConfig(opts)
	if t == nil {
		return nil, &Error{Kind: ErrLookup, Op: "InvokeStaticFactory", Msg: fmt.Sprintf("factory %s on nil type", name)}
	}
	fn, args, err := staticFactory(cfg, t, name)
	if err != nil {
		return nil, err
	}
	out, err := call(fn, args)
	if err != nil {
		return nil, &Error{Kind: ErrInvocation, Op: "InvokeStaticFactory", Type: t, Msg: fmt.Sprintf("factory %s failed", name), Err: err}
	}
	if len(out) == 0 {
		return wrapValue(reflect.Value{}, cfg), nil
	}
	return wrapValue(out[0], cfg), nil
}

func staticFactory(cfg *Config, t reflect.Type, name string) (reflect.Value, []reflect.Value, error) {
	if fn, ok := cfg.Registry.factory(t, name); ok {
		cfg.Logger.Debug().Str("type", t.String()).Str("factory", name).Msg("registered factory")
		return fn, nil, nil
	}
	recvType := t
	if recvType.Kind() == reflect.Pointer {
		recvType = recvType.Elem()
	}
	notFound := func(msg string) error {
		return &Error{Kind: ErrLookup, Op: "InvokeStaticFactory", Type: t, Msg: fmt.Sprintf("factory %s %s", name, msg)}
	}
	if recvType.Kind() == reflect.Interface {
		return reflect.Value{}, nil, notFound("not found")
	}
	m, ok := recvType.MethodByName(name)
	if !ok {
		if _, ok := reflect.PointerTo(recvType).MethodByName(name); ok {
			return reflect.Value{}, nil, notFound("requires a pointer receiver, not static")
		}
		return reflect.Value{}, nil, notFound("not found")
	}
	if m.Type.NumIn() != 1 {
		return reflect.Value{}, nil, notFound("takes arguments, not static")
	}
	return m.Func, []reflect.Value{reflect.Zero(recvType)}, nil
}

// Value returns the held value, nil if the Object holds nothing.
func (c *Object) Value() interface{} {
	if !c.v.IsValid() {
		return nil
	}
	return c.v.Interface()
}

// Type returns the runtime type of the held value.
func (c *Object) Type() reflect.Type {
	if !c.v.IsValid() {
		return nil
	}
	return c.v.Type()
}

func (c *Object) log() *zerolog.Logger {
	return &c.cfg.Logger
}

// As returns the value held by o as a T.
func As[T any](o *Object) (T, error) {
	v, ok := o.Value().(T)
	if !ok {
		var zero T
		return zero, o.errorf(ErrLookup, "As", TypeOf[T](), nil, "held value is not a %v", TypeOf[T]())
	}
	return v, nil
}
