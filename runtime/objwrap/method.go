package objwrap

import (
	"reflect"

	"github.com/xhd2015/mockwire/runtime/lookup"
)

// MethodReturning finds the method of the held value that takes no
// arguments and returns t, optionally along with an error.
func (c *Object) MethodReturning(t reflect.Type) (*lookup.Method, error) {
	for _, recv := range c.receivers() {
		if m, ok := lookup.MethodReturning(recv.Type(), t); ok {
			return m, nil
		}
	}
	return nil, c.errorf(ErrLookup, "MethodReturning", t, nil, "no method returning %v in %v", t, c.Type())
}

// MethodAccepting finds the method of the held value whose
// sole parameter is exactly t.
func (c *Object) MethodAccepting(t reflect.Type) (*lookup.Method, error) {
	for _, recv := range c.receivers() {
		if m, ok := lookup.MethodAccepting(recv.Type(), t); ok {
			return m, nil
		}
	}
	return nil, c.errorf(ErrLookup, "MethodAccepting", t, nil, "no method accepting %v in %v", t, c.Type())
}

// InvokeMethodReturning calls the method found by MethodReturning
// and wraps its result.
func (c *Object) InvokeMethodReturning(t reflect.Type) (*Object, error) {
	m, err := c.MethodReturning(t)
	if err != nil {
		return nil, err
	}
	return c.Invoke(m)
}

// InvokeMethodAccepting calls the method found by MethodAccepting
// with arg and wraps its result.
func (c *Object) InvokeMethodAccepting(t reflect.Type, arg interface{}) (*Object, error) {
	m, err := c.MethodAccepting(t)
	if err != nil {
		return nil, err
	}
	return c.Invoke(m, arg)
}

// InvokeMethod calls the method named name with args.
func (c *Object) InvokeMethod(name string, args ...interface{}) (*Object, error) {
	for _, recv := range c.receivers() {
		if m, ok := lookup.MethodByName(recv.Type(), name); ok {
			return c.Invoke(m, args...)
		}
	}
	return nil, c.errorf(ErrLookup, "InvokeMethod", nil, nil, "method %s not found in %v", name, c.Type())
}

// receivers lists the values methods of the held value are called
// on: the value itself, then its address when it is a struct held
// in addressable storage, whose pointer methods apply to it as well.
func (c *Object) receivers() []reflect.Value {
	if !c.v.IsValid() {
		return nil
	}
	if c.v.Kind() == reflect.Pointer || !c.v.CanAddr() {
		return []reflect.Value{c.v}
	}
	return []reflect.Value{c.v, c.v.Addr()}
}

// pointerReceiver returns the address of a struct value held
// in addressable storage.
func (c *Object) pointerReceiver() (reflect.Value, bool) {
	recv := c.receivers()
	if len(recv) < 2 {
		return reflect.Value{}, false
	}
	return recv[1], true
}

// receiver returns the receiver among receivers whose type is t.
func (c *Object) receiver(t reflect.Type) (reflect.Value, bool) {
	for _, recv := range c.receivers() {
		if recv.Type() == t {
			return recv, true
		}
	}
	return reflect.Value{}, false
}

// Invoke calls m on the held value and wraps its value result.
// An Object holding nothing is returned for methods without one.
// A panic or a non-nil error result makes ErrInvocation.
func (c *Object) Invoke(m *lookup.Method, args ...interface{}) (*Object, error) {
	if m == nil {
		return nil, c.errorf(ErrLookup, "Invoke", nil, nil, "nil method")
	}
	if m.Type.NumIn() == 0 {
		return nil, c.errorf(ErrLookup, "Invoke", nil, nil, "method %s has no receiver", m.Name)
	}
	recv, ok := c.receiver(m.Type.In(0))
	if !ok {
		return nil, c.errorf(ErrLookup, "Invoke", nil, nil, "method %s does not belong to %v", m.Name, c.Type())
	}
	in, err := c.args(recv, m, args)
	if err != nil {
		return nil, err
	}
	out, err := call(m.Func, in)
	if err != nil {
		return nil, c.errorf(ErrInvocation, "Invoke", m.Result, err, "method %s failed", m.Name)
	}
	if len(out) == 0 {
		return c.wrap(reflect.Value{}), nil
	}
	return c.wrap(out[0]), nil
}

func (c *Object) args(recv reflect.Value, m *lookup.Method, args []interface{}) ([]reflect.Value, error) {
	if m.Type.IsVariadic() {
		return nil, c.errorf(ErrLookup, "Invoke", nil, nil, "variadic method %s is not supported", m.Name)
	}
	if len(args) != m.NumIn() {
		return nil, c.errorf(ErrLookup, "Invoke", nil, nil, "method %s takes %d arguments, given %d", m.Name, m.NumIn(), len(args))
	}
	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, recv)
	for i, arg := range args {
		v, err := valueFor(arg, m.In(i))
		if err != nil {
			return nil, c.errorf(ErrLookup, "Invoke", m.In(i), err, "argument %d of %s", i, m.Name)
		}
		in = append(in, v)
	}
	return in, nil
}
