package objwrap

import (
	"reflect"

	"github.com/xhd2015/mockwire/runtime/lookup"
)

// InvokeBuilderSetter calls the builder setter accepting paramType
// with val, and wraps what the setter returns so that fluent
// builders can be chained. A setter returning nothing yields an
// Object around the same builder.
//
// The setter for a type Foo is named foo (Foo when exported) and
// takes exactly one Foo. If the builder has none, the lookup moves
// on to the type Foo embeds first, and val is projected to that
// embedded value before the call.
//
// A builder held as a struct value also has the setters of its
// pointer, which then update the held value in place.
func (c *Object) InvokeBuilderSetter(paramType reflect.Type, val interface{}) (*Object, error) {
	const op = "InvokeBuilderSetter"
	recv := c.v
	setter, err := lookup.ResolveSetter(c.Type(), paramType)
	if err != nil {
		if ptr, ok := c.pointerReceiver(); ok {
			if s, perr := lookup.ResolveSetter(ptr.Type(), paramType); perr == nil {
				setter, recv, err = s, ptr, nil
			}
		}
	}
	if err != nil {
		return nil, c.errorf(ErrLookup, op, paramType, err, "no setter for %v in %v", paramType, c.Type())
	}
	c.log().Debug().
		Str("target", recv.Type().String()).
		Str("param", paramType.String()).
		Str("setter", setter.Name).
		Str("accepts", setter.Param.String()).
		Int("depth", len(setter.Path)).
		Msg("resolved builder setter")

	v, err := valueFor(val, paramType)
	if err != nil {
		return nil, c.errorf(ErrAccess, op, paramType, err, "bad argument for %s", setter.Name)
	}
	arg, err := project(v, setter.Path)
	if err != nil {
		return nil, c.errorf(ErrAccess, op, setter.Param, err, "cannot project %v to %v", paramType, setter.Param)
	}
	out, err := call(setter.Method.Func, []reflect.Value{recv, arg})
	if err != nil {
		return nil, c.errorf(ErrInvocation, op, paramType, err, "setter %s failed", setter.Name)
	}
	if len(out) == 0 {
		return c.wrap(c.v), nil
	}
	return c.wrap(out[0]), nil
}
