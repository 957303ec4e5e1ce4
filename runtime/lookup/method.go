package lookup

import (
	"reflect"

	"github.com/xhd2015/mockwire/runtime/typetab"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Method identifies a method in the method set of a concrete type.
type Method struct {
	reflect.Method
	// Result is the value result of the method, see ResultType.
	// nil if the method returns nothing besides an optional error.
	Result reflect.Type
}

// NumIn returns the number of parameters, excluding the receiver.
func (c *Method) NumIn() int {
	return c.Type.NumIn() - 1
}

// In returns the i-th parameter, excluding the receiver.
func (c *Method) In(i int) reflect.Type {
	return c.Type.In(i + 1)
}

// ResultType returns the value result of the func type ft:
//
//	func() T            -> T
//	func() (T, error)   -> T
//	func() error        -> nil
//	func() (A, B)       -> nil
func ResultType(ft reflect.Type) reflect.Type {
	switch ft.NumOut() {
	case 1:
		if ft.Out(0) == errorType {
			return nil
		}
		return ft.Out(0)
	case 2:
		if ft.Out(1) != errorType {
			return nil
		}
		return ft.Out(0)
	}
	return nil
}

// ReturnsError reports whether the last result of ft is an error.
func ReturnsError(ft reflect.Type) bool {
	n := ft.NumOut()
	return n > 0 && ft.Out(n-1) == errorType
}

func newMethod(m reflect.Method) *Method {
	return &Method{Method: m, Result: ResultType(m.Type)}
}

func concrete(t reflect.Type) bool {
	return t != nil && t.Kind() != reflect.Interface
}

// MethodReturning finds the first method of t, taking no
// parameters, whose value result is exactly result.
// Methods are visited in reflect order, sorted by name.
func MethodReturning(t reflect.Type, result reflect.Type) (*Method, bool) {
	if !concrete(t) || result == nil {
		return nil, false
	}
	for _, m := range typetab.GetTypeMethods(t) {
		if m.Type.NumIn() != 1 {
			continue
		}
		if ResultType(m.Type) == result {
			return newMethod(m), true
		}
	}
	return nil, false
}

// MethodAccepting finds the first method of t whose sole
// parameter is exactly param.
func MethodAccepting(t reflect.Type, param reflect.Type) (*Method, bool) {
	if !concrete(t) || param == nil {
		return nil, false
	}
	for _, m := range typetab.GetTypeMethods(t) {
		if m.Type.NumIn() != 2 || m.Type.IsVariadic() {
			continue
		}
		if m.Type.In(1) == param {
			return newMethod(m), true
		}
	}
	return nil, false
}

// MethodByName finds the method of t named name.
func MethodByName(t reflect.Type, name string) (*Method, bool) {
	if !concrete(t) {
		return nil, false
	}
	m, ok := t.MethodByName(name)
	if !ok {
		return nil, false
	}
	return newMethod(m), true
}
