package lookup

import (
	"reflect"

	"github.com/xhd2015/mockwire/runtime/core"
	"github.com/xhd2015/mockwire/runtime/typetab"
)

// DefaultResolveMethod is the method a deferred producer
// exposes to produce its value, as in Provider[T].Get().
const DefaultResolveMethod = "Get"

type IndirectionKind int

const (
	// a func() T or func() (T, error) field
	IndirectionFunc IndirectionKind = iota + 1
	// a generic type with one type argument and a
	// resolve method returning T or (T, error)
	IndirectionMethod
)

func (c IndirectionKind) String() string {
	switch c {
	case IndirectionFunc:
		return "func"
	case IndirectionMethod:
		return "method"
	}
	return "none"
}

type IndirectField struct {
	Field
	Kind  IndirectionKind
	Inner reflect.Type
	// Method is the resolve method name, empty for IndirectionFunc
	Method string
}

// Indirection reports whether t has the shape of a deferred
// producer and which type it produces.
//
// Recognized shapes:
//
//	func() T
//	func() (T, error)
//	Thunk[T]     declared as  func() T  or  func() (T, error)
//	Provider[T]  with  Get() T  or  Get() (T, error)
//	*Lazy[T]     with  Get() T  or  Get() (T, error)
//
// Named shapes must be instantiated with exactly one type
// argument, so a plain struct that happens to have a Get
// method is not mistaken for a producer.
func Indirection(t reflect.Type, resolveMethod string) (inner reflect.Type, kind IndirectionKind, ok bool) {
	if t == nil {
		return nil, 0, false
	}
	if t.Kind() == reflect.Func && (t.Name() == "" || core.NumTypeArgs(t) == 1) {
		if t.NumIn() != 0 || t.IsVariadic() {
			return nil, 0, false
		}
		inner = ResultType(t)
		if inner == nil {
			return nil, 0, false
		}
		return inner, IndirectionFunc, true
	}
	if core.NumTypeArgs(t) != 1 {
		return nil, 0, false
	}
	m, ok := t.MethodByName(resolveMethod)
	if !ok || typetab.NumIn(t, m) != 0 {
		return nil, 0, false
	}
	inner = ResultType(m.Type)
	if inner == nil {
		return nil, 0, false
	}
	return inner, IndirectionMethod, true
}

// IndirectFieldByType finds the first field of t whose declared
// type is a deferred producer of exactly inner.
//
// A producer matches when the type it resolves to is inner. A
// generic producer whose resolve method returns an interface,
// such as Ref[T] with Get() any, matches too when its type
// argument is spelled as inner and inner implements that
// interface. Inner of the result is then the requested type.
func IndirectFieldByType(t reflect.Type, inner reflect.Type, resolveMethod string) (*IndirectField, bool) {
	st, ok := StructOf(t)
	if !ok || inner == nil {
		return nil, false
	}
	if resolveMethod == "" {
		resolveMethod = DefaultResolveMethod
	}
	for i, f := range typetab.GetTypeFields(st) {
		fieldInner, kind, ok := Indirection(f.Type, resolveMethod)
		if !ok {
			continue
		}
		if fieldInner != inner && !producesByTypeArg(f.Type, fieldInner, inner) {
			continue
		}
		indirect := &IndirectField{
			Field: Field{Owner: st, Index: i, Struct: f},
			Kind:  kind,
			Inner: inner,
		}
		if kind == IndirectionMethod {
			indirect.Method = resolveMethod
		}
		return indirect, true
	}
	return nil, false
}

// producesByTypeArg reports whether the generic producer t,
// resolving to the interface result, is declared as a producer
// of inner.
func producesByTypeArg(t reflect.Type, result reflect.Type, inner reflect.Type) bool {
	if result.Kind() != reflect.Interface || !inner.AssignableTo(result) {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	args := core.TypeArgs(t.Name())
	return len(args) == 1 && args[0] == core.QualifiedTypeName(inner)
}
