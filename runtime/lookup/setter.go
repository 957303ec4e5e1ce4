package lookup

import (
	"fmt"
	"reflect"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/xhd2015/mockwire/runtime/core"
	"github.com/xhd2015/mockwire/runtime/typetab"
	"github.com/xhd2015/mockwire/support/strutil"
)

// Step moves from a struct value to its embedded field.
type Step struct {
	Index int
	// Addr takes the address of the embedded field,
	// used when a *Sub is projected to a *Base
	Addr bool
}

// Setter is a builder setter resolved for a requested
// parameter type.
type Setter struct {
	Method *Method
	Name   string
	// Param is the type the setter accepts, the requested
	// type itself or one of its supertypes
	Param reflect.Type
	// Path projects a value of the requested type to Param
	Path []Step
}

// SetterError is returned when no setter matches the requested
// type nor any of its supertypes.
type SetterError struct {
	Target reflect.Type
	Param  reflect.Type
	// Tried lists the candidate signatures, in walk order
	Tried []string
}

func (c *SetterError) Error() string {
	return fmt.Sprintf("no setter for %v found in %v, tried: %s", c.Param, c.Target, strings.Join(c.Tried, ", "))
}

type setterKey struct {
	target reflect.Type
	param  reflect.Type
}

type resolution struct {
	setter *Setter
	err    *SetterError
}

var setterCache = cmap.NewWithCustomShardingFunction[setterKey, *resolution](func(key setterKey) uint32 {
	return typetab.Shard(key.target)*31 + typetab.Shard(key.param)
})

// SetterName returns the conventional setter name for t:
// the simple name of t with its first letter lower-cased,
// Engine -> engine.
func SetterName(t reflect.Type) string {
	return strutil.LowerFirst(core.SimpleTypeName(t))
}

// Supertype returns the type t is projected to when walking up:
// the first embedded field of the struct behind t.
//
//	Sub{Base}   -> Base
//	*Sub{Base}  -> *Base   (by address)
//	*Sub{*Base} -> *Base
//	Sub{Iface}  -> Iface
func Supertype(t reflect.Type) (reflect.Type, Step, bool) {
	if t == nil {
		return nil, Step{}, false
	}
	isPtr := t.Kind() == reflect.Pointer
	st := t
	if isPtr {
		st = t.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil, Step{}, false
	}
	for i, f := range typetab.GetTypeFields(st) {
		if !f.Anonymous {
			continue
		}
		if isPtr && f.Type.Kind() != reflect.Pointer && f.Type.Kind() != reflect.Interface {
			return reflect.PointerTo(f.Type), Step{Index: i, Addr: true}, true
		}
		return f.Type, Step{Index: i}, true
	}
	return nil, Step{}, false
}

// ResolveSetter finds the builder setter of target accepting param.
// The setter for a type Foo is a method named foo, matched ignoring
// the case of the first letter since only exported methods are
// reachable, taking exactly one Foo. When none exists, the walk
// continues with Supertype(param) until no supertype is left.
// Results are cached per (target, param).
func ResolveSetter(target reflect.Type, param reflect.Type) (*Setter, error) {
	key := setterKey{target: target, param: param}
	if res, ok := setterCache.Get(key); ok {
		return res.get()
	}
	res := resolveSetter(target, param)
	setterCache.SetIfAbsent(key, res)
	return res.get()
}

func (c *resolution) get() (*Setter, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.setter, nil
}

func resolveSetter(target reflect.Type, param reflect.Type) *resolution {
	serr := &SetterError{Target: target, Param: param}
	if !concrete(target) || param == nil {
		return &resolution{err: serr}
	}
	methods := typetab.GetTypeMethods(target)

	var path []Step
	seen := make(map[reflect.Type]bool)
	candidate := param
	for candidate != nil && !seen[candidate] {
		seen[candidate] = true
		name := SetterName(candidate)
		if name != "" {
			serr.Tried = append(serr.Tried, fmt.Sprintf("%s(%v)", name, candidate))
			for _, m := range methods {
				if m.Type.NumIn() != 2 || m.Type.IsVariadic() || m.Type.In(1) != candidate {
					continue
				}
				if !strutil.EqualFoldFirst(m.Name, name) {
					continue
				}
				return &resolution{setter: &Setter{
					Method: newMethod(m),
					Name:   m.Name,
					Param:  candidate,
					Path:   path,
				}}
			}
		}
		next, step, ok := Supertype(candidate)
		if !ok {
			break
		}
		path = append(path[:len(path):len(path)], step)
		candidate = next
	}
	return &resolution{err: serr}
}
