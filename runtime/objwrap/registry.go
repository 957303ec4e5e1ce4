package objwrap

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/xhd2015/mockwire/runtime/lookup"
	"github.com/xhd2015/mockwire/runtime/typetab"
)

// Registry holds constructors and named factories for types
// whose construction cannot be discovered by reflection,
// such as NewXXX functions of a package.
type Registry struct {
	ctors     cmap.ConcurrentMap[reflect.Type, reflect.Value]
	factories cmap.ConcurrentMap[factoryKey, reflect.Value]
}

type factoryKey struct {
	typ  reflect.Type
	name string
}

var defaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		ctors: typetab.NewTypeMap[reflect.Value](),
		factories: cmap.NewWithCustomShardingFunction[factoryKey, reflect.Value](func(key factoryKey) uint32 {
			return typetab.Shard(key.typ) ^ uint32(xxhash.Sum64String(key.name))
		}),
	}
}

// RegisterConstructor registers fn as the no-arg constructor of
// the type it returns. fn must be a func() T or func() (T, error).
// A later registration for the same type replaces the earlier one.
func RegisterConstructor(fn interface{}) error {
	return defaultRegistry.RegisterConstructor(fn)
}

// RegisterFactory registers fn as the factory named name on t,
// see InvokeStaticFactory.
func RegisterFactory(t reflect.Type, name string, fn interface{}) error {
	return defaultRegistry.RegisterFactory(t, name, fn)
}

func (c *Registry) RegisterConstructor(fn interface{}) error {
	v, result, err := checkProducer(fn)
	if err != nil {
		return fmt.Errorf("register constructor: %w", err)
	}
	c.ctors.Set(result, v)
	return nil
}

func (c *Registry) RegisterFactory(t reflect.Type, name string, fn interface{}) error {
	if t == nil {
		return fmt.Errorf("register factory %s: nil type", name)
	}
	if name == "" {
		return fmt.Errorf("register factory on %v: empty name", t)
	}
	v, _, err := checkProducer(fn)
	if err != nil {
		return fmt.Errorf("register factory %v.%s: %w", t, name, err)
	}
	c.factories.Set(factoryKey{typ: t, name: name}, v)
	return nil
}

func (c *Registry) constructor(t reflect.Type) (reflect.Value, bool) {
	return c.ctors.Get(t)
}

func (c *Registry) factory(t reflect.Type, name string) (reflect.Value, bool) {
	return c.factories.Get(factoryKey{typ: t, name: name})
}

func checkProducer(fn interface{}) (reflect.Value, reflect.Type, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return reflect.Value{}, nil, fmt.Errorf("requires func, given: %T", fn)
	}
	if v.IsNil() {
		return reflect.Value{}, nil, fmt.Errorf("nil func")
	}
	ft := v.Type()
	if ft.NumIn() != 0 || ft.IsVariadic() {
		return reflect.Value{}, nil, fmt.Errorf("requires func without arguments, given: %v", ft)
	}
	result := lookup.ResultType(ft)
	if result == nil {
		return reflect.Value{}, nil, fmt.Errorf("requires func() T or func() (T, error), given: %v", ft)
	}
	return v, result, nil
}
