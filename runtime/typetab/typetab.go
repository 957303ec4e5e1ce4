// Package typetab caches the member tables of reflected types.
// Each table is built once per type and shared afterwards.
package typetab

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var fieldTab = NewTypeMap[[]reflect.StructField]()
var methodTab = NewTypeMap[[]reflect.Method]()

// Shard maps a type to a shard of a concurrent map.
func Shard(t reflect.Type) uint32 {
	if t == nil {
		return 0
	}
	return uint32(xxhash.Sum64String(t.String()))
}

// NewTypeMap creates a concurrent map keyed by reflect.Type.
func NewTypeMap[V any]() cmap.ConcurrentMap[reflect.Type, V] {
	return cmap.NewWithCustomShardingFunction[reflect.Type, V](Shard)
}

// GetTypeFields returns the fields declared directly on the
// struct type t, in declaration order. Fields of embedded
// structs are not flattened, the embedded field itself is
// listed instead.
// Returns nil if t is not a struct.
func GetTypeFields(t reflect.Type) []reflect.StructField {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	if fields, ok := fieldTab.Get(t); ok {
		return fields
	}
	n := t.NumField()
	fields := make([]reflect.StructField, n)
	for i := 0; i < n; i++ {
		fields[i] = t.Field(i)
	}
	fieldTab.SetIfAbsent(t, fields)
	return fields
}

// GetTypeMethods returns the method set of t in the order
// reflect reports it, which is sorted by name.
// Unexported methods are not part of the set.
func GetTypeMethods(t reflect.Type) []reflect.Method {
	if t == nil {
		return nil
	}
	if methods, ok := methodTab.Get(t); ok {
		return methods
	}
	n := t.NumMethod()
	methods := make([]reflect.Method, n)
	for i := 0; i < n; i++ {
		methods[i] = t.Method(i)
	}
	methodTab.SetIfAbsent(t, methods)
	return methods
}

// NumIn returns the number of parameters of m, excluding
// the receiver. Methods of interface types carry no receiver.
func NumIn(t reflect.Type, m reflect.Method) int {
	n := m.Type.NumIn()
	if t.Kind() != reflect.Interface {
		n--
	}
	return n
}

