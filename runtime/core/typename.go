package core

import (
	"fmt"
	"reflect"
	"strings"
)

// SimpleTypeName returns the unqualified name of t, with pointers
// and generic arguments stripped:
//
//	*a/b/c.Engine                 -> Engine
//	a/b/c.Provider[a/b/c.Engine]  -> Provider
//
// unnamed types yield "".
func SimpleTypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if idx := strings.Index(name, "["); idx >= 0 {
		name = name[:idx]
	}
	return name
}

// TypeArgs splits the generic arguments of a type name.
//
//	Provider[a/b/c.Engine]                -> [a/b/c.Engine]
//	Pair[int,a/b/c.Map[string,int]]       -> [int a/b/c.Map[string,int]]
//	Engine                                -> nil
func TypeArgs(name string) []string {
	if !strings.HasSuffix(name, "]") {
		return nil
	}
	leftIdx := strings.Index(name, "[")
	if leftIdx < 0 {
		// invalid
		return nil
	}
	inner := name[leftIdx+1 : len(name)-1]
	if inner == "" {
		return nil
	}
	var args []string
	depth := 0
	begin := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[begin:i]))
				begin = i + 1
			}
		}
	}
	return append(args, strings.TrimSpace(inner[begin:]))
}

// NumTypeArgs reports how many generic arguments the named
// type t (or the type t points to) was instantiated with.
func NumTypeArgs(t reflect.Type) int {
	if t == nil {
		return 0
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return len(TypeArgs(t.Name()))
}

// QualifiedTypeName spells t the way reflect writes it inside
// the brackets of an instantiated generic type name, that is
// with full package paths:
//
//	*a/b/c.Engine             -> *a/b/c.Engine
//	[]a/b/c.Wheel             -> []a/b/c.Wheel
//	map[string]a/b/c.Engine   -> map[string]a/b/c.Engine
//
// It can be compared with the results of TypeArgs.
func QualifiedTypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.Name()
		}
		return t.PkgPath() + "." + t.Name()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + QualifiedTypeName(t.Elem())
	case reflect.Slice:
		return "[]" + QualifiedTypeName(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), QualifiedTypeName(t.Elem()))
	case reflect.Map:
		return "map[" + QualifiedTypeName(t.Key()) + "]" + QualifiedTypeName(t.Elem())
	}
	return t.String()
}
