package core

import "reflect"

// Object is an indexed view over the fields of a struct value.
// Fields are listed in declaration order.
type Object interface {
	GetField(name string) Field
	GetFieldIndex(i int) Field
	NumField() int
}

type Field interface {
	Name() string
	Type() reflect.Type
	Value() interface{}
	// Set assigns val to the field, nil clears it
	Set(val interface{})
}
