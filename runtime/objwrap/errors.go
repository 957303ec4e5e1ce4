package objwrap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// error kinds, match them with errors.Is
var (
	ErrInstantiation = errors.New("instantiation error")
	ErrLookup        = errors.New("lookup error")
	ErrAccess        = errors.New("access error")
	ErrInvocation    = errors.New("invocation error")
)

// Error is returned by every failing operation of an Object.
type Error struct {
	// Kind is one of ErrInstantiation, ErrLookup, ErrAccess, ErrInvocation
	Kind error
	Op   string
	// Type is the requested type, if any
	Type reflect.Type
	// Target is the runtime type of the held value, if any
	Target reflect.Type
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Type != nil || e.Target != nil {
		fmt.Fprintf(&b, " (type %v, target %v)", e.Type, e.Target)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from an invoked
// constructor, method or producer.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func (c *Object) errorf(kind error, op string, typ reflect.Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:   kind,
		Op:     op,
		Type:   typ,
		Target: c.Type(),
		Msg:    fmt.Sprintf(format, args...),
		Err:    cause,
	}
}
