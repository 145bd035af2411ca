package errors

import (
	"fmt"
	"strings"
)

// Op indicates which operation the error came from
type Op string

const (
	OpResolve Op = "resolve" // slot resolution over a list shape
	OpAccess  Op = "access"  // value access through a resolved slot
	OpBundle  Op = "bundle"  // bundle wrapper operations
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound   Kind = "not_found"   // list holds no slot of the requested type
	KindNotAList   Kind = "not_a_list"  // type does not have the cons shape
	KindNilPointer Kind = "nil_pointer" // nil list pointer
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Op       Op
	Kind     Kind
	ListType string
	WantType string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.WantType != "" {
		b.WriteString(": type ")
		b.WriteString(e.WantType)
	}
	if e.ListType != "" {
		b.WriteString(" in list ")
		b.WriteString(e.ListType)
	}

	if e.Detail != "" {
		if e.WantType != "" || e.ListType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// ListType sets the list type name
func (b *Builder) ListType(t string) *Builder {
	b.err.ListType = t
	return b
}

// WantType sets the requested type name
func (b *Builder) WantType(t string) *Builder {
	b.err.WantType = t
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// NotFound creates a missing-type error
func NotFound(op Op, listType, wantType string) *Error {
	return &Error{
		Op:       op,
		Kind:     KindNotFound,
		ListType: listType,
		WantType: wantType,
	}
}
