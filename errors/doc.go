// Package errors provides structured error types for the typelist library.
//
// Errors are categorized by Op (which operation failed) and Kind (error
// category), and carry the list type and requested type for context.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpAccess, errors.KindNotFound).
//		ListType("typelist.Cons[int,typelist.Nil]").
//		WantType("bool").
//		Detail("list holds no slot of the requested type").
//		Build()
//
// Or the convenience constructor for the common pattern:
//
//	err := errors.NotFound(errors.OpAccess, listType, wantType)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
