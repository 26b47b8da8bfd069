// Package errors provides structured error types for the simpletx library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, backend class
// name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindUnsupportedConfiguration).
//		Class("VersorTransform").
//		Detail("defined for dimension 3 only, got 2").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.DimensionMismatch(errors.PhaseMutate, path, 4, 6)
//	err := errors.TypeMismatch(errors.PhaseConstruct, path, "vector-float32")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
