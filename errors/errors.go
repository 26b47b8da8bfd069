package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // backend selection and handle construction
	PhaseMutate    Phase = "mutate"    // parameter and queue mutation
	PhaseEvaluate  Phase = "evaluate"  // point mapping and read accessors
	PhasePersist   Phase = "persist"   // transform file reading/writing
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedConfiguration Kind = "unsupported_configuration"
	KindTypeMismatch             Kind = "type_mismatch"
	KindInvalidArgument          Kind = "invalid_argument"
	KindInvalidOperation         Kind = "invalid_operation"
	KindDimensionMismatch        Kind = "dimension_mismatch"
	KindNotBound                 Kind = "not_bound"
	KindInvalidData              Kind = "invalid_data"
	KindNotFound                 Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Class  string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Class != "" {
		b.WriteString(": class ")
		b.WriteString(e.Class)
	}

	if e.Detail != "" {
		if e.Class != "" {
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
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Class sets the backend class name
func (b *Builder) Class(c string) *Builder {
	b.err.Class = c
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// Convenience constructors for common error patterns

// UnsupportedConfiguration creates an error for a kind/dimension pair
// outside the supported set
func UnsupportedConfiguration(phase Phase, class string, detail string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedConfiguration,
		Class:  class,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// TypeMismatch creates an error for a wrong pixel or element type
func TypeMismatch(phase Phase, path []string, elementType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Detail: fmt.Sprintf("element type %q is not supported", elementType),
	}
}

// DimensionMismatch creates an error for a vector or point of the wrong length
func DimensionMismatch(phase Phase, path []string, got, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDimensionMismatch,
		Path:   path,
		Detail: fmt.Sprintf("length %d does not match expected %d", got, want),
		Value:  got,
	}
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(phase Phase, detail string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// InvalidOperation creates an error for an operation applied to the wrong kind
func InvalidOperation(phase Phase, class string, detail string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidOperation,
		Class:  class,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// NotBound creates an error for a facade accessor used after its binding
// was invalidated
func NotBound(class string, accessor string) *Error {
	return &Error{
		Phase:  PhaseEvaluate,
		Kind:   KindNotBound,
		Class:  class,
		Detail: fmt.Sprintf("accessor %s called while bindings are cleared", accessor),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, detail string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
