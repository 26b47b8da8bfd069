package transform

import (
	"github.com/zgsxwsdxg/simpletx"
	"github.com/zgsxwsdxg/simpletx/engine"
	"github.com/zgsxwsdxg/simpletx/errors"
	"github.com/zgsxwsdxg/simpletx/field"
)

// Transform is a value-semantics handle over one numerical backend. The
// zero value is not usable; construct through New, NewDisplacementField,
// FromBackend or one of the typed facade constructors.
type Transform struct {
	s *shared
}

// New builds a transform of the given kind and dimension. Dimension must be
// 2 or 3; the quaternion/versor family is 3D only. KindDisplacementField
// requires NewDisplacementField.
func New(kind simpletx.Kind, dim int) (*Transform, error) {
	b, err := engine.New(kind, dim)
	if err != nil {
		return nil, err
	}
	return &Transform{s: newShared(b)}, nil
}

// NewDisplacementField builds a displacement field transform from a vector
// image. On success the image's buffer is consumed and the image left empty,
// so the field is never owned twice.
func NewDisplacementField(img *field.Image) (*Transform, error) {
	if img == nil {
		return nil, errors.InvalidArgument(errors.PhaseConstruct, "nil displacement image")
	}
	if img.ElementType() != field.ElementVectorFloat64 {
		return nil, errors.TypeMismatch(errors.PhaseConstruct, []string{"image"}, img.ElementType().String())
	}
	if img.IsEmpty() {
		return nil, errors.InvalidArgument(errors.PhaseConstruct, "displacement image has no buffer")
	}
	b, err := engine.NewDisplacementField(img.Dimension(), img.Size(), img.Origin(), img.Spacing(), img.TakeBuffer())
	if err != nil {
		return nil, err
	}
	return &Transform{s: newShared(b)}, nil
}

// FromBackend wraps an existing backend, reusing it directly rather than
// constructing anew. Composite backends get an identity child inserted when
// their queue is empty, and the most-recently-added optimizable policy
// re-applied.
func FromBackend(b simpletx.Backend) (*Transform, error) {
	if b == nil {
		return nil, errors.InvalidArgument(errors.PhaseConstruct, "nil backend")
	}
	if comp, ok := b.(*engine.Composite); ok {
		comp.Normalize()
	}
	return &Transform{s: newShared(b)}, nil
}

// Copy returns an O(1) aliasing copy. The backend stays shared until either
// handle mutates.
func (t *Transform) Copy() *Transform {
	return &Transform{s: t.s.acquire()}
}

// Assign replaces the receiver's backend with an aliasing copy of src's.
// Safe for self-assignment.
func (t *Transform) Assign(src *Transform) {
	repl := src.Copy()
	t.s.release()
	t.s = repl.s
}

// makeUnique clones a private backend when other handles alias the current
// one. Called before every mutation.
func (t *Transform) makeUnique() {
	if t.s.refs > 1 {
		t.s.release()
		t.s = newShared(t.s.backend.Clone())
	}
}

func (t *Transform) Kind() simpletx.Kind {
	return t.s.backend.Kind()
}

func (t *Transform) Dimension() int {
	return t.s.backend.Dimension()
}

// Backend exposes the wrapped backend instance. Mutating it directly
// bypasses copy-on-write; intended for read-only collaborators such as the
// tfile writer.
func (t *Transform) Backend() simpletx.Backend {
	return t.s.backend
}

// SetParameters replaces the backend's parameter vector. The length must
// match the backend's expectation; on mismatch the parameters are unchanged.
func (t *Transform) SetParameters(p []float64) error {
	t.makeUnique()
	return t.s.backend.SetParameters(p)
}

func (t *Transform) Parameters() []float64 {
	return t.s.backend.Parameters()
}

// SetFixedParameters replaces the backend's fixed parameter vector.
func (t *Transform) SetFixedParameters(p []float64) error {
	t.makeUnique()
	return t.s.backend.SetFixedParameters(p)
}

func (t *Transform) FixedParameters() []float64 {
	return t.s.backend.FixedParameters()
}

// AddTransform appends a copy of other's backend to the receiver's queue.
// The receiver must already wrap a composite; a non-composite handle is not
// implicitly upgraded. The appended child becomes the sole optimizable
// transform.
func (t *Transform) AddTransform(other *Transform) error {
	if _, ok := t.s.backend.(simpletx.CompositeBackend); !ok {
		return errors.InvalidOperation(errors.PhaseMutate, t.s.backend.ClassName(),
			"AddTransform requires a composite transform")
	}
	if other == nil {
		return errors.InvalidArgument(errors.PhaseMutate, "nil transform")
	}
	if other.Dimension() != t.Dimension() {
		return errors.DimensionMismatch(errors.PhaseMutate, []string{"transform"},
			other.Dimension(), t.Dimension())
	}
	t.makeUnique()
	comp := t.s.backend.(simpletx.CompositeBackend)
	comp.Append(other.s.backend.Clone())
	return nil
}

// TransformPoint maps a point through the backend. The point length must
// equal the transform's dimension.
func (t *Transform) TransformPoint(pt []float64) ([]float64, error) {
	return t.s.backend.TransformPoint(pt)
}

// String returns the backend's diagnostic representation. Not guaranteed
// stable across versions.
func (t *Transform) String() string {
	return t.s.backend.String()
}
