package engine

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/zgsxwsdxg/simpletx"
	"github.com/zgsxwsdxg/simpletx/errors"
)

// New constructs the backend matching a kind and dimension. The mapping is a
// finite enumeration; dimension must be 2 or 3 and the quaternion/versor
// family is rejected for 2D. KindDisplacementField cannot be built through
// this path, it requires NewDisplacementField with a sampled grid.
func New(kind simpletx.Kind, dim int) (simpletx.Backend, error) {
	if dim != 2 && dim != 3 {
		return nil, errors.UnsupportedConfiguration(errors.PhaseConstruct, kind.String(),
			"invalid dimension %d for transform, must be 2 or 3", dim)
	}
	if kind.ThreeDOnly() && dim != 3 {
		return nil, errors.UnsupportedConfiguration(errors.PhaseConstruct, kind.String(),
			"a %s transform only works for 3D", kind)
	}

	switch kind {
	case simpletx.KindIdentity:
		return NewIdentity(dim), nil
	case simpletx.KindTranslation:
		return NewTranslation(dim), nil
	case simpletx.KindScale:
		return NewScale(dim), nil
	case simpletx.KindScaleLogarithmic:
		return NewScaleLogarithmic(dim), nil
	case simpletx.KindEuler:
		if dim == 2 {
			return NewEuler2D(), nil
		}
		return NewEuler3D(), nil
	case simpletx.KindSimilarity:
		if dim == 2 {
			return NewSimilarity2D(), nil
		}
		return NewSimilarity3D(), nil
	case simpletx.KindQuaternionRigid:
		return NewQuaternionRigid(), nil
	case simpletx.KindVersor:
		return NewVersor(), nil
	case simpletx.KindVersorRigid:
		return NewVersorRigid(), nil
	case simpletx.KindAffine:
		return NewAffine(dim), nil
	case simpletx.KindComposite:
		return NewComposite(dim), nil
	case simpletx.KindDisplacementField:
		return nil, errors.InvalidArgument(errors.PhaseConstruct,
			"a displacement field transform requires the image-based constructor")
	default:
		return nil, errors.UnsupportedConfiguration(errors.PhaseConstruct, kind.String(),
			"unknown transform kind %d", uint8(kind))
	}
}

// base carries the state common to all backends: identity, the parameter
// vectors, and the length checks guarding them.
type base struct {
	kind   simpletx.Kind
	dim    int
	class  string
	params []float64
	fixed  []float64
}

func (b *base) Kind() simpletx.Kind { return b.kind }
func (b *base) Dimension() int      { return b.dim }
func (b *base) ClassName() string   { return b.class }

func (b *base) Parameters() []float64 {
	return cloneVec(b.params)
}

func (b *base) SetParameters(p []float64) error {
	if len(p) != len(b.params) {
		return errors.DimensionMismatch(errors.PhaseMutate, []string{"parameters"}, len(p), len(b.params))
	}
	copy(b.params, p)
	return nil
}

func (b *base) FixedParameters() []float64 {
	return cloneVec(b.fixed)
}

func (b *base) SetFixedParameters(p []float64) error {
	if len(p) != len(b.fixed) {
		return errors.DimensionMismatch(errors.PhaseMutate, []string{"fixed_parameters"}, len(p), len(b.fixed))
	}
	copy(b.fixed, p)
	return nil
}

// cloneBase deep-copies the common state.
func (b *base) cloneBase() base {
	return base{
		kind:   b.kind,
		dim:    b.dim,
		class:  b.class,
		params: cloneVec(b.params),
		fixed:  cloneVec(b.fixed),
	}
}

func (b *base) checkPoint(pt []float64) error {
	if len(pt) != b.dim {
		return errors.DimensionMismatch(errors.PhaseEvaluate, []string{"point"}, len(pt), b.dim)
	}
	return nil
}

func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// render produces the diagnostic representation shared by all backends.
func render(b simpletx.Backend) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (dimension %d)\n", b.ClassName(), b.Dimension())
	fmt.Fprintf(&sb, "  Parameters: %v\n", b.Parameters())
	fmt.Fprintf(&sb, "  FixedParameters: %v\n", b.FixedParameters())
	return sb.String()
}

// applyMatrixOffset maps pt through center + M*(pt-center) + trans.
func applyMatrixOffset(m mat.Matrix, center, trans, pt []float64) []float64 {
	dim := len(pt)
	d := make([]float64, dim)
	for i := range d {
		d[i] = pt[i] - center[i]
	}
	rotated := mat.NewVecDense(dim, nil)
	rotated.MulVec(m, mat.NewVecDense(dim, d))
	out := make([]float64, dim)
	for i := range out {
		out[i] = rotated.AtVec(i) + center[i] + trans[i]
	}
	return out
}
