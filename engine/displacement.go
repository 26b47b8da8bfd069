package engine

import (
	"math"

	"github.com/zgsxwsdxg/simpletx"
	"github.com/zgsxwsdxg/simpletx/errors"
)

// DisplacementField maps points by adding a sampled displacement vector.
// The field is a regular grid with per-axis size, origin and spacing; vectors
// are stored interleaved with axis 0 fastest. Parameters are the flattened
// field, fixed parameters [size..., origin..., spacing...].
//
// Points falling outside the grid are returned unchanged.
type DisplacementField struct {
	dim     int
	size    []int
	origin  []float64
	spacing []float64
	data    []float64
}

// NewDisplacementField creates a backend over a sampled displacement grid.
// data holds len(size) products * dim interleaved components.
func NewDisplacementField(dim int, size []int, origin, spacing, data []float64) (*DisplacementField, error) {
	if dim != 2 && dim != 3 {
		return nil, errors.UnsupportedConfiguration(errors.PhaseConstruct, "DisplacementFieldTransform",
			"invalid dimension %d for transform, must be 2 or 3", dim)
	}
	if len(size) != dim || len(origin) != dim || len(spacing) != dim {
		return nil, errors.InvalidArgument(errors.PhaseConstruct,
			"grid geometry must have %d components per axis vector", dim)
	}
	total := dim
	for i, s := range size {
		if s <= 0 {
			return nil, errors.InvalidArgument(errors.PhaseConstruct, "grid size[%d] = %d must be positive", i, s)
		}
		if spacing[i] <= 0 {
			return nil, errors.InvalidArgument(errors.PhaseConstruct, "grid spacing[%d] = %g must be positive", i, spacing[i])
		}
		total *= s
	}
	if len(data) != total {
		return nil, errors.DimensionMismatch(errors.PhaseConstruct, []string{"field"}, len(data), total)
	}
	t := &DisplacementField{
		dim:     dim,
		size:    append([]int(nil), size...),
		origin:  cloneVec(origin),
		spacing: cloneVec(spacing),
		data:    cloneVec(data),
	}
	return t, nil
}

func (t *DisplacementField) Kind() simpletx.Kind { return simpletx.KindDisplacementField }
func (t *DisplacementField) Dimension() int      { return t.dim }
func (t *DisplacementField) ClassName() string   { return "DisplacementFieldTransform" }

func (t *DisplacementField) Parameters() []float64 {
	return cloneVec(t.data)
}

func (t *DisplacementField) SetParameters(p []float64) error {
	if len(p) != len(t.data) {
		return errors.DimensionMismatch(errors.PhaseMutate, []string{"parameters"}, len(p), len(t.data))
	}
	copy(t.data, p)
	return nil
}

func (t *DisplacementField) FixedParameters() []float64 {
	out := make([]float64, 0, 3*t.dim)
	for _, s := range t.size {
		out = append(out, float64(s))
	}
	out = append(out, t.origin...)
	out = append(out, t.spacing...)
	return out
}

// SetFixedParameters replaces the grid geometry. The implied field length
// must match the existing data, the field itself never resizes.
func (t *DisplacementField) SetFixedParameters(p []float64) error {
	if len(p) != 3*t.dim {
		return errors.DimensionMismatch(errors.PhaseMutate, []string{"fixed_parameters"}, len(p), 3*t.dim)
	}
	size := make([]int, t.dim)
	total := t.dim
	for i := range size {
		size[i] = int(p[i])
		if size[i] <= 0 {
			return errors.InvalidArgument(errors.PhaseMutate, "grid size[%d] = %d must be positive", i, size[i])
		}
		total *= size[i]
	}
	if total != len(t.data) {
		return errors.DimensionMismatch(errors.PhaseMutate, []string{"fixed_parameters", "size"}, total, len(t.data))
	}
	t.size = size
	t.origin = cloneVec(p[t.dim : 2*t.dim])
	t.spacing = cloneVec(p[2*t.dim:])
	return nil
}

func (t *DisplacementField) TransformPoint(pt []float64) ([]float64, error) {
	if len(pt) != t.dim {
		return nil, errors.DimensionMismatch(errors.PhaseEvaluate, []string{"point"}, len(pt), t.dim)
	}
	idx := make([]int, t.dim)
	for i := range idx {
		ci := (pt[i] - t.origin[i]) / t.spacing[i]
		n := int(math.Round(ci))
		if n < 0 || n >= t.size[i] {
			return cloneVec(pt), nil
		}
		idx[i] = n
	}
	flat := 0
	for i := t.dim - 1; i >= 0; i-- {
		flat = flat*t.size[i] + idx[i]
	}
	out := make([]float64, t.dim)
	for i := range out {
		out[i] = pt[i] + t.data[flat*t.dim+i]
	}
	return out, nil
}

func (t *DisplacementField) Clone() simpletx.Backend {
	return &DisplacementField{
		dim:     t.dim,
		size:    append([]int(nil), t.size...),
		origin:  cloneVec(t.origin),
		spacing: cloneVec(t.spacing),
		data:    cloneVec(t.data),
	}
}

func (t *DisplacementField) String() string {
	return render(t)
}
