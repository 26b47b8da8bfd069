package engine

import (
	"math"

	"github.com/zgsxwsdxg/simpletx"
)

// Scale applies a per-axis scale about a center point. Parameters are the
// axis factors, fixed parameters the center. The logarithmic variant stores
// log-factors so additive parameter updates compose multiplicatively.
type Scale struct {
	base
	logarithmic bool
}

// NewScale creates a unit scale backend.
func NewScale(dim int) *Scale {
	factors := make([]float64, dim)
	for i := range factors {
		factors[i] = 1
	}
	return &Scale{base: base{
		kind:   simpletx.KindScale,
		dim:    dim,
		class:  "ScaleTransform",
		params: factors,
		fixed:  make([]float64, dim),
	}}
}

// NewScaleLogarithmic creates a unit scale backend with log-factor parameters.
func NewScaleLogarithmic(dim int) *Scale {
	return &Scale{
		base: base{
			kind:   simpletx.KindScaleLogarithmic,
			dim:    dim,
			class:  "ScaleLogarithmicTransform",
			params: make([]float64, dim),
			fixed:  make([]float64, dim),
		},
		logarithmic: true,
	}
}

func (t *Scale) factor(i int) float64 {
	if t.logarithmic {
		return math.Exp(t.params[i])
	}
	return t.params[i]
}

func (t *Scale) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	out := make([]float64, t.dim)
	for i := range out {
		c := t.fixed[i]
		out[i] = c + t.factor(i)*(pt[i]-c)
	}
	return out, nil
}

func (t *Scale) Clone() simpletx.Backend {
	return &Scale{base: t.cloneBase(), logarithmic: t.logarithmic}
}

func (t *Scale) String() string {
	return render(t)
}
