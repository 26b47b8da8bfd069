package engine

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/zgsxwsdxg/simpletx"
)

// Similarity2D is a 2D rotation plus isotropic scale about a center,
// followed by a translation. Parameters are [scale, angle, tx, ty], fixed
// parameters the center.
type Similarity2D struct {
	base
}

// NewSimilarity2D creates an identity 2D similarity backend.
func NewSimilarity2D() *Similarity2D {
	return &Similarity2D{base{
		kind:   simpletx.KindSimilarity,
		dim:    2,
		class:  "Similarity2DTransform",
		params: []float64{1, 0, 0, 0},
		fixed:  make([]float64, 2),
	}}
}

func (t *Similarity2D) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	scale := t.params[0]
	sin, cos := math.Sincos(t.params[1])
	m := mat.NewDense(2, 2, []float64{
		scale * cos, -scale * sin,
		scale * sin, scale * cos,
	})
	return applyMatrixOffset(m, t.fixed, t.params[2:4], pt), nil
}

func (t *Similarity2D) Clone() simpletx.Backend {
	return &Similarity2D{t.cloneBase()}
}

func (t *Similarity2D) String() string {
	return render(t)
}

// Similarity3D is a 3D versor rotation plus isotropic scale about a center,
// followed by a translation. Parameters are
// [vx, vy, vz, tx, ty, tz, scale], fixed parameters the center.
type Similarity3D struct {
	base
}

// NewSimilarity3D creates an identity 3D similarity backend.
func NewSimilarity3D() *Similarity3D {
	return &Similarity3D{base{
		kind:   simpletx.KindSimilarity,
		dim:    3,
		class:  "Similarity3DTransform",
		params: []float64{0, 0, 0, 0, 0, 0, 1},
		fixed:  make([]float64, 3),
	}}
}

func (t *Similarity3D) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	scale := t.params[6]
	out := make([]float64, 3)
	rotated := rotateVersor(t.params[0:3], pt, t.fixed)
	for i := range out {
		out[i] = t.fixed[i] + scale*rotated[i] + t.params[3+i]
	}
	return out, nil
}

func (t *Similarity3D) Clone() simpletx.Backend {
	return &Similarity3D{t.cloneBase()}
}

func (t *Similarity3D) String() string {
	return render(t)
}
