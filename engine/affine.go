package engine

import (
	"gonum.org/v1/gonum/mat"

	"github.com/zgsxwsdxg/simpletx"
)

// Affine is a full linear map about a center followed by a translation.
// Parameters are the row-major dim x dim matrix followed by the translation,
// fixed parameters the center.
type Affine struct {
	base
}

// NewAffine creates an identity affine backend.
func NewAffine(dim int) *Affine {
	params := make([]float64, dim*dim+dim)
	for i := 0; i < dim; i++ {
		params[i*dim+i] = 1
	}
	return &Affine{base{
		kind:   simpletx.KindAffine,
		dim:    dim,
		class:  "AffineTransform",
		params: params,
		fixed:  make([]float64, dim),
	}}
}

// Matrix returns the linear part as a dense matrix view of the parameters.
func (t *Affine) Matrix() *mat.Dense {
	return mat.NewDense(t.dim, t.dim, cloneVec(t.params[:t.dim*t.dim]))
}

func (t *Affine) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	m := mat.NewDense(t.dim, t.dim, t.params[:t.dim*t.dim])
	return applyMatrixOffset(m, t.fixed, t.params[t.dim*t.dim:], pt), nil
}

func (t *Affine) Clone() simpletx.Backend {
	return &Affine{t.cloneBase()}
}

func (t *Affine) String() string {
	return render(t)
}
