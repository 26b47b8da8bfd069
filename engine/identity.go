package engine

import "github.com/zgsxwsdxg/simpletx"

// Identity maps every point to itself. It carries no parameters.
type Identity struct {
	base
}

// NewIdentity creates an identity backend for the given dimension.
func NewIdentity(dim int) *Identity {
	return &Identity{base{
		kind:   simpletx.KindIdentity,
		dim:    dim,
		class:  "IdentityTransform",
		params: []float64{},
		fixed:  []float64{},
	}}
}

func (t *Identity) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	return cloneVec(pt), nil
}

func (t *Identity) Clone() simpletx.Backend {
	return &Identity{t.cloneBase()}
}

func (t *Identity) String() string {
	return render(t)
}
