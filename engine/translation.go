package engine

import "github.com/zgsxwsdxg/simpletx"

// Translation adds a fixed offset to every point. Parameters are the offset
// components; there are no fixed parameters.
type Translation struct {
	base
}

// NewTranslation creates a zero-offset translation backend.
func NewTranslation(dim int) *Translation {
	return &Translation{base{
		kind:   simpletx.KindTranslation,
		dim:    dim,
		class:  "TranslationTransform",
		params: make([]float64, dim),
		fixed:  []float64{},
	}}
}

func (t *Translation) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	out := make([]float64, t.dim)
	for i := range out {
		out[i] = pt[i] + t.params[i]
	}
	return out, nil
}

func (t *Translation) Clone() simpletx.Backend {
	return &Translation{t.cloneBase()}
}

func (t *Translation) String() string {
	return render(t)
}
