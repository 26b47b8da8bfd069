package engine

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/zgsxwsdxg/simpletx"
	"github.com/zgsxwsdxg/simpletx/errors"
)

// Euler2D is a rigid 2D transform: rotation about a center followed by a
// translation. Parameters are [angle, tx, ty], fixed parameters the center.
type Euler2D struct {
	base
}

// NewEuler2D creates an identity 2D rigid backend.
func NewEuler2D() *Euler2D {
	return &Euler2D{base{
		kind:   simpletx.KindEuler,
		dim:    2,
		class:  "Euler2DTransform",
		params: make([]float64, 3),
		fixed:  make([]float64, 2),
	}}
}

func (t *Euler2D) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	angle := t.params[0]
	sin, cos := math.Sincos(angle)
	m := mat.NewDense(2, 2, []float64{cos, -sin, sin, cos})
	return applyMatrixOffset(m, t.fixed, t.params[1:3], pt), nil
}

func (t *Euler2D) Clone() simpletx.Backend {
	return &Euler2D{t.cloneBase()}
}

func (t *Euler2D) String() string {
	return render(t)
}

// Euler3D is a rigid 3D transform parameterized by three Euler angles and a
// translation, rotating about a center. Parameters are
// [angleX, angleY, angleZ, tx, ty, tz], fixed parameters the center.
//
// The rotation order is Z*X*Y by default, Z*Y*X when the ComputeZYX flag is
// set. The flag is not part of the parameter vector; it is reachable only
// through the typed accessors.
type Euler3D struct {
	base
	computeZYX bool
}

// NewEuler3D creates an identity 3D rigid backend.
func NewEuler3D() *Euler3D {
	return &Euler3D{base: base{
		kind:   simpletx.KindEuler,
		dim:    3,
		class:  "Euler3DTransform",
		params: make([]float64, 6),
		fixed:  make([]float64, 3),
	}}
}

func (t *Euler3D) matrix() *mat.Dense {
	rx := rotX(t.params[0])
	ry := rotY(t.params[1])
	rz := rotZ(t.params[2])

	m := mat.NewDense(3, 3, nil)
	if t.computeZYX {
		m.Mul(rz, ry)
		m.Mul(m, rx)
	} else {
		m.Mul(rz, rx)
		m.Mul(m, ry)
	}
	return m
}

func (t *Euler3D) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	return applyMatrixOffset(t.matrix(), t.fixed, t.params[3:6], pt), nil
}

func (t *Euler3D) Clone() simpletx.Backend {
	return &Euler3D{base: t.cloneBase(), computeZYX: t.computeZYX}
}

func (t *Euler3D) String() string {
	return render(t)
}

// Typed accessors bound by the transform.Euler3D facade.

func (t *Euler3D) SetCenter(center []float64) error {
	return t.SetFixedParameters(center)
}

func (t *Euler3D) Center() []float64 {
	return t.FixedParameters()
}

func (t *Euler3D) SetTranslation(trans []float64) error {
	if len(trans) != 3 {
		return errors.DimensionMismatch(errors.PhaseMutate, []string{"translation"}, len(trans), 3)
	}
	copy(t.params[3:6], trans)
	return nil
}

func (t *Euler3D) Translation() []float64 {
	return cloneVec(t.params[3:6])
}

func (t *Euler3D) SetRotation(angleX, angleY, angleZ float64) {
	t.params[0] = angleX
	t.params[1] = angleY
	t.params[2] = angleZ
}

func (t *Euler3D) AngleX() float64 { return t.params[0] }
func (t *Euler3D) AngleY() float64 { return t.params[1] }
func (t *Euler3D) AngleZ() float64 { return t.params[2] }

func (t *Euler3D) SetComputeZYX(zyx bool) { t.computeZYX = zyx }
func (t *Euler3D) ComputeZYX() bool       { return t.computeZYX }

func rotX(a float64) *mat.Dense {
	sin, cos := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cos, -sin,
		0, sin, cos,
	})
}

func rotY(a float64) *mat.Dense {
	sin, cos := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		cos, 0, sin,
		0, 1, 0,
		-sin, 0, cos,
	})
}

func rotZ(a float64) *mat.Dense {
	sin, cos := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	})
}
