package engine

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/zgsxwsdxg/simpletx"
)

// QuaternionRigid is a 3D rotation expressed as a full quaternion, about a
// center, followed by a translation. Parameters are
// [qx, qy, qz, qw, tx, ty, tz], fixed parameters the center.
type QuaternionRigid struct {
	base
}

// NewQuaternionRigid creates an identity quaternion rigid backend.
func NewQuaternionRigid() *QuaternionRigid {
	return &QuaternionRigid{base{
		kind:   simpletx.KindQuaternionRigid,
		dim:    3,
		class:  "QuaternionRigidTransform",
		params: []float64{0, 0, 0, 1, 0, 0, 0},
		fixed:  make([]float64, 3),
	}}
}

func (t *QuaternionRigid) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	q := quat.Number{Real: t.params[3], Imag: t.params[0], Jmag: t.params[1], Kmag: t.params[2]}
	rotated := rotateQuat(q, pt, t.fixed)
	out := make([]float64, 3)
	for i := range out {
		out[i] = t.fixed[i] + rotated[i] + t.params[4+i]
	}
	return out, nil
}

func (t *QuaternionRigid) Clone() simpletx.Backend {
	return &QuaternionRigid{t.cloneBase()}
}

func (t *QuaternionRigid) String() string {
	return render(t)
}

// Versor is a pure 3D rotation about a center, parameterized by the vector
// part of a unit quaternion. Parameters are [vx, vy, vz], fixed parameters
// the center.
type Versor struct {
	base
}

// NewVersor creates an identity versor backend.
func NewVersor() *Versor {
	return &Versor{base{
		kind:   simpletx.KindVersor,
		dim:    3,
		class:  "VersorTransform",
		params: make([]float64, 3),
		fixed:  make([]float64, 3),
	}}
}

func (t *Versor) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	rotated := rotateVersor(t.params, pt, t.fixed)
	out := make([]float64, 3)
	for i := range out {
		out[i] = t.fixed[i] + rotated[i]
	}
	return out, nil
}

func (t *Versor) Clone() simpletx.Backend {
	return &Versor{t.cloneBase()}
}

func (t *Versor) String() string {
	return render(t)
}

// VersorRigid is a versor rotation about a center followed by a translation.
// Parameters are [vx, vy, vz, tx, ty, tz], fixed parameters the center.
type VersorRigid struct {
	base
}

// NewVersorRigid creates an identity versor rigid backend.
func NewVersorRigid() *VersorRigid {
	return &VersorRigid{base{
		kind:   simpletx.KindVersorRigid,
		dim:    3,
		class:  "VersorRigid3DTransform",
		params: make([]float64, 6),
		fixed:  make([]float64, 3),
	}}
}

func (t *VersorRigid) TransformPoint(pt []float64) ([]float64, error) {
	if err := t.checkPoint(pt); err != nil {
		return nil, err
	}
	rotated := rotateVersor(t.params[0:3], pt, t.fixed)
	out := make([]float64, 3)
	for i := range out {
		out[i] = t.fixed[i] + rotated[i] + t.params[3+i]
	}
	return out, nil
}

func (t *VersorRigid) Clone() simpletx.Backend {
	return &VersorRigid{t.cloneBase()}
}

func (t *VersorRigid) String() string {
	return render(t)
}

// rotateVersor rotates pt-center by the unit quaternion whose vector part is
// v. The real part is recovered from the unit norm constraint.
func rotateVersor(v, pt, center []float64) []float64 {
	w := math.Sqrt(math.Max(0, 1-v[0]*v[0]-v[1]*v[1]-v[2]*v[2]))
	q := quat.Number{Real: w, Imag: v[0], Jmag: v[1], Kmag: v[2]}
	return rotateQuat(q, pt, center)
}

// rotateQuat conjugates pt-center by q. Inv rather than Conj keeps the
// result correct when q drifts off unit norm.
func rotateQuat(q quat.Number, pt, center []float64) []float64 {
	p := quat.Number{
		Imag: pt[0] - center[0],
		Jmag: pt[1] - center[1],
		Kmag: pt[2] - center[2],
	}
	r := quat.Mul(quat.Mul(q, p), quat.Inv(q))
	return []float64{r.Imag, r.Jmag, r.Kmag}
}
