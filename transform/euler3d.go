package transform

import (
	"github.com/zgsxwsdxg/simpletx"
	"github.com/zgsxwsdxg/simpletx/engine"
	"github.com/zgsxwsdxg/simpletx/errors"
)

// Euler3D is the typed facade over a 3D Euler rotation backend. It offers
// named accessors (center, translation, per-axis angles, rotation order)
// instead of the raw parameter vector.
//
// The facade binds a table of typed closures against the concrete backend
// instance at construction time. Every mutating accessor re-validates the
// binding after copy-on-write so a clone never mutates through stale
// bindings pointing at the original shared backend. When the handle's
// backend is replaced by an incompatible kind, the bindings are cleared and
// accessors fail with a not_bound error.
type Euler3D struct {
	*Transform
	bound simpletx.Backend
	pf    euler3DOps
}

// euler3DOps is the accessor binding table, recaptured whenever the backend
// identity changes.
type euler3DOps struct {
	setCenter      func([]float64) error
	getCenter      func() []float64
	setTranslation func([]float64) error
	getTranslation func() []float64
	setRotation    func(float64, float64, float64)
	getAngleX      func() float64
	getAngleY      func() float64
	getAngleZ      func() float64
	setComputeZYX  func(bool)
	getComputeZYX  func() bool
}

// NewEuler3D constructs an identity 3D Euler transform with bound accessors.
func NewEuler3D() (*Euler3D, error) {
	tx, err := New(simpletx.KindEuler, 3)
	if err != nil {
		return nil, err
	}
	e := &Euler3D{Transform: tx}
	e.rebind()
	return e, nil
}

// NewEuler3DFrom constructs a 3D Euler transform about fixedCenter with the
// given angles and translation.
func NewEuler3DFrom(fixedCenter []float64, angleX, angleY, angleZ float64, translation []float64) (*Euler3D, error) {
	e, err := NewEuler3D()
	if err != nil {
		return nil, err
	}
	if err := e.SetFixedParameters(fixedCenter); err != nil {
		return nil, err
	}
	if len(translation) != 3 {
		return nil, errors.DimensionMismatch(errors.PhaseConstruct, []string{"translation"}, len(translation), 3)
	}
	params := []float64{angleX, angleY, angleZ, translation[0], translation[1], translation[2]}
	if err := e.SetParameters(params); err != nil {
		return nil, err
	}
	return e, nil
}

// Copy returns a value-semantics alias rebound against the shared backend.
func (e *Euler3D) Copy() *Euler3D {
	c := &Euler3D{Transform: e.Transform.Copy()}
	c.rebind()
	return c
}

// rebind recaptures the accessor table when the backend identity changed.
// It reports whether the facade is bound afterwards. The common case, same
// backend instance as last time, is a single pointer compare.
func (e *Euler3D) rebind() bool {
	b := e.s.backend
	if b == e.bound {
		return e.bound != nil
	}
	t3, ok := b.(*engine.Euler3D)
	if !ok {
		e.bound = nil
		e.pf = euler3DOps{}
		return false
	}
	e.bound = b
	e.pf = euler3DOps{
		setCenter:      t3.SetCenter,
		getCenter:      t3.Center,
		setTranslation: t3.SetTranslation,
		getTranslation: t3.Translation,
		setRotation:    t3.SetRotation,
		getAngleX:      t3.AngleX,
		getAngleY:      t3.AngleY,
		getAngleZ:      t3.AngleZ,
		setComputeZYX:  t3.SetComputeZYX,
		getComputeZYX:  t3.ComputeZYX,
	}
	return true
}

// SetCenter sets the fixed rotation center.
func (e *Euler3D) SetCenter(center []float64) error {
	e.makeUnique()
	if !e.rebind() {
		return errors.NotBound("Euler3DTransform", "SetCenter")
	}
	return e.pf.setCenter(center)
}

// Center returns the fixed rotation center.
func (e *Euler3D) Center() ([]float64, error) {
	if !e.rebind() {
		return nil, errors.NotBound("Euler3DTransform", "GetCenter")
	}
	return e.pf.getCenter(), nil
}

// SetRotation sets all three Euler angles.
func (e *Euler3D) SetRotation(angleX, angleY, angleZ float64) error {
	e.makeUnique()
	if !e.rebind() {
		return errors.NotBound("Euler3DTransform", "SetRotation")
	}
	e.pf.setRotation(angleX, angleY, angleZ)
	return nil
}

// AngleX returns the rotation angle about the X axis.
func (e *Euler3D) AngleX() (float64, error) {
	if !e.rebind() {
		return 0, errors.NotBound("Euler3DTransform", "GetAngleX")
	}
	return e.pf.getAngleX(), nil
}

// AngleY returns the rotation angle about the Y axis.
func (e *Euler3D) AngleY() (float64, error) {
	if !e.rebind() {
		return 0, errors.NotBound("Euler3DTransform", "GetAngleY")
	}
	return e.pf.getAngleY(), nil
}

// AngleZ returns the rotation angle about the Z axis.
func (e *Euler3D) AngleZ() (float64, error) {
	if !e.rebind() {
		return 0, errors.NotBound("Euler3DTransform", "GetAngleZ")
	}
	return e.pf.getAngleZ(), nil
}

// SetTranslation sets the translation component.
func (e *Euler3D) SetTranslation(translation []float64) error {
	e.makeUnique()
	if !e.rebind() {
		return errors.NotBound("Euler3DTransform", "SetTranslation")
	}
	return e.pf.setTranslation(translation)
}

// Translation returns the translation component.
func (e *Euler3D) Translation() ([]float64, error) {
	if !e.rebind() {
		return nil, errors.NotBound("Euler3DTransform", "GetTranslation")
	}
	return e.pf.getTranslation(), nil
}

// SetComputeZYX selects the Z*Y*X rotation order instead of the default
// Z*X*Y.
func (e *Euler3D) SetComputeZYX(zyx bool) error {
	e.makeUnique()
	if !e.rebind() {
		return errors.NotBound("Euler3DTransform", "SetComputeZYX")
	}
	e.pf.setComputeZYX(zyx)
	return nil
}

// ComputeZYX reports the rotation order flag.
func (e *Euler3D) ComputeZYX() (bool, error) {
	if !e.rebind() {
		return false, errors.NotBound("Euler3DTransform", "GetComputeZYX")
	}
	return e.pf.getComputeZYX(), nil
}
