// Package simpletx provides a simplified, value-semantics facade over a
// hierarchy of geometric transforms used in medical image registration.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	simpletx/          Root package with the Backend interface and Kind enum
//	├── transform/     Value-semantics Transform handle with copy-on-write,
//	│                  backend selection and the Euler3D typed facade
//	├── engine/        Numerical backends, one per transform kind and dimension
//	├── field/         Vector image collaborator for displacement fields
//	├── tfile/         Transform file reading and writing
//	├── errors/        Structured error types for debugging
//	└── cmd/txinfo/    CLI for inspecting and evaluating transform files
//
// # Quick Start
//
// Construct a transform, set its parameters, and map a point:
//
//	tx, err := transform.New(simpletx.KindEuler, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tx.SetParameters([]float64{0, 0, math.Pi / 2, 0, 0, 0})
//	out, _ := tx.TransformPoint([]float64{1, 0, 0})
//
// Handles have value semantics over a shared backend. Copy is O(1); the
// first mutation through either handle clones the backend so the two
// diverge without observing one another:
//
//	a, _ := transform.New(simpletx.KindTranslation, 2)
//	b := a.Copy()
//	b.SetParameters([]float64{5, 5}) // a is unchanged
//
// Typed facades expose named accessors instead of raw parameter vectors.
// For the 3D Euler rotation:
//
//	e, _ := transform.NewEuler3D()
//	e.SetRotation(0, 0, math.Pi/4)
//	ax, _ := e.AngleX()
//
// Transforms round-trip through files via the tfile package:
//
//	tfile.Write(tx, "rigid.yaml")
//	loaded, err := tfile.Read("rigid.yaml")
//
// # Thread Safety
//
// Transform is a single-threaded value type. The copy-on-write check is not
// atomic: handles aliasing one backend must not be mutated concurrently.
// Read-only operations may run concurrently as long as no mutator does.
package simpletx
