// Package engine implements the numerical transform backends behind the
// transform facade.
//
// Each transform kind has one backend type per dimension family. Backends
// own their parameter and fixed-parameter vectors, map points, and deep-copy
// themselves for copy-on-write. Matrix-and-offset kinds compute their matrix
// with gonum/mat; the quaternion and versor kinds rotate points with
// gonum/num/quat.
//
// Parameter layouts per kind, compatible with the transform file format:
//
//	IdentityTransform          none
//	TranslationTransform       [t...]
//	ScaleTransform             [s...]                 fixed: center
//	ScaleLogarithmicTransform  [log s...]             fixed: center
//	Euler2DTransform           [angle, tx, ty]        fixed: center
//	Euler3DTransform           [ax, ay, az, t...]     fixed: center
//	Similarity2DTransform      [scale, angle, t...]   fixed: center
//	Similarity3DTransform      [versor..., t..., s]   fixed: center
//	QuaternionRigidTransform   [qx, qy, qz, qw, t...] fixed: center
//	VersorTransform            [vx, vy, vz]           fixed: center
//	VersorRigid3DTransform     [versor..., t...]      fixed: center
//	AffineTransform            [matrix..., t...]      fixed: center
//	CompositeTransform         optimizable child's parameters
//	DisplacementFieldTransform flattened field        fixed: size, origin, spacing
//
// Construct backends through New, or through the dedicated constructors when
// a kindxdimension switch is not wanted.
package engine
