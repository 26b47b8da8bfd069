package simpletx

// Kind identifies a concrete transform parameterization.
type Kind uint8

const (
	KindIdentity Kind = iota
	KindTranslation
	KindScale
	KindScaleLogarithmic
	KindEuler
	KindSimilarity
	KindQuaternionRigid
	KindVersor
	KindVersorRigid
	KindAffine
	KindComposite
	KindDisplacementField
)

var kindNames = [...]string{
	KindIdentity:          "identity",
	KindTranslation:       "translation",
	KindScale:             "scale",
	KindScaleLogarithmic:  "scale-logarithmic",
	KindEuler:             "euler",
	KindSimilarity:        "similarity",
	KindQuaternionRigid:   "quaternion-rigid",
	KindVersor:            "versor",
	KindVersorRigid:       "versor-rigid",
	KindAffine:            "affine",
	KindComposite:         "composite",
	KindDisplacementField: "displacement-field",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ThreeDOnly reports whether the kind is defined for dimension 3 only.
// The quaternion and versor parameterizations have no 2D counterpart.
func (k Kind) ThreeDOnly() bool {
	switch k {
	case KindQuaternionRigid, KindVersor, KindVersorRigid:
		return true
	default:
		return false
	}
}

// Backend is the opaque numerical transform behind a Transform handle.
// Parameter semantics are kind-specific; the parameter vector length is
// fixed per kind and dimension and never changes after construction.
type Backend interface {
	Kind() Kind
	Dimension() int

	// ClassName returns the backend's diagnostic type name, also used as
	// the record class name by the tfile package.
	ClassName() string

	Parameters() []float64
	SetParameters(p []float64) error
	FixedParameters() []float64
	SetFixedParameters(p []float64) error

	TransformPoint(pt []float64) ([]float64, error)

	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Backend

	String() string
}

// CompositeBackend is implemented by backends holding an ordered queue of
// child transforms applied in sequence. The queue is never empty; at most
// one child, the most recently appended, is flagged optimizable.
type CompositeBackend interface {
	Backend

	// Append adds a child to the queue, marks it as the sole optimizable
	// transform, and clears the flag on every prior entry.
	Append(child Backend)

	Children() []Backend

	// Optimizable reports whether the child at index i carries the
	// optimizable flag.
	Optimizable(i int) bool
}
