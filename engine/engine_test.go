package engine

import (
	"testing"

	"github.com/zgsxwsdxg/simpletx"
	"github.com/zgsxwsdxg/simpletx/errors"
)

func TestNew_SupportedConfigurations(t *testing.T) {
	tests := []struct {
		name      string
		kind      simpletx.Kind
		dim       int
		class     string
		numParams int
	}{
		{"identity 2D", simpletx.KindIdentity, 2, "IdentityTransform", 0},
		{"identity 3D", simpletx.KindIdentity, 3, "IdentityTransform", 0},
		{"translation 2D", simpletx.KindTranslation, 2, "TranslationTransform", 2},
		{"translation 3D", simpletx.KindTranslation, 3, "TranslationTransform", 3},
		{"scale 2D", simpletx.KindScale, 2, "ScaleTransform", 2},
		{"scale 3D", simpletx.KindScale, 3, "ScaleTransform", 3},
		{"scale logarithmic 2D", simpletx.KindScaleLogarithmic, 2, "ScaleLogarithmicTransform", 2},
		{"scale logarithmic 3D", simpletx.KindScaleLogarithmic, 3, "ScaleLogarithmicTransform", 3},
		{"euler 2D", simpletx.KindEuler, 2, "Euler2DTransform", 3},
		{"euler 3D", simpletx.KindEuler, 3, "Euler3DTransform", 6},
		{"similarity 2D", simpletx.KindSimilarity, 2, "Similarity2DTransform", 4},
		{"similarity 3D", simpletx.KindSimilarity, 3, "Similarity3DTransform", 7},
		{"quaternion rigid 3D", simpletx.KindQuaternionRigid, 3, "QuaternionRigidTransform", 7},
		{"versor 3D", simpletx.KindVersor, 3, "VersorTransform", 3},
		{"versor rigid 3D", simpletx.KindVersorRigid, 3, "VersorRigid3DTransform", 6},
		{"affine 2D", simpletx.KindAffine, 2, "AffineTransform", 6},
		{"affine 3D", simpletx.KindAffine, 3, "AffineTransform", 12},
		{"composite 2D", simpletx.KindComposite, 2, "CompositeTransform", 0},
		{"composite 3D", simpletx.KindComposite, 3, "CompositeTransform", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.kind, tt.dim)
			if err != nil {
				t.Fatalf("New(%v, %d) failed: %v", tt.kind, tt.dim, err)
			}
			if b.Kind() != tt.kind {
				t.Errorf("Kind = %v, want %v", b.Kind(), tt.kind)
			}
			if b.Dimension() != tt.dim {
				t.Errorf("Dimension = %d, want %d", b.Dimension(), tt.dim)
			}
			if b.ClassName() != tt.class {
				t.Errorf("ClassName = %q, want %q", b.ClassName(), tt.class)
			}
			if got := len(b.Parameters()); got != tt.numParams {
				t.Errorf("len(Parameters) = %d, want %d", got, tt.numParams)
			}
		})
	}
}

func TestNew_UnsupportedConfigurations(t *testing.T) {
	tests := []struct {
		name string
		kind simpletx.Kind
		dim  int
		want errors.Kind
	}{
		{"quaternion rigid 2D", simpletx.KindQuaternionRigid, 2, errors.KindUnsupportedConfiguration},
		{"versor 2D", simpletx.KindVersor, 2, errors.KindUnsupportedConfiguration},
		{"versor rigid 2D", simpletx.KindVersorRigid, 2, errors.KindUnsupportedConfiguration},
		{"dimension 0", simpletx.KindIdentity, 0, errors.KindUnsupportedConfiguration},
		{"dimension 1", simpletx.KindTranslation, 1, errors.KindUnsupportedConfiguration},
		{"dimension 4", simpletx.KindAffine, 4, errors.KindUnsupportedConfiguration},
		{"displacement field via generic path", simpletx.KindDisplacementField, 3, errors.KindInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.kind, tt.dim)
			if err == nil {
				t.Fatalf("New(%v, %d) succeeded, want error", tt.kind, tt.dim)
			}
			if b != nil {
				t.Errorf("New returned non-nil backend alongside error")
			}
			if !errors.IsKind(err, tt.want) {
				t.Errorf("error kind = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBase_SetParametersLengthCheck(t *testing.T) {
	b, err := New(simpletx.KindEuler, 3)
	if err != nil {
		t.Fatal(err)
	}

	orig := b.Parameters()
	if err := b.SetParameters([]float64{1, 2, 3}); err == nil {
		t.Fatal("SetParameters with wrong length should fail")
	} else if !errors.IsKind(err, errors.KindDimensionMismatch) {
		t.Errorf("error = %v, want dimension_mismatch", err)
	}

	after := b.Parameters()
	for i := range orig {
		if after[i] != orig[i] {
			t.Fatalf("parameters changed after failed SetParameters: %v -> %v", orig, after)
		}
	}
}

func TestBase_ParametersAreCopies(t *testing.T) {
	b, err := New(simpletx.KindTranslation, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetParameters([]float64{1, 2}); err != nil {
		t.Fatal(err)
	}

	p := b.Parameters()
	p[0] = 99
	if got := b.Parameters()[0]; got != 1 {
		t.Errorf("mutating the returned slice leaked into the backend: %v", got)
	}
}

func TestTransformPoint_WrongLength(t *testing.T) {
	for _, dim := range []int{2, 3} {
		b, err := New(simpletx.KindIdentity, dim)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := b.TransformPoint(make([]float64, dim+1)); !errors.IsKind(err, errors.KindDimensionMismatch) {
			t.Errorf("dim %d: error = %v, want dimension_mismatch", dim, err)
		}
	}
}

func TestClone_Isolation(t *testing.T) {
	b, err := New(simpletx.KindTranslation, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetParameters([]float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	c := b.Clone()
	if err := c.SetParameters([]float64{9, 9, 9}); err != nil {
		t.Fatal(err)
	}

	if got := b.Parameters()[0]; got != 1 {
		t.Errorf("mutating the clone changed the original: %v", b.Parameters())
	}
	if got := c.Parameters()[0]; got != 9 {
		t.Errorf("clone parameters = %v, want [9 9 9]", c.Parameters())
	}
}
