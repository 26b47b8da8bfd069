package tfile

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zgsxwsdxg/simpletx"
	"github.com/zgsxwsdxg/simpletx/engine"
	"github.com/zgsxwsdxg/simpletx/errors"
	"github.com/zgsxwsdxg/simpletx/field"
	"github.com/zgsxwsdxg/simpletx/transform"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "transform.yaml")
}

// roundTrip writes tx and reads it back.
func roundTrip(t *testing.T, tx *transform.Transform) *transform.Transform {
	t.Helper()
	path := tempPath(t)
	require.NoError(t, Write(tx, path))
	got, err := Read(path)
	require.NoError(t, err)
	return got
}

func assertSamePointMapping(t *testing.T, want, got *transform.Transform, pt []float64) {
	t.Helper()
	wantOut, err := want.TransformPoint(pt)
	require.NoError(t, err)
	gotOut, err := got.TransformPoint(pt)
	require.NoError(t, err)
	assert.InDeltaSlice(t, wantOut, gotOut, 1e-12)
}

func TestRoundTrip_SimpleTransforms(t *testing.T) {
	tests := []struct {
		name   string
		kind   simpletx.Kind
		dim    int
		params []float64
		fixed  []float64
		pt     []float64
	}{
		{"identity 2d", simpletx.KindIdentity, 2, nil, nil, []float64{1, 2}},
		{"identity 3d", simpletx.KindIdentity, 3, nil, nil, []float64{1, 2, 3}},
		{"translation 3d", simpletx.KindTranslation, 3, []float64{1, 2, 3}, nil, []float64{0, 0, 0}},
		{"euler 2d", simpletx.KindEuler, 2, []float64{math.Pi / 3, 1, 0}, []float64{2, 2}, []float64{1, 1}},
		{"euler 3d", simpletx.KindEuler, 3, []float64{0.1, 0.2, 0.3, 1, 2, 3}, []float64{1, 1, 1}, []float64{4, 5, 6}},
		{"affine 2d", simpletx.KindAffine, 2, []float64{1, 2, 3, 4, 5, 6}, []float64{1, 0}, []float64{1, 1}},
		{"versor rigid", simpletx.KindVersorRigid, 3, []float64{0, 0, math.Sin(math.Pi / 4), 1, 0, 0}, []float64{0, 0, 0}, []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := transform.New(tt.kind, tt.dim)
			require.NoError(t, err)
			if tt.params != nil {
				require.NoError(t, tx.SetParameters(tt.params))
			}
			if tt.fixed != nil {
				require.NoError(t, tx.SetFixedParameters(tt.fixed))
			}

			got := roundTrip(t, tx)
			assertSamePointMapping(t, tx, got, tt.pt)
		})
	}
}

func TestRoundTrip_WrapsNonCompositeAsComposite(t *testing.T) {
	tx, err := transform.New(simpletx.KindTranslation, 3)
	require.NoError(t, err)
	require.NoError(t, tx.SetParameters([]float64{1, 2, 3}))

	got := roundTrip(t, tx)

	assert.Equal(t, simpletx.KindComposite, got.Kind())
	comp := got.Backend().(simpletx.CompositeBackend)
	children := comp.Children()
	require.Len(t, children, 1)
	assert.Equal(t, simpletx.KindTranslation, children[0].Kind())

	assertSamePointMapping(t, tx, got, []float64{5, 5, 5})
}

func TestRoundTrip_Composite(t *testing.T) {
	comp, err := transform.New(simpletx.KindComposite, 2)
	require.NoError(t, err)

	scale, err := transform.New(simpletx.KindScale, 2)
	require.NoError(t, err)
	require.NoError(t, scale.SetParameters([]float64{2, 2}))
	require.NoError(t, comp.AddTransform(scale))

	trans, err := transform.New(simpletx.KindTranslation, 2)
	require.NoError(t, err)
	require.NoError(t, trans.SetParameters([]float64{1, 0}))
	require.NoError(t, comp.AddTransform(trans))

	got := roundTrip(t, comp)

	children := got.Backend().(simpletx.CompositeBackend).Children()
	require.Len(t, children, 3)

	assertSamePointMapping(t, comp, got, []float64{1, 1})
}

func TestRoundTrip_DisplacementField(t *testing.T) {
	img, err := field.New(field.ElementVectorFloat64, []int{2, 2}, []float64{1, 1}, []float64{2, 2})
	require.NoError(t, err)
	require.NoError(t, img.SetVector([]int{0, 0}, []float64{0.5, -0.5}))
	require.NoError(t, img.SetVector([]int{1, 1}, []float64{1, 1}))

	tx, err := transform.NewDisplacementField(img)
	require.NoError(t, err)

	got := roundTrip(t, tx)

	for _, pt := range [][]float64{{1, 1}, {3, 3}, {100, 100}} {
		assertSamePointMapping(t, tx, got, pt)
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
}

func TestRead_MalformedYAML(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("transforms: [\n"), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidData))
}

func TestRead_NoTransforms(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("transforms: []\n"), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidData))
}

func TestRead_UnsupportedDimensions(t *testing.T) {
	docs := []string{
		"transforms:\n  - class_name: AffineTransform\n    input_dimension: 2\n    output_dimension: 3\n",
		"transforms:\n  - class_name: AffineTransform\n    input_dimension: 4\n    output_dimension: 4\n",
	}
	for _, doc := range docs {
		path := tempPath(t)
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		_, err := Read(path)
		require.Error(t, err)
		assert.True(t, errors.IsKind(err, errors.KindUnsupportedConfiguration))
	}
}

func TestRead_UnknownClass(t *testing.T) {
	path := tempPath(t)
	doc := "transforms:\n  - class_name: BSplineTransform\n    input_dimension: 2\n    output_dimension: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidData))
}

func TestRead_MatrixOffsetBaseReadAsAffine(t *testing.T) {
	doc := "transforms:\n" +
		"  - class_name: MatrixOffsetTransformBase\n" +
		"    input_dimension: 2\n" +
		"    output_dimension: 2\n" +
		"    fixed_parameters: [0, 0]\n" +
		"    parameters: [2, 0, 0, 2, 1, 1]\n"
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	got, err := Read(path)
	require.NoError(t, err)

	children := got.Backend().(simpletx.CompositeBackend).Children()
	require.Len(t, children, 1)
	assert.Equal(t, simpletx.KindAffine, children[0].Kind())

	out, err := got.TransformPoint([]float64{1, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 3}, out, 1e-12)
}

func TestRead_ExtraRecordsWarnAndAreIgnored(t *testing.T) {
	doc := "transforms:\n" +
		"  - class_name: TranslationTransform\n" +
		"    input_dimension: 2\n" +
		"    output_dimension: 2\n" +
		"    parameters: [1, 0]\n" +
		"  - class_name: TranslationTransform\n" +
		"    input_dimension: 2\n" +
		"    output_dimension: 2\n" +
		"    parameters: [0, 1]\n"
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var diags []Diagnostic
	got, err := Read(path, WithObserver(ObserverFunc(func(d Diagnostic) {
		diags = append(diags, d)
	})))
	require.NoError(t, err)

	require.Len(t, diags, 1)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
	assert.Equal(t, path, diags[0].File)
	assert.Contains(t, diags[0].Message, "more than one transform")

	// Only the first record survives.
	out, err := got.TransformPoint([]float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, out)
}

func TestRead_ParameterLengthMismatch(t *testing.T) {
	doc := "transforms:\n" +
		"  - class_name: TranslationTransform\n" +
		"    input_dimension: 2\n" +
		"    output_dimension: 2\n" +
		"    parameters: [1, 2, 3]\n"
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindDimensionMismatch))
}

func TestRead_NestedChildDimensionMismatch(t *testing.T) {
	doc := "transforms:\n" +
		"  - class_name: CompositeTransform\n" +
		"    input_dimension: 2\n" +
		"    output_dimension: 2\n" +
		"    transforms:\n" +
		"      - class_name: TranslationTransform\n" +
		"        input_dimension: 3\n" +
		"        output_dimension: 3\n" +
		"        parameters: [1, 2, 3]\n"
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindDimensionMismatch))
}

func TestRoundTrip_RecordTreeIsStable(t *testing.T) {
	comp, err := transform.New(simpletx.KindComposite, 3)
	require.NoError(t, err)

	euler, err := transform.New(simpletx.KindEuler, 3)
	require.NoError(t, err)
	require.NoError(t, euler.SetParameters([]float64{0.1, 0.2, 0.3, 1, 2, 3}))
	require.NoError(t, euler.SetFixedParameters([]float64{1, 1, 1}))
	require.NoError(t, comp.AddTransform(euler))

	got := roundTrip(t, comp)
	assertSamePointMapping(t, comp, got, []float64{4, 5, 6})

	// Writing the loaded transform again must reproduce the record tree
	// exactly.
	want := encodeBackend(comp.Backend())
	reencoded := encodeBackend(got.Backend())
	if diff := cmp.Diff(want, reencoded); diff != "" {
		t.Errorf("record tree changed across round-trip (-want +got):\n%s", diff)
	}
}

func TestWrite_NilTransform(t *testing.T) {
	require.Error(t, Write(nil, tempPath(t)))
}

func TestEncode_CompositeRecordsCarryNoParameters(t *testing.T) {
	comp := engine.NewComposite(2)
	rec := encodeBackend(comp)

	assert.Equal(t, "CompositeTransform", rec.ClassName)
	assert.Nil(t, rec.Parameters)
	assert.Nil(t, rec.FixedParameters)
	require.Len(t, rec.Transforms, 1)
	assert.Equal(t, "IdentityTransform", rec.Transforms[0].ClassName)
}
