package tfile

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zgsxwsdxg/simpletx"
	"github.com/zgsxwsdxg/simpletx/engine"
	"github.com/zgsxwsdxg/simpletx/errors"
	"github.com/zgsxwsdxg/simpletx/transform"
)

// Record is one transform in a file. Composite records nest their children
// under Transforms and carry no parameters of their own.
type Record struct {
	ClassName       string    `yaml:"class_name"`
	InputDimension  int       `yaml:"input_dimension"`
	OutputDimension int       `yaml:"output_dimension"`
	FixedParameters []float64 `yaml:"fixed_parameters,flow,omitempty"`
	Parameters      []float64 `yaml:"parameters,flow,omitempty"`
	Transforms      []Record  `yaml:"transforms,omitempty"`
}

type document struct {
	Transforms []Record `yaml:"transforms"`
}

// classKinds maps file class names to transform kinds. MatrixOffset records
// are a legacy spelling of affine and are read as such.
var classKinds = map[string]simpletx.Kind{
	"IdentityTransform":         simpletx.KindIdentity,
	"TranslationTransform":      simpletx.KindTranslation,
	"ScaleTransform":            simpletx.KindScale,
	"ScaleLogarithmicTransform": simpletx.KindScaleLogarithmic,
	"Euler2DTransform":          simpletx.KindEuler,
	"Euler3DTransform":          simpletx.KindEuler,
	"Similarity2DTransform":     simpletx.KindSimilarity,
	"Similarity3DTransform":     simpletx.KindSimilarity,
	"QuaternionRigidTransform":  simpletx.KindQuaternionRigid,
	"VersorTransform":           simpletx.KindVersor,
	"VersorRigid3DTransform":    simpletx.KindVersorRigid,
	"AffineTransform":           simpletx.KindAffine,
	"MatrixOffsetTransformBase": simpletx.KindAffine,
}

// Read loads a transform file and wraps its leading record as a composite
// transform. Records beyond the first are ignored with a warning delivered
// to the registered observers. The returned handle is fully constructed or
// nil, never partial.
func Read(path string, opts ...Option) (*transform.Transform, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhasePersist, errors.KindNotFound, err,
			fmt.Sprintf("read transform file %q", path))
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(errors.PhasePersist, errors.KindInvalidData, err,
			fmt.Sprintf("parse transform file %q", path))
	}

	if len(doc.Transforms) == 0 {
		return nil, errors.InvalidData(errors.PhasePersist, []string{"transforms"},
			fmt.Sprintf("read transform file %q, but there appears to be no transform in the file", path))
	}

	lead := doc.Transforms[0]
	if lead.InputDimension != lead.OutputDimension ||
		(lead.InputDimension != 2 && lead.InputDimension != 3) {
		return nil, errors.UnsupportedConfiguration(errors.PhasePersist, lead.ClassName,
			"unable to wrap transform with input dimension %d and output dimension %d",
			lead.InputDimension, lead.OutputDimension)
	}

	if len(doc.Transforms) > 1 {
		cfg.notify(Diagnostic{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("there is more than one transform in the file, only using the first (%d ignored)",
				len(doc.Transforms)-1),
			File: path,
		})
	}

	backend, err := decodeRecord(lead, lead.InputDimension, []string{"transforms", "0"})
	if err != nil {
		return nil, err
	}

	if comp, ok := backend.(*engine.Composite); ok {
		return transform.FromBackend(comp)
	}
	return transform.FromBackend(engine.NewCompositeOf(lead.InputDimension, backend))
}

// Write stores a transform's backend as the sole record of a file.
func Write(t *transform.Transform, path string) error {
	if t == nil {
		return errors.InvalidArgument(errors.PhasePersist, "nil transform")
	}
	doc := document{Transforms: []Record{encodeBackend(t.Backend())}}
	raw, err := yaml.Marshal(&doc)
	if err != nil {
		return errors.Wrap(errors.PhasePersist, errors.KindInvalidData, err, "encode transform")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrap(errors.PhasePersist, errors.KindInvalidData, err,
			fmt.Sprintf("write transform file %q", path))
	}
	return nil
}

func decodeRecord(rec Record, dim int, path []string) (simpletx.Backend, error) {
	if rec.InputDimension != dim || rec.OutputDimension != dim {
		return nil, errors.New(errors.PhasePersist, errors.KindDimensionMismatch).
			Path(path...).
			Class(rec.ClassName).
			Detail("record dimensions %dx%d do not match expected %d",
				rec.InputDimension, rec.OutputDimension, dim).
			Build()
	}

	switch rec.ClassName {
	case "CompositeTransform":
		children := make([]simpletx.Backend, 0, len(rec.Transforms))
		for i, childRec := range rec.Transforms {
			child, err := decodeRecord(childRec, dim, append(path[:len(path):len(path)], "transforms", strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return engine.NewCompositeOf(dim, children...), nil

	case "DisplacementFieldTransform":
		if len(rec.FixedParameters) != 3*dim {
			return nil, errors.DimensionMismatch(errors.PhasePersist, append(path, "fixed_parameters"),
				len(rec.FixedParameters), 3*dim)
		}
		size := make([]int, dim)
		for i := range size {
			size[i] = int(rec.FixedParameters[i])
		}
		return engine.NewDisplacementField(dim, size,
			rec.FixedParameters[dim:2*dim], rec.FixedParameters[2*dim:], rec.Parameters)

	default:
		kind, ok := classKinds[rec.ClassName]
		if !ok {
			return nil, errors.New(errors.PhasePersist, errors.KindInvalidData).
				Path(path...).
				Class(rec.ClassName).
				Detail("unknown transform class").
				Build()
		}
		b, err := engine.New(kind, dim)
		if err != nil {
			return nil, err
		}
		if err := b.SetFixedParameters(rec.FixedParameters); err != nil {
			return nil, errors.Wrap(errors.PhasePersist, errors.KindDimensionMismatch, err,
				fmt.Sprintf("fixed parameters of %s record", rec.ClassName))
		}
		if err := b.SetParameters(rec.Parameters); err != nil {
			return nil, errors.Wrap(errors.PhasePersist, errors.KindDimensionMismatch, err,
				fmt.Sprintf("parameters of %s record", rec.ClassName))
		}
		return b, nil
	}
}

func encodeBackend(b simpletx.Backend) Record {
	rec := Record{
		ClassName:       b.ClassName(),
		InputDimension:  b.Dimension(),
		OutputDimension: b.Dimension(),
	}
	if comp, ok := b.(simpletx.CompositeBackend); ok {
		for _, child := range comp.Children() {
			rec.Transforms = append(rec.Transforms, encodeBackend(child))
		}
		return rec
	}
	rec.FixedParameters = b.FixedParameters()
	rec.Parameters = b.Parameters()
	return rec
}
