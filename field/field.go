// Package field provides the vector image collaborator consumed by the
// displacement field constructor. An Image owns an interleaved buffer of
// per-voxel vectors on a regular grid; ownership of the buffer can be
// transferred out exactly once.
package field

import (
	"github.com/zgsxwsdxg/simpletx/errors"
)

// ElementType identifies the per-voxel element layout of an Image.
type ElementType uint8

const (
	ElementUnknown ElementType = iota
	ElementVectorFloat64
	ElementVectorFloat32
	ElementScalarFloat64
)

var elementNames = [...]string{
	ElementUnknown:       "unknown",
	ElementVectorFloat64: "vector-float64",
	ElementVectorFloat32: "vector-float32",
	ElementScalarFloat64: "scalar-float64",
}

func (e ElementType) String() string {
	if int(e) < len(elementNames) {
		return elementNames[e]
	}
	return "unknown"
}

// Image is a vector-valued image on a regular grid. Vectors are stored
// interleaved with axis 0 fastest; the vector length equals the grid
// dimension.
type Image struct {
	elem    ElementType
	dim     int
	size    []int
	origin  []float64
	spacing []float64
	buf     []float64
}

// New creates an image with an allocated zero buffer. Origin defaults to
// zeros, spacing to ones, when nil.
func New(elem ElementType, size []int, origin, spacing []float64) (*Image, error) {
	dim := len(size)
	if dim != 2 && dim != 3 {
		return nil, errors.InvalidArgument(errors.PhaseConstruct, "image dimension %d must be 2 or 3", dim)
	}
	if origin == nil {
		origin = make([]float64, dim)
	}
	if spacing == nil {
		spacing = make([]float64, dim)
		for i := range spacing {
			spacing[i] = 1
		}
	}
	if len(origin) != dim || len(spacing) != dim {
		return nil, errors.InvalidArgument(errors.PhaseConstruct, "origin and spacing must have %d components", dim)
	}
	total := dim
	for i, s := range size {
		if s <= 0 {
			return nil, errors.InvalidArgument(errors.PhaseConstruct, "size[%d] = %d must be positive", i, s)
		}
		total *= s
	}
	return &Image{
		elem:    elem,
		dim:     dim,
		size:    append([]int(nil), size...),
		origin:  append([]float64(nil), origin...),
		spacing: append([]float64(nil), spacing...),
		buf:     make([]float64, total),
	}, nil
}

// FromBuffer creates an image adopting buf without copying. buf must hold
// one dim-component vector per voxel.
func FromBuffer(elem ElementType, size []int, origin, spacing, buf []float64) (*Image, error) {
	img, err := New(elem, size, origin, spacing)
	if err != nil {
		return nil, err
	}
	if len(buf) != len(img.buf) {
		return nil, errors.DimensionMismatch(errors.PhaseConstruct, []string{"buffer"}, len(buf), len(img.buf))
	}
	img.buf = buf
	return img, nil
}

func (im *Image) ElementType() ElementType { return im.elem }
func (im *Image) Dimension() int           { return im.dim }

func (im *Image) Size() []int {
	return append([]int(nil), im.size...)
}

func (im *Image) Origin() []float64 {
	return append([]float64(nil), im.origin...)
}

func (im *Image) Spacing() []float64 {
	return append([]float64(nil), im.spacing...)
}

// IsEmpty reports whether the image's buffer has been taken or was never
// allocated.
func (im *Image) IsEmpty() bool {
	return len(im.buf) == 0
}

// SetVector writes the vector at the given grid index.
func (im *Image) SetVector(index []int, v []float64) error {
	flat, err := im.flatten(index)
	if err != nil {
		return err
	}
	if len(v) != im.dim {
		return errors.DimensionMismatch(errors.PhaseMutate, []string{"vector"}, len(v), im.dim)
	}
	copy(im.buf[flat*im.dim:(flat+1)*im.dim], v)
	return nil
}

// Vector reads the vector at the given grid index.
func (im *Image) Vector(index []int) ([]float64, error) {
	flat, err := im.flatten(index)
	if err != nil {
		return nil, err
	}
	out := make([]float64, im.dim)
	copy(out, im.buf[flat*im.dim:(flat+1)*im.dim])
	return out, nil
}

// TakeBuffer transfers ownership of the underlying buffer out of the image,
// leaving it empty. A second call returns nil.
func (im *Image) TakeBuffer() []float64 {
	buf := im.buf
	im.buf = nil
	return buf
}

func (im *Image) flatten(index []int) (int, error) {
	if len(index) != im.dim {
		return 0, errors.DimensionMismatch(errors.PhaseEvaluate, []string{"index"}, len(index), im.dim)
	}
	if im.IsEmpty() {
		return 0, errors.InvalidOperation(errors.PhaseEvaluate, "Image", "buffer has been taken")
	}
	flat := 0
	for i := im.dim - 1; i >= 0; i-- {
		if index[i] < 0 || index[i] >= im.size[i] {
			return 0, errors.InvalidArgument(errors.PhaseEvaluate, "index[%d] = %d out of bounds [0,%d)", i, index[i], im.size[i])
		}
		flat = flat*im.size[i] + index[i]
	}
	return flat, nil
}
