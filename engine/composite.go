package engine

import (
	"fmt"
	"strings"

	"github.com/zgsxwsdxg/simpletx"
	"github.com/zgsxwsdxg/simpletx/errors"
)

// Composite holds an ordered queue of child transforms. Points are mapped
// through the queue with the most recently added child applied first. The
// queue is never empty: Normalize inserts an identity child when needed.
// Exactly one child, the most recently added, carries the optimizable flag;
// the generic parameter accessors delegate to it.
type Composite struct {
	dim         int
	children    []simpletx.Backend
	optimizable []bool
}

// NewComposite creates a composite backend holding a single identity child.
func NewComposite(dim int) *Composite {
	c := &Composite{dim: dim}
	c.Normalize()
	return c
}

// NewCompositeOf creates a composite backend over the given children. With
// no children it is equivalent to NewComposite.
func NewCompositeOf(dim int, children ...simpletx.Backend) *Composite {
	c := &Composite{dim: dim, children: append([]simpletx.Backend(nil), children...)}
	c.Normalize()
	return c
}

func (t *Composite) Kind() simpletx.Kind { return simpletx.KindComposite }
func (t *Composite) Dimension() int      { return t.dim }
func (t *Composite) ClassName() string   { return "CompositeTransform" }

// Normalize inserts an identity child when the queue is empty and re-applies
// the most-recently-added optimizable policy.
func (t *Composite) Normalize() {
	if len(t.children) == 0 {
		t.children = []simpletx.Backend{NewIdentity(t.dim)}
	}
	t.optimizable = make([]bool, len(t.children))
	t.optimizable[len(t.children)-1] = true
}

// Append adds a child to the queue and marks it as the sole optimizable
// transform.
func (t *Composite) Append(child simpletx.Backend) {
	t.children = append(t.children, child)
	t.optimizable = make([]bool, len(t.children))
	t.optimizable[len(t.children)-1] = true
}

func (t *Composite) Children() []simpletx.Backend {
	out := make([]simpletx.Backend, len(t.children))
	copy(out, t.children)
	return out
}

func (t *Composite) Optimizable(i int) bool {
	return i >= 0 && i < len(t.optimizable) && t.optimizable[i]
}

// active returns the child the generic parameter accessors delegate to.
func (t *Composite) active() simpletx.Backend {
	return t.children[len(t.children)-1]
}

func (t *Composite) Parameters() []float64 {
	return t.active().Parameters()
}

func (t *Composite) SetParameters(p []float64) error {
	return t.active().SetParameters(p)
}

func (t *Composite) FixedParameters() []float64 {
	return t.active().FixedParameters()
}

func (t *Composite) SetFixedParameters(p []float64) error {
	return t.active().SetFixedParameters(p)
}

func (t *Composite) TransformPoint(pt []float64) ([]float64, error) {
	if len(pt) != t.dim {
		return nil, errors.DimensionMismatch(errors.PhaseEvaluate, []string{"point"}, len(pt), t.dim)
	}
	out := cloneVec(pt)
	for i := len(t.children) - 1; i >= 0; i-- {
		var err error
		out, err = t.children[i].TransformPoint(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (t *Composite) Clone() simpletx.Backend {
	c := &Composite{
		dim:         t.dim,
		children:    make([]simpletx.Backend, len(t.children)),
		optimizable: make([]bool, len(t.optimizable)),
	}
	for i, child := range t.children {
		c.children[i] = child.Clone()
	}
	copy(c.optimizable, t.optimizable)
	return c
}

func (t *Composite) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CompositeTransform (dimension %d, %d transforms)\n", t.dim, len(t.children))
	for i, child := range t.children {
		flag := ""
		if t.optimizable[i] {
			flag = " [optimizable]"
		}
		fmt.Fprintf(&sb, "  [%d]%s\n", i, flag)
		for _, line := range strings.Split(strings.TrimRight(child.String(), "\n"), "\n") {
			fmt.Fprintf(&sb, "    %s\n", line)
		}
	}
	return sb.String()
}
