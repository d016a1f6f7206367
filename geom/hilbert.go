package geom

import (
	"fmt"
	"math"

	"github.com/google/hilbert"
)

// HilbertCurve maps points of a bounding region onto a Hilbert curve. Sorting
// regions by the index of their centers keeps consecutive regions spatially
// close.
type HilbertCurve struct {
	h      *hilbert.Hilbert
	bounds Region
	n      int
}

// NewHilbertCurve returns a curve over bounds with n cells per side. n must be
// a power of two.
func NewHilbertCurve(bounds Region, n int) (*HilbertCurve, error) {
	if !bounds.IsValid() {
		return nil, fmt.Errorf("geom: invalid hilbert bounds %v", bounds)
	}
	h, err := hilbert.NewHilbert(n)
	if err != nil {
		return nil, fmt.Errorf("geom: %w", err)
	}
	return &HilbertCurve{h: h, bounds: bounds, n: n}, nil
}

// Index returns the position of p along the curve. Points outside the bounds
// are clamped to the border cells.
func (c *HilbertCurve) Index(p Point) int {
	x := c.cell(p.X, c.bounds.X1, c.bounds.Width())
	y := c.cell(p.Y, c.bounds.Y1, c.bounds.Height())
	t, err := c.h.MapInverse(x, y)
	if err != nil {
		// cell is clamped into [0, n), so MapInverse cannot fail
		panic(err)
	}
	return t
}

func (c *HilbertCurve) cell(v, origin, extent float64) int {
	i := int(math.Floor((v - origin) / extent * float64(c.n)))
	return max(0, min(c.n-1, i))
}
