// Package interp provides lookup-table interpolation for firmware maths.
//
// Constrained is the Kruger constrained cubic spline: interior slopes are the
// harmonic mean of the neighbouring secants (zero at a local extremum), end
// slopes are chosen for zero curvature at the boundary. The curve passes
// through every knot and, for monotone data, never overshoots, so a monotone
// table always yields a monotone curve.
package interp

import "errors"

var (
	ErrTooFewPoints   = errors.New("interp: need at least two points")
	ErrLengthMismatch = errors.New("interp: x and y lengths differ")
	ErrNotIncreasing  = errors.New("interp: x values must be strictly increasing")
)

// Constrained is an immutable constrained cubic spline over (xs, ys).
type Constrained struct {
	xs, ys []float64
	ms     []float64 // slope at each knot
}

// NewConstrained validates the knots and precomputes the knot slopes.
// The slices are copied.
func NewConstrained(xs, ys []float64) (*Constrained, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	n := len(xs)
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < n; i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, ErrNotIncreasing
		}
	}
	c := &Constrained{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		ms: make([]float64, n),
	}
	c.slopes()
	return c, nil
}

func (c *Constrained) secant(i int) float64 {
	return (c.ys[i+1] - c.ys[i]) / (c.xs[i+1] - c.xs[i])
}

func (c *Constrained) slopes() {
	n := len(c.xs)
	if n == 2 {
		s := c.secant(0)
		c.ms[0], c.ms[1] = s, s
		return
	}
	for i := 1; i < n-1; i++ {
		a, b := c.secant(i-1), c.secant(i)
		if a*b <= 0 {
			c.ms[i] = 0
			continue
		}
		c.ms[i] = 2 / (1/a + 1/b)
	}
	c.ms[0] = endSlope(c.secant(0), c.ms[1])
	c.ms[n-1] = endSlope(c.secant(n-2), c.ms[n-2])

	// Fritsch-Carlson bound. The harmonic mean already satisfies it; the
	// clamp keeps the guarantee if the end slope rule is ever changed.
	for i := 0; i < n-1; i++ {
		s := c.secant(i)
		if s == 0 {
			c.ms[i], c.ms[i+1] = 0, 0
			continue
		}
		if c.ms[i]/s > 3 {
			c.ms[i] = 3 * s
		}
		if c.ms[i+1]/s > 3 {
			c.ms[i+1] = 3 * s
		}
	}
}

// endSlope gives zero second derivative at the boundary, kept on the side of
// the boundary secant so the first segment cannot turn back.
func endSlope(s, inner float64) float64 {
	m := 1.5*s - inner/2
	if m*s < 0 {
		return 0
	}
	return m
}

// Len returns the number of knots.
func (c *Constrained) Len() int { return len(c.xs) }

// At evaluates the spline. Inputs outside the knot range return the
// nearest end value.
func (c *Constrained) At(x float64) float64 {
	n := len(c.xs)
	if x <= c.xs[0] {
		return c.ys[0]
	}
	if x >= c.xs[n-1] {
		return c.ys[n-1]
	}
	k := c.segment(x)
	h := c.xs[k+1] - c.xs[k]
	t := (x - c.xs[k]) / h
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*c.ys[k] + h10*h*c.ms[k] + h01*c.ys[k+1] + h11*h*c.ms[k+1]
}

// segment returns k with xs[k] <= x < xs[k+1]; x must be inside the range.
func (c *Constrained) segment(x float64) int {
	lo, hi := 0, len(c.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if c.xs[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
