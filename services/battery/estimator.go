// Package battery turns a pack voltage into a charge percentage.
//
// The estimate runs a constrained cubic spline through a fixed discharge
// table. Voltages at or beyond the table ends clamp to 0 and 100, and the
// result never decreases as voltage rises.
package battery

import (
	"math"

	"stampkey-go/errcode"
	"stampkey-go/x/interp"
	"stampkey-go/x/mathx"
)

// Estimator is immutable after construction and safe to share.
type Estimator struct {
	lo, hi float64
	curve  *interp.Constrained
}

// NewEstimator validates table and builds the curve.
func NewEstimator(table []Point) (*Estimator, error) {
	if err := validate(table); err != nil {
		return nil, err
	}
	xs := make([]float64, len(table))
	ys := make([]float64, len(table))
	for i, p := range table {
		xs[i], ys[i] = p.MilliVolts, p.Percent
	}
	curve, err := interp.NewConstrained(xs, ys)
	if err != nil {
		return nil, errcode.Wrap(errcode.InvalidTable, "battery", err)
	}
	return &Estimator{lo: xs[0], hi: xs[len(xs)-1], curve: curve}, nil
}

// Default returns the estimator for LiPo1S. It panics if the built-in
// table is broken, which is a build defect.
func Default() *Estimator {
	e, err := NewEstimator(LiPo1S)
	if err != nil {
		panic("battery: " + err.Error())
	}
	return e
}

// Percent estimates charge in [0,100] for a divider-compensated voltage.
func (e *Estimator) Percent(milliVolts float64) int {
	switch {
	case math.IsNaN(milliVolts), milliVolts <= e.lo:
		return 0
	case milliVolts >= e.hi:
		return 100
	}
	return mathx.Clamp(int(math.Round(e.curve.At(milliVolts))), 0, 100)
}
