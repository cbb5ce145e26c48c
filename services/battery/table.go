package battery

import (
	"stampkey-go/errcode"
)

// Point is one row of a discharge curve.
type Point struct {
	MilliVolts float64
	Percent    float64
}

// LiPo1S is the single-cell lithium-polymer discharge curve, 3270 mV empty
// to 4200 mV full. Steep at both ends, flat through the middle.
var LiPo1S = []Point{
	{3270, 0}, {3610, 5}, {3690, 10}, {3710, 15}, {3730, 20},
	{3750, 25}, {3770, 30}, {3790, 35}, {3800, 40}, {3820, 45},
	{3840, 50}, {3850, 55}, {3870, 60}, {3910, 65}, {3950, 70},
	{3980, 75}, {4020, 80}, {4080, 85}, {4110, 90}, {4150, 95},
	{4200, 100},
}

// validate checks the table is usable: at least two rows, strictly
// increasing in both columns, percentages within 0..100.
func validate(t []Point) error {
	if len(t) < 2 {
		return &errcode.E{C: errcode.InvalidTable, Op: "battery", Msg: "need at least two rows"}
	}
	for i, p := range t {
		if p.Percent < 0 || p.Percent > 100 {
			return &errcode.E{C: errcode.InvalidTable, Op: "battery", Msg: "percent out of range"}
		}
		if i == 0 {
			continue
		}
		if !(p.MilliVolts > t[i-1].MilliVolts) || !(p.Percent > t[i-1].Percent) {
			return &errcode.E{C: errcode.InvalidTable, Op: "battery", Msg: "rows not strictly increasing"}
		}
	}
	return nil
}
