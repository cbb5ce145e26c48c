package battery

import (
	"math"
	"testing"

	"stampkey-go/errcode"
)

func TestPercent_ClampsAtTableEnds(t *testing.T) {
	e := Default()
	for _, v := range []float64{-100, 0, 3000, 3269.9, 3270} {
		if got := e.Percent(v); got != 0 {
			t.Fatalf("Percent(%v) = %d, want 0", v, got)
		}
	}
	for _, v := range []float64{4200, 4200.1, 4300, 1e9, math.Inf(1)} {
		if got := e.Percent(v); got != 100 {
			t.Fatalf("Percent(%v) = %d, want 100", v, got)
		}
	}
	if got := e.Percent(math.NaN()); got != 0 {
		t.Fatalf("Percent(NaN) = %d, want 0", got)
	}
}

func TestPercent_MatchesTableRows(t *testing.T) {
	e := Default()
	for _, p := range LiPo1S {
		got := e.Percent(p.MilliVolts)
		if d := got - int(p.Percent); d < -1 || d > 1 {
			t.Fatalf("Percent(%v) = %d, want %v±1", p.MilliVolts, got, p.Percent)
		}
	}
}

func TestPercent_MonotoneDense(t *testing.T) {
	e := Default()
	prev := -1
	for mv := 3000.0; mv <= 4300.0; mv += 0.25 {
		got := e.Percent(mv)
		if got < prev {
			t.Fatalf("Percent decreased at %v mV: %d < %d", mv, got, prev)
		}
		if got < 0 || got > 100 {
			t.Fatalf("Percent(%v) = %d out of range", mv, got)
		}
		prev = got
	}
}

func TestPercent_MidCurve(t *testing.T) {
	e := Default()
	// Between 3840/50 and 3850/55 the estimate must stay inside the segment.
	got := e.Percent(3845)
	if got < 50 || got > 55 {
		t.Fatalf("Percent(3845) = %d, want within [50,55]", got)
	}
	// Long first segment: 3440 mV is low but not empty.
	if got := e.Percent(3440); got <= 0 || got >= 5 {
		t.Fatalf("Percent(3440) = %d, want within (0,5)", got)
	}
}

func TestNewEstimator_RejectsBadTables(t *testing.T) {
	cases := map[string][]Point{
		"short":          {{3000, 0}},
		"flat voltage":   {{3000, 0}, {3000, 50}, {4000, 100}},
		"falling pct":    {{3000, 10}, {3500, 5}, {4000, 100}},
		"pct over range": {{3000, 0}, {4000, 120}},
	}
	for name, tbl := range cases {
		if _, err := NewEstimator(tbl); errcode.Of(err) != errcode.InvalidTable {
			t.Fatalf("%s: err = %v, want invalid_table", name, err)
		}
	}
}

type fixedADC float64

func (f fixedADC) ReadMilliVolts(int) float64 { return float64(f) }

func TestMeasure_AppliesDivider(t *testing.T) {
	e := Default()
	r := e.Measure(fixedADC(2100), 1, 2)
	if r.MilliVolts != 4200 || r.Percent != 100 {
		t.Fatalf("reading = %+v", r)
	}
	r = e.Measure(fixedADC(1865), 1, 2)
	if r.MilliVolts != 3730 || r.Percent < 19 || r.Percent > 21 {
		t.Fatalf("reading = %+v", r)
	}
}

// On the linear 3710..3730 segment these inputs sit on exact .5 ties;
// either neighbour is an acceptable rounding.
func TestPercent_HalfTiesOnLinearSegment(t *testing.T) {
	e := Default()
	for mv, lo := range map[float64]int{3716: 16, 3728: 19} {
		if got := e.Percent(mv); got != lo && got != lo+1 {
			t.Fatalf("Percent(%v) = %d, want %d or %d", mv, got, lo, lo+1)
		}
	}
}
