package battery

// ADC samples an analog channel in millivolts at the pin.
type ADC interface {
	ReadMilliVolts(channel int) float64
}

// Reading is one boot-time battery measurement.
type Reading struct {
	MilliVolts float64 // pack voltage after divider compensation
	Percent    int
}

// Measure samples channel, undoes the divider and estimates the charge.
func (e *Estimator) Measure(adc ADC, channel int, dividerRatio float64) Reading {
	mv := adc.ReadMilliVolts(channel) * dividerRatio
	return Reading{MilliVolts: mv, Percent: e.Percent(mv)}
}
