package domain

// WaitCurve holds one predicted wait value per hour of the operating day.
// Values[0] is the prediction for StartHour; the curve covers consecutive
// hours. Curves are produced externally from historical and live data and
// consumed as opaque input.
type WaitCurve struct {
	StartHour int
	Values    []float64
}

// FlatCurve builds a constant curve, used as the neutral fallback when no
// forecast exists for an attraction.
func FlatCurve(startHour, hours int, value float64) WaitCurve {
	vals := make([]float64, hours)
	for i := range vals {
		vals[i] = value
	}
	return WaitCurve{StartHour: startHour, Values: vals}
}

func (c WaitCurve) IsZero() bool { return len(c.Values) == 0 }

// WaitAt interpolates the curve linearly to an arbitrary minute of the day.
// Minutes outside the covered range clamp to the nearest endpoint.
func (c WaitCurve) WaitAt(minute int) float64 {
	if c.IsZero() {
		return 0
	}

	offset := float64(minute)/60.0 - float64(c.StartHour)
	if offset <= 0 {
		return c.Values[0]
	}
	if offset >= float64(len(c.Values)-1) {
		return c.Values[len(c.Values)-1]
	}

	lo := int(offset)
	frac := offset - float64(lo)
	return c.Values[lo] + (c.Values[lo+1]-c.Values[lo])*frac
}

// Min returns the lowest predicted wait and the hour-of-day it occurs at.
// Ties resolve to the earliest hour so that flat curves prefer opening time.
func (c WaitCurve) Min() (float64, int) {
	if c.IsZero() {
		return 0, c.StartHour
	}

	best := c.Values[0]
	bestHour := c.StartHour
	for i, v := range c.Values[1:] {
		if v < best {
			best = v
			bestHour = c.StartHour + i + 1
		}
	}
	return best, bestHour
}

// Peak returns the highest predicted wait and its hour-of-day.
func (c WaitCurve) Peak() (float64, int) {
	if c.IsZero() {
		return 0, c.StartHour
	}

	peak := c.Values[0]
	peakHour := c.StartHour
	for i, v := range c.Values[1:] {
		if v > peak {
			peak = v
			peakHour = c.StartHour + i + 1
		}
	}
	return peak, peakHour
}

// Avg returns the mean predicted wait across the covered hours.
func (c WaitCurve) Avg() float64 {
	if c.IsZero() {
		return 0
	}

	sum := 0.0
	for _, v := range c.Values {
		sum += v
	}
	return sum / float64(len(c.Values))
}
