package domain

import "testing"

func TestWaitCurveWaitAtInterpolates(t *testing.T) {
	c := WaitCurve{StartHour: 9, Values: []float64{10, 30, 50}}

	if got := c.WaitAt(9 * 60); got != 10 {
		t.Fatalf("WaitAt(09:00) = %v, want 10", got)
	}
	if got := c.WaitAt(9*60 + 30); got != 20 {
		t.Fatalf("WaitAt(09:30) = %v, want 20", got)
	}
	if got := c.WaitAt(10 * 60); got != 30 {
		t.Fatalf("WaitAt(10:00) = %v, want 30", got)
	}
}

func TestWaitCurveWaitAtClampsOutsideRange(t *testing.T) {
	c := WaitCurve{StartHour: 9, Values: []float64{10, 30, 50}}

	if got := c.WaitAt(6 * 60); got != 10 {
		t.Fatalf("WaitAt before range = %v, want 10", got)
	}
	if got := c.WaitAt(23 * 60); got != 50 {
		t.Fatalf("WaitAt after range = %v, want 50", got)
	}
}

func TestWaitCurveMinTiesToEarliestHour(t *testing.T) {
	c := WaitCurve{StartHour: 9, Values: []float64{20, 5, 30, 5, 40}}

	min, hour := c.Min()
	if min != 5 {
		t.Fatalf("min = %v, want 5", min)
	}
	if hour != 10 {
		t.Fatalf("min hour = %d, want 10", hour)
	}
}

func TestWaitCurvePeakAndAvg(t *testing.T) {
	c := WaitCurve{StartHour: 9, Values: []float64{10, 40, 70, 40}}

	peak, hour := c.Peak()
	if peak != 70 || hour != 11 {
		t.Fatalf("peak = %v at %d, want 70 at 11", peak, hour)
	}
	if got := c.Avg(); got != 40 {
		t.Fatalf("avg = %v, want 40", got)
	}
}

func TestFlatCurveIsConstant(t *testing.T) {
	c := FlatCurve(9, 12, 15)

	if c.IsZero() {
		t.Fatal("flat curve reported as zero")
	}
	for _, m := range []int{9 * 60, 12 * 60, 20 * 60} {
		if got := c.WaitAt(m); got != 15 {
			t.Fatalf("WaitAt(%d) = %v, want 15", m, got)
		}
	}
	min, _ := c.Min()
	peak, _ := c.Peak()
	if min != 15 || peak != 15 {
		t.Fatalf("min/peak = %v/%v, want 15/15", min, peak)
	}
}

func TestZeroCurve(t *testing.T) {
	var c WaitCurve

	if !c.IsZero() {
		t.Fatal("empty curve not reported as zero")
	}
	if got := c.WaitAt(600); got != 0 {
		t.Fatalf("WaitAt on zero curve = %v, want 0", got)
	}
}

func TestParseTierRoundTrip(t *testing.T) {
	for _, tier := range []Tier{TierMinor, TierStandard, TierPopular, TierFlagship} {
		if got := ParseTier(tier.String()); got != tier {
			t.Fatalf("ParseTier(%q) = %v, want %v", tier.String(), got, tier)
		}
	}
	if got := ParseTier("mystery"); got != TierStandard {
		t.Fatalf("ParseTier fallback = %v, want TierStandard", got)
	}
}

func TestAnchorBlockedWindow(t *testing.T) {
	a := Anchor{Kind: AnchorShow, StartMin: 1200, EndMin: 1230, BufferBefore: 15, BufferAfter: 10}

	if got := a.BlockedStart(); got != 1185 {
		t.Fatalf("BlockedStart = %d, want 1185", got)
	}
	if got := a.BlockedEnd(); got != 1240 {
		t.Fatalf("BlockedEnd = %d, want 1240", got)
	}
}

func TestVenueHoursForFallsBackToRegular(t *testing.T) {
	v := Venue{
		ID: "park",
		Hours: map[DayClass]OpenHours{
			DayRegular: {OpenMin: 540, CloseMin: 1260},
			DayPeak:    {OpenMin: 480, CloseMin: 1380},
		},
	}

	if h := v.HoursFor(DayPeak); h.OpenMin != 480 {
		t.Fatalf("peak open = %d, want 480", h.OpenMin)
	}
	if h := v.HoursFor(DayElevated); h.OpenMin != 540 {
		t.Fatalf("elevated fallback open = %d, want 540", h.OpenMin)
	}
}
