package scheduler

import "fmt"

// SlotDecision captures the structured outcome of scoring the winning gap
// for an item. It exists so reasoning text can be produced by a swappable
// formatter instead of being baked into the algorithm.
type SlotDecision struct {
	ItemName string
	StartMin int

	ExpectedWait float64
	WalkMin      int

	WaitScore       float64
	ProximityScore  float64
	ImportanceScore float64

	// Dominant names the factor that contributed most to the total score:
	// "wait", "proximity", or "importance".
	Dominant string

	NearDailyMin        bool
	ProximitySuppressed bool
}

// ReasonFormatter renders a slot decision into user-facing text. The output
// is transparency only; the engine never reads it back.
type ReasonFormatter func(SlotDecision) string

// DefaultReason is the built-in reasoning formatter.
func DefaultReason(d SlotDecision) string {
	switch d.Dominant {
	case "proximity":
		return fmt.Sprintf("short %d min walk from the previous stop with a %.0f min wait", d.WalkMin, d.ExpectedWait)
	case "importance":
		return fmt.Sprintf("high-priority pick placed at %s with a %.0f min wait", FormatClock(d.StartMin), d.ExpectedWait)
	default:
		if d.NearDailyMin {
			return fmt.Sprintf("%.0f min wait at %s, near the lowest of the day", d.ExpectedWait, FormatClock(d.StartMin))
		}
		return fmt.Sprintf("%.0f min wait expected at %s", d.ExpectedWait, FormatClock(d.StartMin))
	}
}
