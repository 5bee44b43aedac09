package domain

// Kind of fixed commitment an Anchor represents.
type AnchorKind string

const (
	AnchorShow       AnchorKind = "show"
	AnchorMeal       AnchorKind = "meal"
	AnchorBreak      AnchorKind = "break"
	AnchorTransition AnchorKind = "transition"
)

// Represents a fixed, non-negotiable time window in a day plan.
// Anchors are created once per day and never moved; the scheduler places
// everything else around them. Buffers extend the blocked interval without
// changing the visible start/end (arrival buffer before a show, dispersal
// time after it).
type Anchor struct {
	Kind         AnchorKind
	Name         string
	StartMin     int
	EndMin       int
	BufferBefore int
	BufferAfter  int
}

// BlockedStart is the first minute no other item may occupy.
func (a Anchor) BlockedStart() int { return a.StartMin - a.BufferBefore }

// BlockedEnd is the first minute after the anchor that may be scheduled again.
func (a Anchor) BlockedEnd() int { return a.EndMin + a.BufferAfter }
