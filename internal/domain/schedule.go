package domain

// Kind of a placed schedule entry.
type EntryKind string

const (
	EntryAttraction EntryKind = "attraction"
	EntryShow       EntryKind = "show"
	EntryMeal       EntryKind = "meal"
	EntryBreak      EntryKind = "break"
	EntryTransition EntryKind = "transition"
)

// Represents a single placed instance in a day plan.
// A ScheduledItem corresponds to occupying one time slot, either for an
// attraction visit or for an anchor (show, meal, break, venue transition).
// Reason is user-facing transparency text and is never read back by the
// scheduler.
type ScheduledItem struct {
	Kind         EntryKind
	Name         string
	AttractionID string
	Zone         string
	StartMin     int
	EndMin       int
	ExpectedWait float64
	WalkMin      int
	Reason       string
}

// Categorical reason an item could not be placed.
type OverflowReason string

const (
	OverflowNoCapacity           OverflowReason = "no-capacity"
	OverflowClosed               OverflowReason = "closed"
	OverflowAnchorConflict       OverflowReason = "anchor-conflict"
	OverflowIneligibleTransition OverflowReason = "ineligible-transition"
)

// A requested attraction the scheduler could not place, returned with a
// reason instead of silently dropped.
type OverflowItem struct {
	AttractionID string
	Name         string
	Reason       OverflowReason
	Suggestion   string
}

// Aggregate metrics for one planned day.
type DayStats struct {
	TotalWaitMin    float64
	TotalWalkMin    int
	ItemsScheduled  int
	ItemsOverflowed int
}

// Represents the planned itinerary for a single day.
// A DaySchedule is the output of a scheduling run and describes the ordered
// sequence of visits and anchors, along with aggregate wait and walking
// metrics. It is immutable planning data and contains no side effects.
type DaySchedule struct {
	Day      int
	Class    DayClass
	OpenMin  int
	CloseMin int
	Entries  []ScheduledItem
	Stats    DayStats
	Insights []string
	Overflow []OverflowItem
}

// Represents a planned multi-day trip: one DaySchedule per day plus
// trip-level insights about cross-day decisions.
type TripSchedule struct {
	Days     []*DaySchedule
	Insights []string
}
