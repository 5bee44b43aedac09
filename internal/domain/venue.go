package domain

// Operating hours for a venue on one class of day, in minutes since midnight.
type OpenHours struct {
	OpenMin  int
	CloseMin int
}

// Static description of a venue: its zones and operating hours per day
// classification. Supplied at configuration time, not computed.
type Venue struct {
	ID    string
	Name  string
	Zones []string
	Hours map[DayClass]OpenHours
}

// HoursFor returns the venue hours for a day class, falling back to the
// regular-day hours when the class has no dedicated entry.
func (v Venue) HoursFor(class DayClass) OpenHours {
	if h, ok := v.Hours[class]; ok {
		return h
	}
	return v.Hours[DayRegular]
}
