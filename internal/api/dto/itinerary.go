package dto

type EventRequest struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type HopRequest struct {
	ToVenue     string `json:"to_venue"`
	RequestedAt string `json:"requested_at"`
}

type PreferencesRequest struct {
	Arrival        string      `json:"arrival"`
	RopeDrop       []string    `json:"rope_drop"`
	AutoMeals      bool        `json:"auto_meals"`
	IncludeBreak   bool        `json:"include_break"`
	MaxItemsPerDay int         `json:"max_items_per_day"`
	Hop            *HopRequest `json:"hop"`
}

type ItineraryRequest struct {
	DayClass      string             `json:"day_class"`
	AttractionIDs []string           `json:"attraction_ids"`
	Events        []EventRequest     `json:"events"`
	Preferences   PreferencesRequest `json:"preferences"`
}

type EntryResponse struct {
	Time            string  `json:"time"`
	Kind            string  `json:"kind"`
	Name            string  `json:"name"`
	ExpectedWaitMin float64 `json:"expected_wait_min"`
	DurationMin     int     `json:"duration_min"`
	WalkMin         int     `json:"walk_min"`
	Reason          string  `json:"reason"`
}

type StatsResponse struct {
	TotalWaitMin    float64 `json:"total_wait_min"`
	TotalWalkMin    int     `json:"total_walk_min"`
	ItemsScheduled  int     `json:"items_scheduled"`
	ItemsOverflowed int     `json:"items_overflowed"`
}

type OverflowResponse struct {
	AttractionID string `json:"attraction_id"`
	Name         string `json:"name"`
	Reason       string `json:"reason"`
	Suggestion   string `json:"suggestion"`
}

type ItineraryResponse struct {
	Day      int                `json:"day"`
	DayClass string             `json:"day_class"`
	Open     string             `json:"open"`
	Close    string             `json:"close"`
	Entries  []EntryResponse    `json:"entries"`
	Stats    StatsResponse      `json:"stats"`
	Insights []string           `json:"insights"`
	Overflow []OverflowResponse `json:"overflow"`
}

type TripDayRequest struct {
	DayClass string         `json:"day_class"`
	Events   []EventRequest `json:"events"`
}

type TripRequest struct {
	Days          []TripDayRequest   `json:"days"`
	AttractionIDs []string           `json:"attraction_ids"`
	Preferences   PreferencesRequest `json:"preferences"`
	AllowRerides  bool               `json:"allow_rerides"`
}

type TripResponse struct {
	Days     []ItineraryResponse `json:"days"`
	Insights []string            `json:"insights"`
}
