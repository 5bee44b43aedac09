package dto

type AttractionResponse struct {
	AttractionID string `json:"attraction_id"`
	Name         string `json:"name"`
	Zone         string `json:"zone"`
	DurationMin  int    `json:"duration_min"`
	Tier         string `json:"tier"`
}

type ListAttractionsResponse struct {
	Attractions []AttractionResponse `json:"attractions"`
}
