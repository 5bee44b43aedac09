package handlers

import (
	"log"
	"net/http"

	"park-itinerary-service/internal/api/dto"
	"park-itinerary-service/internal/ports"
)

// AttractionHandler exposes read-only catalog retrieval endpoints.
type AttractionHandler struct {
	Repo ports.AttractionRepository
}

func (h *AttractionHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	attractions, err := h.Repo.ListAttractions(r.Context())
	if err != nil {
		log.Printf("list attractions failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListAttractionsResponse{
		Attractions: make([]dto.AttractionResponse, 0, len(attractions)),
	}
	for _, a := range attractions {
		res.Attractions = append(res.Attractions, dto.AttractionResponse{
			AttractionID: a.ID,
			Name:         a.Name,
			Zone:         a.Zone,
			DurationMin:  a.DurationMin,
			Tier:         a.Tier.String(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
