// README: Itinerary HTTP handlers (generate and parse).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yatra/internal/modules/itinerary"
	"yatra/internal/modules/trip"
)

type ItineraryHandler struct {
	svc *itinerary.Service
}

func NewItineraryHandler(svc *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{svc: svc}
}

// Generate handles POST /api/itinerary.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req trip.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		writeTripError(c, err)
		return
	}

	// Clock-dependent check lives here, not in the core, so generation stays
	// reproducible.
	today := time.Now().Truncate(24 * time.Hour)
	if req.StartDate.Before(today) {
		writeError(c, http.StatusBadRequest, "invalid startDate: must not be in the past")
		return
	}

	result, err := h.svc.Plan(c.Request.Context(), req)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}

type parseRequest struct {
	Itinerary string `json:"itinerary"`
}

type parseResponse struct {
	Days            []itinerary.Day `json:"days"`
	BestTimeToVisit string          `json:"bestTimeToVisit,omitempty"`
	// Raw echoes the input so clients can render it verbatim when Days is
	// empty.
	Raw string `json:"raw"`
}

// Parse handles POST /api/itinerary/parse.
func (h *ItineraryHandler) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Itinerary == "" {
		writeError(c, http.StatusBadRequest, "missing itinerary text")
		return
	}

	parsed := itinerary.Parse(req.Itinerary)
	writeJSON(c, http.StatusOK, parseResponse{
		Days:            parsed.Days,
		BestTimeToVisit: parsed.BestTimeToVisit,
		Raw:             req.Itinerary,
	})
}
