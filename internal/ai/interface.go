package ai

import (
	"context"

	"yatra/internal/modules/trip"
)

// ItineraryProvider defines the contract for generating itinerary text from a
// trip request. This interface allows for swapping different AI providers
// (Gemini, OpenAI, etc.) in the future.
type ItineraryProvider interface {
	// GenerateItinerary produces marker-formatted day-by-day itinerary text.
	// Errors are expected to be recovered by the caller's fallback path.
	GenerateItinerary(ctx context.Context, req trip.Request) (string, error)
}
