package ai

import (
	"fmt"
	"strings"

	"yatra/internal/modules/itinerary"
	"yatra/internal/modules/trip"
)

// BuildPrompt constructs the generation instructions for the AI. The format
// section spells out the exact marker lines so that well-behaved output
// round-trips through itinerary.Parse.
func BuildPrompt(req trip.Request) string {
	symbol := itinerary.CurrencySymbol(req.Currency)
	start := req.StartDate.Format("2006-01-02")
	end := req.EndDate.Format("2006-01-02")

	var b strings.Builder
	fmt.Fprintf(&b, "Plan a detailed itinerary from %s to %s for a %s traveler visiting %s in India with a budget of %d %s. Interests: %s. Preferred travel mode: %s.\n\n",
		start, end, req.TravelStyle, req.Destination(), req.Budget, req.Currency,
		strings.Join(req.Interests, ", "), req.ModeOfTravel)

	fmt.Fprintf(&b, "Return a day-by-day schedule with morning, afternoon, and evening activities. Include approximate costs in %s, local transport suggestions (train, metro, rickshaw, cab), cultural tips, and 1 local food recommendation per day.\n\n", req.Currency)

	b.WriteString("Format the output clearly with Day 1, Day 2, etc. For each day include:\n")
	fmt.Fprintf(&b, "%s X: [Location/Theme]\n", itinerary.MarkerDay)
	fmt.Fprintf(&b, "%s [Activity with description] (Cost: %sXXX)\n", itinerary.MarkerMorning, symbol)
	fmt.Fprintf(&b, "%s [Activity with description] (Cost: %sXXX)\n", itinerary.MarkerAfternoon, symbol)
	fmt.Fprintf(&b, "%s [Activity with description] (Cost: %sXXX)\n", itinerary.MarkerEvening, symbol)
	fmt.Fprintf(&b, "%s [Local transport recommendations]\n", itinerary.MarkerTransport)
	fmt.Fprintf(&b, "%s [Local food recommendation with restaurant suggestion]\n", itinerary.MarkerFood)
	fmt.Fprintf(&b, "%s [Cultural tip, best time to visit, or local custom]\n\n", itinerary.MarkerTip)

	b.WriteString(`Include practical Indian travel details like:
- Best times to visit attractions to avoid crowds
- Local customs and etiquette (especially for temples/religious sites)
- Seasonal considerations and weather
- Booking recommendations for trains/flights
- Safety tips for solo/family travelers
- Regional specialties and must-try dishes
- Local festivals or events during the travel period`)

	return b.String()
}
