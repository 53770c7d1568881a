// README: Deterministic fallback itinerary generator.
package itinerary

import (
	"fmt"
	"math"
	"strings"

	"yatra/internal/modules/trip"
)

const (
	// maxGeneratedDays caps the number of emitted day blocks regardless of
	// trip length. Confirmed product behavior, not a correctness bound.
	maxGeneratedDays = 7

	// defaultDailyBudget is used when the request carries no budget.
	defaultDailyBudget = 5000
)

// Daily budget split across the four priced line items. The shares sum to 1.
const (
	morningShare   = 0.25
	afternoonShare = 0.35
	eveningShare   = 0.25
	foodShare      = 0.15
)

// Generate renders a sample itinerary for the request without any network
// calls. It is fully deterministic and never fails: it serves as the recovery
// path when the AI provider is unavailable, so there is no further fallback
// behind it.
func Generate(req trip.Request) string {
	days := req.Days()
	if days < 1 {
		days = 1
	}

	symbol := CurrencySymbol(req.Currency)
	budgetPerDay := defaultDailyBudget
	if req.Budget > 0 {
		budgetPerDay = int(math.Floor(float64(req.Budget) / float64(days)))
	}

	style := string(req.TravelStyle)
	if style == "" {
		style = "Amazing"
	}
	destination := req.Destination()
	if destination == "" {
		destination = "Your Destination"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🇮🇳 Your %s Indian Adventure to %s\n\n", style, destination)

	fmt.Fprintf(&b, "%s %s:\n", MarkerBestTime, destination)
	b.WriteString(seasonalNote)
	b.WriteString("\n\n")

	count := days
	if count > maxGeneratedDays {
		count = maxGeneratedDays
	}
	for i := 1; i <= count; i++ {
		date := req.StartDate.AddDate(0, 0, i-1).Format("Monday, Jan 2")
		fmt.Fprintf(&b, "%s %d (%s): %s\n", MarkerDay, i, date, rotate(dayThemes, i))
		fmt.Fprintf(&b, "%s %s (Cost: %s%d)\n", MarkerMorning, rotate(morningActivities, i), symbol, share(budgetPerDay, morningShare))
		fmt.Fprintf(&b, "%s %s (Cost: %s%d)\n", MarkerAfternoon, rotate(afternoonActivities, i), symbol, share(budgetPerDay, afternoonShare))
		fmt.Fprintf(&b, "%s %s (Cost: %s%d)\n", MarkerEvening, rotate(eveningActivities, i), symbol, share(budgetPerDay, eveningShare))
		fmt.Fprintf(&b, "%s %s\n", MarkerTransport, rotate(transportOptions, i))
		fmt.Fprintf(&b, "%s %s (Cost: %s%d)\n", MarkerFood, rotate(foodRecommendations, i), symbol, share(budgetPerDay, foodShare))
		fmt.Fprintf(&b, "%s %s\n\n", MarkerTip, rotate(localTips, i))
	}

	b.WriteString("\n")
	b.WriteString(sampleNote)
	return b.String()
}

// share computes a floored fraction of the daily budget.
func share(budgetPerDay int, fraction float64) int {
	return int(math.Floor(float64(budgetPerDay) * fraction))
}
