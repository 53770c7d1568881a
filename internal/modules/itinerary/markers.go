// README: Marker vocabulary shared by the generator and the parser.
package itinerary

import "yatra/internal/modules/trip"

// The generator emits these exact line prefixes and the parser keys on them.
// Keeping them in one place guarantees round-trip compatibility; changing any
// marker is a wire-format change for every client that parses itinerary text.
const (
	MarkerBestTime  = "🌟 Best Time to Visit"
	MarkerDay       = "📅 Day"
	MarkerMorning   = "🌅 Morning:"
	MarkerAfternoon = "🌞 Afternoon:"
	MarkerEvening   = "🌙 Evening:"
	MarkerTransport = "🚗 Transport:"
	MarkerFood      = "🍽️ Food:"
	MarkerTip       = "💡 Local Tip:"
)

// CurrencySymbol maps a currency to its display symbol. Only INR has a
// dedicated symbol; everything else renders as dollars.
func CurrencySymbol(c trip.Currency) string {
	if c == trip.CurrencyINR {
		return "₹"
	}
	return "$"
}
