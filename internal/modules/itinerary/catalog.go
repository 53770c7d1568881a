// README: Static content catalogs the fallback generator rotates through.
package itinerary

// Each catalog has seven entries, one per generated day. Selection is by
// rotation index (day-1) mod len(table), so a seven-day trip covers every
// entry exactly once.

var dayThemes = []string{
	"Arrival & Heritage Exploration",
	"Cultural Immersion & Temples",
	"Local Markets & Artisan Crafts",
	"Nature & Scenic Beauty",
	"Food Trail & Cooking Experience",
	"Adventure & Outdoor Activities",
	"Farewell & Last-minute Shopping",
}

var morningActivities = []string{
	"Visit ancient temples and heritage sites with guided tour",
	"Explore bustling local markets and spice bazaars",
	"Take a heritage walk through old city quarters",
	"Visit museums showcasing regional art and history",
	"Early morning yoga session or meditation at peaceful spots",
	"Photography tour of architectural marvels",
	"Visit local artisan workshops and craft centers",
}

var afternoonActivities = []string{
	"Traditional Indian lunch followed by palace or fort exploration",
	"Shopping for handicrafts, textiles, and souvenirs",
	"Nature excursion to gardens, lakes, or hill stations",
	"Cooking class learning regional Indian cuisine",
	"Visit to local villages or cultural centers",
	"Adventure activities like trekking or water sports",
	"Explore modern attractions and entertainment districts",
}

var eveningActivities = []string{
	"Traditional dinner with cultural dance performance",
	"Evening aarti ceremony at riverside or temple",
	"Sunset viewing from scenic viewpoints or rooftops",
	"Night market exploration and street food tasting",
	"Traditional music and dance show",
	"Evening boat ride or heritage light show",
	"Rooftop dining with panoramic city views",
}

var transportOptions = []string{
	"Local trains, metro, or app-based cabs (Ola/Uber)",
	"Auto-rickshaws for short distances, buses for longer routes",
	"Cycle rickshaws in old city areas, walking tours",
	"Private car rental or tourist buses for sightseeing",
	"Local trains for intercity travel, shared taxis",
	"Motorbike rentals or guided bike tours",
	"Airport transfers via pre-paid taxis or metro",
}

var foodRecommendations = []string{
	"Try regional thali at local restaurant - complete meal with variety",
	"Street food tour: chaat, samosas, and regional specialties",
	"Traditional breakfast: dosa, idli, or parathas with chai",
	"Authentic biryani or pulao at renowned local eatery",
	"Regional sweets and desserts from famous sweet shops",
	"Coastal cuisine: fresh seafood or regional fish curry",
	"Farewell dinner at heritage restaurant with live music",
}

var localTips = []string{
	"Remove shoes before entering temples and cover your head if required",
	"Bargaining is expected in markets - start at 50% of quoted price",
	"Carry hand sanitizer and drink bottled water for safety",
	"Dress modestly, especially when visiting religious sites",
	"Learn basic Hindi phrases - locals appreciate the effort",
	"Keep small denomination notes for tips, rickshaws, and street vendors",
	"Book train tickets in advance and arrive early at stations",
}

// seasonalNote is static guidance, not derived from the trip dates.
const seasonalNote = "The ideal time depends on the region - generally October to March offers pleasant weather across most of India. Avoid monsoon season (June-September) unless you enjoy the rains!"

// sampleNote names the missing configuration needed for real AI generation.
const sampleNote = "⚠️ Note: This is a sample India-focused itinerary. For personalized AI-generated content with real-time information, please configure your Gemini API credentials:\n- GEMINI_API_KEY"

// rotate selects the catalog entry for a 1-based day index.
func rotate(table []string, day int) string {
	return table[(day-1)%len(table)]
}
