package itinerary

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/modules/trip"
)

func jaipurRequest() trip.Request {
	return trip.Request{
		Destinations: []string{"Jaipur"},
		StartDate:    trip.NewDate(2025, time.January, 10),
		EndDate:      trip.NewDate(2025, time.January, 12),
		Budget:       10000,
		Currency:     trip.CurrencyINR,
		TravelStyle:  trip.StyleRelaxed,
		Interests:    []string{"Temples"},
		ModeOfTravel: trip.ModeTrain,
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	req := jaipurRequest()
	assert.Equal(t, Generate(req), Generate(req))
}

func TestGenerate_BudgetSplit(t *testing.T) {
	// 3 calendar days, budget 10000 -> 3333/day.
	// Shares: floor(3333*0.25)=833, floor(3333*0.35)=1166, floor(3333*0.15)=499.
	text := Generate(jaipurRequest())

	expectedDayOne := strings.Join([]string{
		"📅 Day 1 (Friday, Jan 10): Arrival & Heritage Exploration",
		"🌅 Morning: Visit ancient temples and heritage sites with guided tour (Cost: ₹833)",
		"🌞 Afternoon: Traditional Indian lunch followed by palace or fort exploration (Cost: ₹1166)",
		"🌙 Evening: Traditional dinner with cultural dance performance (Cost: ₹833)",
		"🚗 Transport: Local trains, metro, or app-based cabs (Ola/Uber)",
		"🍽️ Food: Try regional thali at local restaurant - complete meal with variety (Cost: ₹499)",
		"💡 Local Tip: Remove shoes before entering temples and cover your head if required",
	}, "\n")
	assert.Contains(t, text, expectedDayOne)

	assert.Equal(t, 3, strings.Count(text, MarkerDay+" "))
}

func TestGenerate_DayCountCap(t *testing.T) {
	tests := []struct {
		name     string
		end      trip.Date
		wantDays int
	}{
		{"single night", trip.NewDate(2025, time.January, 11), 2},
		{"full week", trip.NewDate(2025, time.January, 16), 7},
		{"two weeks capped at seven", trip.NewDate(2025, time.January, 23), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jaipurRequest()
			req.EndDate = tt.end
			text := Generate(req)
			assert.Equal(t, tt.wantDays, strings.Count(text, MarkerDay+" "))
		})
	}
}

func TestGenerate_CurrencySymbol(t *testing.T) {
	req := jaipurRequest()
	req.Currency = trip.CurrencyUSD
	text := Generate(req)
	assert.Contains(t, text, "(Cost: $833)")
	assert.NotContains(t, text, "₹")
}

func TestGenerate_RotationCoverage(t *testing.T) {
	req := jaipurRequest()
	req.EndDate = trip.NewDate(2025, time.January, 16) // 7 days

	parsed := Parse(Generate(req))
	require.Len(t, parsed.Days, 7)

	// Every catalog entry appears exactly once, in index order from day 1.
	for i, day := range parsed.Days {
		assert.Equal(t, i+1, day.Number)
		assert.Equal(t, dayThemes[i], day.Title)
		assert.Contains(t, day.Morning, morningActivities[i])
		assert.Contains(t, day.Afternoon, afternoonActivities[i])
		assert.Contains(t, day.Evening, eveningActivities[i])
		assert.Equal(t, transportOptions[i], day.Transport)
		assert.Contains(t, day.Food, foodRecommendations[i])
		assert.Equal(t, localTips[i], day.Tip)
	}
}

func TestGenerate_DefaultBudget(t *testing.T) {
	req := jaipurRequest()
	req.Budget = 0
	text := Generate(req)

	// 5000/day default: 1250 / 1750 / 1250 / 750.
	assert.Contains(t, text, "(Cost: ₹1250)")
	assert.Contains(t, text, "(Cost: ₹1750)")
	assert.Contains(t, text, "(Cost: ₹750)")
}

func TestGenerate_TotalOverZeroValueRequest(t *testing.T) {
	text := Generate(trip.Request{})
	assert.Contains(t, text, "Your Amazing Indian Adventure to Your Destination")
	assert.Contains(t, text, "GEMINI_API_KEY")
	assert.Equal(t, 1, strings.Count(text, MarkerDay+" "))
}

func TestGenerate_HeaderAndNotes(t *testing.T) {
	text := Generate(jaipurRequest())
	assert.Contains(t, text, "🇮🇳 Your Relaxed Indian Adventure to Jaipur")
	assert.Contains(t, text, MarkerBestTime+" Jaipur:")
	assert.Contains(t, text, "October to March")
	assert.Contains(t, text, "⚠️ Note: This is a sample India-focused itinerary.")
}
