package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"yatra/internal/ai"
	"yatra/internal/modules/itinerary"
	"yatra/internal/modules/trip"
)

func main() {
	req := trip.Request{
		Destinations: []string{"Jaipur"},
		StartDate:    trip.NewDate(2027, time.March, 10),
		EndDate:      trip.NewDate(2027, time.March, 14),
		Budget:       25000,
		Currency:     trip.CurrencyINR,
		TravelStyle:  trip.StyleRelaxed,
		Interests:    []string{"Temples", "Food"},
		ModeOfTravel: trip.ModeTrain,
	}
	if err := req.Validate(); err != nil {
		log.Fatalf("invalid demo request: %v", err)
	}

	text := generate(req)

	fmt.Println(text)
	fmt.Println("---")

	parsed := itinerary.Parse(text)
	fmt.Printf("parsed %d day(s)\n", len(parsed.Days))
	if parsed.BestTimeToVisit != "" {
		fmt.Printf("best time to visit: %s\n", parsed.BestTimeToVisit)
	}
	for _, day := range parsed.Days {
		fmt.Printf("Day %d: %s\n", day.Number, day.Title)
	}
}

// generate uses Gemini when GEMINI_API_KEY is set, otherwise the offline
// fallback generator.
func generate(req trip.Request) string {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Println("GEMINI_API_KEY not set, using fallback generator")
		return itinerary.Generate(req)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	text, err := provider.GenerateItinerary(ctx, req)
	if err != nil {
		fmt.Printf("Gemini error (%v), using fallback generator\n", err)
		return itinerary.Generate(req)
	}
	return text
}
