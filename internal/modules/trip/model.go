// README: Trip request model, enumerations, and boundary validation.
package trip

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

type TravelStyle string

const (
	StyleRelaxed    TravelStyle = "Relaxed"
	StyleAdventure  TravelStyle = "Adventure"
	StyleLuxury     TravelStyle = "Luxury"
	StyleFamily     TravelStyle = "Family"
	StyleBackpacker TravelStyle = "Backpacker"
)

type TravelMode string

const (
	ModeFlight TravelMode = "Flight"
	ModeTrain  TravelMode = "Train"
	ModeBus    TravelMode = "Bus"
	ModeCar    TravelMode = "Car"
)

// Interests is the fixed vocabulary accepted in Request.Interests.
var Interests = []string{
	"Temples",
	"Beaches",
	"Food",
	"Trekking",
	"Heritage Sites",
	"Shopping",
	"Nightlife",
	"Festivals",
}

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as an ISO "YYYY-MM-DD" string.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// Budget accepts both a JSON number and a numeric string, matching what the
// form layer sends.
type Budget int64

func (b *Budget) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*b = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid budget %q", s)
	}
	*b = Budget(n)
	return nil
}

// Request carries the user's trip preferences. It is immutable once
// submitted; regeneration re-sends the same request.
type Request struct {
	Destinations []string    `json:"destination"`
	StartDate    Date        `json:"startDate"`
	EndDate      Date        `json:"endDate"`
	Budget       Budget      `json:"budget"`
	Currency     Currency    `json:"currency"`
	TravelStyle  TravelStyle `json:"travelStyle"`
	Interests    []string    `json:"interests"`
	ModeOfTravel TravelMode  `json:"modeOfTravel"`
}

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Validate checks structural validity of the request. The start-date-in-the-past
// check is left to the HTTP boundary so that validation stays clock-free.
func (r Request) Validate() error {
	if len(r.Destinations) == 0 {
		return invalid("destination", "at least one destination is required")
	}
	seen := make(map[string]bool, len(r.Destinations))
	for _, d := range r.Destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			return invalid("destination", "destination names must be non-empty")
		}
		if seen[d] {
			return invalid("destination", fmt.Sprintf("duplicate destination %q", d))
		}
		seen[d] = true
	}
	if r.StartDate.IsZero() {
		return invalid("startDate", "required")
	}
	if r.EndDate.IsZero() {
		return invalid("endDate", "required")
	}
	if !r.EndDate.After(r.StartDate.Time) {
		return invalid("endDate", "must be after startDate")
	}
	if r.Budget <= 0 {
		return invalid("budget", "must be a positive amount")
	}
	switch r.Currency {
	case CurrencyINR, CurrencyUSD:
	default:
		return invalid("currency", fmt.Sprintf("unsupported currency %q", r.Currency))
	}
	switch r.TravelStyle {
	case StyleRelaxed, StyleAdventure, StyleLuxury, StyleFamily, StyleBackpacker:
	default:
		return invalid("travelStyle", fmt.Sprintf("unknown travel style %q", r.TravelStyle))
	}
	if len(r.Interests) == 0 {
		return invalid("interests", "at least one interest is required")
	}
	for _, in := range r.Interests {
		if !knownInterest(in) {
			return invalid("interests", fmt.Sprintf("unknown interest %q", in))
		}
	}
	switch r.ModeOfTravel {
	case ModeFlight, ModeTrain, ModeBus, ModeCar:
	default:
		return invalid("modeOfTravel", fmt.Sprintf("unknown travel mode %q", r.ModeOfTravel))
	}
	return nil
}

func knownInterest(v string) bool {
	for _, in := range Interests {
		if in == v {
			return true
		}
	}
	return false
}

// Days returns the trip length in calendar days, inclusive of both endpoints.
func (r Request) Days() int {
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return 0
	}
	return int(math.Ceil(r.EndDate.Sub(r.StartDate.Time).Hours()/24)) + 1
}

// Destination returns the display name used in itinerary headers.
func (r Request) Destination() string {
	return strings.Join(r.Destinations, ", ")
}
