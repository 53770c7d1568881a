// README: Parsed itinerary data model.
package itinerary

// Day is one day's plan extracted from itinerary text. All fields except
// Number may be empty when the source text omits the matching section.
type Day struct {
	Number    int    `json:"dayNumber"`
	Title     string `json:"title"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
	Transport string `json:"transport"`
	Food      string `json:"food"`
	Tip       string `json:"tip"`
}

// Parsed is the structured view of an itinerary. Days is empty only when the
// source text contained no day markers; consumers then show the raw text.
type Parsed struct {
	Days            []Day  `json:"days"`
	BestTimeToVisit string `json:"bestTimeToVisit,omitempty"`
}

// defaultDayTitle is the silent-recovery title for unparseable day headers.
const defaultDayTitle = "Day Activities"

// Source values reported in PlanResult.
const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"
	SourceCache    = "cache"
)
