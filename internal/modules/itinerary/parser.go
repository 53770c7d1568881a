// README: Best-effort parser from itinerary text to Day records.
package itinerary

import (
	"strconv"
	"strings"
)

// Parse converts itinerary text into structured day records. It is a total
// function: unmatched content is dropped and malformed headers fall back to
// defaults, because the upstream text source (free-form AI output) only
// follows the marker format by convention. When no day markers are found the
// returned Days slice is empty and callers should display the raw text.
func Parse(text string) Parsed {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	var out Parsed
	var current *Day

	for i, line := range lines {
		switch {
		case strings.Contains(line, MarkerBestTime):
			// The marker line carries no payload; the note is the next line.
			if i+1 < len(lines) {
				out.BestTimeToVisit = lines[i+1]
			}
		case strings.Contains(line, MarkerDay):
			if current != nil {
				out.Days = append(out.Days, *current)
			}
			current = &Day{Number: 1, Title: defaultDayTitle}
			if num, title, ok := parseDayHeader(line); ok {
				current.Number = num
				current.Title = title
			}
		case strings.Contains(line, MarkerMorning):
			if current != nil {
				current.Morning = stripMarker(line, MarkerMorning)
			}
		case strings.Contains(line, MarkerAfternoon):
			if current != nil {
				current.Afternoon = stripMarker(line, MarkerAfternoon)
			}
		case strings.Contains(line, MarkerEvening):
			if current != nil {
				current.Evening = stripMarker(line, MarkerEvening)
			}
		case strings.Contains(line, MarkerTransport):
			if current != nil {
				current.Transport = stripMarker(line, MarkerTransport)
			}
		case strings.Contains(line, MarkerFood):
			if current != nil {
				current.Food = stripMarker(line, MarkerFood)
			}
		case strings.Contains(line, MarkerTip):
			if current != nil {
				current.Tip = stripMarker(line, MarkerTip)
			}
		}
	}
	if current != nil {
		out.Days = append(out.Days, *current)
	}
	return out
}

// parseDayHeader extracts the day number and title from a line of the form
// "📅 Day <number> [(<date>)]: <title>". It reports false when any part is
// missing; the caller then keeps the recovery defaults.
func parseDayHeader(line string) (int, string, bool) {
	rest := line[strings.Index(line, MarkerDay)+len(MarkerDay):]
	rest = strings.TrimLeft(rest, " ")

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, "", false
	}
	num, err := strconv.Atoi(rest[:digits])
	if err != nil || num < 1 {
		return 0, "", false
	}

	rest = strings.TrimLeft(rest[digits:], " ")
	if strings.HasPrefix(rest, "(") {
		end := strings.Index(rest, ")")
		if end < 0 {
			return 0, "", false
		}
		rest = strings.TrimLeft(rest[end+1:], " ")
	}

	if !strings.HasPrefix(rest, ":") {
		return 0, "", false
	}
	title := strings.TrimSpace(rest[1:])
	if title == "" {
		return 0, "", false
	}
	return num, title, true
}

// stripMarker removes the first occurrence of marker and trims the remainder.
func stripMarker(line, marker string) string {
	return strings.TrimSpace(strings.Replace(line, marker, "", 1))
}
