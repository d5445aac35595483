package utils

import "time"

// Trip dates travel as MM/DD/YYYY; itinerary dates use the RFC1123 form the
// web client sends ("Fri, 08 Nov 2024 00:00:00 GMT").
const (
	TripDateLayout      = "01/02/2006"
	ItineraryDateLayout = time.RFC1123
)

// ParseTripDate parses a MM/DD/YYYY date string.
func ParseTripDate(s string) (time.Time, error) {
	return time.Parse(TripDateLayout, s)
}

// FormatTripDate renders t as MM/DD/YYYY.
func FormatTripDate(t time.Time) string {
	return t.Format(TripDateLayout)
}

// ParseItineraryDate parses an RFC1123 date string.
func ParseItineraryDate(s string) (time.Time, error) {
	return time.Parse(ItineraryDateLayout, s)
}

// FormatItineraryDate renders t as RFC1123 in UTC.
func FormatItineraryDate(t time.Time) string {
	return t.UTC().Format(ItineraryDateLayout)
}

// DaysInclusive returns the number of calendar days in [start, end], both
// bounds included. Returns 0 if end precedes start.
func DaysInclusive(start, end time.Time) int {
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
