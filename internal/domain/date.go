package domain

import "time"

// TravelDateLayout is the wire format for travel dates (calendar date, no
// time of day).
const TravelDateLayout = "2006-01-02"

// ParseTravelDate parses a YYYY-MM-DD calendar date. Malformed input maps
// to ErrInvalidDate rather than surfacing the time package error.
func ParseTravelDate(s string) (time.Time, error) {
	t, err := time.Parse(TravelDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
