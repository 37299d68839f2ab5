package domain

import "time"

const DateLayout = "2006-01-02"

type Flight struct {
	ID          int       `json:"id"`
	FromCity    City      `json:"from_city"`
	ToCity      City      `json:"to_city"`
	Date        time.Time `json:"date"`
	Duration    float64   `json:"duration"`
	MaxCapacity int       `json:"max_capacity"`
}

// Day truncates t to its UTC calendar day. Flight dates are compared by day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
