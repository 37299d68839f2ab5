package domain

import (
	"errors"
	"time"
)

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrAlreadyBooked  = errors.New("passenger already booked on flight")
	ErrFlightFull     = errors.New("flight is at max capacity")
	ErrNotBooked      = errors.New("passenger has no booking on flight")
)

// Booking is the receipt of a successful booking. Fare is the price quoted
// before the passenger was added.
type Booking struct {
	FlightID    int `json:"flight_id"`
	PassengerID int `json:"passenger_id"`
	Fare        int `json:"fare"`
}

type Result string

const (
	ResultSuccess Result = "SUCCESS"
	ResultFailure Result = "FAILURE"
)

func ResultOf(err error) Result {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

// IsLedgerRejection reports whether err is a booking rule violation rather
// than an infrastructure failure.
func IsLedgerRejection(err error) bool {
	return errors.Is(err, ErrFlightNotFound) ||
		errors.Is(err, ErrAlreadyBooked) ||
		errors.Is(err, ErrFlightFull) ||
		errors.Is(err, ErrNotBooked)
}

type EventType string

const (
	EventTicketBooked    EventType = "ticket_booked"
	EventTicketCancelled EventType = "ticket_cancelled"
)

type LedgerEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	FlightID    int       `json:"flight_id"`
	PassengerID int       `json:"passenger_id"`
	Fare        int       `json:"fare"`
	OccurredAt  time.Time `json:"occurred_at"`
}
