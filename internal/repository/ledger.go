package repository

import (
	"math"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/Domenick1991/airledger/internal/domain"
)

// NoRoute is returned by ShortestDuration when no direct flight exists.
const NoRoute = -1

type LedgerRepository interface {
	AddAirport(airport domain.Airport)
	Airports() []domain.Airport
	LargestAirportName() string

	AddFlight(flight domain.Flight)
	Flight(id int) (domain.Flight, bool)
	Flights() []domain.Flight
	ShortestDuration(from, to domain.City) float64
	OriginAirportName(flightID int) string

	AddPassenger(passenger domain.Passenger)
	Passenger(id int) (domain.Passenger, bool)

	Fare(flightID int) int
	Book(flightID, passengerID int) (domain.Booking, error)
	Cancel(flightID, passengerID int) (domain.Booking, error)
	CountBookings(passengerID int) int
	Revenue(flightID int) int
	PeopleOn(date time.Time, airportName string) int
}

// MemoryLedger keeps the whole ledger in process memory. Every method takes
// the same lock, so each call is one atomic step.
type MemoryLedger struct {
	mu         sync.Mutex
	fares      FareSchedule
	airports   map[string]domain.Airport
	flights    map[int]domain.Flight
	passengers map[int]domain.Passenger
	bookings   map[int][]int
}

func NewMemoryLedger(fares FareSchedule) *MemoryLedger {
	return &MemoryLedger{
		fares:      fares,
		airports:   make(map[string]domain.Airport),
		flights:    make(map[int]domain.Flight),
		passengers: make(map[int]domain.Passenger),
		bookings:   make(map[int][]int),
	}
}

func (l *MemoryLedger) AddAirport(airport domain.Airport) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.airports[airport.Name] = airport
}

func (l *MemoryLedger) Airports() []domain.Airport {
	l.mu.Lock()
	defer l.mu.Unlock()

	airports := make([]domain.Airport, 0, len(l.airports))
	for _, a := range l.airports {
		airports = append(airports, a)
	}
	sort.Slice(airports, func(i, j int) bool { return airports[i].Name < airports[j].Name })
	return airports
}

// LargestAirportName returns the airport with the most terminals, the
// smallest name on a tie, or "" when no airport is registered.
func (l *MemoryLedger) LargestAirportName() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := ""
	most := -1
	for _, a := range l.airports {
		if a.Terminals > most || (a.Terminals == most && a.Name < name) {
			most = a.Terminals
			name = a.Name
		}
	}
	return name
}

func (l *MemoryLedger) AddFlight(flight domain.Flight) {
	flight.Date = domain.Day(flight.Date)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.flights[flight.ID] = flight
}

func (l *MemoryLedger) Flight(id int) (domain.Flight, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, ok := l.flights[id]
	return f, ok
}

func (l *MemoryLedger) Flights() []domain.Flight {
	l.mu.Lock()
	defer l.mu.Unlock()

	flights := make([]domain.Flight, 0, len(l.flights))
	for _, f := range l.flights {
		flights = append(flights, f)
	}
	sort.Slice(flights, func(i, j int) bool { return flights[i].ID < flights[j].ID })
	return flights
}

func (l *MemoryLedger) ShortestDuration(from, to domain.City) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	shortest := math.Inf(1)
	for _, f := range l.flights {
		if f.FromCity == from && f.ToCity == to && f.Duration < shortest {
			shortest = f.Duration
		}
	}
	if math.IsInf(shortest, 1) {
		return NoRoute
	}
	return shortest
}

// OriginAirportName resolves the flight's origin city to an airport in that
// city. Several airports in one city resolve to the smallest name.
func (l *MemoryLedger) OriginAirportName(flightID int) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, ok := l.flights[flightID]
	if !ok {
		return ""
	}
	name := ""
	for _, a := range l.airports {
		if a.City == f.FromCity && (name == "" || a.Name < name) {
			name = a.Name
		}
	}
	return name
}

func (l *MemoryLedger) AddPassenger(passenger domain.Passenger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.passengers[passenger.ID] = passenger
}

func (l *MemoryLedger) Passenger(id int) (domain.Passenger, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.passengers[id]
	return p, ok
}

// Fare quotes the next seat on the flight. It does not count the caller.
func (l *MemoryLedger) Fare(flightID int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fares.Quote(len(l.bookings[flightID]))
}

func (l *MemoryLedger) Book(flightID, passengerID int) (domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, ok := l.flights[flightID]
	if !ok {
		return domain.Booking{}, domain.ErrFlightNotFound
	}
	booked := l.bookings[flightID]
	if slices.Contains(booked, passengerID) {
		return domain.Booking{}, domain.ErrAlreadyBooked
	}
	if len(booked) >= f.MaxCapacity {
		return domain.Booking{}, domain.ErrFlightFull
	}

	fare := l.fares.Quote(len(booked))
	l.bookings[flightID] = append(booked, passengerID)
	return domain.Booking{FlightID: flightID, PassengerID: passengerID, Fare: fare}, nil
}

// Cancel removes the passenger from the flight. The receipt's Fare is the
// revenue released, which is the price of the last seat sold.
func (l *MemoryLedger) Cancel(flightID, passengerID int) (domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	booked, ok := l.bookings[flightID]
	if !ok {
		return domain.Booking{}, domain.ErrFlightNotFound
	}
	i := slices.Index(booked, passengerID)
	if i < 0 {
		return domain.Booking{}, domain.ErrNotBooked
	}

	released := l.fares.Quote(len(booked) - 1)
	l.bookings[flightID] = slices.Delete(booked, i, i+1)
	return domain.Booking{FlightID: flightID, PassengerID: passengerID, Fare: released}, nil
}

func (l *MemoryLedger) CountBookings(passengerID int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, booked := range l.bookings {
		if slices.Contains(booked, passengerID) {
			count++
		}
	}
	return count
}

func (l *MemoryLedger) Revenue(flightID int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fares.Revenue(len(l.bookings[flightID]))
}

// PeopleOn counts passengers departing from or arriving at the airport's
// city on the given day.
func (l *MemoryLedger) PeopleOn(date time.Time, airportName string) int {
	day := domain.Day(date)

	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.airports[airportName]
	if !ok {
		return 0
	}
	count := 0
	for id, f := range l.flights {
		if (f.FromCity == a.City || f.ToCity == a.City) && f.Date.Equal(day) {
			count += len(l.bookings[id])
		}
	}
	return count
}

var _ LedgerRepository = (*MemoryLedger)(nil)
