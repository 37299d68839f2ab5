package flights

import (
	"context"
	"log/slog"
	"time"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/repository"
)

type FlightUseCase interface {
	AddAirport(ctx context.Context, airport domain.Airport)
	ListAirports(ctx context.Context) []domain.Airport
	LargestAirport(ctx context.Context) string

	AddFlight(ctx context.Context, flight domain.Flight)
	List(ctx context.Context) []domain.Flight
	GetByID(ctx context.Context, id int) (*domain.Flight, error)
	ShortestDuration(ctx context.Context, from, to domain.City) float64
	OriginAirport(ctx context.Context, flightID int) string
	PeopleOn(ctx context.Context, date time.Time, airportName string) int

	AddPassenger(ctx context.Context, passenger domain.Passenger)
}

type FlightService struct {
	ledger repository.LedgerRepository
	log    *slog.Logger
}

func NewFlightService(ledger repository.LedgerRepository, log *slog.Logger) *FlightService {
	return &FlightService{ledger: ledger, log: log}
}

func (s *FlightService) AddAirport(ctx context.Context, airport domain.Airport) {
	s.ledger.AddAirport(airport)
	s.log.InfoContext(ctx, "airport added", "name", airport.Name, "city", airport.City, "terminals", airport.Terminals)
}

func (s *FlightService) ListAirports(_ context.Context) []domain.Airport {
	return s.ledger.Airports()
}

func (s *FlightService) LargestAirport(_ context.Context) string {
	return s.ledger.LargestAirportName()
}

func (s *FlightService) AddFlight(ctx context.Context, flight domain.Flight) {
	s.ledger.AddFlight(flight)
	s.log.InfoContext(ctx, "flight added", "flight_id", flight.ID, "from", flight.FromCity, "to", flight.ToCity, "capacity", flight.MaxCapacity)
}

func (s *FlightService) List(_ context.Context) []domain.Flight {
	return s.ledger.Flights()
}

func (s *FlightService) GetByID(_ context.Context, id int) (*domain.Flight, error) {
	f, ok := s.ledger.Flight(id)
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	return &f, nil
}

func (s *FlightService) ShortestDuration(_ context.Context, from, to domain.City) float64 {
	return s.ledger.ShortestDuration(from, to)
}

func (s *FlightService) OriginAirport(_ context.Context, flightID int) string {
	return s.ledger.OriginAirportName(flightID)
}

func (s *FlightService) PeopleOn(_ context.Context, date time.Time, airportName string) int {
	return s.ledger.PeopleOn(date, airportName)
}

func (s *FlightService) AddPassenger(ctx context.Context, passenger domain.Passenger) {
	s.ledger.AddPassenger(passenger)
	s.log.InfoContext(ctx, "passenger added", "passenger_id", passenger.ID)
}

var _ FlightUseCase = (*FlightService)(nil)
