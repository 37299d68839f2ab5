package api

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/service/booking"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) AddAirport(ctx context.Context, airport domain.Airport) {
	m.Called(ctx, airport)
}

func (m *MockFlightUseCase) ListAirports(ctx context.Context) []domain.Airport {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport)
}

func (m *MockFlightUseCase) LargestAirport(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockFlightUseCase) AddFlight(ctx context.Context, flight domain.Flight) {
	m.Called(ctx, flight)
}

func (m *MockFlightUseCase) List(ctx context.Context) []domain.Flight {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) ShortestDuration(ctx context.Context, from, to domain.City) float64 {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64)
}

func (m *MockFlightUseCase) OriginAirport(ctx context.Context, flightID int) string {
	args := m.Called(ctx, flightID)
	return args.String(0)
}

func (m *MockFlightUseCase) PeopleOn(ctx context.Context, date time.Time, airportName string) int {
	args := m.Called(ctx, date, airportName)
	return args.Int(0)
}

func (m *MockFlightUseCase) AddPassenger(ctx context.Context, passenger domain.Passenger) {
	m.Called(ctx, passenger)
}

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) BookTicket(ctx context.Context, input booking.BookTicketInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelTicket(ctx context.Context, flightID, passengerID int) error {
	args := m.Called(ctx, flightID, passengerID)
	return args.Error(0)
}

func (m *MockBookingUseCase) Fare(ctx context.Context, flightID int) int {
	args := m.Called(ctx, flightID)
	return args.Int(0)
}

func (m *MockBookingUseCase) Revenue(ctx context.Context, flightID int) int {
	args := m.Called(ctx, flightID)
	return args.Int(0)
}

func (m *MockBookingUseCase) CountBookings(ctx context.Context, passengerID int) int {
	args := m.Called(ctx, passengerID)
	return args.Int(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
