package booking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedger struct {
	mock.Mock
	repository.LedgerRepository
}

func (m *MockLedger) Fare(flightID int) int {
	args := m.Called(flightID)
	return args.Int(0)
}

func (m *MockLedger) Book(flightID, passengerID int) (domain.Booking, error) {
	args := m.Called(flightID, passengerID)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockLedger) Cancel(flightID, passengerID int) (domain.Booking, error) {
	args := m.Called(flightID, passengerID)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockLedger) CountBookings(passengerID int) int {
	args := m.Called(passengerID)
	return args.Int(0)
}

func (m *MockLedger) Revenue(flightID int) int {
	args := m.Called(flightID)
	return args.Int(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newService(ledger repository.LedgerRepository, producer Producer) *BookingService {
	s := NewBookingService(ledger, discardLogger(), WithEvents(producer, "ledger-events"))
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestBookingService_BookTicket_Success(t *testing.T) {
	mockLedger := &MockLedger{}
	mockProducer := &MockProducer{}
	service := newService(mockLedger, mockProducer)

	ctx := context.Background()
	receipt := domain.Booking{FlightID: 4, PassengerID: 10, Fare: 3100}

	mockLedger.On("Book", 4, 10).Return(receipt, nil).Once()
	mockProducer.On("Publish", ctx, "ledger-events", "4", mock.MatchedBy(func(e domain.LedgerEvent) bool {
		return e.Type == domain.EventTicketBooked &&
			e.FlightID == 4 && e.PassengerID == 10 && e.Fare == 3100 &&
			e.ID != "" && e.OccurredAt.Equal(fixedNow)
	})).Return(nil).Once()

	booking, err := service.BookTicket(ctx, BookTicketInput{FlightID: 4, PassengerID: 10})

	require.NoError(t, err)
	assert.Equal(t, &receipt, booking)

	mockLedger.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_BookTicket_Rejected(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "Unknown flight", err: domain.ErrFlightNotFound},
		{name: "Already booked", err: domain.ErrAlreadyBooked},
		{name: "Flight full", err: domain.ErrFlightFull},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockLedger := &MockLedger{}
			mockProducer := &MockProducer{}
			service := newService(mockLedger, mockProducer)

			mockLedger.On("Book", 4, 10).Return(domain.Booking{}, tc.err).Once()

			booking, err := service.BookTicket(context.Background(), BookTicketInput{FlightID: 4, PassengerID: 10})

			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, booking)
			mockProducer.AssertNotCalled(t, "Publish")
		})
	}
}

func TestBookingService_BookTicket_PublishFailureDoesNotFailBooking(t *testing.T) {
	mockLedger := &MockLedger{}
	mockProducer := &MockProducer{}
	service := newService(mockLedger, mockProducer)

	ctx := context.Background()
	mockLedger.On("Book", 1, 2).Return(domain.Booking{FlightID: 1, PassengerID: 2, Fare: 3000}, nil).Once()
	mockProducer.On("Publish", ctx, "ledger-events", "1", mock.Anything).Return(errors.New("kafka down")).Once()

	booking, err := service.BookTicket(ctx, BookTicketInput{FlightID: 1, PassengerID: 2})

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_CancelTicket_Success(t *testing.T) {
	mockLedger := &MockLedger{}
	mockProducer := &MockProducer{}
	service := newService(mockLedger, mockProducer)

	ctx := context.Background()
	mockLedger.On("Cancel", 4, 10).Return(domain.Booking{FlightID: 4, PassengerID: 10, Fare: 3050}, nil).Once()
	mockProducer.On("Publish", ctx, "ledger-events", "4", mock.MatchedBy(func(e domain.LedgerEvent) bool {
		return e.Type == domain.EventTicketCancelled && e.Fare == 3050
	})).Return(nil).Once()

	err := service.CancelTicket(ctx, 4, 10)

	assert.NoError(t, err)
	mockLedger.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_CancelTicket_NotBooked(t *testing.T) {
	mockLedger := &MockLedger{}
	mockProducer := &MockProducer{}
	service := newService(mockLedger, mockProducer)

	mockLedger.On("Cancel", 4, 10).Return(domain.Booking{}, domain.ErrNotBooked).Once()

	err := service.CancelTicket(context.Background(), 4, 10)

	assert.ErrorIs(t, err, domain.ErrNotBooked)
	mockProducer.AssertNotCalled(t, "Publish")
}

func TestBookingService_Queries(t *testing.T) {
	mockLedger := &MockLedger{}
	service := NewBookingService(mockLedger, discardLogger())

	ctx := context.Background()
	mockLedger.On("Fare", 1).Return(3150).Once()
	mockLedger.On("Revenue", 1).Return(9150).Once()
	mockLedger.On("CountBookings", 7).Return(2).Once()

	assert.Equal(t, 3150, service.Fare(ctx, 1))
	assert.Equal(t, 9150, service.Revenue(ctx, 1))
	assert.Equal(t, 2, service.CountBookings(ctx, 7))

	mockLedger.AssertExpectations(t)
}

func TestBookingService_WithoutProducer(t *testing.T) {
	ledger := repository.NewMemoryLedger(repository.DefaultFareSchedule())
	ledger.AddFlight(domain.Flight{ID: 1, FromCity: domain.CityDelhi, ToCity: domain.CityMumbai, MaxCapacity: 1})
	service := NewBookingService(ledger, discardLogger())

	ctx := context.Background()
	booking, err := service.BookTicket(ctx, BookTicketInput{FlightID: 1, PassengerID: 5})
	require.NoError(t, err)
	assert.Equal(t, 3000, booking.Fare)

	_, err = service.BookTicket(ctx, BookTicketInput{FlightID: 1, PassengerID: 6})
	assert.ErrorIs(t, err, domain.ErrFlightFull)

	require.NoError(t, service.CancelTicket(ctx, 1, 5))
	assert.Equal(t, 0, service.Revenue(ctx, 1))
}
