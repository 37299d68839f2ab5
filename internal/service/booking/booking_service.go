package booking

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/metrics"
	"github.com/Domenick1991/airledger/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	BookTicket(ctx context.Context, input BookTicketInput) (*domain.Booking, error)
	CancelTicket(ctx context.Context, flightID, passengerID int) error
	Fare(ctx context.Context, flightID int) int
	Revenue(ctx context.Context, flightID int) int
	CountBookings(ctx context.Context, passengerID int) int
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookTicketInput struct {
	FlightID    int `json:"flight_id"`
	PassengerID int `json:"passenger_id"`
}

type BookingService struct {
	ledger   repository.LedgerRepository
	producer Producer
	topic    string
	log      *slog.Logger
	now      func() time.Time
}

type BookingServiceOption func(*BookingService)

// WithEvents publishes a LedgerEvent to topic after every successful booking
// and cancellation.
func WithEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewBookingService(ledger repository.LedgerRepository, log *slog.Logger, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		ledger: ledger,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) BookTicket(ctx context.Context, input BookTicketInput) (*domain.Booking, error) {
	booking, err := s.ledger.Book(input.FlightID, input.PassengerID)
	metrics.Bookings.WithLabelValues(string(domain.ResultOf(err))).Inc()
	if err != nil {
		s.log.InfoContext(ctx, "booking rejected", "flight_id", input.FlightID, "passenger_id", input.PassengerID, "reason", err)
		return nil, err
	}

	s.log.InfoContext(ctx, "ticket booked", "flight_id", booking.FlightID, "passenger_id", booking.PassengerID, "fare", booking.Fare)
	s.publish(ctx, domain.EventTicketBooked, booking)
	return &booking, nil
}

func (s *BookingService) CancelTicket(ctx context.Context, flightID, passengerID int) error {
	receipt, err := s.ledger.Cancel(flightID, passengerID)
	metrics.Cancellations.WithLabelValues(string(domain.ResultOf(err))).Inc()
	if err != nil {
		s.log.InfoContext(ctx, "cancellation rejected", "flight_id", flightID, "passenger_id", passengerID, "reason", err)
		return err
	}

	s.log.InfoContext(ctx, "ticket cancelled", "flight_id", flightID, "passenger_id", passengerID, "released", receipt.Fare)
	s.publish(ctx, domain.EventTicketCancelled, receipt)
	return nil
}

func (s *BookingService) Fare(_ context.Context, flightID int) int {
	return s.ledger.Fare(flightID)
}

func (s *BookingService) Revenue(_ context.Context, flightID int) int {
	return s.ledger.Revenue(flightID)
}

func (s *BookingService) CountBookings(_ context.Context, passengerID int) int {
	return s.ledger.CountBookings(passengerID)
}

func (s *BookingService) publish(ctx context.Context, eventType domain.EventType, booking domain.Booking) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := domain.LedgerEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		FlightID:    booking.FlightID,
		PassengerID: booking.PassengerID,
		Fare:        booking.Fare,
		OccurredAt:  s.now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.topic, strconv.Itoa(booking.FlightID), event); err != nil {
		metrics.PublishErrors.Inc()
		s.log.WarnContext(ctx, "failed to publish ledger event", "type", eventType, "event_id", event.ID, "error", err)
		return
	}
	metrics.EventsPublished.Inc()
}

var _ BookingUseCase = (*BookingService)(nil)
