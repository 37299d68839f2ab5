package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Bookings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airledger_bookings_total",
		Help: "Booking attempts by result",
	}, []string{"result"})
	Cancellations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airledger_cancellations_total",
		Help: "Cancellation attempts by result",
	}, []string{"result"})
	EventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airledger_events_published_total",
		Help: "Ledger events written to Kafka",
	})
	PublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airledger_publish_errors_total",
		Help: "Failed ledger event publish attempts",
	})
	EventsStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airledger_events_stored_total",
		Help: "Ledger events stored in the audit table",
	})
)
