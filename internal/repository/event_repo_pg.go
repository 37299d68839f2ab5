package repository

import (
	"context"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository is the audit log of ledger events. It is written by the
// worker and never read back into the ledger.
type EventRepository interface {
	EnsureSchema(ctx context.Context) error
	Append(ctx context.Context, event domain.LedgerEvent) (bool, error)
	ListByFlight(ctx context.Context, flightID int) ([]domain.LedgerEvent, error)
}

type PGEventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) EventRepository {
	return &PGEventRepository{db: db}
}

func (r *PGEventRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS ledger_events (
            id           UUID PRIMARY KEY,
            type         TEXT NOT NULL,
            flight_id    INTEGER NOT NULL,
            passenger_id INTEGER NOT NULL,
            fare         INTEGER NOT NULL,
            occurred_at  TIMESTAMPTZ NOT NULL,
            stored_at    TIMESTAMPTZ NOT NULL DEFAULT now()
        );
        CREATE INDEX IF NOT EXISTS ledger_events_flight_idx ON ledger_events (flight_id, occurred_at);
    `)
	return err
}

// Append stores the event and reports whether it was new. Redelivered events
// are ignored.
func (r *PGEventRepository) Append(ctx context.Context, event domain.LedgerEvent) (bool, error) {
	cmd, err := r.db.Exec(ctx, `INSERT INTO ledger_events (id, type, flight_id, passenger_id, fare, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`, event.ID, event.Type, event.FlightID, event.PassengerID, event.Fare, event.OccurredAt)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() == 1, nil
}

func (r *PGEventRepository) ListByFlight(ctx context.Context, flightID int) ([]domain.LedgerEvent, error) {
	rows, err := r.db.Query(ctx, `SELECT id, type, flight_id, passenger_id, fare, occurred_at FROM ledger_events WHERE flight_id=$1 ORDER BY occurred_at`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]domain.LedgerEvent, 0)
	for rows.Next() {
		var e domain.LedgerEvent
		if err := rows.Scan(&e.ID, &e.Type, &e.FlightID, &e.PassengerID, &e.Fare, &e.OccurredAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

var _ EventRepository = (*PGEventRepository)(nil)
