package shared

import (
	"context"
	"time"

	"venue-scheduler/internal/domain/reservation"
	"venue-scheduler/internal/domain/venue"

	"github.com/google/uuid"
)

// UnitOfWork serializes a read-check-write sequence into one store
// transaction. Every conflict decision (slot occupancy, worker
// commitments) must happen inside Within so the check and the write
// cannot be split by a concurrent request.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Venues() VenueRepository
	Reservations() ReservationRepository
	Assignments() AssignmentRepository
	Users() UserRepository
}

// PendingSnapshot is the minimal pending-side record usecases operate on
// inside a transaction.
type PendingSnapshot struct {
	ID            uuid.UUID
	VenueID       string
	UserID        uuid.UUID
	PartyName     string
	Attendees     int32
	Date          reservation.Date
	PaymentMethod string
	PriceCents    int64
	Status        string
	CreatedAt     time.Time
}

type VenueRepository interface {
	// Insert fails with KindDuplicateKey when the admin-chosen identifier
	// is already taken.
	Insert(ctx context.Context, v *venue.Venue) error
	Update(ctx context.Context, v *venue.Venue) error
	Delete(ctx context.Context, id venue.ID) error
}

type ReservationRepository interface {
	InsertPending(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	// PendingByID locks the row for the rest of the transaction.
	PendingByID(ctx context.Context, id uuid.UUID) (*PendingSnapshot, error)
	// SlotTaken reports whether any confirmed reservation or any pending
	// reservation still in pending status occupies (venue, date),
	// ignoring excludeID.
	SlotTaken(ctx context.Context, venueID venue.ID, date reservation.Date, excludeID uuid.UUID) (bool, error)
	// LockSlot takes the per-slot advisory lock for the transaction,
	// serializing submit and confirm on the same (venue, date).
	LockSlot(ctx context.Context, venueID venue.ID, date reservation.Date) error
	MarkDenied(ctx context.Context, id uuid.UUID) error
	InsertConfirmedFrom(ctx context.Context, snap *PendingSnapshot) error
	DeletePending(ctx context.Context, id uuid.UUID) error
	DeleteConfirmed(ctx context.Context, id uuid.UUID) error
}

type AssignmentRepository interface {
	// Replace swaps the reservation's worker set atomically. The store's
	// (worker, date) uniqueness backs the conflict check against races.
	Replace(ctx context.Context, reservationID uuid.UUID, date reservation.Date, workerIDs []uuid.UUID) error
	Clear(ctx context.Context, reservationID uuid.UUID) error
	WorkerIDsFor(ctx context.Context, reservationID uuid.UUID) ([]uuid.UUID, error)
	// ConflictingWorkers returns the subset of workerIDs already committed
	// on date through any other reservation, pending or confirmed.
	ConflictingWorkers(ctx context.Context, date reservation.Date, excludeReservationID uuid.UUID, workerIDs []uuid.UUID) ([]uuid.UUID, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
	SetAdmin(ctx context.Context, userID uuid.UUID) error
	SetWorker(ctx context.Context, userID uuid.UUID) error
}
