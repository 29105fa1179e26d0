package shared

import (
	"context"

	"shuttlebook/internal/domain/booking"
	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/domain/court"
	"shuttlebook/internal/domain/equipment"
	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/domain/waitlist"
	"shuttlebook/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork abstracts the storage collaborator's transaction capability.
// SupportsTx is decided once at construction: when false the booking
// coordinator runs its sequence best-effort and relies on the bookings
// overlap constraint as the last race guard.
type UnitOfWork interface {
	// Within: full transaction for write sequences, with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: direct pool access for single statements and for the
	// non-transactional booking path.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	SupportsTx() bool
	// Reads: command-side lookups outside any transaction.
	Reads() CommandReads
}

type Tx interface {
	DB() db.DBTX
	Reads() CommandReads
}

// CommandReads are the lookups the command side needs for validation and
// conflict checking. Every method takes the DBTX it should read through so
// the same store serves both transactional and best-effort paths.
type CommandReads interface {
	CourtByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*court.Court, error)
	CoachByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*coach.Coach, error)
	EquipmentByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*equipment.Equipment, error)
	ActivePricingRules(ctx context.Context, dbtx db.DBTX) ([]pricing.Rule, error)
	PricingRuleByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (pricing.Rule, error)
	BookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	// CourtHasOverlap / CoachHasOverlap report whether any confirmed booking
	// overlaps the half-open slot.
	CourtHasOverlap(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, slot booking.TimeSlot) (bool, error)
	CoachHasOverlap(ctx context.Context, dbtx db.DBTX, coachID uuid.UUID, slot booking.TimeSlot) (bool, error)
	// ReservedEquipmentQuantity sums the quantities of one equipment item
	// across all confirmed bookings overlapping the slot.
	ReservedEquipmentQuantity(ctx context.Context, dbtx db.DBTX, equipmentID uuid.UUID, slot booking.TimeSlot) (int, error)
	// EarliestWaitingEntry returns the oldest waiting entry for the court
	// whose own window contains the freed slot, or KindNotFound.
	EarliestWaitingEntry(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, freed booking.TimeSlot) (*waitlist.Entry, error)
	UserByEmail(ctx context.Context, dbtx db.DBTX, email string) (*user.User, error)
	UserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
}

type WaitlistRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, e *waitlist.Entry) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status waitlist.Status) error
}

type CourtRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *court.Court) error
	Update(ctx context.Context, dbtx db.DBTX, c *court.Court) error
}

type CoachRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *coach.Coach) error
	Update(ctx context.Context, dbtx db.DBTX, c *coach.Coach) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, e *equipment.Equipment) error
	Update(ctx context.Context, dbtx db.DBTX, e *equipment.Equipment) error
}

type PricingRuleRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r pricing.Rule) error
	Update(ctx context.Context, dbtx db.DBTX, r pricing.Rule) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) error
}
