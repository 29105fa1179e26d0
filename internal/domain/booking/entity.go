package booking

import (
	"errors"
	"time"

	"shuttlebook/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNoEquipmentQty   = errors.New("equipment quantity must be at least 1")
)

// EquipmentLine is one (equipment, quantity) selection on a booking.
type EquipmentLine struct {
	EquipmentID uuid.UUID `json:"equipmentId"`
	Quantity    int       `json:"quantity"`
}

// Booking is immutable after creation except for the status flip to
// cancelled.
type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	userName   string
	userEmail  string
	courtID    uuid.UUID
	coachID    *uuid.UUID
	equipment  []EquipmentLine
	slot       TimeSlot
	totalPrice float64
	breakdown  []pricing.Line
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(
	userID uuid.UUID,
	userName, userEmail string,
	courtID uuid.UUID,
	coachID *uuid.UUID,
	equipment []EquipmentLine,
	slot TimeSlot,
	quote pricing.Quote,
	now time.Time,
) (*Booking, error) {
	for _, line := range equipment {
		if line.Quantity < 1 {
			return nil, ErrNoEquipmentQty
		}
	}

	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		userName:   userName,
		userEmail:  userEmail,
		courtID:    courtID,
		coachID:    coachID,
		equipment:  equipment,
		slot:       slot,
		totalPrice: quote.TotalPrice,
		breakdown:  quote.Breakdown,
		status:     StatusConfirmed,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	userName, userEmail string,
	courtID uuid.UUID,
	coachID *uuid.UUID,
	equipment []EquipmentLine,
	slot TimeSlot,
	totalPrice float64,
	breakdown []pricing.Line,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		userName:   userName,
		userEmail:  userEmail,
		courtID:    courtID,
		coachID:    coachID,
		equipment:  equipment,
		slot:       slot,
		totalPrice: totalPrice,
		breakdown:  breakdown,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) UserName() string           { return b.userName }
func (b *Booking) UserEmail() string          { return b.userEmail }
func (b *Booking) CourtID() uuid.UUID         { return b.courtID }
func (b *Booking) CoachID() *uuid.UUID        { return b.coachID }
func (b *Booking) Equipment() []EquipmentLine { return b.equipment }
func (b *Booking) Slot() TimeSlot             { return b.slot }
func (b *Booking) TotalPrice() float64        { return b.totalPrice }
func (b *Booking) Breakdown() []pricing.Line  { return b.breakdown }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
