package waitlist

import (
	"errors"
	"time"

	"shuttlebook/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrNotWaiting = errors.New("waitlist entry is not waiting")

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusNotified Status = "notified"
	StatusBooked   Status = "booked"
)

func (s Status) String() string {
	return string(s)
}

// Entry records a user's interest in a court window that was taken at
// booking time. Entries are promoted FIFO when a cancellation frees a
// window their own window covers.
type Entry struct {
	id        uuid.UUID
	userID    uuid.UUID
	userName  string
	userEmail string
	courtID   uuid.UUID
	slot      booking.TimeSlot
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewEntry(userID uuid.UUID, userName, userEmail string, courtID uuid.UUID, slot booking.TimeSlot, now time.Time) *Entry {
	return &Entry{
		id:        uuid.New(),
		userID:    userID,
		userName:  userName,
		userEmail: userEmail,
		courtID:   courtID,
		slot:      slot,
		status:    StatusWaiting,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructEntry(id, userID uuid.UUID, userName, userEmail string, courtID uuid.UUID, slot booking.TimeSlot, status Status, createdAt, updatedAt time.Time) *Entry {
	return &Entry{
		id:        id,
		userID:    userID,
		userName:  userName,
		userEmail: userEmail,
		courtID:   courtID,
		slot:      slot,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (e *Entry) Notify(now time.Time) error {
	if e.status != StatusWaiting {
		return ErrNotWaiting
	}
	e.status = StatusNotified
	e.updatedAt = now
	return nil
}

func (e *Entry) ID() uuid.UUID          { return e.id }
func (e *Entry) UserID() uuid.UUID      { return e.userID }
func (e *Entry) UserName() string       { return e.userName }
func (e *Entry) UserEmail() string      { return e.userEmail }
func (e *Entry) CourtID() uuid.UUID     { return e.courtID }
func (e *Entry) Slot() booking.TimeSlot { return e.slot }
func (e *Entry) Status() Status         { return e.status }
func (e *Entry) CreatedAt() time.Time   { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time   { return e.updatedAt }
