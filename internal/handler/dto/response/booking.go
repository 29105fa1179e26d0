package response

import (
	"time"

	"shuttlebook/internal/domain/booking"
	"shuttlebook/internal/domain/waitlist"

	"github.com/google/uuid"
)

type PriceLineResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type BookingEquipmentResponse struct {
	EquipmentID uuid.UUID `json:"equipmentId"`
	Quantity    int       `json:"quantity"`
}

type BookingResponse struct {
	ID             uuid.UUID                  `json:"id"`
	CourtID        uuid.UUID                  `json:"courtId"`
	CoachID        *uuid.UUID                 `json:"coachId,omitempty"`
	Equipment      []BookingEquipmentResponse `json:"equipment"`
	StartTime      time.Time                  `json:"startTime"`
	EndTime        time.Time                  `json:"endTime"`
	TotalPrice     float64                    `json:"totalPrice"`
	PriceBreakdown []PriceLineResponse        `json:"priceBreakdown"`
	Status         string                     `json:"status"`
	CreatedAt      time.Time                  `json:"createdAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	equipment := make([]BookingEquipmentResponse, len(b.Equipment()))
	for i, line := range b.Equipment() {
		equipment[i] = BookingEquipmentResponse{EquipmentID: line.EquipmentID, Quantity: line.Quantity}
	}
	breakdown := make([]PriceLineResponse, len(b.Breakdown()))
	for i, line := range b.Breakdown() {
		breakdown[i] = PriceLineResponse{Label: line.Label, Amount: line.Amount}
	}

	return &BookingResponse{
		ID:             b.ID(),
		CourtID:        b.CourtID(),
		CoachID:        b.CoachID(),
		Equipment:      equipment,
		StartTime:      b.Slot().Start(),
		EndTime:        b.Slot().End(),
		TotalPrice:     b.TotalPrice(),
		PriceBreakdown: breakdown,
		Status:         b.Status().String(),
		CreatedAt:      b.CreatedAt(),
	}
}

type WaitlistEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	CourtID   uuid.UUID `json:"courtId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromWaitlistEntry(e *waitlist.Entry) *WaitlistEntryResponse {
	return &WaitlistEntryResponse{
		ID:        e.ID(),
		CourtID:   e.CourtID(),
		StartTime: e.Slot().Start(),
		EndTime:   e.Slot().End(),
		Status:    e.Status().String(),
		CreatedAt: e.CreatedAt(),
	}
}
