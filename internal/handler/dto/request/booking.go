package request

import (
	"time"

	"shuttlebook/internal/usecase/commands"
	"shuttlebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentSelectionRequest struct {
	EquipmentID uuid.UUID `json:"equipmentId" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
}

type CreateBookingRequest struct {
	CourtID   uuid.UUID                   `json:"courtId" binding:"required"`
	CoachID   *uuid.UUID                  `json:"coachId,omitempty"`
	Equipment []EquipmentSelectionRequest `json:"equipment,omitempty" binding:"dive"`
	StartTime time.Time                   `json:"startTime" binding:"required"`
	EndTime   time.Time                   `json:"endTime" binding:"required"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	equipment := make([]commands.EquipmentRequest, len(r.Equipment))
	for i, e := range r.Equipment {
		equipment[i] = commands.EquipmentRequest{EquipmentID: e.EquipmentID, Quantity: e.Quantity}
	}
	return commands.CreateBookingParams{
		CourtID:   r.CourtID,
		CoachID:   r.CoachID,
		Equipment: equipment,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type QuoteRequest struct {
	CourtID   uuid.UUID                   `json:"courtId" binding:"required"`
	CoachID   *uuid.UUID                  `json:"coachId,omitempty"`
	Equipment []EquipmentSelectionRequest `json:"equipment,omitempty" binding:"dive"`
	StartTime time.Time                   `json:"startTime" binding:"required"`
	EndTime   time.Time                   `json:"endTime" binding:"required"`
}

func (r QuoteRequest) ToParams() queries.QuoteParams {
	equipment := make([]queries.EquipmentSelection, len(r.Equipment))
	for i, e := range r.Equipment {
		equipment[i] = queries.EquipmentSelection{EquipmentID: e.EquipmentID, Quantity: e.Quantity}
	}
	return queries.QuoteParams{
		CourtID:   r.CourtID,
		CoachID:   r.CoachID,
		Equipment: equipment,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type JoinWaitlistRequest struct {
	CourtID   uuid.UUID `json:"courtId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}
