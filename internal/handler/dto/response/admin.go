package response

import (
	"time"

	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/domain/court"
	"shuttlebook/internal/domain/equipment"
	"shuttlebook/internal/domain/pricing"

	"github.com/google/uuid"
)

type CourtResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	BaseRate  float64   `json:"baseRate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromCourt(c *court.Court) *CourtResponse {
	return &CourtResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Type:      c.CourtType().String(),
		BaseRate:  c.BaseRate(),
		IsActive:  c.IsActive(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

type EquipmentResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	FeePerHour float64   `json:"feePerHour"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromEquipment(e *equipment.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:         e.ID(),
		Name:       e.Name(),
		Quantity:   e.Quantity(),
		FeePerHour: e.FeePerHour(),
		IsActive:   e.IsActive(),
		CreatedAt:  e.CreatedAt(),
		UpdatedAt:  e.UpdatedAt(),
	}
}

type WindowResponse struct {
	DayOfWeek int `json:"dayOfWeek"`
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

type CoachResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Bio          string           `json:"bio,omitempty"`
	RatePerHour  float64          `json:"ratePerHour"`
	IsActive     bool             `json:"isActive"`
	Availability []WindowResponse `json:"availability"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func FromCoach(c *coach.Coach) *CoachResponse {
	availability := make([]WindowResponse, len(c.Availability()))
	for i, w := range c.Availability() {
		availability[i] = WindowResponse{DayOfWeek: w.DayOfWeek, StartHour: w.StartHour, EndHour: w.EndHour}
	}
	return &CoachResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Bio:          c.Bio(),
		RatePerHour:  c.RatePerHour(),
		IsActive:     c.IsActive(),
		Availability: availability,
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

type PricingRuleResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	IsActive        bool      `json:"isActive"`
	DaysOfWeek      []int     `json:"daysOfWeek,omitempty"`
	StartHour       *int      `json:"startHour,omitempty"`
	EndHour         *int      `json:"endHour,omitempty"`
	CourtType       *string   `json:"courtType,omitempty"`
	AppliesTo       string    `json:"appliesTo"`
	AdjustmentType  string    `json:"adjustmentType"`
	AdjustmentValue float64   `json:"adjustmentValue"`
	Priority        int       `json:"priority"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromPricingRule(r *pricing.Rule) *PricingRuleResponse {
	resp := &PricingRuleResponse{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		IsActive:        r.IsActive,
		DaysOfWeek:      r.Criteria.DaysOfWeek,
		StartHour:       r.Criteria.StartHour,
		EndHour:         r.Criteria.EndHour,
		AppliesTo:       string(r.Criteria.AppliesTo),
		AdjustmentType:  string(r.Adjustment.Type),
		AdjustmentValue: r.Adjustment.Value,
		Priority:        r.Priority,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Criteria.CourtType != nil {
		courtType := r.Criteria.CourtType.String()
		resp.CourtType = &courtType
	}
	return resp
}
