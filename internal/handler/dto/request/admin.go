package request

import (
	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/domain/court"
	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/usecase/commands"
)

type CreateCourtRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required,oneof=indoor outdoor"`
	BaseRate float64 `json:"baseRate" binding:"required,gte=0"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (r CreateCourtRequest) ToParams() commands.CreateCourtParams {
	return commands.CreateCourtParams{
		Name:      r.Name,
		CourtType: court.Type(r.Type),
		BaseRate:  r.BaseRate,
		IsActive:  r.IsActive == nil || *r.IsActive,
	}
}

type UpdateCourtRequest struct {
	Name     *string  `json:"name,omitempty"`
	Type     *string  `json:"type,omitempty" binding:"omitempty,oneof=indoor outdoor"`
	BaseRate *float64 `json:"baseRate,omitempty" binding:"omitempty,gte=0"`
	IsActive *bool    `json:"isActive,omitempty"`
}

func (r UpdateCourtRequest) ToParams() commands.UpdateCourtParams {
	params := commands.UpdateCourtParams{
		Name:     r.Name,
		BaseRate: r.BaseRate,
		IsActive: r.IsActive,
	}
	if r.Type != nil {
		courtType := court.Type(*r.Type)
		params.CourtType = &courtType
	}
	return params
}

type CreateEquipmentRequest struct {
	Name       string  `json:"name" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,gte=0"`
	FeePerHour float64 `json:"feePerHour" binding:"gte=0"`
	IsActive   *bool   `json:"isActive,omitempty"`
}

func (r CreateEquipmentRequest) ToParams() commands.CreateEquipmentParams {
	return commands.CreateEquipmentParams{
		Name:       r.Name,
		Quantity:   r.Quantity,
		FeePerHour: r.FeePerHour,
		IsActive:   r.IsActive == nil || *r.IsActive,
	}
}

type UpdateEquipmentRequest struct {
	Name       *string  `json:"name,omitempty"`
	Quantity   *int     `json:"quantity,omitempty" binding:"omitempty,gte=0"`
	FeePerHour *float64 `json:"feePerHour,omitempty" binding:"omitempty,gte=0"`
	IsActive   *bool    `json:"isActive,omitempty"`
}

func (r UpdateEquipmentRequest) ToParams() commands.UpdateEquipmentParams {
	return commands.UpdateEquipmentParams{
		Name:       r.Name,
		Quantity:   r.Quantity,
		FeePerHour: r.FeePerHour,
		IsActive:   r.IsActive,
	}
}

type WindowRequest struct {
	DayOfWeek int `json:"dayOfWeek" binding:"min=0,max=6"`
	StartHour int `json:"startHour" binding:"min=0,max=23"`
	EndHour   int `json:"endHour" binding:"min=1,max=24"`
}

type CreateCoachRequest struct {
	Name         string          `json:"name" binding:"required"`
	Bio          string          `json:"bio,omitempty"`
	RatePerHour  float64         `json:"ratePerHour" binding:"gte=0"`
	IsActive     *bool           `json:"isActive,omitempty"`
	Availability []WindowRequest `json:"availability" binding:"dive"`
}

func (r CreateCoachRequest) ToParams() commands.CreateCoachParams {
	return commands.CreateCoachParams{
		Name:         r.Name,
		Bio:          r.Bio,
		RatePerHour:  r.RatePerHour,
		IsActive:     r.IsActive == nil || *r.IsActive,
		Availability: toWindows(r.Availability),
	}
}

type UpdateCoachRequest struct {
	Name         *string         `json:"name,omitempty"`
	Bio          *string         `json:"bio,omitempty"`
	RatePerHour  *float64        `json:"ratePerHour,omitempty" binding:"omitempty,gte=0"`
	IsActive     *bool           `json:"isActive,omitempty"`
	Availability []WindowRequest `json:"availability,omitempty" binding:"omitempty,dive"`
}

func (r UpdateCoachRequest) ToParams() commands.UpdateCoachParams {
	params := commands.UpdateCoachParams{
		Name:        r.Name,
		Bio:         r.Bio,
		RatePerHour: r.RatePerHour,
		IsActive:    r.IsActive,
	}
	if r.Availability != nil {
		params.Availability = toWindows(r.Availability)
	}
	return params
}

func toWindows(reqs []WindowRequest) []coach.Window {
	windows := make([]coach.Window, len(reqs))
	for i, w := range reqs {
		windows[i] = coach.Window{DayOfWeek: w.DayOfWeek, StartHour: w.StartHour, EndHour: w.EndHour}
	}
	return windows
}

type CreatePricingRuleRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
	DaysOfWeek      []int   `json:"daysOfWeek,omitempty" binding:"omitempty,dive,min=0,max=6"`
	StartHour       *int    `json:"startHour,omitempty" binding:"omitempty,min=0,max=23"`
	EndHour         *int    `json:"endHour,omitempty" binding:"omitempty,min=1,max=24"`
	CourtType       *string `json:"courtType,omitempty" binding:"omitempty,oneof=indoor outdoor"`
	AppliesTo       string  `json:"appliesTo" binding:"required,oneof=court equipment coach"`
	AdjustmentType  string  `json:"adjustmentType" binding:"required,oneof=multiplier flat"`
	AdjustmentValue float64 `json:"adjustmentValue" binding:"required"`
	Priority        int     `json:"priority" binding:"required,min=1"`
}

func (r CreatePricingRuleRequest) ToParams() commands.CreatePricingRuleParams {
	return commands.CreatePricingRuleParams{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive == nil || *r.IsActive,
		Criteria: pricing.Criteria{
			DaysOfWeek: r.DaysOfWeek,
			StartHour:  r.StartHour,
			EndHour:    r.EndHour,
			CourtType:  toCourtType(r.CourtType),
			AppliesTo:  pricing.Scope(r.AppliesTo),
		},
		Adjustment: pricing.Adjustment{
			Type:  pricing.AdjustmentType(r.AdjustmentType),
			Value: r.AdjustmentValue,
		},
		Priority: r.Priority,
	}
}

type UpdatePricingRuleRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
	DaysOfWeek      []int    `json:"daysOfWeek,omitempty" binding:"omitempty,dive,min=0,max=6"`
	StartHour       *int     `json:"startHour,omitempty" binding:"omitempty,min=0,max=23"`
	EndHour         *int     `json:"endHour,omitempty" binding:"omitempty,min=1,max=24"`
	CourtType       *string  `json:"courtType,omitempty" binding:"omitempty,oneof=indoor outdoor"`
	AppliesTo       *string  `json:"appliesTo,omitempty" binding:"omitempty,oneof=court equipment coach"`
	AdjustmentType  *string  `json:"adjustmentType,omitempty" binding:"omitempty,oneof=multiplier flat"`
	AdjustmentValue *float64 `json:"adjustmentValue,omitempty"`
	Priority        *int     `json:"priority,omitempty" binding:"omitempty,min=1"`
}

// ToParams rebuilds the whole criteria/adjustment value when any of its
// fields is present; touching one criteria field replaces the criteria.
func (r UpdatePricingRuleRequest) ToParams() commands.UpdatePricingRuleParams {
	params := commands.UpdatePricingRuleParams{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
		Priority:    r.Priority,
	}

	if r.DaysOfWeek != nil || r.StartHour != nil || r.EndHour != nil || r.CourtType != nil || r.AppliesTo != nil {
		criteria := pricing.Criteria{
			DaysOfWeek: r.DaysOfWeek,
			StartHour:  r.StartHour,
			EndHour:    r.EndHour,
			CourtType:  toCourtType(r.CourtType),
		}
		if r.AppliesTo != nil {
			criteria.AppliesTo = pricing.Scope(*r.AppliesTo)
		}
		params.Criteria = &criteria
	}

	if r.AdjustmentType != nil || r.AdjustmentValue != nil {
		adjustment := pricing.Adjustment{}
		if r.AdjustmentType != nil {
			adjustment.Type = pricing.AdjustmentType(*r.AdjustmentType)
		}
		if r.AdjustmentValue != nil {
			adjustment.Value = *r.AdjustmentValue
		}
		params.Adjustment = &adjustment
	}

	return params
}

func toCourtType(s *string) *court.Type {
	if s == nil {
		return nil
	}
	courtType := court.Type(*s)
	return &courtType
}
