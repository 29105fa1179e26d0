package pricing

import (
	"errors"
	"time"

	"shuttlebook/internal/domain/court"

	"github.com/google/uuid"
)

var (
	ErrEmptyName            = errors.New("rule name cannot be empty")
	ErrInvalidScope         = errors.New("invalid rule scope")
	ErrInvalidAdjustment    = errors.New("invalid rule adjustment")
	ErrInvalidPriority      = errors.New("priority must be at least 1")
	ErrInvalidCriteriaHours = errors.New("invalid criteria hour range")
)

// Scope partitions rules: a rule only ever adjusts the cost component it
// applies to.
type Scope string

const (
	ScopeCourt     Scope = "court"
	ScopeEquipment Scope = "equipment"
	ScopeCoach     Scope = "coach"
)

func (s Scope) IsValid() bool {
	switch s {
	case ScopeCourt, ScopeEquipment, ScopeCoach:
		return true
	default:
		return false
	}
}

type AdjustmentType string

const (
	AdjustmentMultiplier AdjustmentType = "multiplier"
	AdjustmentFlat       AdjustmentType = "flat"
)

func (t AdjustmentType) IsValid() bool {
	return t == AdjustmentMultiplier || t == AdjustmentFlat
}

// Criteria narrows when a rule fires. Zero-value fields match everything:
// an empty DaysOfWeek set matches all days, nil hours match all hours, a
// nil CourtType matches both indoor and outdoor courts.
type Criteria struct {
	DaysOfWeek []int       `json:"daysOfWeek,omitempty"`
	StartHour  *int        `json:"startHour,omitempty"`
	EndHour    *int        `json:"endHour,omitempty"`
	CourtType  *court.Type `json:"courtType,omitempty"`
	AppliesTo  Scope       `json:"appliesTo"`
}

type Adjustment struct {
	Type  AdjustmentType `json:"type"`
	Value float64        `json:"value"`
}

// Apply folds the adjustment into a running cost: multipliers replace the
// running value, flat adjustments add to it.
func (a Adjustment) Apply(running float64) float64 {
	if a.Type == AdjustmentMultiplier {
		return running * a.Value
	}
	return running + a.Value
}

type Rule struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	Criteria    Criteria
	Adjustment  Adjustment
	Priority    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r Rule) Validate() error {
	if r.Name == "" {
		return ErrEmptyName
	}
	if !r.Criteria.AppliesTo.IsValid() {
		return ErrInvalidScope
	}
	if !r.Adjustment.Type.IsValid() {
		return ErrInvalidAdjustment
	}
	if r.Priority < 1 {
		return ErrInvalidPriority
	}
	if r.Criteria.StartHour != nil && (*r.Criteria.StartHour < 0 || *r.Criteria.StartHour > 23) {
		return ErrInvalidCriteriaHours
	}
	if r.Criteria.EndHour != nil && (*r.Criteria.EndHour < 1 || *r.Criteria.EndHour > 24) {
		return ErrInvalidCriteriaHours
	}
	for _, d := range r.Criteria.DaysOfWeek {
		if d < 0 || d > 6 {
			return ErrInvalidCriteriaHours
		}
	}
	return nil
}

// Matches evaluates the criteria against the booking start only: the day of
// week and hour come from start in loc, never from the end time.
func (r Rule) Matches(start time.Time, courtType court.Type, loc *time.Location) bool {
	local := start.In(loc)
	hour := local.Hour()
	day := int(local.Weekday())

	if len(r.Criteria.DaysOfWeek) > 0 && !containsDay(r.Criteria.DaysOfWeek, day) {
		return false
	}
	if r.Criteria.StartHour != nil && hour < *r.Criteria.StartHour {
		return false
	}
	if r.Criteria.EndHour != nil && hour >= *r.Criteria.EndHour {
		return false
	}
	if r.Criteria.CourtType != nil && *r.Criteria.CourtType != courtType {
		return false
	}
	return true
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
