package court

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("court name cannot be empty")
	ErrInvalidType = errors.New("invalid court type")
	ErrNegativeRate = errors.New("base rate cannot be negative")
)

type Type string

const (
	TypeIndoor  Type = "indoor"
	TypeOutdoor Type = "outdoor"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeIndoor, TypeOutdoor:
		return true
	default:
		return false
	}
}

type Court struct {
	id        uuid.UUID
	name      string
	courtType Type
	baseRate  float64
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCourt(name string, courtType Type, baseRate float64, isActive bool, now time.Time) (*Court, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !courtType.IsValid() {
		return nil, ErrInvalidType
	}
	if baseRate < 0 {
		return nil, ErrNegativeRate
	}

	return &Court{
		id:        uuid.New(),
		name:      name,
		courtType: courtType,
		baseRate:  baseRate,
		isActive:  isActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCourt(id uuid.UUID, name string, courtType Type, baseRate float64, isActive bool, createdAt, updatedAt time.Time) *Court {
	return &Court{
		id:        id,
		name:      name,
		courtType: courtType,
		baseRate:  baseRate,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update applies a partial admin edit; nil fields keep their current value.
// Courts are never deleted, only deactivated.
func (c *Court) Update(name *string, courtType *Type, baseRate *float64, isActive *bool, now time.Time) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyName
		}
		c.name = trimmed
	}
	if courtType != nil {
		if !courtType.IsValid() {
			return ErrInvalidType
		}
		c.courtType = *courtType
	}
	if baseRate != nil {
		if *baseRate < 0 {
			return ErrNegativeRate
		}
		c.baseRate = *baseRate
	}
	if isActive != nil {
		c.isActive = *isActive
	}
	c.updatedAt = now
	return nil
}

func (c *Court) ID() uuid.UUID        { return c.id }
func (c *Court) Name() string         { return c.name }
func (c *Court) CourtType() Type      { return c.courtType }
func (c *Court) BaseRate() float64    { return c.baseRate }
func (c *Court) IsActive() bool       { return c.isActive }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
