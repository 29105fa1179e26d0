package equipment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("equipment name cannot be empty")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrNegativeFee      = errors.New("fee per hour cannot be negative")
)

type Equipment struct {
	id         uuid.UUID
	name       string
	quantity   int
	feePerHour float64
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewEquipment(name string, quantity int, feePerHour float64, isActive bool, now time.Time) (*Equipment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if feePerHour < 0 {
		return nil, ErrNegativeFee
	}

	return &Equipment{
		id:         uuid.New(),
		name:       name,
		quantity:   quantity,
		feePerHour: feePerHour,
		isActive:   isActive,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructEquipment(id uuid.UUID, name string, quantity int, feePerHour float64, isActive bool, createdAt, updatedAt time.Time) *Equipment {
	return &Equipment{
		id:         id,
		name:       name,
		quantity:   quantity,
		feePerHour: feePerHour,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (e *Equipment) Update(name *string, quantity *int, feePerHour *float64, isActive *bool, now time.Time) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyName
		}
		e.name = trimmed
	}
	if quantity != nil {
		if *quantity < 0 {
			return ErrNegativeQuantity
		}
		e.quantity = *quantity
	}
	if feePerHour != nil {
		if *feePerHour < 0 {
			return ErrNegativeFee
		}
		e.feePerHour = *feePerHour
	}
	if isActive != nil {
		e.isActive = *isActive
	}
	e.updatedAt = now
	return nil
}

func (e *Equipment) ID() uuid.UUID        { return e.id }
func (e *Equipment) Name() string         { return e.name }
func (e *Equipment) Quantity() int        { return e.quantity }
func (e *Equipment) FeePerHour() float64  { return e.feePerHour }
func (e *Equipment) IsActive() bool       { return e.isActive }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }
