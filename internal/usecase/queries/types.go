package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type CourtView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	BaseRate  float64   `json:"baseRate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type EquipmentView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	FeePerHour float64   `json:"feePerHour"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CoachWindowView struct {
	DayOfWeek int `json:"dayOfWeek"`
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

type CoachView struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Bio          string            `json:"bio,omitempty"`
	RatePerHour  float64           `json:"ratePerHour"`
	IsActive     bool              `json:"isActive"`
	Availability []CoachWindowView `json:"availability"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type PricingRuleView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	DaysOfWeek  []int     `json:"daysOfWeek,omitempty"`
	StartHour   *int      `json:"startHour,omitempty"`
	EndHour     *int      `json:"endHour,omitempty"`
	CourtType   *string   `json:"courtType,omitempty"`
	AppliesTo   string    `json:"appliesTo"`
	Adjustment  string    `json:"adjustmentType"`
	Value       float64   `json:"adjustmentValue"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MetaView struct {
	Courts    []CourtView     `json:"courts"`
	Equipment []EquipmentView `json:"equipment"`
	Coaches   []CoachView     `json:"coaches"`
}

type PriceLineView struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type QuoteView struct {
	TotalPrice     float64         `json:"totalPrice"`
	PriceBreakdown []PriceLineView `json:"priceBreakdown"`
}

type BookingEquipmentView struct {
	EquipmentID uuid.UUID `json:"equipmentId"`
	Name        string    `json:"name,omitempty"`
	Quantity    int       `json:"quantity"`
}

type BookingView struct {
	ID             uuid.UUID              `json:"id"`
	UserName       string                 `json:"userName"`
	UserEmail      string                 `json:"userEmail"`
	CourtID        uuid.UUID              `json:"courtId"`
	CourtName      string                 `json:"courtName,omitempty"`
	CoachID        *uuid.UUID             `json:"coachId,omitempty"`
	CoachName      *string                `json:"coachName,omitempty"`
	Equipment      []BookingEquipmentView `json:"equipment"`
	StartTime      time.Time              `json:"startTime"`
	EndTime        time.Time              `json:"endTime"`
	TotalPrice     float64                `json:"totalPrice"`
	PriceBreakdown []PriceLineView        `json:"priceBreakdown"`
	Status         string                 `json:"status"`
	CreatedAt      time.Time              `json:"createdAt"`
}

type SlotView struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type CourtAvailabilityView struct {
	CourtID        uuid.UUID     `json:"courtId"`
	CourtName      string        `json:"courtName"`
	Date           time.Time     `json:"date"`
	AvailableSlots []SlotView    `json:"availableSlots"`
	Bookings       []BookingView `json:"bookings"`
}

type AvailabilityView struct {
	Date         time.Time               `json:"date"`
	Availability []CourtAvailabilityView `json:"availability"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
