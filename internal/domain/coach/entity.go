package coach

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("coach name cannot be empty")
	ErrNegativeRate   = errors.New("rate per hour cannot be negative")
	ErrInvalidWindow  = errors.New("invalid availability window")
)

// Window is one weekly recurring availability slot. DayOfWeek follows
// time.Weekday numbering (0 = Sunday). Hours are half-open: a window
// {startHour: 9, endHour: 12} covers bookings starting at or after 09:00
// and ending at or before 12:00.
type Window struct {
	DayOfWeek int `json:"dayOfWeek"`
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

func (w Window) Validate() error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return ErrInvalidWindow
	}
	if w.StartHour < 0 || w.StartHour > 23 {
		return ErrInvalidWindow
	}
	if w.EndHour < 1 || w.EndHour > 24 || w.EndHour <= w.StartHour {
		return ErrInvalidWindow
	}
	return nil
}

type Coach struct {
	id           uuid.UUID
	name         string
	bio          string
	ratePerHour  float64
	isActive     bool
	availability []Window
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCoach(name, bio string, ratePerHour float64, isActive bool, availability []Window, now time.Time) (*Coach, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if ratePerHour < 0 {
		return nil, ErrNegativeRate
	}
	for _, w := range availability {
		if err := w.Validate(); err != nil {
			return nil, err
		}
	}

	return &Coach{
		id:           uuid.New(),
		name:         name,
		bio:          bio,
		ratePerHour:  ratePerHour,
		isActive:     isActive,
		availability: availability,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructCoach(id uuid.UUID, name, bio string, ratePerHour float64, isActive bool, availability []Window, createdAt, updatedAt time.Time) *Coach {
	return &Coach{
		id:           id,
		name:         name,
		bio:          bio,
		ratePerHour:  ratePerHour,
		isActive:     isActive,
		availability: availability,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Covers reports whether the requested window [start, end) lies entirely
// within one of the coach's weekly availability windows. Day and hours are
// evaluated in loc, with the day taken from start only.
func (c *Coach) Covers(start, end time.Time, loc *time.Location) bool {
	localStart := start.In(loc)
	localEnd := end.In(loc)
	day := int(localStart.Weekday())
	startHour := localStart.Hour()
	endHour := localEnd.Hour()

	for _, w := range c.availability {
		if w.DayOfWeek == day && w.StartHour <= startHour && w.EndHour >= endHour {
			return true
		}
	}
	return false
}

func (c *Coach) Update(name, bio *string, ratePerHour *float64, isActive *bool, availability []Window, now time.Time) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyName
		}
		c.name = trimmed
	}
	if bio != nil {
		c.bio = *bio
	}
	if ratePerHour != nil {
		if *ratePerHour < 0 {
			return ErrNegativeRate
		}
		c.ratePerHour = *ratePerHour
	}
	if isActive != nil {
		c.isActive = *isActive
	}
	if availability != nil {
		for _, w := range availability {
			if err := w.Validate(); err != nil {
				return err
			}
		}
		c.availability = availability
	}
	c.updatedAt = now
	return nil
}

func (c *Coach) ID() uuid.UUID          { return c.id }
func (c *Coach) Name() string           { return c.name }
func (c *Coach) Bio() string            { return c.bio }
func (c *Coach) RatePerHour() float64   { return c.ratePerHour }
func (c *Coach) IsActive() bool         { return c.isActive }
func (c *Coach) Availability() []Window { return c.availability }
func (c *Coach) CreatedAt() time.Time   { return c.createdAt }
func (c *Coach) UpdatedAt() time.Time   { return c.updatedAt }
