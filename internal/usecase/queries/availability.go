package queries

import (
	"context"
	"time"

	"shuttlebook/internal/pkg/config"
	"shuttlebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDate = errs.New("invalid date")

const dateLayout = "2006-01-02"

// AvailabilityReadStore is the read side the engine consumes: active courts
// and one day's confirmed bookings.
type AvailabilityReadStore interface {
	ActiveCourts(ctx context.Context) ([]CourtView, error)
	ConfirmedBookingsBetween(ctx context.Context, from, to time.Time) ([]BookingView, error)
}

// AvailabilityCache is an optional response cache for the all-courts grid.
// Implementations must be safe to call with a nil backing client.
type AvailabilityCache interface {
	Get(ctx context.Context, date string) (*AvailabilityView, bool)
	Set(ctx context.Context, date string, view *AvailabilityView)
	Invalidate(ctx context.Context, date string)
}

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, date string, courtID *uuid.UUID) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	cache AvailabilityCache
	loc   *time.Location
	cfg   config.BookingConfig
}

func NewAvailabilityQueries(store AvailabilityReadStore, cache AvailabilityCache, loc *time.Location, cfg config.BookingConfig) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store: store,
		cache: cache,
		loc:   loc,
		cfg:   cfg,
	}
}

// GetAvailability builds the slot grid for one calendar day in the facility
// timezone. A slot is available iff no confirmed booking on that court
// overlaps it (half-open intervals).
func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, date string, courtID *uuid.UUID) (*AvailabilityView, error) {
	dayStart, err := time.ParseInLocation(dateLayout, date, q.loc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	// Only the unfiltered grid is cached; per-court requests are cheap.
	if courtID == nil && q.cache != nil {
		if view, ok := q.cache.Get(ctx, date); ok {
			return view, nil
		}
	}

	courts, err := q.store.ActiveCourts(ctx)
	if err != nil {
		return nil, err
	}
	if courtID != nil {
		filtered := courts[:0]
		for _, c := range courts {
			if c.ID == *courtID {
				filtered = append(filtered, c)
			}
		}
		courts = filtered
	}

	bookings, err := q.store.ConfirmedBookingsBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		Date:         dayStart,
		Availability: make([]CourtAvailabilityView, 0, len(courts)),
	}

	for _, c := range courts {
		courtBookings := make([]BookingView, 0)
		for _, b := range bookings {
			if b.CourtID == c.ID {
				courtBookings = append(courtBookings, b)
			}
		}

		available := make([]SlotView, 0, q.cfg.CloseHour-q.cfg.OpenHour)
		for _, slot := range q.generateSlots(dayStart) {
			if !anyOverlap(courtBookings, slot) {
				available = append(available, slot)
			}
		}

		view.Availability = append(view.Availability, CourtAvailabilityView{
			CourtID:        c.ID,
			CourtName:      c.Name,
			Date:           dayStart,
			AvailableSlots: available,
			Bookings:       courtBookings,
		})
	}

	if courtID == nil && q.cache != nil {
		q.cache.Set(ctx, date, view)
	}
	return view, nil
}

func (q *availabilityQueriesImpl) generateSlots(dayStart time.Time) []SlotView {
	year, month, day := dayStart.Date()
	slots := make([]SlotView, 0, q.cfg.CloseHour-q.cfg.OpenHour)
	for hour := q.cfg.OpenHour; hour < q.cfg.CloseHour; hour++ {
		start := time.Date(year, month, day, hour, 0, 0, 0, q.loc)
		slots = append(slots, SlotView{StartTime: start, EndTime: start.Add(time.Hour)})
	}
	return slots
}

func anyOverlap(bookings []BookingView, slot SlotView) bool {
	for _, b := range bookings {
		if b.StartTime.Before(slot.EndTime) && b.EndTime.After(slot.StartTime) {
			return true
		}
	}
	return false
}
