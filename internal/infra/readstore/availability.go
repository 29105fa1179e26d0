package readstore

import (
	"context"
	"time"

	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/usecase/queries"
)

// AvailabilityStore feeds the slot grid: active courts plus one window's
// confirmed bookings.
type AvailabilityStore struct {
	db      db.DBTX
	catalog *CatalogStore
}

func NewAvailabilityStore(dbtx db.DBTX) *AvailabilityStore {
	return &AvailabilityStore{db: dbtx, catalog: NewCatalogStore(dbtx)}
}

func (s *AvailabilityStore) ActiveCourts(ctx context.Context) ([]queries.CourtView, error) {
	return s.catalog.ActiveCourts(ctx)
}

func (s *AvailabilityStore) ConfirmedBookingsBetween(ctx context.Context, from, to time.Time) ([]queries.BookingView, error) {
	rows, err := s.db.Query(ctx, bookingViewQuery+`
WHERE b.status = 'confirmed' AND b.start_time < $2 AND b.end_time > $1
ORDER BY b.start_time`, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("listing confirmed bookings", err)
	}
	return collectBookingViews(rows)
}
