package queries

import (
	"context"

	"shuttlebook/internal/usecase/shared"
)

// BookingHistoryReadStore lists bookings joined with court/coach names,
// newest start time first.
type BookingHistoryReadStore interface {
	ListAll(ctx context.Context) ([]BookingView, error)
	ListByUserEmail(ctx context.Context, email string) ([]BookingView, error)
}

type BookingQueries interface {
	// GetHistory returns the actor's own bookings. Admins see everyone's
	// bookings unless they filter by email.
	GetHistory(ctx context.Context, actor shared.Actor, emailFilter *string) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingHistoryReadStore
}

func NewBookingQueries(store BookingHistoryReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetHistory(ctx context.Context, actor shared.Actor, emailFilter *string) ([]BookingView, error) {
	if actor.IsAdmin() {
		if emailFilter != nil && *emailFilter != "" {
			return q.store.ListByUserEmail(ctx, *emailFilter)
		}
		return q.store.ListAll(ctx)
	}
	return q.store.ListByUserEmail(ctx, actor.Email)
}
