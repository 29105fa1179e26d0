//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shuttlebook/internal/pkg/config"
	"shuttlebook/internal/usecase/queries"
	"shuttlebook/tests/common/fake"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityStore struct {
	courts      []queries.CourtView
	bookings    []queries.BookingView
	courtCalls  int
	bookedCalls int
}

func (s *stubAvailabilityStore) ActiveCourts(_ context.Context) ([]queries.CourtView, error) {
	s.courtCalls++
	return s.courts, nil
}

func (s *stubAvailabilityStore) ConfirmedBookingsBetween(_ context.Context, _, _ time.Time) ([]queries.BookingView, error) {
	s.bookedCalls++
	return s.bookings, nil
}

func bookingCfg() config.BookingConfig {
	return config.BookingConfig{Timezone: "UTC", OpenHour: 6, CloseHour: 22}
}

func TestGetAvailability_FullDayGrid(t *testing.T) {
	courtID := uuid.New()
	store := &stubAvailabilityStore{
		courts: []queries.CourtView{{ID: courtID, Name: "Court 1"}},
	}
	q := queries.NewAvailabilityQueries(store, nil, time.UTC, bookingCfg())

	view, err := q.GetAvailability(context.Background(), "2025-06-07", nil)
	require.NoError(t, err)

	require.Len(t, view.Availability, 1)
	grid := view.Availability[0]
	assert.Equal(t, courtID, grid.CourtID)
	// 06:00 through 21:00 starts, one hour each
	require.Len(t, grid.AvailableSlots, 16)
	assert.Equal(t, time.Date(2025, 6, 7, 6, 0, 0, 0, time.UTC), grid.AvailableSlots[0].StartTime)
	last := grid.AvailableSlots[len(grid.AvailableSlots)-1]
	assert.Equal(t, time.Date(2025, 6, 7, 21, 0, 0, 0, time.UTC), last.StartTime)
	assert.Equal(t, time.Date(2025, 6, 7, 22, 0, 0, 0, time.UTC), last.EndTime)
}

func TestGetAvailability_BookingRemovesExactSlots(t *testing.T) {
	courtID := uuid.New()
	store := &stubAvailabilityStore{
		courts: []queries.CourtView{{ID: courtID, Name: "Court 1"}},
		bookings: []queries.BookingView{{
			ID:        uuid.New(),
			CourtID:   courtID,
			StartTime: time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 7, 11, 0, 0, 0, time.UTC),
		}},
	}
	q := queries.NewAvailabilityQueries(store, nil, time.UTC, bookingCfg())

	view, err := q.GetAvailability(context.Background(), "2025-06-07", nil)
	require.NoError(t, err)

	grid := view.Availability[0]
	require.Len(t, grid.AvailableSlots, 15)
	for _, slot := range grid.AvailableSlots {
		assert.NotEqual(t, 10, slot.StartTime.Hour(), "the booked hour must be gone")
	}
	// Adjacent slots survive.
	hours := make(map[int]bool)
	for _, slot := range grid.AvailableSlots {
		hours[slot.StartTime.Hour()] = true
	}
	assert.True(t, hours[9])
	assert.True(t, hours[11])

	require.Len(t, grid.Bookings, 1)
}

func TestGetAvailability_PartialHourBlocksBothSlots(t *testing.T) {
	courtID := uuid.New()
	store := &stubAvailabilityStore{
		courts: []queries.CourtView{{ID: courtID, Name: "Court 1"}},
		bookings: []queries.BookingView{{
			ID:        uuid.New(),
			CourtID:   courtID,
			StartTime: time.Date(2025, 6, 7, 10, 30, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 7, 11, 30, 0, 0, time.UTC),
		}},
	}
	q := queries.NewAvailabilityQueries(store, nil, time.UTC, bookingCfg())

	view, err := q.GetAvailability(context.Background(), "2025-06-07", nil)
	require.NoError(t, err)
	require.Len(t, view.Availability[0].AvailableSlots, 14)
}

// A booking spanning midnight belongs to every day it overlaps, so the
// morning slots it covers are gone even though it started the day before.
func TestGetAvailability_CrossMidnightBookingBlocksMorning(t *testing.T) {
	courtID := uuid.New()
	store := &stubAvailabilityStore{
		courts: []queries.CourtView{{ID: courtID, Name: "Court 1"}},
		bookings: []queries.BookingView{{
			ID:        uuid.New(),
			CourtID:   courtID,
			StartTime: time.Date(2025, 6, 6, 23, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 7, 7, 0, 0, 0, time.UTC),
		}},
	}
	q := queries.NewAvailabilityQueries(store, nil, time.UTC, bookingCfg())

	view, err := q.GetAvailability(context.Background(), "2025-06-07", nil)
	require.NoError(t, err)

	grid := view.Availability[0]
	require.Len(t, grid.AvailableSlots, 15)
	assert.Equal(t, time.Date(2025, 6, 7, 7, 0, 0, 0, time.UTC), grid.AvailableSlots[0].StartTime)
	require.Len(t, grid.Bookings, 1)
}

func TestGetAvailability_BookingOnOtherCourtDoesNotBlock(t *testing.T) {
	courtID := uuid.New()
	store := &stubAvailabilityStore{
		courts: []queries.CourtView{{ID: courtID, Name: "Court 1"}},
		bookings: []queries.BookingView{{
			ID:        uuid.New(),
			CourtID:   uuid.New(),
			StartTime: time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC),
		}},
	}
	q := queries.NewAvailabilityQueries(store, nil, time.UTC, bookingCfg())

	view, err := q.GetAvailability(context.Background(), "2025-06-07", nil)
	require.NoError(t, err)
	assert.Len(t, view.Availability[0].AvailableSlots, 16)
	assert.Empty(t, view.Availability[0].Bookings)
}

func TestGetAvailability_CourtFilter(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	store := &stubAvailabilityStore{
		courts: []queries.CourtView{
			{ID: first, Name: "Court 1"},
			{ID: second, Name: "Court 2"},
		},
	}
	q := queries.NewAvailabilityQueries(store, nil, time.UTC, bookingCfg())

	view, err := q.GetAvailability(context.Background(), "2025-06-07", &second)
	require.NoError(t, err)
	require.Len(t, view.Availability, 1)
	assert.Equal(t, second, view.Availability[0].CourtID)
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	q := queries.NewAvailabilityQueries(&stubAvailabilityStore{}, nil, time.UTC, bookingCfg())

	_, err := q.GetAvailability(context.Background(), "07-06-2025", nil)
	require.ErrorIs(t, err, queries.ErrInvalidDate)

	_, err = q.GetAvailability(context.Background(), "not-a-date", nil)
	require.ErrorIs(t, err, queries.ErrInvalidDate)
}

func TestGetAvailability_CacheRoundTrip(t *testing.T) {
	courtID := uuid.New()
	store := &stubAvailabilityStore{
		courts: []queries.CourtView{{ID: courtID, Name: "Court 1"}},
	}
	cache := fake.NewCache()
	q := queries.NewAvailabilityQueries(store, cache, time.UTC, bookingCfg())

	first, err := q.GetAvailability(context.Background(), "2025-06-07", nil)
	require.NoError(t, err)
	require.Equal(t, 1, store.courtCalls)

	// Second call is served from the cache.
	second, err := q.GetAvailability(context.Background(), "2025-06-07", nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second))
	assert.Equal(t, 1, store.courtCalls)

	// Per-court requests bypass the cache.
	_, err = q.GetAvailability(context.Background(), "2025-06-07", &courtID)
	require.NoError(t, err)
	assert.Equal(t, 2, store.courtCalls)
}
