package readstore

import (
	"context"
	"encoding/json"
	"time"

	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const bookingViewQuery = `
SELECT b.id, b.user_name, b.user_email, b.court_id, c.name,
       b.coach_id, co.name,
       b.equipment, b.start_time, b.end_time,
       b.total_price, b.price_breakdown, b.status, b.created_at
FROM bookings b
JOIN courts c ON c.id = b.court_id
LEFT JOIN coaches co ON co.id = b.coach_id`

// BookingHistoryStore serves the booking history screens with court and
// coach names joined in.
type BookingHistoryStore struct {
	db db.DBTX
}

func NewBookingHistoryStore(dbtx db.DBTX) *BookingHistoryStore {
	return &BookingHistoryStore{db: dbtx}
}

func (s *BookingHistoryStore) ListAll(ctx context.Context) ([]queries.BookingView, error) {
	rows, err := s.db.Query(ctx, bookingViewQuery+`
ORDER BY b.start_time DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("listing bookings", err)
	}
	return collectBookingViews(rows)
}

func (s *BookingHistoryStore) ListByUserEmail(ctx context.Context, email string) ([]queries.BookingView, error) {
	rows, err := s.db.Query(ctx, bookingViewQuery+`
WHERE b.user_email = lower($1)
ORDER BY b.start_time DESC`, email)
	if err != nil {
		return nil, infra.WrapRepoErr("listing bookings by email", err)
	}
	return collectBookingViews(rows)
}

func collectBookingViews(rows pgx.Rows) ([]queries.BookingView, error) {
	defer rows.Close()

	views := make([]queries.BookingView, 0)
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("reading booking rows", err)
	}
	return views, nil
}

func scanBookingView(row rowScanner) (queries.BookingView, error) {
	var (
		v             queries.BookingView
		equipmentJSON []byte
		breakdownJSON []byte
		startTime     time.Time
		endTime       time.Time
	)
	err := row.Scan(
		&v.ID, &v.UserName, &v.UserEmail, &v.CourtID, &v.CourtName,
		&v.CoachID, &v.CoachName,
		&equipmentJSON, &startTime, &endTime,
		&v.TotalPrice, &breakdownJSON, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return queries.BookingView{}, infra.WrapRepoErr("scanning booking", err)
	}
	v.StartTime = startTime
	v.EndTime = endTime

	if err := json.Unmarshal(equipmentJSON, &v.Equipment); err != nil {
		return queries.BookingView{}, infra.WrapRepoErr("decoding booking equipment", err)
	}
	if err := json.Unmarshal(breakdownJSON, &v.PriceBreakdown); err != nil {
		return queries.BookingView{}, infra.WrapRepoErr("decoding price breakdown", err)
	}
	return v, nil
}
