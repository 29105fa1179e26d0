package repository

import (
	"context"
	"encoding/json"

	"shuttlebook/internal/domain/booking"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const insertBookingQuery = `
INSERT INTO bookings (
    id, user_id, user_name, user_email, court_id, coach_id,
    equipment, start_time, end_time, total_price, price_breakdown,
    status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	equipmentJSON, err := json.Marshal(b.Equipment())
	if err != nil {
		return infra.WrapRepoErr("marshaling booking equipment", err)
	}
	breakdownJSON, err := json.Marshal(b.Breakdown())
	if err != nil {
		return infra.WrapRepoErr("marshaling price breakdown", err)
	}

	_, err = dbtx.Exec(ctx, insertBookingQuery,
		b.ID(), b.UserID(), b.UserName(), b.UserEmail(), b.CourtID(), b.CoachID(),
		equipmentJSON, b.Slot().Start(), b.Slot().End(), b.TotalPrice(), breakdownJSON,
		b.Status().String(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("inserting booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("updating booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}
