package repository

import (
	"context"

	"shuttlebook/internal/domain/waitlist"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"

	"github.com/google/uuid"
)

type WaitlistRepository struct{}

func NewWaitlistRepository() *WaitlistRepository {
	return &WaitlistRepository{}
}

const insertWaitlistEntryQuery = `
INSERT INTO waitlist_entries (
    id, user_id, user_name, user_email, court_id,
    start_time, end_time, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (r *WaitlistRepository) Create(ctx context.Context, dbtx db.DBTX, e *waitlist.Entry) error {
	_, err := dbtx.Exec(ctx, insertWaitlistEntryQuery,
		e.ID(), e.UserID(), e.UserName(), e.UserEmail(), e.CourtID(),
		e.Slot().Start(), e.Slot().End(), e.Status().String(), e.CreatedAt(), e.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("inserting waitlist entry", err)
	}
	return nil
}

func (r *WaitlistRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status waitlist.Status) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE waitlist_entries SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("updating waitlist entry status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "waitlist entry not found")
	}
	return nil
}
