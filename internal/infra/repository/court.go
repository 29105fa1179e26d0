package repository

import (
	"context"

	"shuttlebook/internal/domain/court"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
)

type CourtRepository struct{}

func NewCourtRepository() *CourtRepository {
	return &CourtRepository{}
}

func (r *CourtRepository) Create(ctx context.Context, dbtx db.DBTX, c *court.Court) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO courts (id, name, court_type, base_rate, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID(), c.Name(), c.CourtType().String(), c.BaseRate(), c.IsActive(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("inserting court", err)
	}
	return nil
}

func (r *CourtRepository) Update(ctx context.Context, dbtx db.DBTX, c *court.Court) error {
	tag, err := dbtx.Exec(ctx, `
UPDATE courts
SET name = $2, court_type = $3, base_rate = $4, is_active = $5, updated_at = $6
WHERE id = $1`,
		c.ID(), c.Name(), c.CourtType().String(), c.BaseRate(), c.IsActive(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("updating court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "court not found")
	}
	return nil
}
