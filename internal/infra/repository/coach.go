package repository

import (
	"context"
	"encoding/json"

	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
)

type CoachRepository struct{}

func NewCoachRepository() *CoachRepository {
	return &CoachRepository{}
}

func (r *CoachRepository) Create(ctx context.Context, dbtx db.DBTX, c *coach.Coach) error {
	availabilityJSON, err := json.Marshal(c.Availability())
	if err != nil {
		return infra.WrapRepoErr("marshaling coach availability", err)
	}

	_, err = dbtx.Exec(ctx, `
INSERT INTO coaches (id, name, bio, rate_per_hour, is_active, availability, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID(), c.Name(), c.Bio(), c.RatePerHour(), c.IsActive(), availabilityJSON, c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("inserting coach", err)
	}
	return nil
}

func (r *CoachRepository) Update(ctx context.Context, dbtx db.DBTX, c *coach.Coach) error {
	availabilityJSON, err := json.Marshal(c.Availability())
	if err != nil {
		return infra.WrapRepoErr("marshaling coach availability", err)
	}

	tag, err := dbtx.Exec(ctx, `
UPDATE coaches
SET name = $2, bio = $3, rate_per_hour = $4, is_active = $5, availability = $6, updated_at = $7
WHERE id = $1`,
		c.ID(), c.Name(), c.Bio(), c.RatePerHour(), c.IsActive(), availabilityJSON, c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("updating coach", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "coach not found")
	}
	return nil
}
