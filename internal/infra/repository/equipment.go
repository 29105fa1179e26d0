package repository

import (
	"context"

	"shuttlebook/internal/domain/equipment"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
)

type EquipmentRepository struct{}

func NewEquipmentRepository() *EquipmentRepository {
	return &EquipmentRepository{}
}

func (r *EquipmentRepository) Create(ctx context.Context, dbtx db.DBTX, e *equipment.Equipment) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO equipment (id, name, quantity, fee_per_hour, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID(), e.Name(), e.Quantity(), e.FeePerHour(), e.IsActive(), e.CreatedAt(), e.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("inserting equipment", err)
	}
	return nil
}

func (r *EquipmentRepository) Update(ctx context.Context, dbtx db.DBTX, e *equipment.Equipment) error {
	tag, err := dbtx.Exec(ctx, `
UPDATE equipment
SET name = $2, quantity = $3, fee_per_hour = $4, is_active = $5, updated_at = $6
WHERE id = $1`,
		e.ID(), e.Name(), e.Quantity(), e.FeePerHour(), e.IsActive(), e.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("updating equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "equipment not found")
	}
	return nil
}
