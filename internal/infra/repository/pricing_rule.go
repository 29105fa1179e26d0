package repository

import (
	"context"
	"encoding/json"

	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
)

type PricingRuleRepository struct{}

func NewPricingRuleRepository() *PricingRuleRepository {
	return &PricingRuleRepository{}
}

func (r *PricingRuleRepository) Create(ctx context.Context, dbtx db.DBTX, rule pricing.Rule) error {
	criteriaJSON, err := json.Marshal(rule.Criteria)
	if err != nil {
		return infra.WrapRepoErr("marshaling rule criteria", err)
	}

	_, err = dbtx.Exec(ctx, `
INSERT INTO pricing_rules (
    id, name, description, is_active, criteria,
    adjustment_type, adjustment_value, priority, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rule.ID, rule.Name, rule.Description, rule.IsActive, criteriaJSON,
		string(rule.Adjustment.Type), rule.Adjustment.Value, rule.Priority, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("inserting pricing rule", err)
	}
	return nil
}

func (r *PricingRuleRepository) Update(ctx context.Context, dbtx db.DBTX, rule pricing.Rule) error {
	criteriaJSON, err := json.Marshal(rule.Criteria)
	if err != nil {
		return infra.WrapRepoErr("marshaling rule criteria", err)
	}

	tag, err := dbtx.Exec(ctx, `
UPDATE pricing_rules
SET name = $2, description = $3, is_active = $4, criteria = $5,
    adjustment_type = $6, adjustment_value = $7, priority = $8, updated_at = $9
WHERE id = $1`,
		rule.ID, rule.Name, rule.Description, rule.IsActive, criteriaJSON,
		string(rule.Adjustment.Type), rule.Adjustment.Value, rule.Priority, rule.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("updating pricing rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "pricing rule not found")
	}
	return nil
}
