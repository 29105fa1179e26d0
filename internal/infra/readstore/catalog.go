package readstore

import (
	"context"
	"encoding/json"

	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/usecase/queries"
)

// CatalogStore lists catalog resources straight off the pool; catalog reads
// never join the booking tables.
type CatalogStore struct {
	db db.DBTX
}

func NewCatalogStore(dbtx db.DBTX) *CatalogStore {
	return &CatalogStore{db: dbtx}
}

func (s *CatalogStore) ActiveCourts(ctx context.Context) ([]queries.CourtView, error) {
	return s.listCourts(ctx, true)
}

func (s *CatalogStore) AllCourts(ctx context.Context) ([]queries.CourtView, error) {
	return s.listCourts(ctx, false)
}

func (s *CatalogStore) listCourts(ctx context.Context, activeOnly bool) ([]queries.CourtView, error) {
	query := `
SELECT id, name, court_type, base_rate, is_active, created_at, updated_at
FROM courts`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("listing courts", err)
	}
	defer rows.Close()

	views := make([]queries.CourtView, 0)
	for rows.Next() {
		var v queries.CourtView
		if err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.BaseRate, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("scanning court", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("listing courts", err)
	}
	return views, nil
}

func (s *CatalogStore) ActiveEquipment(ctx context.Context) ([]queries.EquipmentView, error) {
	return s.listEquipment(ctx, true)
}

func (s *CatalogStore) AllEquipment(ctx context.Context) ([]queries.EquipmentView, error) {
	return s.listEquipment(ctx, false)
}

func (s *CatalogStore) listEquipment(ctx context.Context, activeOnly bool) ([]queries.EquipmentView, error) {
	query := `
SELECT id, name, quantity, fee_per_hour, is_active, created_at, updated_at
FROM equipment`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("listing equipment", err)
	}
	defer rows.Close()

	views := make([]queries.EquipmentView, 0)
	for rows.Next() {
		var v queries.EquipmentView
		if err := rows.Scan(&v.ID, &v.Name, &v.Quantity, &v.FeePerHour, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("scanning equipment", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("listing equipment", err)
	}
	return views, nil
}

func (s *CatalogStore) ActiveCoaches(ctx context.Context) ([]queries.CoachView, error) {
	return s.listCoaches(ctx, true)
}

func (s *CatalogStore) AllCoaches(ctx context.Context) ([]queries.CoachView, error) {
	return s.listCoaches(ctx, false)
}

func (s *CatalogStore) listCoaches(ctx context.Context, activeOnly bool) ([]queries.CoachView, error) {
	query := `
SELECT id, name, bio, rate_per_hour, is_active, availability, created_at, updated_at
FROM coaches`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("listing coaches", err)
	}
	defer rows.Close()

	views := make([]queries.CoachView, 0)
	for rows.Next() {
		var (
			v                queries.CoachView
			availabilityJSON []byte
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Bio, &v.RatePerHour, &v.IsActive, &availabilityJSON, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("scanning coach", err)
		}
		if err := json.Unmarshal(availabilityJSON, &v.Availability); err != nil {
			return nil, infra.WrapRepoErr("decoding coach availability", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("listing coaches", err)
	}
	return views, nil
}

func (s *CatalogStore) AllPricingRules(ctx context.Context) ([]queries.PricingRuleView, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, name, description, is_active, criteria,
       adjustment_type, adjustment_value, priority, created_at, updated_at
FROM pricing_rules ORDER BY priority, created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("listing pricing rules", err)
	}
	defer rows.Close()

	views := make([]queries.PricingRuleView, 0)
	for rows.Next() {
		var (
			v            queries.PricingRuleView
			criteriaJSON []byte
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.IsActive, &criteriaJSON,
			&v.Adjustment, &v.Value, &v.Priority, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("scanning pricing rule", err)
		}

		var criteria pricing.Criteria
		if err := json.Unmarshal(criteriaJSON, &criteria); err != nil {
			return nil, infra.WrapRepoErr("decoding rule criteria", err)
		}
		v.DaysOfWeek = criteria.DaysOfWeek
		v.StartHour = criteria.StartHour
		v.EndHour = criteria.EndHour
		if criteria.CourtType != nil {
			courtType := criteria.CourtType.String()
			v.CourtType = &courtType
		}
		v.AppliesTo = string(criteria.AppliesTo)

		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("listing pricing rules", err)
	}
	return views, nil
}
