package queries

import (
	"context"
)

// CatalogReadStore lists resources for the booking form (active only) and
// the admin screens (everything, deactivated included).
type CatalogReadStore interface {
	ActiveCourts(ctx context.Context) ([]CourtView, error)
	ActiveEquipment(ctx context.Context) ([]EquipmentView, error)
	ActiveCoaches(ctx context.Context) ([]CoachView, error)
	AllCourts(ctx context.Context) ([]CourtView, error)
	AllEquipment(ctx context.Context) ([]EquipmentView, error)
	AllCoaches(ctx context.Context) ([]CoachView, error)
	AllPricingRules(ctx context.Context) ([]PricingRuleView, error)
}

type CatalogQueries interface {
	GetMeta(ctx context.Context) (*MetaView, error)
	ListCourts(ctx context.Context) ([]CourtView, error)
	ListEquipment(ctx context.Context) ([]EquipmentView, error)
	ListCoaches(ctx context.Context) ([]CoachView, error)
	ListPricingRules(ctx context.Context) ([]PricingRuleView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetMeta(ctx context.Context) (*MetaView, error) {
	courts, err := q.store.ActiveCourts(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := q.store.ActiveEquipment(ctx)
	if err != nil {
		return nil, err
	}
	coaches, err := q.store.ActiveCoaches(ctx)
	if err != nil {
		return nil, err
	}
	return &MetaView{Courts: courts, Equipment: equipment, Coaches: coaches}, nil
}

func (q *catalogQueriesImpl) ListCourts(ctx context.Context) ([]CourtView, error) {
	return q.store.AllCourts(ctx)
}

func (q *catalogQueriesImpl) ListEquipment(ctx context.Context) ([]EquipmentView, error) {
	return q.store.AllEquipment(ctx)
}

func (q *catalogQueriesImpl) ListCoaches(ctx context.Context) ([]CoachView, error) {
	return q.store.AllCoaches(ctx)
}

func (q *catalogQueriesImpl) ListPricingRules(ctx context.Context) ([]PricingRuleView, error) {
	return q.store.AllPricingRules(ctx)
}
