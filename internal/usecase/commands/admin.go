package commands

import (
	"context"

	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/domain/court"
	"shuttlebook/internal/domain/equipment"
	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/pkg/clock"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCourtParams struct {
	Name      string
	CourtType court.Type
	BaseRate  float64
	IsActive  bool
}

type UpdateCourtParams struct {
	Name      *string
	CourtType *court.Type
	BaseRate  *float64
	IsActive  *bool
}

type CreateEquipmentParams struct {
	Name       string
	Quantity   int
	FeePerHour float64
	IsActive   bool
}

type UpdateEquipmentParams struct {
	Name       *string
	Quantity   *int
	FeePerHour *float64
	IsActive   *bool
}

type CreateCoachParams struct {
	Name         string
	Bio          string
	RatePerHour  float64
	IsActive     bool
	Availability []coach.Window
}

type UpdateCoachParams struct {
	Name         *string
	Bio          *string
	RatePerHour  *float64
	IsActive     *bool
	Availability []coach.Window
}

type CreatePricingRuleParams struct {
	Name        string
	Description string
	IsActive    bool
	Criteria    pricing.Criteria
	Adjustment  pricing.Adjustment
	Priority    int
}

type UpdatePricingRuleParams struct {
	Name        *string
	Description *string
	IsActive    *bool
	Criteria    *pricing.Criteria
	Adjustment  *pricing.Adjustment
	Priority    *int
}

// AdminCommands covers facility catalog management. Resources are never
// deleted; deactivation keeps historical bookings referentially intact.
type AdminCommands interface {
	CreateCourt(ctx context.Context, params CreateCourtParams) (*court.Court, error)
	UpdateCourt(ctx context.Context, id uuid.UUID, params UpdateCourtParams) (*court.Court, error)
	CreateEquipment(ctx context.Context, params CreateEquipmentParams) (*equipment.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, params UpdateEquipmentParams) (*equipment.Equipment, error)
	CreateCoach(ctx context.Context, params CreateCoachParams) (*coach.Coach, error)
	UpdateCoach(ctx context.Context, id uuid.UUID, params UpdateCoachParams) (*coach.Coach, error)
	CreatePricingRule(ctx context.Context, params CreatePricingRuleParams) (*pricing.Rule, error)
	UpdatePricingRule(ctx context.Context, id uuid.UUID, params UpdatePricingRuleParams) (*pricing.Rule, error)
}

type adminCommandsImpl struct {
	uow           shared.UnitOfWork
	courtRepo     shared.CourtRepository
	equipmentRepo shared.EquipmentRepository
	coachRepo     shared.CoachRepository
	ruleRepo      shared.PricingRuleRepository
	clock         clock.Clock
}

func NewAdminCommands(
	uow shared.UnitOfWork,
	courtRepo shared.CourtRepository,
	equipmentRepo shared.EquipmentRepository,
	coachRepo shared.CoachRepository,
	ruleRepo shared.PricingRuleRepository,
	clk clock.Clock,
) AdminCommands {
	return &adminCommandsImpl{
		uow:           uow,
		courtRepo:     courtRepo,
		equipmentRepo: equipmentRepo,
		coachRepo:     coachRepo,
		ruleRepo:      ruleRepo,
		clock:         clk,
	}
}

func (c *adminCommandsImpl) CreateCourt(ctx context.Context, params CreateCourtParams) (*court.Court, error) {
	entity, err := court.NewCourt(params.Name, params.CourtType, params.BaseRate, params.IsActive, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := c.courtRepo.Create(ctx, dbtx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *adminCommandsImpl) UpdateCourt(ctx context.Context, id uuid.UUID, params UpdateCourtParams) (*court.Court, error) {
	var entity *court.Court

	err := c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		entity, err = c.uow.Reads().CourtByID(ctx, dbtx, id)
		if err != nil {
			return mapLookupErr(err)
		}
		if err := entity.Update(params.Name, params.CourtType, params.BaseRate, params.IsActive, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := c.courtRepo.Update(ctx, dbtx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *adminCommandsImpl) CreateEquipment(ctx context.Context, params CreateEquipmentParams) (*equipment.Equipment, error) {
	entity, err := equipment.NewEquipment(params.Name, params.Quantity, params.FeePerHour, params.IsActive, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := c.equipmentRepo.Create(ctx, dbtx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *adminCommandsImpl) UpdateEquipment(ctx context.Context, id uuid.UUID, params UpdateEquipmentParams) (*equipment.Equipment, error) {
	var entity *equipment.Equipment

	err := c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		entity, err = c.uow.Reads().EquipmentByID(ctx, dbtx, id)
		if err != nil {
			return mapLookupErr(err)
		}
		if err := entity.Update(params.Name, params.Quantity, params.FeePerHour, params.IsActive, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := c.equipmentRepo.Update(ctx, dbtx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *adminCommandsImpl) CreateCoach(ctx context.Context, params CreateCoachParams) (*coach.Coach, error) {
	entity, err := coach.NewCoach(params.Name, params.Bio, params.RatePerHour, params.IsActive, params.Availability, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := c.coachRepo.Create(ctx, dbtx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *adminCommandsImpl) UpdateCoach(ctx context.Context, id uuid.UUID, params UpdateCoachParams) (*coach.Coach, error) {
	var entity *coach.Coach

	err := c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		entity, err = c.uow.Reads().CoachByID(ctx, dbtx, id)
		if err != nil {
			return mapLookupErr(err)
		}
		if err := entity.Update(params.Name, params.Bio, params.RatePerHour, params.IsActive, params.Availability, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := c.coachRepo.Update(ctx, dbtx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *adminCommandsImpl) CreatePricingRule(ctx context.Context, params CreatePricingRuleParams) (*pricing.Rule, error) {
	now := c.clock.Now()
	rule := pricing.Rule{
		ID:          uuid.New(),
		Name:        params.Name,
		Description: params.Description,
		IsActive:    params.IsActive,
		Criteria:    params.Criteria,
		Adjustment:  params.Adjustment,
		Priority:    params.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := rule.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err := c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := c.ruleRepo.Create(ctx, dbtx, rule); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (c *adminCommandsImpl) UpdatePricingRule(ctx context.Context, id uuid.UUID, params UpdatePricingRuleParams) (*pricing.Rule, error) {
	var rule pricing.Rule

	err := c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		rule, err = c.uow.Reads().PricingRuleByID(ctx, dbtx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrResourceNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if params.Name != nil {
			rule.Name = *params.Name
		}
		if params.Description != nil {
			rule.Description = *params.Description
		}
		if params.IsActive != nil {
			rule.IsActive = *params.IsActive
		}
		if params.Criteria != nil {
			rule.Criteria = *params.Criteria
		}
		if params.Adjustment != nil {
			rule.Adjustment = *params.Adjustment
		}
		if params.Priority != nil {
			rule.Priority = *params.Priority
		}
		rule.UpdatedAt = c.clock.Now()

		if err := rule.Validate(); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := c.ruleRepo.Update(ctx, dbtx, rule); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
