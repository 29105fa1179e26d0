package queries

import (
	"context"
	"errors"
	"time"

	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type EquipmentSelection struct {
	EquipmentID uuid.UUID
	Quantity    int
}

type QuoteParams struct {
	CourtID   uuid.UUID
	CoachID   *uuid.UUID
	Equipment []EquipmentSelection
	StartTime time.Time
	EndTime   time.Time
}

// QuoteQueries prices a prospective booking without persisting anything.
type QuoteQueries interface {
	PriceQuote(ctx context.Context, params QuoteParams) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	uow shared.UnitOfWork
	loc *time.Location
}

func NewQuoteQueries(uow shared.UnitOfWork, loc *time.Location) QuoteQueries {
	return &quoteQueriesImpl{uow: uow, loc: loc}
}

func (q *quoteQueriesImpl) PriceQuote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	var view *QuoteView

	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		reads := q.uow.Reads()

		courtEntity, err := reads.CourtByID(ctx, dbtx, params.CourtID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrResourceNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		input := pricing.Input{
			Court:    courtEntity,
			Start:    params.StartTime,
			End:      params.EndTime,
			Location: q.loc,
		}

		if params.CoachID != nil {
			coachEntity, err := reads.CoachByID(ctx, dbtx, *params.CoachID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, errs.ErrResourceNotFound)
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			input.Coach = coachEntity
		}

		for _, sel := range params.Equipment {
			item, err := reads.EquipmentByID(ctx, dbtx, sel.EquipmentID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, errs.ErrResourceNotFound)
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			input.Equipment = append(input.Equipment, pricing.Selection{Item: item, Quantity: sel.Quantity})
		}

		rules, err := reads.ActivePricingRules(ctx, dbtx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		input.Rules = rules

		quote, err := pricing.Calculate(input)
		if err != nil {
			if errors.Is(err, pricing.ErrInvalidRange) {
				return errs.Mark(err, errs.ErrInvalidRange)
			}
			return err
		}

		view = FromQuote(quote)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func FromQuote(quote pricing.Quote) *QuoteView {
	lines := make([]PriceLineView, len(quote.Breakdown))
	for i, l := range quote.Breakdown {
		lines[i] = PriceLineView{Label: l.Label, Amount: l.Amount}
	}
	return &QuoteView{TotalPrice: quote.TotalPrice, PriceBreakdown: lines}
}
