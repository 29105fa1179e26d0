package commands

import (
	"context"
	"time"

	"shuttlebook/internal/domain/booking"
	"shuttlebook/internal/domain/waitlist"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/pkg/clock"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type JoinWaitlistParams struct {
	CourtID   uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type WaitlistCommands interface {
	JoinWaitlist(ctx context.Context, params JoinWaitlistParams, actor shared.Actor) (*waitlist.Entry, error)
}

type waitlistCommandsImpl struct {
	uow          shared.UnitOfWork
	waitlistRepo shared.WaitlistRepository
	clock        clock.Clock
}

func NewWaitlistCommands(uow shared.UnitOfWork, waitlistRepo shared.WaitlistRepository, clk clock.Clock) WaitlistCommands {
	return &waitlistCommandsImpl{uow: uow, waitlistRepo: waitlistRepo, clock: clk}
}

func (c *waitlistCommandsImpl) JoinWaitlist(ctx context.Context, params JoinWaitlistParams, actor shared.Actor) (*waitlist.Entry, error) {
	slot, err := booking.NewTimeSlot(params.StartTime, params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	var entry *waitlist.Entry

	err = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		courtEntity, err := c.uow.Reads().CourtByID(ctx, dbtx, params.CourtID)
		if err != nil {
			return mapLookupErr(err)
		}
		if !courtEntity.IsActive() {
			return errs.ErrResourceInactive
		}

		entry = waitlist.NewEntry(actor.UserID, actor.Name, actor.Email, courtEntity.ID(), slot, c.clock.Now())
		if err := c.waitlistRepo.Create(ctx, dbtx, entry); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrResourceNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
