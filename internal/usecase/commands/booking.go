package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"shuttlebook/internal/domain/booking"
	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/domain/waitlist"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/pkg/clock"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/queries"
	"shuttlebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type EquipmentRequest struct {
	EquipmentID uuid.UUID
	Quantity    int
}

type CreateBookingParams struct {
	CourtID   uuid.UUID
	CoachID   *uuid.UUID
	Equipment []EquipmentRequest
	StartTime time.Time
	EndTime   time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams, actor shared.Actor) (*booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	bookingRepo  shared.BookingRepository
	waitlistRepo shared.WaitlistRepository
	notifier     Notifier
	cache        queries.AvailabilityCache
	clock        clock.Clock
	loc          *time.Location
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingRepo shared.BookingRepository,
	waitlistRepo shared.WaitlistRepository,
	notifier Notifier,
	cache queries.AvailabilityCache,
	clk clock.Clock,
	loc *time.Location,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		bookingRepo:  bookingRepo,
		waitlistRepo: waitlistRepo,
		notifier:     notifier,
		cache:        cache,
		clock:        clk,
		loc:          loc,
	}
}

// CreateBooking runs the full booking sequence: load resources, check court
// and coach conflicts, verify equipment stock, price, persist confirmed.
// With transaction support the whole sequence is atomic; without it the
// checks are read-then-decide and the bookings overlap constraint is the
// final race guard, surfaced as a conflict error at persist time.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams, actor shared.Actor) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(params.StartTime, params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	var created *booking.Booking

	if c.uow.SupportsTx() {
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var txErr error
			created, txErr = c.create(ctx, tx.DB(), tx.Reads(), params, slot, actor)
			return txErr
		})
	} else {
		slog.Warn("proceeding without transaction", "reason", "storage reports no transaction support")
		err = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
			var dbErr error
			created, dbErr = c.create(ctx, dbtx, c.uow.Reads(), params, slot, actor)
			return dbErr
		})
	}
	if err != nil {
		return nil, err
	}

	c.invalidateAvailability(ctx, slot)
	return created, nil
}

func (c *bookingCommandsImpl) create(
	ctx context.Context,
	dbtx db.DBTX,
	reads shared.CommandReads,
	params CreateBookingParams,
	slot booking.TimeSlot,
	actor shared.Actor,
) (*booking.Booking, error) {
	courtEntity, err := reads.CourtByID(ctx, dbtx, params.CourtID)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	if !courtEntity.IsActive() {
		return nil, errs.ErrResourceInactive
	}

	var coachEntity *coach.Coach
	if params.CoachID != nil {
		coachEntity, err = reads.CoachByID(ctx, dbtx, *params.CoachID)
		if err != nil {
			return nil, mapLookupErr(err)
		}
		if !coachEntity.IsActive() {
			return nil, errs.ErrResourceInactive
		}
	}

	conflict, err := reads.CourtHasOverlap(ctx, dbtx, params.CourtID, slot)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if conflict {
		return nil, errs.ErrCourtConflict
	}

	if coachEntity != nil {
		if !coachEntity.Covers(slot.Start(), slot.End(), c.loc) {
			return nil, errs.ErrCoachUnavailable
		}
		conflict, err = reads.CoachHasOverlap(ctx, dbtx, coachEntity.ID(), slot)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if conflict {
			return nil, errs.ErrCoachConflict
		}
	}

	input := pricing.Input{
		Court:    courtEntity,
		Coach:    coachEntity,
		Start:    slot.Start(),
		End:      slot.End(),
		Location: c.loc,
	}

	lines := make([]booking.EquipmentLine, 0, len(params.Equipment))
	for _, req := range params.Equipment {
		item, err := reads.EquipmentByID(ctx, dbtx, req.EquipmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrEquipmentUnavailable)
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !item.IsActive() {
			return nil, errs.ErrEquipmentUnavailable
		}

		reserved, err := reads.ReservedEquipmentQuantity(ctx, dbtx, item.ID(), slot)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if reserved+req.Quantity > item.Quantity() {
			return nil, errs.ErrEquipmentExhausted
		}

		input.Equipment = append(input.Equipment, pricing.Selection{Item: item, Quantity: req.Quantity})
		lines = append(lines, booking.EquipmentLine{EquipmentID: item.ID(), Quantity: req.Quantity})
	}

	rules, err := reads.ActivePricingRules(ctx, dbtx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	input.Rules = rules

	quote, err := pricing.Calculate(input)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidRange) {
			return nil, errs.Mark(err, errs.ErrInvalidRange)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := booking.NewBooking(
		actor.UserID, actor.Name, actor.Email,
		courtEntity.ID(), params.CoachID, lines, slot, quote, c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.bookingRepo.Create(ctx, dbtx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// The overlap constraint fired: a concurrent request won the slot
			// between our conflict check and the insert.
			if strings.Contains(infra.ConstraintName(err), "coach") {
				return nil, errs.Mark(err, errs.ErrCoachConflict)
			}
			return nil, errs.Mark(err, errs.ErrCourtConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return entity, nil
}

// CancelBooking flips a confirmed booking to cancelled and promotes the
// earliest matching waitlist entry. Notification dispatch happens after the
// write commits and is never rolled back on failure.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error {
	var cancelled *booking.Booking
	var promoted *waitlist.Entry

	cancel := func(ctx context.Context, dbtx db.DBTX, reads shared.CommandReads) error {
		entity, err := reads.BookingByID(ctx, dbtx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !actor.IsAdmin() && !entity.IsOwnedBy(actor.UserID) {
			return errs.ErrNotBookingOwner
		}

		if err := entity.Cancel(c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrBookingCancelled)
		}
		if err := c.bookingRepo.UpdateStatus(ctx, dbtx, entity.ID(), booking.StatusCancelled); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		cancelled = entity

		entry, err := reads.EarliestWaitingEntry(ctx, dbtx, entity.CourtID(), entity.Slot())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := entry.Notify(c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := c.waitlistRepo.UpdateStatus(ctx, dbtx, entry.ID(), waitlist.StatusNotified); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		promoted = entry
		return nil
	}

	var err error
	if c.uow.SupportsTx() {
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return cancel(ctx, tx.DB(), tx.Reads())
		})
	} else {
		err = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
			return cancel(ctx, dbtx, c.uow.Reads())
		})
	}
	if err != nil {
		return err
	}

	c.invalidateAvailability(ctx, cancelled.Slot())

	if promoted != nil {
		if notifyErr := c.notifier.NotifyWaitlist(ctx, promoted); notifyErr != nil {
			slog.Warn("waitlist notification dispatch failed",
				"entry_id", promoted.ID(),
				"user_email", promoted.UserEmail(),
				"error", notifyErr.Error())
		}
	}
	return nil
}

func (c *bookingCommandsImpl) invalidateAvailability(ctx context.Context, slot booking.TimeSlot) {
	if c.cache == nil {
		return
	}
	c.cache.Invalidate(ctx, slot.Start().In(c.loc).Format("2006-01-02"))
	if end := slot.End().In(c.loc); end.Format("2006-01-02") != slot.Start().In(c.loc).Format("2006-01-02") {
		c.cache.Invalidate(ctx, end.Format("2006-01-02"))
	}
}

func mapLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrResourceNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
