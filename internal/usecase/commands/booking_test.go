//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shuttlebook/internal/domain/booking"
	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/domain/court"
	"shuttlebook/internal/domain/equipment"
	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/domain/waitlist"
	"shuttlebook/internal/pkg/clock"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/commands"
	"shuttlebook/internal/usecase/shared"
	"shuttlebook/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	store    *fake.Store
	notifier *fake.Notifier
	cache    *fake.Cache
	clock    *clock.MockClock
	cmds     commands.BookingCommands

	court     *court.Court
	coach     *coach.Coach
	equipment *equipment.Equipment
	actor     shared.Actor
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.setup(true)
}

func (s *BookingCommandsTestSuite) setup(supportsTx bool) {
	s.store = fake.NewStore(supportsTx)
	s.notifier = fake.NewNotifier()
	s.cache = fake.NewCache()
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.cmds = commands.NewBookingCommands(
		s.store, s.store, fake.NewWaitlistStore(s.store),
		s.notifier, s.cache, s.clock, time.UTC,
	)

	now := s.clock.Now()

	var err error
	s.court, err = court.NewCourt("Court 1", court.TypeIndoor, 20, true, now)
	s.Require().NoError(err)
	s.store.AddCourt(s.court)

	// available saturdays 09:00-21:00
	s.coach, err = coach.NewCoach("Lin Wei", "", 30, true, []coach.Window{{DayOfWeek: 6, StartHour: 9, EndHour: 21}}, now)
	s.Require().NoError(err)
	s.store.AddCoach(s.coach)

	s.equipment, err = equipment.NewEquipment("Racket", 5, 3, true, now)
	s.Require().NoError(err)
	s.store.AddEquipment(s.equipment)

	s.actor = shared.Actor{UserID: uuid.New(), Name: "Mika Tan", Email: "mika@example.com", Role: user.RoleMember}
}

// saturday 18:00-20:00 UTC
func (s *BookingCommandsTestSuite) slot(startHour, endHour int) (time.Time, time.Time) {
	day := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	return day.Add(time.Duration(startHour) * time.Hour), day.Add(time.Duration(endHour) * time.Hour)
}

func (s *BookingCommandsTestSuite) params(startHour, endHour int) commands.CreateBookingParams {
	start, end := s.slot(startHour, endHour)
	return commands.CreateBookingParams{CourtID: s.court.ID(), StartTime: start, EndTime: end}
}

func (s *BookingCommandsTestSuite) seedBooking(courtID uuid.UUID, coachID *uuid.UUID, startHour, endHour int, lines []booking.EquipmentLine) *booking.Booking {
	start, end := s.slot(startHour, endHour)
	slot, err := booking.NewTimeSlot(start, end)
	s.Require().NoError(err)
	b, err := booking.NewBooking(
		uuid.New(), "Other User", "other@example.com",
		courtID, coachID, lines, slot, pricing.Quote{TotalPrice: 40}, s.clock.Now(),
	)
	s.Require().NoError(err)
	s.store.AddBooking(b)
	return b
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("success: persists a confirmed booking with a computed price", func() {
		s.setup(true)
		s.store.AddRule(pricing.Rule{
			ID: uuid.New(), Name: "Peak hours", IsActive: true,
			Criteria:   pricing.Criteria{AppliesTo: pricing.ScopeCourt},
			Adjustment: pricing.Adjustment{Type: pricing.AdjustmentMultiplier, Value: 1.2},
			Priority:   1,
		})
		s.store.AddRule(pricing.Rule{
			ID: uuid.New(), Name: "Weekend surcharge", IsActive: true,
			Criteria:   pricing.Criteria{AppliesTo: pricing.ScopeCourt},
			Adjustment: pricing.Adjustment{Type: pricing.AdjustmentFlat, Value: 5},
			Priority:   2,
		})

		created, err := s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.Require().NoError(err)

		s.Equal(53.0, created.TotalPrice())
		s.True(created.IsConfirmed())
		s.Equal(s.actor.UserID, created.UserID())
		s.NotNil(s.store.Booking(created.ID()))
		s.Contains(s.cache.Invalidated(), "2025-06-07")
	})

	s.Run("success: back-to-back slots do not conflict", func() {
		s.setup(true)
		_, err := s.cmds.CreateBooking(context.Background(), s.params(18, 19), s.actor)
		s.Require().NoError(err)
		_, err = s.cmds.CreateBooking(context.Background(), s.params(19, 20), s.actor)
		s.Require().NoError(err)
		s.Equal(2, s.store.ConfirmedBookingCount())
	})

	s.Run("success: cancelled bookings do not block the slot", func() {
		s.setup(true)
		stale := s.seedBooking(s.court.ID(), nil, 18, 20, nil)
		s.Require().NoError(stale.Cancel(s.clock.Now()))

		_, err := s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.NoError(err)
	})

	s.Run("error: unknown court", func() {
		s.setup(true)
		params := s.params(18, 20)
		params.CourtID = uuid.New()
		_, err := s.cmds.CreateBooking(context.Background(), params, s.actor)
		s.ErrorIs(err, errs.ErrResourceNotFound)
	})

	s.Run("error: inactive court", func() {
		s.setup(true)
		inactive, err := court.NewCourt("Closed Court", court.TypeOutdoor, 15, false, s.clock.Now())
		s.Require().NoError(err)
		s.store.AddCourt(inactive)

		params := s.params(18, 20)
		params.CourtID = inactive.ID()
		_, err = s.cmds.CreateBooking(context.Background(), params, s.actor)
		s.ErrorIs(err, errs.ErrResourceInactive)
	})

	s.Run("error: overlapping confirmed booking on the court", func() {
		s.setup(true)
		s.seedBooking(s.court.ID(), nil, 17, 19, nil)

		_, err := s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.ErrorIs(err, errs.ErrCourtConflict)
	})

	s.Run("error: invalid time range", func() {
		s.setup(true)
		start, _ := s.slot(18, 20)
		_, err := s.cmds.CreateBooking(context.Background(), commands.CreateBookingParams{
			CourtID: s.court.ID(), StartTime: start, EndTime: start,
		}, s.actor)
		s.ErrorIs(err, errs.ErrInvalidRange)
	})

	s.Run("error: coach outside availability window", func() {
		s.setup(true)
		coachID := s.coach.ID()
		params := s.params(21, 22) // window ends at 21
		params.CoachID = &coachID
		_, err := s.cmds.CreateBooking(context.Background(), params, s.actor)
		s.ErrorIs(err, errs.ErrCoachUnavailable)
	})

	s.Run("error: coach already booked on another court", func() {
		s.setup(true)
		other, err := court.NewCourt("Court 2", court.TypeIndoor, 20, true, s.clock.Now())
		s.Require().NoError(err)
		s.store.AddCourt(other)

		coachID := s.coach.ID()
		s.seedBooking(other.ID(), &coachID, 18, 20, nil)

		params := s.params(18, 20)
		params.CoachID = &coachID
		_, err = s.cmds.CreateBooking(context.Background(), params, s.actor)
		s.ErrorIs(err, errs.ErrCoachConflict)
	})

	s.Run("error: unknown equipment", func() {
		s.setup(true)
		params := s.params(18, 20)
		params.Equipment = []commands.EquipmentRequest{{EquipmentID: uuid.New(), Quantity: 1}}
		_, err := s.cmds.CreateBooking(context.Background(), params, s.actor)
		s.ErrorIs(err, errs.ErrEquipmentUnavailable)
	})

	s.Run("error: inactive equipment", func() {
		s.setup(true)
		retired, err := equipment.NewEquipment("Old Net", 3, 2, false, s.clock.Now())
		s.Require().NoError(err)
		s.store.AddEquipment(retired)

		params := s.params(18, 20)
		params.Equipment = []commands.EquipmentRequest{{EquipmentID: retired.ID(), Quantity: 1}}
		_, err = s.cmds.CreateBooking(context.Background(), params, s.actor)
		s.ErrorIs(err, errs.ErrEquipmentUnavailable)
	})

	s.Run("error: equipment stock exhausted across overlapping bookings", func() {
		s.setup(true)
		other, err := court.NewCourt("Court 2", court.TypeIndoor, 20, true, s.clock.Now())
		s.Require().NoError(err)
		s.store.AddCourt(other)

		// 3 of 5 rackets held by an overlapping booking on another court.
		s.seedBooking(other.ID(), nil, 18, 20, []booking.EquipmentLine{{EquipmentID: s.equipment.ID(), Quantity: 3}})

		params := s.params(18, 20)
		params.Equipment = []commands.EquipmentRequest{{EquipmentID: s.equipment.ID(), Quantity: 3}}
		_, err = s.cmds.CreateBooking(context.Background(), params, s.actor)
		s.ErrorIs(err, errs.ErrEquipmentExhausted)

		// The remaining 2 are still bookable.
		params.Equipment = []commands.EquipmentRequest{{EquipmentID: s.equipment.ID(), Quantity: 2}}
		_, err = s.cmds.CreateBooking(context.Background(), params, s.actor)
		s.NoError(err)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ConcurrentRequests() {
	for _, mode := range []struct {
		name       string
		supportsTx bool
	}{
		{"transactional storage", true},
		{"storage without transactions", false},
	} {
		s.Run(mode.name+": exactly one of many concurrent requests wins the slot", func() {
			s.setup(mode.supportsTx)

			const attempts = 8
			errors := make([]error, attempts)
			var wg sync.WaitGroup
			for i := 0; i < attempts; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, errors[i] = s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
				}(i)
			}
			wg.Wait()

			var wins, conflicts int
			for _, err := range errors {
				switch {
				case err == nil:
					wins++
				default:
					s.ErrorIs(err, errs.ErrCourtConflict)
					conflicts++
				}
			}
			s.Equal(1, wins)
			s.Equal(attempts-1, conflicts)
			s.Equal(1, s.store.ConfirmedBookingCount())
		})
	}
}

// Without transactions the reserved-quantity read and the insert are separate
// steps, each guarded on its own. Two requests that both read the count before
// either insert can jointly exceed the stock; the insert-time constraints
// cover court and coach overlap only, so nothing stops the second write. This
// overbooking window is a known cost of running against storage that cannot
// provide transactions.
func (s *BookingCommandsTestSuite) TestCreateBooking_EquipmentRaceWithoutTransactions() {
	s.setup(false)

	other, err := court.NewCourt("Court 2", court.TypeIndoor, 20, true, s.clock.Now())
	s.Require().NoError(err)
	s.store.AddCourt(other)

	// Hold both requests at the point where each has read the reserved
	// count (0) and neither has inserted yet.
	var reads sync.WaitGroup
	reads.Add(2)
	s.store.AfterEquipmentRead = func() {
		reads.Done()
		reads.Wait()
	}

	request := func(courtID uuid.UUID) error {
		start, end := s.slot(18, 20)
		_, err := s.cmds.CreateBooking(context.Background(), commands.CreateBookingParams{
			CourtID:   courtID,
			StartTime: start,
			EndTime:   end,
			Equipment: []commands.EquipmentRequest{{EquipmentID: s.equipment.ID(), Quantity: 3}},
		}, s.actor)
		return err
	}

	results := make(chan error, 2)
	go func() { results <- request(s.court.ID()) }()
	go func() { results <- request(other.ID()) }()

	s.NoError(<-results)
	s.NoError(<-results)
	s.store.AfterEquipmentRead = nil

	// 3+3 of 5 rackets are now reserved for the same window.
	start, end := s.slot(18, 20)
	slot, err := booking.NewTimeSlot(start, end)
	s.Require().NoError(err)
	reserved, err := s.store.ReservedEquipmentQuantity(context.Background(), nil, s.equipment.ID(), slot)
	s.Require().NoError(err)
	s.Equal(6, reserved)
	s.Greater(reserved, s.equipment.Quantity())
	s.Equal(2, s.store.ConfirmedBookingCount())
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	s.Run("success: owner cancels and the slot is freed", func() {
		s.setup(true)
		created, err := s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.Require().NoError(err)

		s.Require().NoError(s.cmds.CancelBooking(context.Background(), created.ID(), s.actor))
		s.False(s.store.Booking(created.ID()).IsConfirmed())
		s.Contains(s.cache.Invalidated(), "2025-06-07")

		// Slot is bookable again.
		_, err = s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.NoError(err)
	})

	s.Run("success: admin cancels someone else's booking", func() {
		s.setup(true)
		created, err := s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.Require().NoError(err)

		admin := shared.Actor{UserID: uuid.New(), Name: "Admin", Email: "admin@example.com", Role: user.RoleAdmin}
		s.NoError(s.cmds.CancelBooking(context.Background(), created.ID(), admin))
	})

	s.Run("error: non-owner cannot cancel", func() {
		s.setup(true)
		created, err := s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.Require().NoError(err)

		stranger := shared.Actor{UserID: uuid.New(), Name: "Someone", Email: "someone@example.com", Role: user.RoleMember}
		err = s.cmds.CancelBooking(context.Background(), created.ID(), stranger)
		s.ErrorIs(err, errs.ErrNotBookingOwner)
		s.True(s.store.Booking(created.ID()).IsConfirmed())
	})

	s.Run("error: cancelling twice", func() {
		s.setup(true)
		created, err := s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.Require().NoError(err)

		s.Require().NoError(s.cmds.CancelBooking(context.Background(), created.ID(), s.actor))
		err = s.cmds.CancelBooking(context.Background(), created.ID(), s.actor)
		s.ErrorIs(err, errs.ErrBookingCancelled)
	})

	s.Run("error: unknown booking", func() {
		s.setup(true)
		err := s.cmds.CancelBooking(context.Background(), uuid.New(), s.actor)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}

func (s *BookingCommandsTestSuite) waitingEntry(startHour, endHour int, createdAt time.Time) *waitlist.Entry {
	start, end := s.slot(startHour, endHour)
	slot, err := booking.NewTimeSlot(start, end)
	s.Require().NoError(err)
	entry := waitlist.NewEntry(uuid.New(), "Waiting User", "waiting@example.com", s.court.ID(), slot, createdAt)
	s.store.AddWaitlistEntry(entry)
	return entry
}

func (s *BookingCommandsTestSuite) TestCancelBooking_WaitlistPromotion() {
	s.Run("earliest matching entry is promoted and notified", func() {
		s.setup(true)
		created, err := s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.Require().NoError(err)

		later := s.waitingEntry(18, 20, s.clock.Now().Add(time.Hour))
		earliest := s.waitingEntry(17, 21, s.clock.Now())

		s.Require().NoError(s.cmds.CancelBooking(context.Background(), created.ID(), s.actor))

		s.Equal(waitlist.StatusNotified, s.store.WaitlistEntry(earliest.ID()).Status())
		s.Equal(waitlist.StatusWaiting, s.store.WaitlistEntry(later.ID()).Status())

		notified := s.notifier.Notified()
		s.Require().Len(notified, 1)
		s.Equal(earliest.ID(), notified[0].ID())
	})

	s.Run("entry whose window does not contain the freed slot stays waiting", func() {
		s.setup(true)
		created, err := s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.Require().NoError(err)

		partial := s.waitingEntry(18, 19, s.clock.Now())

		s.Require().NoError(s.cmds.CancelBooking(context.Background(), created.ID(), s.actor))
		s.Equal(waitlist.StatusWaiting, s.store.WaitlistEntry(partial.ID()).Status())
		s.Empty(s.notifier.Notified())
	})

	s.Run("notification failure does not undo the cancellation or promotion", func() {
		s.setup(true)
		s.notifier.Err = errs.New("broker unavailable")

		created, err := s.cmds.CreateBooking(context.Background(), s.params(18, 20), s.actor)
		s.Require().NoError(err)
		entry := s.waitingEntry(18, 20, s.clock.Now())

		s.Require().NoError(s.cmds.CancelBooking(context.Background(), created.ID(), s.actor))
		s.False(s.store.Booking(created.ID()).IsConfirmed())
		s.Equal(waitlist.StatusNotified, s.store.WaitlistEntry(entry.ID()).Status())
	})
}
