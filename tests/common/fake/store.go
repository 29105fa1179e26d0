//go:build unit || e2e

package fake

import (
	"context"
	"sort"
	"sync"

	"shuttlebook/internal/domain/booking"
	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/domain/court"
	"shuttlebook/internal/domain/equipment"
	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/domain/waitlist"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is an in-memory stand-in for the Postgres layer. It implements the
// unit of work, the command reads and the write repositories at once.
//
// Transactional mode serializes whole Within sequences behind one mutex,
// mimicking serializable transactions. Non-transactional mode only guards
// individual operations, so check-then-insert races become visible; the
// overlap constraint is still enforced at insert time, exactly like the
// database exclusion constraint.
type Store struct {
	mu sync.Mutex
	// Serializes Within sequences in transactional mode.
	txMu sync.Mutex

	supportsTx bool

	// AfterEquipmentRead, when set, runs after each reserved-quantity read
	// with no locks held. Tests set it before spawning goroutines to pin
	// the interleaving of concurrent requests.
	AfterEquipmentRead func()

	courts    map[uuid.UUID]*court.Court
	coaches   map[uuid.UUID]*coach.Coach
	equipment map[uuid.UUID]*equipment.Equipment
	rules     []pricing.Rule
	bookings  map[uuid.UUID]*booking.Booking
	waitlist  map[uuid.UUID]*waitlist.Entry
	users     map[uuid.UUID]*user.User
}

func NewStore(supportsTx bool) *Store {
	return &Store{
		supportsTx: supportsTx,
		courts:     make(map[uuid.UUID]*court.Court),
		coaches:    make(map[uuid.UUID]*coach.Coach),
		equipment:  make(map[uuid.UUID]*equipment.Equipment),
		bookings:   make(map[uuid.UUID]*booking.Booking),
		waitlist:   make(map[uuid.UUID]*waitlist.Entry),
		users:      make(map[uuid.UUID]*user.User),
	}
}

// Seeding helpers

func (s *Store) AddCourt(c *court.Court)             { s.mu.Lock(); defer s.mu.Unlock(); s.courts[c.ID()] = c }
func (s *Store) AddCoach(c *coach.Coach)             { s.mu.Lock(); defer s.mu.Unlock(); s.coaches[c.ID()] = c }
func (s *Store) AddEquipment(e *equipment.Equipment) { s.mu.Lock(); defer s.mu.Unlock(); s.equipment[e.ID()] = e }
func (s *Store) AddRule(r pricing.Rule)              { s.mu.Lock(); defer s.mu.Unlock(); s.rules = append(s.rules, r) }
func (s *Store) AddUser(u *user.User)                { s.mu.Lock(); defer s.mu.Unlock(); s.users[u.ID()] = u }

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = b
}

func (s *Store) AddWaitlistEntry(e *waitlist.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitlist[e.ID()] = e
}

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[id]
}

func (s *Store) WaitlistEntry(id uuid.UUID) *waitlist.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waitlist[id]
}

func (s *Store) ConfirmedBookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bookings {
		if b.IsConfirmed() {
			n++
		}
	}
	return n
}

// shared.UnitOfWork

type fakeTx struct {
	store *Store
}

func (t *fakeTx) DB() db.DBTX                { return nil }
func (t *fakeTx) Reads() shared.CommandReads { return t.store }

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx, &fakeTx{store: s})
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) SupportsTx() bool           { return s.supportsTx }
func (s *Store) Reads() shared.CommandReads { return s }

// shared.CommandReads

func (s *Store) CourtByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*court.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courts[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "court not found")
	}
	return c, nil
}

func (s *Store) CoachByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*coach.Coach, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coaches[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "coach not found")
	}
	return c, nil
}

func (s *Store) EquipmentByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*equipment.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.equipment[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "equipment not found")
	}
	return e, nil
}

func (s *Store) ActivePricingRules(_ context.Context, _ db.DBTX) ([]pricing.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rules := make([]pricing.Rule, 0, len(s.rules))
	for _, r := range s.rules {
		if r.IsActive {
			rules = append(rules, r)
		}
	}
	return rules, nil
}

func (s *Store) PricingRuleByID(_ context.Context, _ db.DBTX, id uuid.UUID) (pricing.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rules {
		if r.ID == id {
			return r, nil
		}
	}
	return pricing.Rule{}, infra.NewRepoErr(infra.KindNotFound, "pricing rule not found")
}

func (s *Store) BookingByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return b, nil
}

func (s *Store) CourtHasOverlap(_ context.Context, _ db.DBTX, courtID uuid.UUID, slot booking.TimeSlot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.courtOverlapLocked(courtID, slot), nil
}

func (s *Store) CoachHasOverlap(_ context.Context, _ db.DBTX, coachID uuid.UUID, slot booking.TimeSlot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coachOverlapLocked(coachID, slot), nil
}

func (s *Store) ReservedEquipmentQuantity(_ context.Context, _ db.DBTX, equipmentID uuid.UUID, slot booking.TimeSlot) (int, error) {
	s.mu.Lock()
	reserved := 0
	for _, b := range s.bookings {
		if !b.IsConfirmed() || !b.Slot().Overlaps(slot) {
			continue
		}
		for _, line := range b.Equipment() {
			if line.EquipmentID == equipmentID {
				reserved += line.Quantity
			}
		}
	}
	s.mu.Unlock()

	if s.AfterEquipmentRead != nil {
		s.AfterEquipmentRead()
	}
	return reserved, nil
}

func (s *Store) EarliestWaitingEntry(_ context.Context, _ db.DBTX, courtID uuid.UUID, freed booking.TimeSlot) (*waitlist.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var candidates []*waitlist.Entry
	for _, e := range s.waitlist {
		if e.CourtID() != courtID || e.Status() != waitlist.StatusWaiting {
			continue
		}
		if e.Slot().Contains(freed) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return nil, infra.NewRepoErr(infra.KindNotFound, "no waiting entry")
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt().Before(candidates[j].CreatedAt())
	})
	return candidates[0], nil
}

func (s *Store) UserByEmail(_ context.Context, _ db.DBTX, email string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
}

func (s *Store) UserByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return u, nil
}

// shared.BookingRepository

// Create enforces the same overlap invariants as the database exclusion
// constraints, reporting the violated constraint's name.
func (s *Store) Create(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.courtOverlapLocked(b.CourtID(), b.Slot()) {
		return infra.RepositoryError{Kind: infra.KindConflict, Constraint: "bookings_court_no_overlap"}
	}
	if b.CoachID() != nil && s.coachOverlapLocked(*b.CoachID(), b.Slot()) {
		return infra.RepositoryError{Kind: infra.KindConflict, Constraint: "bookings_coach_no_overlap"}
	}

	s.bookings[b.ID()] = b
	return nil
}

func (s *Store) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status booking.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	if status == booking.StatusCancelled && b.IsConfirmed() {
		_ = b.Cancel(b.UpdatedAt())
	}
	return nil
}

func (s *Store) courtOverlapLocked(courtID uuid.UUID, slot booking.TimeSlot) bool {
	for _, b := range s.bookings {
		if b.IsConfirmed() && b.CourtID() == courtID && b.Slot().Overlaps(slot) {
			return true
		}
	}
	return false
}

func (s *Store) coachOverlapLocked(coachID uuid.UUID, slot booking.TimeSlot) bool {
	for _, b := range s.bookings {
		if b.IsConfirmed() && b.CoachID() != nil && *b.CoachID() == coachID && b.Slot().Overlaps(slot) {
			return true
		}
	}
	return false
}

// WaitlistStore adapts the same in-memory state to shared.WaitlistRepository;
// a separate type because the booking repository already claims Create.
type WaitlistStore struct {
	store *Store
}

func NewWaitlistStore(store *Store) *WaitlistStore {
	return &WaitlistStore{store: store}
}

func (w *WaitlistStore) Create(_ context.Context, _ db.DBTX, e *waitlist.Entry) error {
	w.store.AddWaitlistEntry(e)
	return nil
}

func (w *WaitlistStore) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status waitlist.Status) error {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()
	e, ok := w.store.waitlist[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "waitlist entry not found")
	}
	if status == waitlist.StatusNotified && e.Status() == waitlist.StatusWaiting {
		_ = e.Notify(e.UpdatedAt())
	}
	return nil
}
