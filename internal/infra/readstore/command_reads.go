package readstore

import (
	"context"
	"encoding/json"
	"time"

	"shuttlebook/internal/domain/booking"
	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/domain/court"
	"shuttlebook/internal/domain/equipment"
	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/domain/waitlist"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"

	"github.com/google/uuid"
)

// CommandReads serves the command side's validation lookups. Every method
// reads through the caller's DBTX so checks see uncommitted writes when run
// inside a transaction.
type CommandReads struct{}

func NewCommandReads() *CommandReads {
	return &CommandReads{}
}

func (s *CommandReads) CourtByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*court.Court, error) {
	row := dbtx.QueryRow(ctx, `
SELECT id, name, court_type, base_rate, is_active, created_at, updated_at
FROM courts WHERE id = $1`, id)

	var (
		courtID             uuid.UUID
		name, courtType     string
		baseRate            float64
		isActive            bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&courtID, &name, &courtType, &baseRate, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("fetching court", err)
	}
	return court.ReconstructCourt(courtID, name, court.Type(courtType), baseRate, isActive, createdAt, updatedAt), nil
}

func (s *CommandReads) CoachByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*coach.Coach, error) {
	row := dbtx.QueryRow(ctx, `
SELECT id, name, bio, rate_per_hour, is_active, availability, created_at, updated_at
FROM coaches WHERE id = $1`, id)

	var (
		coachID              uuid.UUID
		name, bio            string
		ratePerHour          float64
		isActive             bool
		availabilityJSON     []byte
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&coachID, &name, &bio, &ratePerHour, &isActive, &availabilityJSON, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("fetching coach", err)
	}

	var availability []coach.Window
	if err := json.Unmarshal(availabilityJSON, &availability); err != nil {
		return nil, infra.WrapRepoErr("decoding coach availability", err)
	}
	return coach.ReconstructCoach(coachID, name, bio, ratePerHour, isActive, availability, createdAt, updatedAt), nil
}

func (s *CommandReads) EquipmentByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*equipment.Equipment, error) {
	row := dbtx.QueryRow(ctx, `
SELECT id, name, quantity, fee_per_hour, is_active, created_at, updated_at
FROM equipment WHERE id = $1`, id)

	var (
		equipmentID          uuid.UUID
		name                 string
		quantity             int
		feePerHour           float64
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&equipmentID, &name, &quantity, &feePerHour, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("fetching equipment", err)
	}
	return equipment.ReconstructEquipment(equipmentID, name, quantity, feePerHour, isActive, createdAt, updatedAt), nil
}

const pricingRuleColumns = `
id, name, description, is_active, criteria,
adjustment_type, adjustment_value, priority, created_at, updated_at`

func (s *CommandReads) ActivePricingRules(ctx context.Context, dbtx db.DBTX) ([]pricing.Rule, error) {
	rows, err := dbtx.Query(ctx, `
SELECT `+pricingRuleColumns+`
FROM pricing_rules WHERE is_active ORDER BY priority, created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("listing active pricing rules", err)
	}
	defer rows.Close()

	var rules []pricing.Rule
	for rows.Next() {
		rule, err := scanPricingRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("listing active pricing rules", err)
	}
	return rules, nil
}

func (s *CommandReads) PricingRuleByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (pricing.Rule, error) {
	row := dbtx.QueryRow(ctx, `
SELECT `+pricingRuleColumns+`
FROM pricing_rules WHERE id = $1`, id)
	return scanPricingRule(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPricingRule(row rowScanner) (pricing.Rule, error) {
	var (
		rule           pricing.Rule
		criteriaJSON   []byte
		adjustmentType string
	)
	err := row.Scan(
		&rule.ID, &rule.Name, &rule.Description, &rule.IsActive, &criteriaJSON,
		&adjustmentType, &rule.Adjustment.Value, &rule.Priority, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return pricing.Rule{}, infra.WrapRepoErr("fetching pricing rule", err)
	}
	if err := json.Unmarshal(criteriaJSON, &rule.Criteria); err != nil {
		return pricing.Rule{}, infra.WrapRepoErr("decoding rule criteria", err)
	}
	rule.Adjustment.Type = pricing.AdjustmentType(adjustmentType)
	return rule, nil
}

func (s *CommandReads) BookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := dbtx.QueryRow(ctx, `
SELECT id, user_id, user_name, user_email, court_id, coach_id,
       equipment, start_time, end_time, total_price, price_breakdown,
       status, created_at, updated_at
FROM bookings WHERE id = $1`, id)

	var (
		bookingID, userID    uuid.UUID
		userName, userEmail  string
		courtID              uuid.UUID
		coachID              *uuid.UUID
		equipmentJSON        []byte
		startTime, endTime   time.Time
		totalPrice           float64
		breakdownJSON        []byte
		status               string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&bookingID, &userID, &userName, &userEmail, &courtID, &coachID,
		&equipmentJSON, &startTime, &endTime, &totalPrice, &breakdownJSON,
		&status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("fetching booking", err)
	}

	var equipmentLines []booking.EquipmentLine
	if err := json.Unmarshal(equipmentJSON, &equipmentLines); err != nil {
		return nil, infra.WrapRepoErr("decoding booking equipment", err)
	}
	var breakdown []pricing.Line
	if err := json.Unmarshal(breakdownJSON, &breakdown); err != nil {
		return nil, infra.WrapRepoErr("decoding price breakdown", err)
	}
	slot, err := booking.NewTimeSlot(startTime, endTime)
	if err != nil {
		return nil, infra.WrapRepoErr("reconstructing booking slot", err)
	}

	return booking.ReconstructBooking(
		bookingID, userID, userName, userEmail, courtID, coachID,
		equipmentLines, slot, totalPrice, breakdown,
		booking.Status(status), createdAt, updatedAt,
	), nil
}

func (s *CommandReads) CourtHasOverlap(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, slot booking.TimeSlot) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE court_id = $1 AND status = 'confirmed'
      AND start_time < $3 AND end_time > $2
)`, courtID, slot.Start(), slot.End()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("checking court overlap", err)
	}
	return exists, nil
}

func (s *CommandReads) CoachHasOverlap(ctx context.Context, dbtx db.DBTX, coachID uuid.UUID, slot booking.TimeSlot) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE coach_id = $1 AND status = 'confirmed'
      AND start_time < $3 AND end_time > $2
)`, coachID, slot.Start(), slot.End()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("checking coach overlap", err)
	}
	return exists, nil
}

func (s *CommandReads) ReservedEquipmentQuantity(ctx context.Context, dbtx db.DBTX, equipmentID uuid.UUID, slot booking.TimeSlot) (int, error) {
	var reserved int
	err := dbtx.QueryRow(ctx, `
SELECT COALESCE(SUM((line->>'quantity')::int), 0)
FROM bookings b, jsonb_array_elements(b.equipment) line
WHERE b.status = 'confirmed'
  AND (line->>'equipmentId')::uuid = $1
  AND b.start_time < $3 AND b.end_time > $2`,
		equipmentID, slot.Start(), slot.End()).Scan(&reserved)
	if err != nil {
		return 0, infra.WrapRepoErr("summing reserved equipment", err)
	}
	return reserved, nil
}

// EarliestWaitingEntry finds the oldest waiting entry whose requested window
// contains the freed window, so the promoted user can actually take over the
// slot.
func (s *CommandReads) EarliestWaitingEntry(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, freed booking.TimeSlot) (*waitlist.Entry, error) {
	row := dbtx.QueryRow(ctx, `
SELECT id, user_id, user_name, user_email, court_id,
       start_time, end_time, status, created_at, updated_at
FROM waitlist_entries
WHERE court_id = $1 AND status = 'waiting'
  AND start_time <= $2 AND end_time >= $3
ORDER BY created_at
LIMIT 1`, courtID, freed.Start(), freed.End())

	var (
		entryID, userID      uuid.UUID
		userName, userEmail  string
		entryCourtID         uuid.UUID
		startTime, endTime   time.Time
		status               string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&entryID, &userID, &userName, &userEmail, &entryCourtID,
		&startTime, &endTime, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("fetching waitlist entry", err)
	}

	slot, err := booking.NewTimeSlot(startTime, endTime)
	if err != nil {
		return nil, infra.WrapRepoErr("reconstructing waitlist slot", err)
	}
	return waitlist.ReconstructEntry(
		entryID, userID, userName, userEmail, entryCourtID,
		slot, waitlist.Status(status), createdAt, updatedAt,
	), nil
}

func (s *CommandReads) UserByEmail(ctx context.Context, dbtx db.DBTX, email string) (*user.User, error) {
	row := dbtx.QueryRow(ctx, `
SELECT id, name, email, password_hash, role, created_at, updated_at
FROM users WHERE email = lower($1)`, email)
	return scanUser(row)
}

func (s *CommandReads) UserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error) {
	row := dbtx.QueryRow(ctx, `
SELECT id, name, email, password_hash, role, created_at, updated_at
FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row rowScanner) (*user.User, error) {
	var (
		id                        uuid.UUID
		name, email, passwordHash string
		role                      string
		createdAt, updatedAt      time.Time
	)
	if err := row.Scan(&id, &name, &email, &passwordHash, &role, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("fetching user", err)
	}
	return user.ReconstructUser(id, name, email, passwordHash, user.Role(role), createdAt, updatedAt), nil
}
