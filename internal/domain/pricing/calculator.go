package pricing

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/domain/court"
	"shuttlebook/internal/domain/equipment"
)

var ErrInvalidRange = errors.New("invalid time range")

// Line is one labeled component of a quote: either a base cost line or the
// delta produced by a matched rule.
type Line struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type Quote struct {
	TotalPrice float64 `json:"totalPrice"`
	Breakdown  []Line  `json:"priceBreakdown"`
}

type Selection struct {
	Item     *equipment.Equipment
	Quantity int
}

type Input struct {
	Court     *court.Court
	Coach     *coach.Coach
	Equipment []Selection
	Start     time.Time
	End       time.Time
	Rules     []Rule
	Location  *time.Location
}

// Calculate produces a deterministic price quote. Rules are partitioned by
// scope and folded in ascending priority within each partition, every
// matched rule seeing the previous rule's output as its base. The breakdown
// lists court lines first, then equipment, then coach.
func Calculate(in Input) (Quote, error) {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	hours := in.End.Sub(in.Start).Hours()
	if hours <= 0 {
		return Quote{}, ErrInvalidRange
	}

	var total float64
	var breakdown []Line

	courtType := in.Court.CourtType()

	// Court: base rate times duration, refined by court-scoped rules.
	courtCost := in.Court.BaseRate() * hours
	courtCost, breakdown = foldRules(breakdown, courtCost, in.Rules, ScopeCourt, in.Start, courtType, loc)
	breakdown = append(breakdown, Line{
		Label:  fmt.Sprintf("Court (%s)", in.Court.Name()),
		Amount: courtCost,
	})
	total += courtCost

	// Equipment: one line per selection, rules applied to the subtotal.
	var equipmentTotal float64
	for _, sel := range in.Equipment {
		base := sel.Item.FeePerHour() * float64(sel.Quantity) * hours
		equipmentTotal += base
		breakdown = append(breakdown, Line{
			Label:  fmt.Sprintf("Equipment (%s x%d)", sel.Item.Name(), sel.Quantity),
			Amount: base,
		})
	}
	equipmentTotal, breakdown = foldRules(breakdown, equipmentTotal, in.Rules, ScopeEquipment, in.Start, courtType, loc)
	total += equipmentTotal

	// Coach: only when one is selected.
	if in.Coach != nil {
		coachCost := in.Coach.RatePerHour() * hours
		coachCost, breakdown = foldRules(breakdown, coachCost, in.Rules, ScopeCoach, in.Start, courtType, loc)
		breakdown = append(breakdown, Line{
			Label:  fmt.Sprintf("Coach (%s)", in.Coach.Name()),
			Amount: coachCost,
		})
		total += coachCost
	}

	return Quote{
		TotalPrice: round2(total),
		Breakdown:  breakdown,
	}, nil
}

// foldRules applies the active, matching rules of one scope to a running
// cost, appending one delta line per matched rule.
func foldRules(breakdown []Line, running float64, rules []Rule, scope Scope, start time.Time, courtType court.Type, loc *time.Location) (float64, []Line) {
	scoped := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.IsActive && r.Criteria.AppliesTo == scope {
			scoped = append(scoped, r)
		}
	}
	// Stable: equal priorities keep input order.
	sort.SliceStable(scoped, func(i, j int) bool {
		return scoped[i].Priority < scoped[j].Priority
	})

	for _, r := range scoped {
		if !r.Matches(start, courtType, loc) {
			continue
		}
		before := running
		running = r.Adjustment.Apply(running)
		breakdown = append(breakdown, Line{
			Label:  fmt.Sprintf("%s (%s)", r.Name, scope),
			Amount: running - before,
		})
	}
	return running, breakdown
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
