package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeSlot = errors.New("start time must be before end time")

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Hours() float64 {
	return ts.Duration().Hours()
}

// Overlaps uses half-open semantics: [a,b) and [c,d) overlap iff a<d && c<b,
// so back-to-back slots do not collide.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// Contains reports whether other lies entirely within ts.
func (ts TimeSlot) Contains(other TimeSlot) bool {
	return !ts.start.After(other.start) && !ts.end.Before(other.end)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}
