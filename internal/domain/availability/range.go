package availability

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("check-in date must be before check-out date")
	ErrDateRangeInPast  = errors.New("check-in date cannot be in the past")
)

// DateRange is a half-open interval [CheckIn, CheckOut) of hotel nights.
// Both bounds are normalized to midnight UTC.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewDateRange validates checkIn < checkOut and checkIn >= today (today is
// derived from now). Same-day check-in/out is rejected here, not by the
// availability engine.
func NewDateRange(checkIn, checkOut time.Time, now time.Time) (DateRange, error) {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)

	if !in.Before(out) {
		return DateRange{}, ErrInvalidDateRange
	}
	if in.Before(truncateToDay(now)) {
		return DateRange{}, ErrDateRangeInPast
	}

	return DateRange{checkIn: in, checkOut: out}, nil
}

// ReconstructDateRange rehydrates a range that was validated at creation
// time; used by stores and for ranges whose check-in is now in the past.
func ReconstructDateRange(checkIn, checkOut time.Time) DateRange {
	return DateRange{checkIn: truncateToDay(checkIn), checkOut: truncateToDay(checkOut)}
}

func (r DateRange) CheckIn() time.Time  { return r.checkIn }
func (r DateRange) CheckOut() time.Time { return r.checkOut }

// Nights is the number of chargeable nights in the range.
func (r DateRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn) / (24 * time.Hour))
}

// Overlaps reports whether two half-open ranges intersect:
// [a,b) and [c,d) overlap iff a < d && c < b. Ranges touching at the
// boundary (b == c) do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

// Equal reports whether both bounds match exactly.
func (r DateRange) Equal(other DateRange) bool {
	return r.checkIn.Equal(other.checkIn) && r.checkOut.Equal(other.checkOut)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format("2006-01-02"), r.checkOut.Format("2006-01-02"))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
