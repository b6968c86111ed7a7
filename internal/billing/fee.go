package billing

import (
	"errors"
	"math"
	"time"
)

// Rate kinds.
const (
	KindHourly   = "hourly"
	KindFlat     = "flat"
	KindPerLiter = "per_liter"
)

// NegativeDurationPolicy controls what happens when a ticket closes with an
// exit time before its entry time (client clock skew, tampered timestamps).
type NegativeDurationPolicy string

const (
	// ClampNegative bills negative durations as one hour, like any other
	// sub-hour interval. This matches the historical behavior.
	ClampNegative NegativeDurationPolicy = "clamp"
	// RejectNegative refuses to close the ticket.
	RejectNegative NegativeDurationPolicy = "reject"
)

var (
	// ErrNegativeDuration is returned under RejectNegative when exit < entry.
	ErrNegativeDuration = errors.New("billing: exit time before entry time")
	// ErrUnknownRateKind is returned for a rate kind the engine cannot price.
	ErrUnknownRateKind = errors.New("billing: unknown rate kind")
	// ErrQuantityRequired is returned when a per-liter charge lacks a
	// positive quantity.
	ErrQuantityRequired = errors.New("billing: positive quantity required")
)

// Valid reports whether p is a recognized policy.
func (p NegativeDurationPolicy) Valid() bool {
	return p == ClampNegative || p == RejectNegative
}

// HourlyCharge converts a closed interval into billed hours and a fee.
// Every started hour is billed in full and every interval bills at least
// one hour, so the fee is monotonic non-decreasing in duration.
func HourlyCharge(entry, exit time.Time, pricePerHour float64, policy NegativeDurationPolicy) (int, float64, error) {
	d := exit.Sub(entry)
	if d < 0 && policy == RejectNegative {
		return 0, 0, ErrNegativeDuration
	}
	hours := int(math.Ceil(d.Hours()))
	if hours < 1 {
		hours = 1
	}
	return hours, float64(hours) * pricePerHour, nil
}

// Charge prices a closing ticket for any rate kind. The returned hours are
// zero for non-hourly kinds.
func Charge(kind string, entry, exit time.Time, quantity, price float64, policy NegativeDurationPolicy) (int, float64, error) {
	switch kind {
	case KindHourly:
		return HourlyCharge(entry, exit, price, policy)
	case KindFlat:
		return 0, price, nil
	case KindPerLiter:
		if quantity <= 0 {
			return 0, 0, ErrQuantityRequired
		}
		return 0, quantity * price, nil
	default:
		return 0, 0, ErrUnknownRateKind
	}
}
