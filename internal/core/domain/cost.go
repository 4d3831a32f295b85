package domain

import (
	"errors"
	"time"
)

// RateTable maps a campaign type to its daily rate in minor currency
// units. Tables are read-only once built.
type RateTable map[CampaignType]int64

// DefaultRates returns the built-in daily rates used when no operator
// override is configured.
func DefaultRates() RateTable {
	return RateTable{
		TypeFeaturedListing: 100,
		TypeBannerAd:        500,
		TypeSocialBoost:     300,
	}
}

// Rate returns the daily rate for the given type. An unknown type falls
// back to the featured_listing rate.
func (t RateTable) Rate(ct CampaignType) int64 {
	if r, ok := t[ct]; ok {
		return r
	}
	return t[TypeFeaturedListing]
}

// Quote is the result of a cost calculation.
type Quote struct {
	DurationDays int
	TotalCost    int64
}

// ErrInvalidSchedule is returned when a campaign's end date does not come
// after its start date.
var ErrInvalidSchedule = errors.New("campaign end date must be after start date")

// ValidateSchedule checks the date-range invariant enforced at
// submission. ComputeCost itself accepts equal dates (it floors the
// duration at one day) so live estimates keep working while the user
// edits the range.
func ValidateSchedule(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidSchedule
	}
	return nil
}

// ComputeCost derives the paid duration and total cost for a campaign.
// Duration is the number of whole days between start and end, rounded up,
// never less than one. The result is deterministic and has no side
// effects.
func ComputeCost(ct CampaignType, start, end time.Time, rates RateTable) Quote {
	days := int((end.Sub(start) + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return Quote{
		DurationDays: days,
		TotalCost:    int64(days) * rates.Rate(ct),
	}
}
