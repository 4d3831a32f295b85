package domain

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeCost(t *testing.T) {
	rates := DefaultRates()

	cases := []struct {
		name     string
		ct       CampaignType
		start    time.Time
		end      time.Time
		wantDays int
		wantCost int64
	}{
		{"seven whole days", TypeFeaturedListing, day(1), day(8), 7, 700},
		{"single day", TypeBannerAd, day(1), day(2), 1, 500},
		{"partial day rounds up", TypeSocialBoost, day(1), day(2).Add(6 * time.Hour), 2, 600},
		{"equal dates floor to one day", TypeFeaturedListing, day(1), day(1), 1, 100},
		{"reversed dates floor to one day", TypeFeaturedListing, day(8), day(1), 1, 100},
		{"unknown type uses featured rate", CampaignType("popup"), day(1), day(4), 3, 300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := ComputeCost(tc.ct, tc.start, tc.end, rates)
			if q.DurationDays != tc.wantDays || q.TotalCost != tc.wantCost {
				t.Fatalf("got %d days cost %d, want %d days cost %d",
					q.DurationDays, q.TotalCost, tc.wantDays, tc.wantCost)
			}
		})
	}
}

func TestValidateSchedule(t *testing.T) {
	if err := ValidateSchedule(day(1), day(2)); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if err := ValidateSchedule(day(2), day(2)); err != ErrInvalidSchedule {
		t.Fatalf("equal dates: got %v, want ErrInvalidSchedule", err)
	}
	if err := ValidateSchedule(day(3), day(2)); err != ErrInvalidSchedule {
		t.Fatalf("reversed dates: got %v, want ErrInvalidSchedule", err)
	}
}
