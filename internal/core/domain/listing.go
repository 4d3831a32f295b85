package domain

import "time"

// Listing is the slice of the catalog record the promotion core works
// with. The catalog owns every field except Promoted, which this core
// flips in lockstep with campaign status: a listing is promoted exactly
// when its most recent campaign is active.
type Listing struct {
	ID        string
	VendorID  string
	Title     string
	ImageURL  string
	Price     int64
	Status    string
	Promoted  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListingStatusActive marks listings eligible for promotion.
const ListingStatusActive = "active"
