package domain

import (
	"errors"
	"time"
)

// CampaignType selects the placement a campaign buys. The type determines
// the daily rate, nothing else.
type CampaignType string

const (
	TypeFeaturedListing CampaignType = "featured_listing"
	TypeBannerAd        CampaignType = "banner_ad"
	TypeSocialBoost     CampaignType = "social_boost"
)

// Goal records what the vendor wants out of the campaign. It is
// informational and does not affect pricing.
type Goal string

const (
	GoalTraffic   Goal = "traffic"
	GoalCalls     Goal = "calls"
	GoalAwareness Goal = "awareness"
)

// Status is a campaign lifecycle state. completed and rejected are
// terminal.
type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusActive          Status = "active"
	StatusPaused          Status = "paused"
	StatusCompleted       Status = "completed"
	StatusRejected        Status = "rejected"
)

// ErrIllegalTransition is returned when a lifecycle move is not allowed
// from the campaign's current status.
var ErrIllegalTransition = errors.New("illegal campaign status transition")

// Campaign is a scheduled, paid promotion of one listing. The listing
// title and image are a snapshot taken at creation time and are not kept
// in sync with the listing afterwards. TotalCost is fixed at creation and
// is not recomputed if rates change later. Campaigns are never physically
// deleted; archiving moves them to completed.
type Campaign struct {
	ID             string
	VendorID       string
	ListingID      string
	ListingTitle   string
	ListingImage   string
	Type           CampaignType
	Goal           Goal
	Status         Status
	StartDate      time.Time
	EndDate        time.Time
	DurationDays   int
	TotalCost      int64
	TargetLocation string
	// Counters are maintained by the reporting pipeline; this package
	// only reads them.
	Impressions int64
	Clicks      int64
	Conversions int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var transitions = map[Status][]Status{
	StatusPendingApproval: {StatusActive, StatusRejected},
	StatusActive:          {StatusPaused, StatusCompleted},
	StatusPaused:          {StatusActive, StatusCompleted},
}

// CanTransition reports whether moving a campaign from one status to
// another is legal.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsExposureGranting reports whether a status grants the listing exposure.
// Every transition in or out of such a status must be paired with the
// listing's promoted flag.
func IsExposureGranting(s Status) bool {
	return s == StatusActive
}

// Pause moves an active campaign to paused.
func (c *Campaign) Pause() error {
	return c.transition(StatusPaused)
}

// Resume moves a paused campaign back to active. The target status is
// the same as approval's, so the current status is checked explicitly:
// resuming must never double as approving.
func (c *Campaign) Resume() error {
	if c.Status != StatusPaused {
		return ErrIllegalTransition
	}
	return c.transition(StatusActive)
}

// Archive moves an active or paused campaign to completed.
func (c *Campaign) Archive() error {
	return c.transition(StatusCompleted)
}

// Approve moves a pending campaign to active. Moderation only; a paused
// campaign is resumed, not approved.
func (c *Campaign) Approve() error {
	if c.Status != StatusPendingApproval {
		return ErrIllegalTransition
	}
	return c.transition(StatusActive)
}

// Reject moves a pending campaign to rejected. Moderation only.
func (c *Campaign) Reject() error {
	return c.transition(StatusRejected)
}

func (c *Campaign) transition(to Status) error {
	if !CanTransition(c.Status, to) {
		return ErrIllegalTransition
	}
	c.Status = to
	return nil
}
