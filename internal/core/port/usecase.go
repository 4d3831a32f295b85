package port

import (
	"context"
	"errors"
	"time"

	"bazaar-promo/internal/core/domain"
)

// Wizard steps, in order. Each step must be complete before the next one
// is entered.
const (
	StepGoal     = 1 // campaign type and goal
	StepListing  = 2 // listing selection
	StepSchedule = 3 // dates and targeting
	StepReview   = 4 // review and submit
)

// TargetScope selects campaign targeting breadth.
type TargetScope string

const (
	ScopeNationwide TargetScope = "nationwide"
	ScopeSpecific   TargetScope = "specific"
)

var (
	ErrUnknownCampaignType = errors.New("unknown campaign type")
	ErrUnknownGoal         = errors.New("unknown campaign goal")
	ErrListingNotSelected  = errors.New("a listing must be selected")
	ErrCityNotSelected     = errors.New("specific targeting requires a city")

	// ErrSubmissionInFlight rejects a second concurrent submission for
	// the same vendor while one is still running, so a double-click
	// cannot charge twice.
	ErrSubmissionInFlight = errors.New("a submission is already in flight for this vendor")
)

// Draft carries the wizard's state for one campaign being created. The
// HTTP layer builds it from request data; ValidateStep gates progress
// through the steps.
type Draft struct {
	VendorID string
	Type     domain.CampaignType
	Goal     domain.Goal
	// Listing selection. Title and image are the snapshot shown in the
	// wizard; they end up denormalized on the campaign.
	ListingID    string
	ListingTitle string
	ListingImage string
	StartDate    time.Time
	EndDate      time.Time
	Scope        TargetScope
	City         string
	Province     string
}

// LaunchResult is returned from a successful campaign submission.
// Confirmed is false when the authoritative write was not confirmed and
// the local overlay carries the state instead.
type LaunchResult struct {
	Campaign    domain.Campaign
	Transaction domain.Transaction
	Wallet      domain.Wallet
	Confirmed   bool
}

// ActionResult is returned from pause, resume and archive.
type ActionResult struct {
	Campaign  domain.Campaign
	Confirmed bool
}

// WalletView is a wallet merged with the overlay, with the ledger history
// including locally pending entries.
type WalletView struct {
	Wallet       domain.Wallet
	Transactions []domain.Transaction
}

// CampaignUseCase is the primary port into the promotion core: the
// creation wizard, the post-creation actions and the merged reads every
// view renders from. Mock implementations are generated from this
// interface for testing.
type CampaignUseCase interface {
	// ValidateStep checks that the draft satisfies everything the given
	// wizard step requires before the next step may be entered.
	ValidateStep(draft Draft, step int) error

	// EstimateCost returns the live quote for the draft's type and date
	// range. It never fails; invalid ranges are floored to one day.
	EstimateCost(draft Draft) domain.Quote

	// LaunchCampaign validates the complete draft, checks affordability
	// and performs the atomic create-and-charge. On a permission or
	// connectivity failure it falls back to the overlay and still
	// succeeds with Confirmed=false. Validation problems and
	// unclassified store errors fail without mutating anything.
	LaunchCampaign(ctx context.Context, draft Draft) (*LaunchResult, error)

	// PauseCampaign, ResumeCampaign and ArchiveCampaign apply a lifecycle
	// transition paired with the listing promoted flag, atomically when
	// the store allows it, through the overlay otherwise.
	PauseCampaign(ctx context.Context, campaignID string) (*ActionResult, error)
	ResumeCampaign(ctx context.Context, campaignID string) (*ActionResult, error)
	ArchiveCampaign(ctx context.Context, campaignID string) (*ActionResult, error)

	// ApproveCampaign and RejectCampaign are the moderation surface.
	// Approval grants exposure and is paired with the listing flag;
	// rejection never touches the listing, which was never promoted.
	ApproveCampaign(ctx context.Context, campaignID string) (*ActionResult, error)
	RejectCampaign(ctx context.Context, campaignID string) (*ActionResult, error)

	// ListCampaigns returns the vendor's campaigns: the authoritative
	// collection plus locally pending creations, each merged with its
	// overlay patch.
	ListCampaigns(ctx context.Context, vendorID string) ([]domain.Campaign, error)

	// ListPromotableListings returns the vendor's active listings with
	// overlay-merged promoted flags, for the wizard's listing step.
	ListPromotableListings(ctx context.Context, vendorID string) ([]domain.Listing, error)

	// GetWallet returns the vendor's wallet and ledger history, merged
	// with the overlay.
	GetWallet(ctx context.Context, vendorID string) (*WalletView, error)
}
