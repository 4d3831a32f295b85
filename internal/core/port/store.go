package port

import (
	"context"
	"errors"

	"bazaar-promo/internal/core/domain"
)

var (
	// ErrInsufficientBalance means the wallet cannot cover the campaign
	// cost. The store returns it from the atomic charge when the
	// decrement-with-floor touches no row; the orchestrator also raises
	// it from the pre-submission affordability check.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrPermissionDenied marks an authoritative write rejected by the
	// store's authorization layer. It is expected degraded mode, not a
	// hard failure: the orchestrator compensates through the overlay.
	ErrPermissionDenied = errors.New("authoritative store denied the write")

	// ErrStoreUnavailable means the store could not be reached at all,
	// so the write was definitely never applied. Mutations short-circuit
	// to the overlay.
	ErrStoreUnavailable = errors.New("authoritative store unavailable")

	ErrCampaignNotFound = errors.New("campaign not found")
	ErrListingNotFound  = errors.New("listing not found")
	ErrWalletNotFound   = errors.New("wallet not found")
)

// PromoStore is the authoritative store for campaigns, listings, wallets
// and the wallet ledger. It is an outbound port; implementations must be
// concurrency-safe and keep the paired writes below atomic.
type PromoStore interface {
	// CreateCampaignAndCharge persists the campaign, debits the wallet
	// and appends the ledger entry in one transaction. The wallet debit
	// is an atomic decrement with a zero floor; ErrInsufficientBalance
	// is returned when the balance cannot cover tx.Amount and nothing is
	// written. The ledger row is keyed by campaign id, so a retried
	// submission of the same campaign never charges twice.
	CreateCampaignAndCharge(ctx context.Context, c domain.Campaign, tx domain.Transaction) error

	// UpdateCampaignStatusAndListing applies a status transition and the
	// paired listing promoted flag in one transaction.
	UpdateCampaignStatusAndListing(ctx context.Context, campaignID string, status domain.Status, listingID string, promoted bool) error

	// UpdateCampaignStatus applies a status transition that does not
	// touch the listing flag (rejection by moderation).
	UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.Status) error

	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, vendorID string) ([]domain.Campaign, error)

	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListActiveListings(ctx context.Context, vendorID string) ([]domain.Listing, error)

	GetWallet(ctx context.Context, vendorID string) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, vendorID string) ([]domain.Transaction, error)
}
