package port

import (
	"context"

	"bazaar-promo/internal/core/domain"
)

// OverrideStore is the local durable cache holding override patches and
// locally pending records. An entry exists only to compensate for an
// authoritative write that failed or could not be confirmed; entries are
// replaced last-write-wins and are never expired by the core.
//
// Three namespaces: campaign patches and listing patches keyed by entity
// id, and per-vendor wallet state (one patch plus the pending side of the
// ledger). Pending campaigns are full records, not patches, because the
// authoritative store has never seen them.
type OverrideStore interface {
	SaveCampaignPatch(ctx context.Context, campaignID string, p domain.CampaignPatch) error
	CampaignPatch(ctx context.Context, campaignID string) (*domain.CampaignPatch, error)
	CampaignPatches(ctx context.Context) (map[string]domain.CampaignPatch, error)

	SaveListingPatch(ctx context.Context, listingID string, p domain.ListingPatch) error
	ListingPatch(ctx context.Context, listingID string) (*domain.ListingPatch, error)
	ListingPatches(ctx context.Context) (map[string]domain.ListingPatch, error)

	SaveWalletPatch(ctx context.Context, vendorID string, p domain.WalletPatch) error
	WalletPatch(ctx context.Context, vendorID string) (*domain.WalletPatch, error)

	SavePendingCampaign(ctx context.Context, c domain.Campaign) error
	PendingCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	PendingCampaigns(ctx context.Context, vendorID string) ([]domain.Campaign, error)

	AppendPendingTransaction(ctx context.Context, vendorID string, tx domain.Transaction) error
	PendingTransactions(ctx context.Context, vendorID string) ([]domain.Transaction, error)
}
