package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"bazaar-promo/internal/core/domain"
)

// Key layout. Patches live in one hash per entity kind so a merged list
// can be assembled with a single HGetAll. Pending campaigns are full
// records in their own hash; pending ledger entries are an append-only
// list per vendor. Nothing here carries a TTL: an override outlives the
// failure it compensates for until the campaign reaches a terminal state.
const (
	keyCampaignPatches  = "overlay:campaigns"
	keyListingPatches   = "overlay:listings"
	keyPendingCampaigns = "overlay:campaigns:pending"
	walletPatchPrefix   = "overlay:wallet:"
	pendingTxnsPrefix   = "overlay:wallet:txns:"
)

// OverrideStore implements port.OverrideStore on Redis. Redis runs next
// to the application with persistence enabled, which makes the overlay
// durable across restarts while staying independent of the authoritative
// store.
type OverrideStore struct {
	client *redis.Client
}

// NewOverrideStore creates an override store backed by the given client.
func NewOverrideStore(client *redis.Client) *OverrideStore {
	return &OverrideStore{client: client}
}

// SaveCampaignPatch replaces the stored patch for the campaign,
// last-write-wins.
func (s *OverrideStore) SaveCampaignPatch(ctx context.Context, campaignID string, p domain.CampaignPatch) error {
	return s.hsetJSON(ctx, keyCampaignPatches, campaignID, p)
}

// CampaignPatch returns the stored patch for the campaign, or nil.
func (s *OverrideStore) CampaignPatch(ctx context.Context, campaignID string) (*domain.CampaignPatch, error) {
	var p domain.CampaignPatch
	ok, err := s.hgetJSON(ctx, keyCampaignPatches, campaignID, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// CampaignPatches returns every stored campaign patch keyed by campaign id.
func (s *OverrideStore) CampaignPatches(ctx context.Context) (map[string]domain.CampaignPatch, error) {
	raw, err := s.client.HGetAll(ctx, keyCampaignPatches).Result()
	if err != nil {
		return nil, fmt.Errorf("load campaign patches: %w", err)
	}
	out := make(map[string]domain.CampaignPatch, len(raw))
	for id, data := range raw {
		var p domain.CampaignPatch
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("decode campaign patch %s: %w", id, err)
		}
		out[id] = p
	}
	return out, nil
}

// SaveListingPatch replaces the stored patch for the listing.
func (s *OverrideStore) SaveListingPatch(ctx context.Context, listingID string, p domain.ListingPatch) error {
	return s.hsetJSON(ctx, keyListingPatches, listingID, p)
}

// ListingPatch returns the stored patch for the listing, or nil.
func (s *OverrideStore) ListingPatch(ctx context.Context, listingID string) (*domain.ListingPatch, error) {
	var p domain.ListingPatch
	ok, err := s.hgetJSON(ctx, keyListingPatches, listingID, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// ListingPatches returns every stored listing patch keyed by listing id.
func (s *OverrideStore) ListingPatches(ctx context.Context) (map[string]domain.ListingPatch, error) {
	raw, err := s.client.HGetAll(ctx, keyListingPatches).Result()
	if err != nil {
		return nil, fmt.Errorf("load listing patches: %w", err)
	}
	out := make(map[string]domain.ListingPatch, len(raw))
	for id, data := range raw {
		var p domain.ListingPatch
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("decode listing patch %s: %w", id, err)
		}
		out[id] = p
	}
	return out, nil
}

// SaveWalletPatch replaces the vendor's wallet patch.
func (s *OverrideStore) SaveWalletPatch(ctx context.Context, vendorID string, p domain.WalletPatch) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode wallet patch: %w", err)
	}
	return s.client.Set(ctx, walletPatchPrefix+vendorID, data, 0).Err()
}

// WalletPatch returns the vendor's wallet patch, or nil.
func (s *OverrideStore) WalletPatch(ctx context.Context, vendorID string) (*domain.WalletPatch, error) {
	data, err := s.client.Get(ctx, walletPatchPrefix+vendorID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load wallet patch: %w", err)
	}
	var p domain.WalletPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode wallet patch: %w", err)
	}
	return &p, nil
}

// SavePendingCampaign stores a campaign the authoritative store has never
// accepted.
func (s *OverrideStore) SavePendingCampaign(ctx context.Context, c domain.Campaign) error {
	return s.hsetJSON(ctx, keyPendingCampaigns, c.ID, c)
}

// PendingCampaign returns a locally pending campaign by id, or nil.
func (s *OverrideStore) PendingCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	var c domain.Campaign
	ok, err := s.hgetJSON(ctx, keyPendingCampaigns, campaignID, &c)
	if err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

// PendingCampaigns returns the vendor's locally pending campaigns.
func (s *OverrideStore) PendingCampaigns(ctx context.Context, vendorID string) ([]domain.Campaign, error) {
	raw, err := s.client.HGetAll(ctx, keyPendingCampaigns).Result()
	if err != nil {
		return nil, fmt.Errorf("load pending campaigns: %w", err)
	}
	var out []domain.Campaign
	for id, data := range raw {
		var c domain.Campaign
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, fmt.Errorf("decode pending campaign %s: %w", id, err)
		}
		if c.VendorID == vendorID {
			out = append(out, c)
		}
	}
	return out, nil
}

// AppendPendingTransaction records the local side of a charge whose
// authoritative write was not confirmed.
func (s *OverrideStore) AppendPendingTransaction(ctx context.Context, vendorID string, tx domain.Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("encode pending transaction: %w", err)
	}
	return s.client.RPush(ctx, pendingTxnsPrefix+vendorID, data).Err()
}

// PendingTransactions returns the vendor's locally recorded ledger
// entries in append order.
func (s *OverrideStore) PendingTransactions(ctx context.Context, vendorID string) ([]domain.Transaction, error) {
	raw, err := s.client.LRange(ctx, pendingTxnsPrefix+vendorID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load pending transactions: %w", err)
	}
	out := make([]domain.Transaction, 0, len(raw))
	for _, data := range raw {
		var t domain.Transaction
		if err := json.Unmarshal([]byte(data), &t); err != nil {
			return nil, fmt.Errorf("decode pending transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *OverrideStore) hsetJSON(ctx context.Context, key, field string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", key, field, err)
	}
	return s.client.HSet(ctx, key, field, data).Err()
}

func (s *OverrideStore) hgetJSON(ctx context.Context, key, field string, v any) (bool, error) {
	data, err := s.client.HGet(ctx, key, field).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s/%s: %w", key, field, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", key, field, err)
	}
	return true, nil
}
