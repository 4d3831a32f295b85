package domain

// Override patches compensate for authoritative writes that failed or
// could not be confirmed. A patch carries only the fields the local
// action changed; merging lays those fields over the authoritative
// snapshot, so the overlay wins whenever both disagree. Merging the same
// patch twice yields the same result.
//
// Patches are typed per entity kind so the merge is exhaustive rather
// than shape-agnostic.

// CampaignPatch is a partial campaign update held in the local cache.
type CampaignPatch struct {
	Status *Status `json:"status,omitempty"`
}

// ListingPatch is a partial listing update held in the local cache.
type ListingPatch struct {
	Promoted *bool `json:"promoted,omitempty"`
}

// WalletPatch is a partial wallet update held in the local cache.
type WalletPatch struct {
	Balance    *int64 `json:"balance,omitempty"`
	TotalSpend *int64 `json:"total_spend,omitempty"`
}

// MergeCampaign lays a patch over an authoritative campaign snapshot.
// A nil patch returns the snapshot unchanged.
func MergeCampaign(c Campaign, p *CampaignPatch) Campaign {
	if p == nil {
		return c
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	return c
}

// MergeListing lays a patch over an authoritative listing snapshot.
func MergeListing(l Listing, p *ListingPatch) Listing {
	if p == nil {
		return l
	}
	if p.Promoted != nil {
		l.Promoted = *p.Promoted
	}
	return l
}

// MergeWallet lays a patch over an authoritative wallet snapshot.
func MergeWallet(w Wallet, p *WalletPatch) Wallet {
	if p == nil {
		return w
	}
	if p.Balance != nil {
		w.Balance = *p.Balance
	}
	if p.TotalSpend != nil {
		w.TotalSpend = *p.TotalSpend
	}
	return w
}
