package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"bazaar-promo/internal/core/domain"
	"bazaar-promo/internal/core/port"
)

// CampaignService drives the campaign lifecycle: the creation wizard,
// the atomic create-and-charge, pause/resume/archive, and the merged
// reads views render from. It implements port.CampaignUseCase.
//
// Every mutation follows the same shape: try the authoritative store
// first; when the store rejects the write for authorization reasons or
// cannot be reached at all, compensate through the override store so the
// user-initiated action is never silently reverted, and notify the other
// open views over the bus. Unclassified failures are surfaced as-is and
// nothing is compensated, since the write may have partially applied.
type CampaignService struct {
	store   port.PromoStore
	overlay port.OverrideStore
	bus     port.EventBus
	rates   domain.RateTable
	logger  *slog.Logger

	// inFlight guards against duplicate concurrent submissions per
	// vendor while one charge is still running.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewCampaignService creates the orchestrator with its collaborators.
// A nil rates table falls back to the built-in defaults.
func NewCampaignService(store port.PromoStore, overlay port.OverrideStore, bus port.EventBus, rates domain.RateTable, logger *slog.Logger) *CampaignService {
	if rates == nil {
		rates = domain.DefaultRates()
	}
	return &CampaignService{
		store:    store,
		overlay:  overlay,
		bus:      bus,
		rates:    rates,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// ValidateStep checks everything the given wizard step requires before
// the next step may be entered. The review step re-checks all prior
// steps plus the schedule.
func (s *CampaignService) ValidateStep(draft port.Draft, step int) error {
	switch step {
	case port.StepGoal:
		switch draft.Type {
		case domain.TypeFeaturedListing, domain.TypeBannerAd, domain.TypeSocialBoost:
		default:
			return port.ErrUnknownCampaignType
		}
		switch draft.Goal {
		case domain.GoalTraffic, domain.GoalCalls, domain.GoalAwareness:
		default:
			return port.ErrUnknownGoal
		}
		return nil
	case port.StepListing:
		if draft.ListingID == "" {
			return port.ErrListingNotSelected
		}
		return nil
	case port.StepSchedule:
		if draft.Scope == port.ScopeSpecific && draft.City == "" {
			return port.ErrCityNotSelected
		}
		return nil
	case port.StepReview:
		for _, prior := range []int{port.StepGoal, port.StepListing, port.StepSchedule} {
			if err := s.ValidateStep(draft, prior); err != nil {
				return err
			}
		}
		return domain.ValidateSchedule(draft.StartDate, draft.EndDate)
	default:
		return fmt.Errorf("unknown wizard step %d", step)
	}
}

// EstimateCost returns the live quote for the draft.
func (s *CampaignService) EstimateCost(draft port.Draft) domain.Quote {
	return domain.ComputeCost(draft.Type, draft.StartDate, draft.EndDate, s.rates)
}

// LaunchCampaign validates the draft, checks affordability against the
// latest known wallet state and performs the atomic create-and-charge.
func (s *CampaignService) LaunchCampaign(ctx context.Context, draft port.Draft) (*port.LaunchResult, error) {
	if err := s.ValidateStep(draft, port.StepReview); err != nil {
		return nil, err
	}
	if !s.beginSubmission(draft.VendorID) {
		return nil, port.ErrSubmissionInFlight
	}
	defer s.endSubmission(draft.VendorID)

	// Verify the listing against the catalog when it is reachable and
	// take the snapshot from there; otherwise the wizard's own snapshot
	// serves.
	degraded := false
	listingTitle, listingImage := draft.ListingTitle, draft.ListingImage
	listing, err := s.store.GetListing(ctx, draft.ListingID)
	switch {
	case err == nil:
		if listing.VendorID != draft.VendorID || listing.Status != domain.ListingStatusActive {
			return nil, port.ErrListingNotFound
		}
		listingTitle, listingImage = listing.Title, listing.ImageURL
	case errors.Is(err, port.ErrStoreUnavailable), errors.Is(err, port.ErrPermissionDenied):
		degraded = true
	default:
		return nil, err
	}

	wallet, walletDegraded, err := s.loadWallet(ctx, draft.VendorID)
	if err != nil {
		return nil, err
	}
	degraded = degraded || walletDegraded

	quote := s.EstimateCost(draft)
	if wallet.Balance < quote.TotalCost {
		return nil, port.ErrInsufficientBalance
	}

	now := time.Now().UTC()
	campaign := domain.Campaign{
		ID:             uuid.NewString(),
		VendorID:       draft.VendorID,
		ListingID:      draft.ListingID,
		ListingTitle:   listingTitle,
		ListingImage:   listingImage,
		Type:           draft.Type,
		Goal:           draft.Goal,
		Status:         domain.StatusPendingApproval,
		StartDate:      draft.StartDate,
		EndDate:        draft.EndDate,
		DurationDays:   quote.DurationDays,
		TotalCost:      quote.TotalCost,
		TargetLocation: targetLocation(draft),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	newWallet, tx := domain.Charge(wallet, campaign, now)

	if !degraded {
		err = s.store.CreateCampaignAndCharge(ctx, campaign, tx)
		switch {
		case err == nil:
			s.bus.Publish(port.TopicCampaignChanged)
			s.bus.Publish(port.TopicWalletChanged)
			return &port.LaunchResult{Campaign: campaign, Transaction: tx, Wallet: newWallet, Confirmed: true}, nil
		case errors.Is(err, port.ErrPermissionDenied), errors.Is(err, port.ErrStoreUnavailable):
			degraded = true
		default:
			return nil, err
		}
	}

	// Compensating path: the store rejected or never saw the write, so
	// the local cache carries the accepted action instead.
	tx.Status = domain.TxStatusPending
	if oerr := s.overlay.SavePendingCampaign(ctx, campaign); oerr != nil {
		return nil, oerr
	}
	if oerr := s.overlay.SaveWalletPatch(ctx, draft.VendorID, domain.WalletPatch{
		Balance:    &newWallet.Balance,
		TotalSpend: &newWallet.TotalSpend,
	}); oerr != nil {
		return nil, oerr
	}
	if oerr := s.overlay.AppendPendingTransaction(ctx, draft.VendorID, tx); oerr != nil {
		return nil, oerr
	}
	s.logger.Warn("campaign launch recorded locally, authoritative write not confirmed",
		slog.String("campaign_id", campaign.ID), slog.Any("error", err))
	s.bus.Publish(port.TopicCampaignChanged)
	s.bus.Publish(port.TopicWalletChanged)
	return &port.LaunchResult{Campaign: campaign, Transaction: tx, Wallet: newWallet, Confirmed: false}, nil
}

// PauseCampaign moves an active campaign to paused and clears the
// listing's promoted flag.
func (s *CampaignService) PauseCampaign(ctx context.Context, campaignID string) (*port.ActionResult, error) {
	return s.transition(ctx, campaignID, (*domain.Campaign).Pause)
}

// ResumeCampaign moves a paused campaign back to active and sets the
// listing's promoted flag.
func (s *CampaignService) ResumeCampaign(ctx context.Context, campaignID string) (*port.ActionResult, error) {
	return s.transition(ctx, campaignID, (*domain.Campaign).Resume)
}

// ArchiveCampaign moves an active or paused campaign to completed and
// clears the listing's promoted flag. Archived campaigns stay in the
// collection; nothing is physically deleted.
func (s *CampaignService) ArchiveCampaign(ctx context.Context, campaignID string) (*port.ActionResult, error) {
	return s.transition(ctx, campaignID, (*domain.Campaign).Archive)
}

// ApproveCampaign moves a pending campaign to active. Moderation only;
// approval grants exposure, so it is paired with the listing flag.
func (s *CampaignService) ApproveCampaign(ctx context.Context, campaignID string) (*port.ActionResult, error) {
	return s.transition(ctx, campaignID, (*domain.Campaign).Approve)
}

// RejectCampaign moves a pending campaign to rejected. The listing was
// never promoted, so only the campaign row is written.
func (s *CampaignService) RejectCampaign(ctx context.Context, campaignID string) (*port.ActionResult, error) {
	campaign, degraded, err := s.loadCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err := campaign.Reject(); err != nil {
		return nil, err
	}

	if !degraded {
		err = s.store.UpdateCampaignStatus(ctx, campaign.ID, campaign.Status)
		switch {
		case err == nil:
			s.bus.Publish(port.TopicCampaignChanged)
			return &port.ActionResult{Campaign: *campaign, Confirmed: true}, nil
		case errors.Is(err, port.ErrPermissionDenied), errors.Is(err, port.ErrStoreUnavailable):
			degraded = true
		default:
			return nil, err
		}
	}

	status := campaign.Status
	if oerr := s.overlay.SaveCampaignPatch(ctx, campaign.ID, domain.CampaignPatch{Status: &status}); oerr != nil {
		return nil, oerr
	}
	s.logger.Warn("campaign rejection recorded locally, authoritative write not confirmed",
		slog.String("campaign_id", campaign.ID), slog.Any("error", err))
	s.bus.Publish(port.TopicCampaignChanged)
	return &port.ActionResult{Campaign: *campaign, Confirmed: false}, nil
}

func (s *CampaignService) transition(ctx context.Context, campaignID string, apply func(*domain.Campaign) error) (*port.ActionResult, error) {
	campaign, degraded, err := s.loadCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err := apply(campaign); err != nil {
		return nil, err
	}
	promoted := domain.IsExposureGranting(campaign.Status)

	if !degraded {
		err = s.store.UpdateCampaignStatusAndListing(ctx, campaign.ID, campaign.Status, campaign.ListingID, promoted)
		switch {
		case err == nil:
			s.bus.Publish(port.TopicCampaignChanged)
			s.bus.Publish(port.TopicListingChanged)
			return &port.ActionResult{Campaign: *campaign, Confirmed: true}, nil
		case errors.Is(err, port.ErrPermissionDenied), errors.Is(err, port.ErrStoreUnavailable):
			degraded = true
		default:
			return nil, err
		}
	}

	status := campaign.Status
	if oerr := s.overlay.SaveCampaignPatch(ctx, campaign.ID, domain.CampaignPatch{Status: &status}); oerr != nil {
		return nil, oerr
	}
	if oerr := s.overlay.SaveListingPatch(ctx, campaign.ListingID, domain.ListingPatch{Promoted: &promoted}); oerr != nil {
		return nil, oerr
	}
	s.logger.Warn("campaign transition recorded locally, authoritative write not confirmed",
		slog.String("campaign_id", campaign.ID), slog.String("status", string(status)), slog.Any("error", err))
	s.bus.Publish(port.TopicCampaignChanged)
	s.bus.Publish(port.TopicListingChanged)
	return &port.ActionResult{Campaign: *campaign, Confirmed: false}, nil
}

// ListCampaigns returns the vendor's campaigns merged with the overlay:
// locally pending creations first, then the authoritative collection,
// each with its patch applied. An unreachable store degrades to the
// local-only view rather than failing the render.
func (s *CampaignService) ListCampaigns(ctx context.Context, vendorID string) ([]domain.Campaign, error) {
	authoritative, err := s.store.ListCampaigns(ctx, vendorID)
	if err != nil && !errors.Is(err, port.ErrStoreUnavailable) {
		return nil, err
	}
	patches, err := s.overlay.CampaignPatches(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.overlay.PendingCampaigns(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Campaign, 0, len(pending)+len(authoritative))
	for _, c := range append(pending, authoritative...) {
		if p, ok := patches[c.ID]; ok {
			c = domain.MergeCampaign(c, &p)
		}
		out = append(out, c)
	}
	return out, nil
}

// ListPromotableListings returns the vendor's active listings with
// overlay-merged promoted flags.
func (s *CampaignService) ListPromotableListings(ctx context.Context, vendorID string) ([]domain.Listing, error) {
	listings, err := s.store.ListActiveListings(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	patches, err := s.overlay.ListingPatches(ctx)
	if err != nil {
		return nil, err
	}
	for i, l := range listings {
		if p, ok := patches[l.ID]; ok {
			listings[i] = domain.MergeListing(l, &p)
		}
	}
	return listings, nil
}

// GetWallet returns the vendor's wallet merged with the overlay, and the
// ledger history with locally pending entries first.
func (s *CampaignService) GetWallet(ctx context.Context, vendorID string) (*port.WalletView, error) {
	wallet, _, err := s.loadWallet(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	history, err := s.store.ListTransactions(ctx, vendorID)
	if err != nil && !errors.Is(err, port.ErrStoreUnavailable) {
		return nil, err
	}
	pending, err := s.overlay.PendingTransactions(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	txs := make([]domain.Transaction, 0, len(pending)+len(history))
	for i := len(pending) - 1; i >= 0; i-- { // newest first
		txs = append(txs, pending[i])
	}
	txs = append(txs, history...)
	return &port.WalletView{Wallet: wallet, Transactions: txs}, nil
}

// loadWallet reads the authoritative wallet and lays the overlay patch on
// top, so the most recently observed balance wins. When the store is
// unreachable the patch alone serves, provided it carries both fields;
// without any local knowledge of the balance the read fails.
func (s *CampaignService) loadWallet(ctx context.Context, vendorID string) (domain.Wallet, bool, error) {
	patch, perr := s.overlay.WalletPatch(ctx, vendorID)
	if perr != nil {
		return domain.Wallet{}, false, perr
	}

	wallet, err := s.store.GetWallet(ctx, vendorID)
	if err != nil {
		if errors.Is(err, port.ErrStoreUnavailable) && patch != nil && patch.Balance != nil && patch.TotalSpend != nil {
			local := domain.MergeWallet(domain.Wallet{VendorID: vendorID}, patch)
			return local, true, nil
		}
		return domain.Wallet{}, false, err
	}
	return domain.MergeWallet(*wallet, patch), false, nil
}

// loadCampaign reads the campaign merged with its overlay patch. When the
// store is unreachable a locally pending campaign serves; a campaign the
// local cache has never seen cannot be acted on until connectivity
// returns.
func (s *CampaignService) loadCampaign(ctx context.Context, campaignID string) (*domain.Campaign, bool, error) {
	degraded := false
	campaign, err := s.store.GetCampaign(ctx, campaignID)
	if errors.Is(err, port.ErrStoreUnavailable) {
		degraded = true
		campaign, err = s.overlay.PendingCampaign(ctx, campaignID)
		if err == nil && campaign == nil {
			return nil, false, fmt.Errorf("%w: campaign %s has no local copy", port.ErrStoreUnavailable, campaignID)
		}
	}
	if err != nil {
		return nil, false, err
	}
	patch, err := s.overlay.CampaignPatch(ctx, campaignID)
	if err != nil {
		return nil, false, err
	}
	merged := domain.MergeCampaign(*campaign, patch)
	return &merged, degraded, nil
}

func (s *CampaignService) beginSubmission(vendorID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[vendorID]; busy {
		return false
	}
	s.inFlight[vendorID] = struct{}{}
	return true
}

func (s *CampaignService) endSubmission(vendorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, vendorID)
}

// targetLocation renders the draft's targeting as the free-form location
// the campaign record carries.
func targetLocation(d port.Draft) string {
	if d.Scope != port.ScopeSpecific {
		return "All Pakistan"
	}
	if d.City != "" && d.Province != "" {
		return d.City + ", " + d.Province
	}
	if d.City != "" {
		return d.City
	}
	return d.Province
}
