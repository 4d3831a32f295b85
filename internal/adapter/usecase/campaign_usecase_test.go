package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"bazaar-promo/internal/core/domain"
	"bazaar-promo/internal/core/port"
	"bazaar-promo/internal/core/port/mocks"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validDraft() port.Draft {
	return port.Draft{
		VendorID:     "v1",
		Type:         domain.TypeFeaturedListing,
		Goal:         domain.GoalTraffic,
		ListingID:    "l1",
		ListingTitle: "Handwoven Rug",
		ListingImage: "rug.jpg",
		StartDate:    date(2024, time.January, 1),
		EndDate:      date(2024, time.January, 8),
		Scope:        port.ScopeNationwide,
	}
}

func newTestService(t *testing.T) (*CampaignService, *mocks.MockPromoStore, *mocks.MockOverrideStore, *mocks.MockEventBus) {
	store := mocks.NewMockPromoStore(t)
	overlay := mocks.NewMockOverrideStore(t)
	bus := mocks.NewMockEventBus(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCampaignService(store, overlay, bus, nil, logger), store, overlay, bus
}

// TestLaunchCampaign ensures a confirmed submission charges the wallet
// exactly once and returns the persisted state.
func TestLaunchCampaign(t *testing.T) {
	svc, store, overlay, bus := newTestService(t)

	store.EXPECT().
		GetListing(mock.Anything, "l1").
		Return(&domain.Listing{ID: "l1", VendorID: "v1", Title: "Handwoven Rug", ImageURL: "rug.jpg", Status: domain.ListingStatusActive}, nil)
	overlay.EXPECT().
		WalletPatch(mock.Anything, "v1").
		Return(nil, nil)
	store.EXPECT().
		GetWallet(mock.Anything, "v1").
		Return(&domain.Wallet{VendorID: "v1", Balance: 1000}, nil)

	var persisted domain.Campaign
	var charged domain.Transaction
	store.EXPECT().
		CreateCampaignAndCharge(mock.Anything, mock.AnythingOfType("domain.Campaign"), mock.AnythingOfType("domain.Transaction")).
		Run(func(ctx context.Context, c domain.Campaign, tx domain.Transaction) {
			persisted = c
			charged = tx
		}).
		Return(nil)
	bus.EXPECT().Publish(port.TopicCampaignChanged).Return()
	bus.EXPECT().Publish(port.TopicWalletChanged).Return()

	res, err := svc.LaunchCampaign(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("LaunchCampaign error: %v", err)
	}
	if !res.Confirmed {
		t.Fatal("expected a confirmed launch")
	}
	// 7 whole days at the featured rate of 100.
	if persisted.DurationDays != 7 || persisted.TotalCost != 700 {
		t.Fatalf("unexpected quote: %d days, cost %d", persisted.DurationDays, persisted.TotalCost)
	}
	if persisted.Status != domain.StatusPendingApproval {
		t.Fatalf("expected pending_approval, got %s", persisted.Status)
	}
	if charged.Amount != 700 || charged.CampaignID != persisted.ID || charged.Status != domain.TxStatusCompleted {
		t.Fatalf("unexpected ledger entry: %+v", charged)
	}
	if res.Wallet.Balance != 300 || res.Wallet.TotalSpend != 700 {
		t.Fatalf("unexpected wallet after charge: %+v", res.Wallet)
	}
}

// TestLaunchCampaignInsufficientBalance ensures affordability is checked
// before anything is written.
func TestLaunchCampaignInsufficientBalance(t *testing.T) {
	svc, store, overlay, _ := newTestService(t)

	store.EXPECT().
		GetListing(mock.Anything, "l1").
		Return(&domain.Listing{ID: "l1", VendorID: "v1", Title: "Handwoven Rug", Status: domain.ListingStatusActive}, nil)
	overlay.EXPECT().
		WalletPatch(mock.Anything, "v1").
		Return(nil, nil)
	store.EXPECT().
		GetWallet(mock.Anything, "v1").
		Return(&domain.Wallet{VendorID: "v1", Balance: 50}, nil)

	_, err := svc.LaunchCampaign(context.Background(), validDraft())
	if err != port.ErrInsufficientBalance {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}

// TestLaunchCampaignDegraded ensures a write the store's authorization
// layer rejects lands in the overlay instead of being reverted.
func TestLaunchCampaignDegraded(t *testing.T) {
	svc, store, overlay, bus := newTestService(t)

	store.EXPECT().
		GetListing(mock.Anything, "l1").
		Return(&domain.Listing{ID: "l1", VendorID: "v1", Title: "Handwoven Rug", Status: domain.ListingStatusActive}, nil)
	overlay.EXPECT().
		WalletPatch(mock.Anything, "v1").
		Return(nil, nil)
	store.EXPECT().
		GetWallet(mock.Anything, "v1").
		Return(&domain.Wallet{VendorID: "v1", Balance: 1000}, nil)
	store.EXPECT().
		CreateCampaignAndCharge(mock.Anything, mock.AnythingOfType("domain.Campaign"), mock.AnythingOfType("domain.Transaction")).
		Return(port.ErrPermissionDenied)

	overlay.EXPECT().
		SavePendingCampaign(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Return(nil)
	var patch domain.WalletPatch
	overlay.EXPECT().
		SaveWalletPatch(mock.Anything, "v1", mock.AnythingOfType("domain.WalletPatch")).
		Run(func(ctx context.Context, vendorID string, p domain.WalletPatch) {
			patch = p
		}).
		Return(nil)
	var pending domain.Transaction
	overlay.EXPECT().
		AppendPendingTransaction(mock.Anything, "v1", mock.AnythingOfType("domain.Transaction")).
		Run(func(ctx context.Context, vendorID string, tx domain.Transaction) {
			pending = tx
		}).
		Return(nil)
	bus.EXPECT().Publish(port.TopicCampaignChanged).Return()
	bus.EXPECT().Publish(port.TopicWalletChanged).Return()

	res, err := svc.LaunchCampaign(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("LaunchCampaign error: %v", err)
	}
	if res.Confirmed {
		t.Fatal("expected an unconfirmed launch")
	}
	if pending.Status != domain.TxStatusPending {
		t.Fatalf("expected a pending ledger entry, got %q", pending.Status)
	}
	if patch.Balance == nil || *patch.Balance != 300 {
		t.Fatalf("expected wallet patch balance 300, got %+v", patch)
	}
}

// TestLaunchCampaignHardFailure ensures an unclassified store error is
// surfaced as-is: the write may have partially applied, so nothing is
// compensated through the overlay and nothing is published.
func TestLaunchCampaignHardFailure(t *testing.T) {
	svc, store, overlay, _ := newTestService(t)

	store.EXPECT().
		GetListing(mock.Anything, "l1").
		Return(&domain.Listing{ID: "l1", VendorID: "v1", Title: "Handwoven Rug", Status: domain.ListingStatusActive}, nil)
	overlay.EXPECT().
		WalletPatch(mock.Anything, "v1").
		Return(nil, nil)
	store.EXPECT().
		GetWallet(mock.Anything, "v1").
		Return(&domain.Wallet{VendorID: "v1", Balance: 1000}, nil)

	boom := errors.New("serialization failure")
	store.EXPECT().
		CreateCampaignAndCharge(mock.Anything, mock.AnythingOfType("domain.Campaign"), mock.AnythingOfType("domain.Transaction")).
		Return(boom)

	// Strict mocks: no overlay write and no publish may happen.
	_, err := svc.LaunchCampaign(context.Background(), validDraft())
	if err != boom {
		t.Fatalf("expected the store error unchanged, got %v", err)
	}
}

// TestLaunchCampaignInFlight ensures a second submission for the same
// vendor is rejected while one is still running.
func TestLaunchCampaignInFlight(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	if !svc.beginSubmission("v1") {
		t.Fatal("beginSubmission failed on an idle vendor")
	}
	defer svc.endSubmission("v1")

	_, err := svc.LaunchCampaign(context.Background(), validDraft())
	if err != port.ErrSubmissionInFlight {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}
}

// TestValidateStep exercises the wizard step gates.
func TestValidateStep(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	cases := []struct {
		name    string
		mutate  func(*port.Draft)
		step    int
		wantErr error
	}{
		{"unknown type", func(d *port.Draft) { d.Type = "popup" }, port.StepGoal, port.ErrUnknownCampaignType},
		{"unknown goal", func(d *port.Draft) { d.Goal = "" }, port.StepGoal, port.ErrUnknownGoal},
		{"no listing", func(d *port.Draft) { d.ListingID = "" }, port.StepListing, port.ErrListingNotSelected},
		{"specific without city", func(d *port.Draft) { d.Scope = port.ScopeSpecific; d.City = "" }, port.StepSchedule, port.ErrCityNotSelected},
		{"review catches earlier step", func(d *port.Draft) { d.ListingID = "" }, port.StepReview, port.ErrListingNotSelected},
		{"review rejects reversed dates", func(d *port.Draft) { d.EndDate = d.StartDate }, port.StepReview, domain.ErrInvalidSchedule},
		{"complete draft", func(d *port.Draft) {}, port.StepReview, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			if err := svc.ValidateStep(draft, tc.step); err != tc.wantErr {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

// TestPauseAndResume ensures lifecycle transitions pair the campaign
// status with the listing promoted flag.
func TestPauseAndResume(t *testing.T) {
	t.Run("pause clears the flag", func(t *testing.T) {
		svc, store, overlay, bus := newTestService(t)

		store.EXPECT().
			GetCampaign(mock.Anything, "c1").
			Return(&domain.Campaign{ID: "c1", ListingID: "l1", Status: domain.StatusActive}, nil)
		overlay.EXPECT().
			CampaignPatch(mock.Anything, "c1").
			Return(nil, nil)
		store.EXPECT().
			UpdateCampaignStatusAndListing(mock.Anything, "c1", domain.StatusPaused, "l1", false).
			Return(nil)
		bus.EXPECT().Publish(port.TopicCampaignChanged).Return()
		bus.EXPECT().Publish(port.TopicListingChanged).Return()

		res, err := svc.PauseCampaign(context.Background(), "c1")
		if err != nil {
			t.Fatalf("PauseCampaign error: %v", err)
		}
		if res.Campaign.Status != domain.StatusPaused || !res.Confirmed {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("resume sets the flag", func(t *testing.T) {
		svc, store, overlay, bus := newTestService(t)

		store.EXPECT().
			GetCampaign(mock.Anything, "c1").
			Return(&domain.Campaign{ID: "c1", ListingID: "l1", Status: domain.StatusPaused}, nil)
		overlay.EXPECT().
			CampaignPatch(mock.Anything, "c1").
			Return(nil, nil)
		store.EXPECT().
			UpdateCampaignStatusAndListing(mock.Anything, "c1", domain.StatusActive, "l1", true).
			Return(nil)
		bus.EXPECT().Publish(port.TopicCampaignChanged).Return()
		bus.EXPECT().Publish(port.TopicListingChanged).Return()

		res, err := svc.ResumeCampaign(context.Background(), "c1")
		if err != nil {
			t.Fatalf("ResumeCampaign error: %v", err)
		}
		if res.Campaign.Status != domain.StatusActive {
			t.Fatalf("expected active, got %s", res.Campaign.Status)
		}
	})

	t.Run("resume of a pending campaign is not approval", func(t *testing.T) {
		svc, store, overlay, _ := newTestService(t)

		store.EXPECT().
			GetCampaign(mock.Anything, "c1").
			Return(&domain.Campaign{ID: "c1", ListingID: "l1", Status: domain.StatusPendingApproval}, nil)
		overlay.EXPECT().
			CampaignPatch(mock.Anything, "c1").
			Return(nil, nil)

		// Strict mocks: no status write and no publish may happen.
		_, err := svc.ResumeCampaign(context.Background(), "c1")
		if err != domain.ErrIllegalTransition {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("pause from pending is illegal", func(t *testing.T) {
		svc, store, overlay, _ := newTestService(t)

		store.EXPECT().
			GetCampaign(mock.Anything, "c1").
			Return(&domain.Campaign{ID: "c1", ListingID: "l1", Status: domain.StatusPendingApproval}, nil)
		overlay.EXPECT().
			CampaignPatch(mock.Anything, "c1").
			Return(nil, nil)

		_, err := svc.PauseCampaign(context.Background(), "c1")
		if err != domain.ErrIllegalTransition {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

// TestModeration ensures approval pairs the listing flag and rejection
// leaves the listing alone.
func TestModeration(t *testing.T) {
	t.Run("approve grants exposure", func(t *testing.T) {
		svc, store, overlay, bus := newTestService(t)

		store.EXPECT().
			GetCampaign(mock.Anything, "c1").
			Return(&domain.Campaign{ID: "c1", ListingID: "l1", Status: domain.StatusPendingApproval}, nil)
		overlay.EXPECT().
			CampaignPatch(mock.Anything, "c1").
			Return(nil, nil)
		store.EXPECT().
			UpdateCampaignStatusAndListing(mock.Anything, "c1", domain.StatusActive, "l1", true).
			Return(nil)
		bus.EXPECT().Publish(port.TopicCampaignChanged).Return()
		bus.EXPECT().Publish(port.TopicListingChanged).Return()

		res, err := svc.ApproveCampaign(context.Background(), "c1")
		if err != nil {
			t.Fatalf("ApproveCampaign error: %v", err)
		}
		if res.Campaign.Status != domain.StatusActive {
			t.Fatalf("expected active, got %s", res.Campaign.Status)
		}
	})

	t.Run("reject does not touch the listing", func(t *testing.T) {
		svc, store, overlay, bus := newTestService(t)

		store.EXPECT().
			GetCampaign(mock.Anything, "c1").
			Return(&domain.Campaign{ID: "c1", ListingID: "l1", Status: domain.StatusPendingApproval}, nil)
		overlay.EXPECT().
			CampaignPatch(mock.Anything, "c1").
			Return(nil, nil)
		store.EXPECT().
			UpdateCampaignStatus(mock.Anything, "c1", domain.StatusRejected).
			Return(nil)
		bus.EXPECT().Publish(port.TopicCampaignChanged).Return()

		res, err := svc.RejectCampaign(context.Background(), "c1")
		if err != nil {
			t.Fatalf("RejectCampaign error: %v", err)
		}
		if res.Campaign.Status != domain.StatusRejected || !res.Confirmed {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("approve of a paused campaign is not resume", func(t *testing.T) {
		svc, store, overlay, _ := newTestService(t)

		store.EXPECT().
			GetCampaign(mock.Anything, "c1").
			Return(&domain.Campaign{ID: "c1", ListingID: "l1", Status: domain.StatusPaused}, nil)
		overlay.EXPECT().
			CampaignPatch(mock.Anything, "c1").
			Return(nil, nil)

		_, err := svc.ApproveCampaign(context.Background(), "c1")
		if err != domain.ErrIllegalTransition {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("reject of a live campaign is illegal", func(t *testing.T) {
		svc, store, overlay, _ := newTestService(t)

		store.EXPECT().
			GetCampaign(mock.Anything, "c1").
			Return(&domain.Campaign{ID: "c1", ListingID: "l1", Status: domain.StatusActive}, nil)
		overlay.EXPECT().
			CampaignPatch(mock.Anything, "c1").
			Return(nil, nil)

		_, err := svc.RejectCampaign(context.Background(), "c1")
		if err != domain.ErrIllegalTransition {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

// TestTransitionDegraded ensures a transition against an unreachable
// store lands paired patches in the overlay.
func TestTransitionDegraded(t *testing.T) {
	svc, store, overlay, bus := newTestService(t)

	store.EXPECT().
		GetCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", ListingID: "l1", Status: domain.StatusActive}, nil)
	overlay.EXPECT().
		CampaignPatch(mock.Anything, "c1").
		Return(nil, nil)
	store.EXPECT().
		UpdateCampaignStatusAndListing(mock.Anything, "c1", domain.StatusCompleted, "l1", false).
		Return(port.ErrStoreUnavailable)
	overlay.EXPECT().
		SaveCampaignPatch(mock.Anything, "c1", mock.AnythingOfType("domain.CampaignPatch")).
		Return(nil)
	var listingPatch domain.ListingPatch
	overlay.EXPECT().
		SaveListingPatch(mock.Anything, "l1", mock.AnythingOfType("domain.ListingPatch")).
		Run(func(ctx context.Context, listingID string, p domain.ListingPatch) {
			listingPatch = p
		}).
		Return(nil)
	bus.EXPECT().Publish(port.TopicCampaignChanged).Return()
	bus.EXPECT().Publish(port.TopicListingChanged).Return()

	res, err := svc.ArchiveCampaign(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ArchiveCampaign error: %v", err)
	}
	if res.Confirmed {
		t.Fatal("expected an unconfirmed transition")
	}
	if listingPatch.Promoted == nil || *listingPatch.Promoted {
		t.Fatalf("expected promoted=false patch, got %+v", listingPatch)
	}
}

// TestListCampaigns ensures the merged view puts locally pending
// creations first and lays patches over the authoritative rows.
func TestListCampaigns(t *testing.T) {
	svc, store, overlay, _ := newTestService(t)

	paused := domain.StatusPaused
	store.EXPECT().
		ListCampaigns(mock.Anything, "v1").
		Return([]domain.Campaign{{ID: "c2", VendorID: "v1", Status: domain.StatusActive}}, nil)
	overlay.EXPECT().
		CampaignPatches(mock.Anything).
		Return(map[string]domain.CampaignPatch{"c2": {Status: &paused}}, nil)
	overlay.EXPECT().
		PendingCampaigns(mock.Anything, "v1").
		Return([]domain.Campaign{{ID: "c9", VendorID: "v1", Status: domain.StatusPendingApproval}}, nil)

	got, err := svc.ListCampaigns(context.Background(), "v1")
	if err != nil {
		t.Fatalf("ListCampaigns error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(got))
	}
	if got[0].ID != "c9" {
		t.Fatalf("expected the pending campaign first, got %s", got[0].ID)
	}
	if got[1].Status != domain.StatusPaused {
		t.Fatalf("expected the patch to win, got %s", got[1].Status)
	}
}

// TestListCampaignsStoreUnavailable ensures an unreachable store
// degrades the campaign list to the local-only view instead of failing
// the render.
func TestListCampaignsStoreUnavailable(t *testing.T) {
	svc, store, overlay, _ := newTestService(t)

	active := domain.StatusActive
	store.EXPECT().
		ListCampaigns(mock.Anything, "v1").
		Return(nil, port.ErrStoreUnavailable)
	overlay.EXPECT().
		CampaignPatches(mock.Anything).
		Return(map[string]domain.CampaignPatch{"c9": {Status: &active}}, nil)
	overlay.EXPECT().
		PendingCampaigns(mock.Anything, "v1").
		Return([]domain.Campaign{{ID: "c9", VendorID: "v1", Status: domain.StatusPendingApproval}}, nil)

	got, err := svc.ListCampaigns(context.Background(), "v1")
	if err != nil {
		t.Fatalf("ListCampaigns error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c9" {
		t.Fatalf("expected the local-only view, got %+v", got)
	}
	if got[0].Status != domain.StatusActive {
		t.Fatalf("expected the patch applied to the pending campaign, got %s", got[0].Status)
	}
}

// TestGetWalletStoreUnavailable ensures a wallet read against an
// unreachable store serves from the local patch only when the patch
// carries the complete wallet state.
func TestGetWalletStoreUnavailable(t *testing.T) {
	t.Run("complete patch serves", func(t *testing.T) {
		svc, store, overlay, _ := newTestService(t)

		balance := int64(300)
		spend := int64(700)
		overlay.EXPECT().
			WalletPatch(mock.Anything, "v1").
			Return(&domain.WalletPatch{Balance: &balance, TotalSpend: &spend}, nil)
		store.EXPECT().
			GetWallet(mock.Anything, "v1").
			Return(nil, port.ErrStoreUnavailable)
		store.EXPECT().
			ListTransactions(mock.Anything, "v1").
			Return(nil, port.ErrStoreUnavailable)
		overlay.EXPECT().
			PendingTransactions(mock.Anything, "v1").
			Return([]domain.Transaction{{ID: "p1", Status: domain.TxStatusPending}}, nil)

		view, err := svc.GetWallet(context.Background(), "v1")
		if err != nil {
			t.Fatalf("GetWallet error: %v", err)
		}
		if view.Wallet.Balance != 300 || view.Wallet.TotalSpend != 700 {
			t.Fatalf("unexpected local wallet: %+v", view.Wallet)
		}
		if len(view.Transactions) != 1 || view.Transactions[0].ID != "p1" {
			t.Fatalf("expected only the pending entry, got %+v", view.Transactions)
		}
	})

	t.Run("partial patch fails", func(t *testing.T) {
		svc, store, overlay, _ := newTestService(t)

		balance := int64(300)
		overlay.EXPECT().
			WalletPatch(mock.Anything, "v1").
			Return(&domain.WalletPatch{Balance: &balance}, nil)
		store.EXPECT().
			GetWallet(mock.Anything, "v1").
			Return(nil, port.ErrStoreUnavailable)

		_, err := svc.GetWallet(context.Background(), "v1")
		if !errors.Is(err, port.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("absent patch fails", func(t *testing.T) {
		svc, store, overlay, _ := newTestService(t)

		overlay.EXPECT().
			WalletPatch(mock.Anything, "v1").
			Return(nil, nil)
		store.EXPECT().
			GetWallet(mock.Anything, "v1").
			Return(nil, port.ErrStoreUnavailable)

		_, err := svc.GetWallet(context.Background(), "v1")
		if !errors.Is(err, port.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

// TestGetWallet ensures the patched balance wins and pending ledger
// entries come first, newest on top.
func TestGetWallet(t *testing.T) {
	svc, store, overlay, _ := newTestService(t)

	balance := int64(300)
	spend := int64(700)
	overlay.EXPECT().
		WalletPatch(mock.Anything, "v1").
		Return(&domain.WalletPatch{Balance: &balance, TotalSpend: &spend}, nil)
	store.EXPECT().
		GetWallet(mock.Anything, "v1").
		Return(&domain.Wallet{VendorID: "v1", Balance: 1000}, nil)
	store.EXPECT().
		ListTransactions(mock.Anything, "v1").
		Return([]domain.Transaction{{ID: "t1", Status: domain.TxStatusCompleted}}, nil)
	overlay.EXPECT().
		PendingTransactions(mock.Anything, "v1").
		Return([]domain.Transaction{{ID: "p1", Status: domain.TxStatusPending}, {ID: "p2", Status: domain.TxStatusPending}}, nil)

	view, err := svc.GetWallet(context.Background(), "v1")
	if err != nil {
		t.Fatalf("GetWallet error: %v", err)
	}
	if view.Wallet.Balance != 300 || view.Wallet.TotalSpend != 700 {
		t.Fatalf("unexpected merged wallet: %+v", view.Wallet)
	}
	if len(view.Transactions) != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", len(view.Transactions))
	}
	if view.Transactions[0].ID != "p2" || view.Transactions[1].ID != "p1" || view.Transactions[2].ID != "t1" {
		t.Fatalf("unexpected ledger order: %s, %s, %s",
			view.Transactions[0].ID, view.Transactions[1].ID, view.Transactions[2].ID)
	}
}
