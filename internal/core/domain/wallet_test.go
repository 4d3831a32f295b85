package domain

import (
	"testing"
	"time"
)

func TestCharge(t *testing.T) {
	wallet := Wallet{VendorID: "v1", Balance: 1000, TotalSpend: 200}
	campaign := Campaign{
		ID:           "c1",
		ListingTitle: "Handwoven Rug",
		Type:         TypeFeaturedListing,
		DurationDays: 7,
		TotalCost:    700,
	}
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	got, tx := Charge(wallet, campaign, now)
	if got.Balance != 300 || got.TotalSpend != 900 {
		t.Fatalf("unexpected wallet after charge: %+v", got)
	}
	if wallet.Balance != 1000 {
		t.Fatal("Charge mutated its input")
	}
	if tx.ID == "" {
		t.Fatal("ledger entry has no id")
	}
	if tx.CampaignID != "c1" || tx.VendorID != "v1" {
		t.Fatalf("ledger entry misattributed: %+v", tx)
	}
	if tx.Kind != KindPromotion || tx.Amount != 700 || tx.Status != TxStatusCompleted {
		t.Fatalf("unexpected ledger entry: %+v", tx)
	}
	if !tx.Date.Equal(now) {
		t.Fatalf("unexpected ledger date: %s", tx.Date)
	}
	if tx.Description != `Promotion "Handwoven Rug" (featured_listing, 7 days)` {
		t.Fatalf("unexpected description: %s", tx.Description)
	}
}
