package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Wallet holds a vendor's spendable promotion balance. Amounts are in
// minor currency units. The promotion core only debits wallets; credits
// come from the payments collaborator.
type Wallet struct {
	VendorID   string
	Balance    int64
	TotalSpend int64
}

// TransactionKind labels the business reason for a ledger entry. The
// promotion core only ever writes promotion entries.
type TransactionKind string

const KindPromotion TransactionKind = "promotion"

// Transaction statuses. A pending entry exists only in the local cache
// and has not been confirmed by the authoritative store.
const (
	TxStatusCompleted = "completed"
	TxStatusPending   = "pending"
)

// Transaction is an append-only wallet ledger entry. Once written it is
// never mutated or removed. CampaignID doubles as the idempotency key for
// the charge: the store keeps it unique, so a retried submission cannot
// record the charge twice.
type Transaction struct {
	ID          string
	CampaignID  string
	VendorID    string
	Kind        TransactionKind
	Amount      int64
	Date        time.Time
	Status      string
	Description string
}

// Charge debits the campaign's total cost from the wallet and builds the
// matching ledger entry. It does not clamp or reject: affordability is
// the caller's precondition, checked before submission.
func Charge(w Wallet, c Campaign, now time.Time) (Wallet, Transaction) {
	w.Balance -= c.TotalCost
	w.TotalSpend += c.TotalCost
	tx := Transaction{
		ID:          uuid.NewString(),
		CampaignID:  c.ID,
		VendorID:    w.VendorID,
		Kind:        KindPromotion,
		Amount:      c.TotalCost,
		Date:        now,
		Status:      TxStatusCompleted,
		Description: fmt.Sprintf("Promotion %q (%s, %d days)", c.ListingTitle, c.Type, c.DurationDays),
	}
	return w, tx
}
