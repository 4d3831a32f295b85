package httpadapter

import (
	"net/http"

	"bazaar-promo/internal/core/domain"
)

type walletResponse struct {
	Balance      int64                 `json:"balance"`
	TotalSpend   int64                 `json:"total_spend"`
	Transactions []transactionResponse `json:"transactions"`
}

type listingResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Price    int64  `json:"price"`
	Status   string `json:"status"`
	Promoted bool   `json:"promoted"`
}

// handleGetWallet returns the vendor's wallet merged with the local
// overlay, including locally pending ledger entries. The vendor is
// identified by the `vendor` query param.
func (h *Handler) handleGetWallet(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor")
	if vendorID == "" {
		http.Error(w, "missing vendor", http.StatusBadRequest)
		return
	}
	view, err := h.svc.GetWallet(r.Context(), vendorID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	txs := make([]transactionResponse, 0, len(view.Transactions))
	for _, t := range view.Transactions {
		txs = append(txs, toTransactionResponse(t))
	}
	h.writeJSON(w, http.StatusOK, walletResponse{
		Balance:      view.Wallet.Balance,
		TotalSpend:   view.Wallet.TotalSpend,
		Transactions: txs,
	})
}

// handleListListings returns the vendor's promotable listings for the
// wizard's listing step, with overlay-merged promoted flags.
func (h *Handler) handleListListings(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor")
	if vendorID == "" {
		http.Error(w, "missing vendor", http.StatusBadRequest)
		return
	}
	listings, err := h.svc.ListPromotableListings(r.Context(), vendorID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func toListingResponse(l domain.Listing) listingResponse {
	return listingResponse{
		ID:       l.ID,
		Title:    l.Title,
		ImageURL: l.ImageURL,
		Price:    l.Price,
		Status:   l.Status,
		Promoted: l.Promoted,
	}
}
