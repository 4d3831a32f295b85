package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bazaar-promo/internal/core/port"
)

type launchResponse struct {
	Campaign    campaignResponse    `json:"campaign"`
	Transaction transactionResponse `json:"transaction"`
	Balance     int64               `json:"balance"`
	Confirmed   bool                `json:"confirmed"`
}

type actionResponse struct {
	Campaign  campaignResponse `json:"campaign"`
	Confirmed bool             `json:"confirmed"`
}

type estimateResponse struct {
	DurationDays int   `json:"duration_days"`
	TotalCost    int64 `json:"total_cost"`
}

// handleEstimate returns the live cost quote for a draft's type and date
// range. Parsing errors produce HTTP 400; the calculation itself cannot
// fail.
func (h *Handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	draft, err := req.toDraft()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	quote := h.svc.EstimateCost(draft)
	h.writeJSON(w, http.StatusOK, estimateResponse{DurationDays: quote.DurationDays, TotalCost: quote.TotalCost})
}

// handleLaunchCampaign submits a completed wizard draft. A confirmed
// launch returns HTTP 201; a launch recorded only in the local cache
// returns HTTP 202 with confirmed=false.
func (h *Handler) handleLaunchCampaign(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	draft, err := req.toDraft()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := h.svc.LaunchCampaign(r.Context(), draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	status := http.StatusCreated
	if !res.Confirmed {
		status = http.StatusAccepted
	}
	h.writeJSON(w, status, launchResponse{
		Campaign:    toCampaignResponse(res.Campaign),
		Transaction: toTransactionResponse(res.Transaction),
		Balance:     res.Wallet.Balance,
		Confirmed:   res.Confirmed,
	})
}

// handleListCampaigns returns the vendor's campaigns merged with the
// local overlay. The vendor is identified by the `vendor` query param.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor")
	if vendorID == "" {
		http.Error(w, "missing vendor", http.StatusBadRequest)
		return
	}
	campaigns, err := h.svc.ListCampaigns(r.Context(), vendorID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.svc.PauseCampaign)
}

func (h *Handler) handleResumeCampaign(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.svc.ResumeCampaign)
}

func (h *Handler) handleArchiveCampaign(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.svc.ArchiveCampaign)
}

// Moderation endpoints. Authentication is handled upstream by the
// gateway; these routes only run the transition.
func (h *Handler) handleApproveCampaign(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.svc.ApproveCampaign)
}

func (h *Handler) handleRejectCampaign(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.svc.RejectCampaign)
}

// handleTransition runs one of the post-creation lifecycle actions. A
// confirmed transition returns HTTP 200; an overlay-recorded one returns
// HTTP 202 with confirmed=false.
func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id string) (*port.ActionResult, error)) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing campaign id", http.StatusBadRequest)
		return
	}
	res, err := action(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	status := http.StatusOK
	if !res.Confirmed {
		status = http.StatusAccepted
	}
	h.writeJSON(w, status, actionResponse{Campaign: toCampaignResponse(res.Campaign), Confirmed: res.Confirmed})
}
