package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"bazaar-promo/internal/core/domain"
	"bazaar-promo/internal/core/port"
)

// dateLayout is the wire format for campaign dates. Campaigns are
// scheduled by calendar day, not instant.
const dateLayout = "2006-01-02"

// draftRequest is the wire form of a campaign draft. The same body
// serves the estimate and launch endpoints; estimate only reads the type
// and dates.
type draftRequest struct {
	VendorID     string `json:"vendor_id"`
	Type         string `json:"type"`
	Goal         string `json:"goal"`
	ListingID    string `json:"listing_id"`
	ListingTitle string `json:"listing_title"`
	ListingImage string `json:"listing_image"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	TargetScope  string `json:"target_scope"`
	City         string `json:"city"`
	Province     string `json:"province"`
}

func (req draftRequest) toDraft() (port.Draft, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return port.Draft{}, errors.New("invalid start_date, want YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return port.Draft{}, errors.New("invalid end_date, want YYYY-MM-DD")
	}
	scope := port.TargetScope(req.TargetScope)
	if scope == "" {
		scope = port.ScopeNationwide
	}
	return port.Draft{
		VendorID:     req.VendorID,
		Type:         domain.CampaignType(req.Type),
		Goal:         domain.Goal(req.Goal),
		ListingID:    req.ListingID,
		ListingTitle: req.ListingTitle,
		ListingImage: req.ListingImage,
		StartDate:    start,
		EndDate:      end,
		Scope:        scope,
		City:         req.City,
		Province:     req.Province,
	}, nil
}

type campaignResponse struct {
	ID             string `json:"id"`
	VendorID       string `json:"vendor_id"`
	ListingID      string `json:"listing_id"`
	ListingTitle   string `json:"listing_title"`
	ListingImage   string `json:"listing_image"`
	Type           string `json:"type"`
	Goal           string `json:"goal"`
	Status         string `json:"status"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	DurationDays   int    `json:"duration_days"`
	TotalCost      int64  `json:"total_cost"`
	TargetLocation string `json:"target_location"`
	Impressions    int64  `json:"impressions"`
	Clicks         int64  `json:"clicks"`
	Conversions    int64  `json:"conversions"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:             c.ID,
		VendorID:       c.VendorID,
		ListingID:      c.ListingID,
		ListingTitle:   c.ListingTitle,
		ListingImage:   c.ListingImage,
		Type:           string(c.Type),
		Goal:           string(c.Goal),
		Status:         string(c.Status),
		StartDate:      c.StartDate.Format(dateLayout),
		EndDate:        c.EndDate.Format(dateLayout),
		DurationDays:   c.DurationDays,
		TotalCost:      c.TotalCost,
		TargetLocation: c.TargetLocation,
		Impressions:    c.Impressions,
		Clicks:         c.Clicks,
		Conversions:    c.Conversions,
	}
}

type transactionResponse struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Kind        string    `json:"kind"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
}

func toTransactionResponse(t domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		CampaignID:  t.CampaignID,
		Kind:        string(t.Kind),
		Amount:      t.Amount,
		Date:        t.Date,
		Status:      t.Status,
		Description: t.Description,
	}
}

// writeJSON encodes v with the given status. Encoding failures are logged
// only; headers are already on the wire by then.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain and port errors onto HTTP statuses: validation
// problems 400, affordability 402, missing entities 404, lifecycle and
// duplicate-submission conflicts 409, unreachable store 503, anything
// else 500 without leaking the cause.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrUnknownCampaignType),
		errors.Is(err, port.ErrUnknownGoal),
		errors.Is(err, port.ErrListingNotSelected),
		errors.Is(err, port.ErrCityNotSelected),
		errors.Is(err, domain.ErrInvalidSchedule):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrListingNotFound),
		errors.Is(err, port.ErrWalletNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrIllegalTransition),
		errors.Is(err, port.ErrSubmissionInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, port.ErrStoreUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
