package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bazaar-promo/internal/core/domain"
	"bazaar-promo/internal/core/port"
)

// PromoRepository implements port.PromoStore using pgxpool for PostgreSQL.
type PromoRepository struct {
	pool *pgxpool.Pool
}

// NewPromoRepository returns a new repository instance.
func NewPromoRepository(pool *pgxpool.Pool) *PromoRepository {
	return &PromoRepository{pool: pool}
}

const campaignColumns = `id, vendor_id, listing_id, listing_title, listing_image,
    type, goal, status, start_date, end_date, duration_days, total_cost,
    target_location, impressions, clicks, conversions, created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.VendorID,
		&c.ListingID,
		&c.ListingTitle,
		&c.ListingImage,
		&c.Type,
		&c.Goal,
		&c.Status,
		&c.StartDate,
		&c.EndDate,
		&c.DurationDays,
		&c.TotalCost,
		&c.TargetLocation,
		&c.Impressions,
		&c.Clicks,
		&c.Conversions,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// CreateCampaignAndCharge persists the campaign, debits the wallet and
// appends the ledger entry in a single serializable transaction. The
// wallet debit only touches a row whose balance covers the amount, so an
// overdraft cannot be committed even by interleaved submissions. The
// ledger insert is keyed by campaign id and ignores conflicts, which
// makes a retried submission idempotent with respect to the charge.
func (r *PromoRepository) CreateCampaignAndCharge(ctx context.Context, c domain.Campaign, wtx domain.Transaction) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return classify(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE wallets
        SET balance = balance - $1, total_spend = total_spend + $1
        WHERE vendor_id = $2 AND balance >= $1`, wtx.Amount, c.VendorID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err = tx.QueryRow(ctx, `SELECT true FROM wallets WHERE vendor_id = $1`, c.VendorID).Scan(&exists); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				err = port.ErrWalletNotFound
				return err
			}
			return classify(err)
		}
		err = port.ErrInsufficientBalance
		return err
	}

	_, err = tx.Exec(ctx, `INSERT INTO campaigns
        (id, vendor_id, listing_id, listing_title, listing_image, type, goal, status,
         start_date, end_date, duration_days, total_cost, target_location,
         impressions, clicks, conversions, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,0,0,0,now(),now())`,
		c.ID, c.VendorID, c.ListingID, c.ListingTitle, c.ListingImage, c.Type, c.Goal,
		c.Status, c.StartDate, c.EndDate, c.DurationDays, c.TotalCost, c.TargetLocation)
	if err != nil {
		return classify(err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO wallet_transactions
        (id, campaign_id, vendor_id, kind, amount, date, status, description)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (campaign_id) DO NOTHING`,
		wtx.ID, wtx.CampaignID, wtx.VendorID, wtx.Kind, wtx.Amount, wtx.Date, wtx.Status, wtx.Description)
	if err != nil {
		return classify(err)
	}
	return nil
}

// UpdateCampaignStatusAndListing applies the status transition and the
// paired listing promoted flag in one transaction, keeping the
// status/flag invariant even if one of the two rows is contended.
func (r *PromoRepository) UpdateCampaignStatusAndListing(ctx context.Context, campaignID string, status domain.Status, listingID string, promoted bool) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return classify(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, campaignID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		err = port.ErrCampaignNotFound
		return err
	}
	tag, err = tx.Exec(ctx, `UPDATE listings SET is_promoted = $1, updated_at = now() WHERE id = $2`, promoted, listingID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		err = port.ErrListingNotFound
		return err
	}
	return nil
}

// UpdateCampaignStatus applies a transition that does not grant or revoke
// exposure, so no listing row is touched.
func (r *PromoRepository) UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.Status) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, campaignID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// GetCampaign returns a campaign by id, or ErrCampaignNotFound.
func (r *PromoRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &c, nil
}

// ListCampaigns returns the vendor's campaigns, newest first.
func (r *PromoRepository) ListCampaigns(ctx context.Context, vendorID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
        WHERE vendor_id = $1 ORDER BY created_at DESC`, vendorID)
	if err != nil {
		return nil, classify(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// GetListing returns a listing by id, or ErrListingNotFound.
func (r *PromoRepository) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.pool.QueryRow(ctx, `SELECT id, vendor_id, title, image_url, price, status, is_promoted, created_at, updated_at
        FROM listings WHERE id = $1`, id).
		Scan(&l.ID, &l.VendorID, &l.Title, &l.ImageURL, &l.Price, &l.Status, &l.Promoted, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrListingNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &l, nil
}

// ListActiveListings returns the vendor's listings eligible for promotion.
func (r *PromoRepository) ListActiveListings(ctx context.Context, vendorID string) ([]domain.Listing, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, vendor_id, title, image_url, price, status, is_promoted, created_at, updated_at
        FROM listings WHERE vendor_id = $1 AND status = $2 ORDER BY created_at DESC`, vendorID, domain.ListingStatusActive)
	if err != nil {
		return nil, classify(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Listing, error) {
		var l domain.Listing
		err := row.Scan(&l.ID, &l.VendorID, &l.Title, &l.ImageURL, &l.Price, &l.Status, &l.Promoted, &l.CreatedAt, &l.UpdatedAt)
		return l, err
	})
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// GetWallet returns the vendor's wallet, or ErrWalletNotFound.
func (r *PromoRepository) GetWallet(ctx context.Context, vendorID string) (*domain.Wallet, error) {
	var w domain.Wallet
	err := r.pool.QueryRow(ctx, `SELECT vendor_id, balance, total_spend FROM wallets WHERE vendor_id = $1`, vendorID).
		Scan(&w.VendorID, &w.Balance, &w.TotalSpend)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrWalletNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &w, nil
}

// ListTransactions returns the vendor's ledger history, newest first.
func (r *PromoRepository) ListTransactions(ctx context.Context, vendorID string) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, vendor_id, kind, amount, date, status, description
        FROM wallet_transactions WHERE vendor_id = $1 ORDER BY date DESC`, vendorID)
	if err != nil {
		return nil, classify(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var t domain.Transaction
		err := row.Scan(&t.ID, &t.CampaignID, &t.VendorID, &t.Kind, &t.Amount, &t.Date, &t.Status, &t.Description)
		return t, err
	})
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}
