package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo vendors, listings and wallets for manual testing.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	titles := []string{
		"Hand-knotted wool rug",
		"Ajrak print bedsheet set",
		"Multani blue pottery vase",
		"Leather peshawari chappal",
		"Copper serving tray",
	}
	for i := 1; i <= 3; i++ {
		vendorID := fmt.Sprintf("vendor-%d", i)

		_, err := db.Exec(ctx, `INSERT INTO wallets (vendor_id, balance, total_spend)
            VALUES ($1, $2, 0) ON CONFLICT DO NOTHING`, vendorID, int64(10000))
		if err != nil {
			return err
		}

		for j, title := range titles {
			listingID := fmt.Sprintf("listing-%d-%d", i, j+1)
			imageURL := fmt.Sprintf("https://example.com/listings/%s.jpg", uuid.NewString())
			price := int64(1500 * (j + 1))
			_, err = db.Exec(ctx, `INSERT INTO listings
                (id, vendor_id, title, image_url, price, status, is_promoted, created_at, updated_at)
                VALUES ($1,$2,$3,$4,$5,'active',false,now(),now()) ON CONFLICT DO NOTHING`,
				listingID, vendorID, title, imageURL, price)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
