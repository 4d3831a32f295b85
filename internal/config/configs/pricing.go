package configs

import "bazaar-promo/internal/core/domain"

// Pricing holds operator overrides for the daily campaign rates, in minor
// currency units. A zero value leaves the built-in default for that type
// in place.
type Pricing struct {
	FeaturedListingRate int64 `env:"FEATURED_LISTING_RATE" envDefault:"0"`
	BannerAdRate        int64 `env:"BANNER_AD_RATE" envDefault:"0"`
	SocialBoostRate     int64 `env:"SOCIAL_BOOST_RATE" envDefault:"0"`
}

// RateTable builds the effective rate table: the defaults with any
// configured overrides applied.
func (c Pricing) RateTable() domain.RateTable {
	rates := domain.DefaultRates()
	if c.FeaturedListingRate > 0 {
		rates[domain.TypeFeaturedListing] = c.FeaturedListingRate
	}
	if c.BannerAdRate > 0 {
		rates[domain.TypeBannerAd] = c.BannerAdRate
	}
	if c.SocialBoostRate > 0 {
		rates[domain.TypeSocialBoost] = c.SocialBoostRate
	}
	return rates
}
