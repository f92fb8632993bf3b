package seeder

import (
	"context"
	"strings"
	"time"

	"uevent/internal/models"
)

// buildPromoCodes issues codes only for companies that can actually redeem
// them, verified ones with a billing account.
func (s *Seeder) buildPromoCodes(companies []models.Company) []models.PromoCode {
	var codes []models.PromoCode
	for i := range companies {
		if !companies[i].IsVerified || companies[i].StripeAccountID == nil {
			continue
		}
		count := s.rng.IntBetween(s.cfg.PromoCodesPerCompany.Min, s.cfg.PromoCodesPerCompany.Max)
		for j := 0; j < count; j++ {
			maxUses := s.rng.IntBetween(10, 100)
			codes = append(codes, models.PromoCode{
				Code:           strings.ToUpper(s.rng.Alphanumeric(8)),
				MaxUses:        maxUses,
				Uses:           s.rng.IntBetween(0, maxUses),
				Discount:       s.rng.IntBetween(5, 50),
				StripeID:       "promo_" + s.rng.Alphanumeric(14),
				StripeCouponID: "coupon_" + s.rng.Alphanumeric(14),
				CompanyID:      companies[i].ID,
			})
		}
	}
	return codes
}

func (s *Seeder) seedPromoCodes(ctx context.Context, companies []models.Company) (int, error) {
	start := time.Now()
	s.log.Info("Creating promo codes...")

	codes := s.buildPromoCodes(companies)

	if !s.dryRun {
		if err := s.repos.PromoCodes.CreateMany(ctx, codes); err != nil {
			return 0, err
		}
	}

	s.log.Info("Created promo codes", "count", len(codes), "duration", time.Since(start).Round(time.Millisecond))
	return len(codes), nil
}
