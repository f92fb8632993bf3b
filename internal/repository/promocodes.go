package repository

import (
	"context"
	"fmt"
	"strings"

	"uevent/internal/database"
	"uevent/internal/models"
)

type PromoCodeRepository struct {
	db *database.DB
}

func NewPromoCodeRepository(db *database.DB) *PromoCodeRepository {
	return &PromoCodeRepository{db: db}
}

// CreateMany bulk-inserts promo codes. Unlike subscriptions and reactions
// there is no duplicate skipping: a conflict here is a generator bug.
func (r *PromoCodeRepository) CreateMany(ctx context.Context, codes []models.PromoCode) error {
	for start := 0; start < len(codes); start += maxInsertRows {
		end := min(start+maxInsertRows, len(codes))
		chunk := codes[start:end]

		var sb strings.Builder
		sb.WriteString("INSERT INTO promo_codes (code, max_uses, uses, discount, stripe_id, stripe_coupon_id, company_id) VALUES ")
		args := make([]interface{}, 0, len(chunk)*7)
		for i, c := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			base := i * 7
			fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7)
			args = append(args, c.Code, c.MaxUses, c.Uses, c.Discount, c.StripeID, c.StripeCouponID, c.CompanyID)
		}

		if _, err := r.db.ExecContext(ctx, sb.String(), args...); err != nil {
			return fmt.Errorf("failed to insert promo codes: %w", err)
		}
	}
	return nil
}
