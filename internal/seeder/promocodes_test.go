package seeder

import (
	"strings"
	"testing"

	"uevent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromoCodes(t *testing.T) {
	s := newTestSeeder(42)
	companies := testCompanies(t, s)

	codes := s.buildPromoCodes(companies)
	require.NotEmpty(t, codes)

	eligible := map[string]bool{}
	for _, c := range companies {
		if c.IsVerified && c.StripeAccountID != nil {
			eligible[c.ID] = true
		}
	}

	for _, code := range codes {
		assert.True(t, eligible[code.CompanyID], "promo code issued by an ineligible company")

		assert.Len(t, code.Code, 8)
		assert.Equal(t, strings.ToUpper(code.Code), code.Code)

		assert.GreaterOrEqual(t, code.MaxUses, 10)
		assert.LessOrEqual(t, code.MaxUses, 100)
		assert.GreaterOrEqual(t, code.Uses, 0)
		assert.LessOrEqual(t, code.Uses, code.MaxUses)

		assert.GreaterOrEqual(t, code.Discount, 5)
		assert.LessOrEqual(t, code.Discount, 50)

		assert.True(t, strings.HasPrefix(code.StripeID, "promo_"))
		assert.True(t, strings.HasPrefix(code.StripeCouponID, "coupon_"))
	}
}

func TestBuildPromoCodesSkipsUnverified(t *testing.T) {
	s := newTestSeeder(42)

	companies := []models.Company{
		{ID: "c1", IsVerified: false},
		{ID: "c2", IsVerified: true}, // verified but no billing account
	}
	assert.Empty(t, s.buildPromoCodes(companies))
}
