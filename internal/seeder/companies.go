package seeder

import (
	"context"
	"fmt"
	"time"

	"uevent/internal/models"
)

// buildCompanies assigns each company an owner from the full user pool (one
// user may own several companies) and a location that no other company
// holds. Generation stops early with a warning if locations run out.
func (s *Seeder) buildCompanies(users []models.User, pool *locationPool) []models.Company {
	companies := make([]models.Company, 0, s.cfg.Companies)
	for i := 0; i < s.cfg.Companies; i++ {
		location, ok := pool.Next()
		if !ok {
			s.log.Warn("No more available company locations, stopping company creation",
				"created", len(companies), "wanted", s.cfg.Companies)
			break
		}

		owner := PickAny(s.rng, users)
		name := s.rng.companyName()
		description := s.rng.catchphrase() + ". " + s.rng.sentence()
		website := fmt.Sprintf("https://www.%s.com", slugify(name))

		isVerified := s.rng.Float64() > 0.3
		var stripeAccountID *string
		if isVerified {
			id := "acct_" + s.rng.Alphanumeric(16)
			stripeAccountID = &id
		}

		companies = append(companies, models.Company{
			Name:            name,
			Email:           fmt.Sprintf("%s@%s", slugify(name), PickAny(s.rng, emailDomains)),
			Description:     &description,
			Website:         &website,
			Logo:            companyLogoImage.url(s.rng, i),
			CoverImage:      companyCoverImage.url(s.rng, i),
			IsVerified:      isVerified,
			StripeAccountID: stripeAccountID,
			OwnerID:         owner.ID,
			LocationID:      location.ID,
		})
	}
	return companies
}

func (s *Seeder) seedCompanies(ctx context.Context, users []models.User, counts *Counts) ([]models.Company, error) {
	start := time.Now()
	s.log.Info("Creating companies...", "count", s.cfg.Companies)

	locations, err := s.seedLocations(ctx, s.cfg.Companies)
	if err != nil {
		return nil, fmt.Errorf("company location stage failed: %w", err)
	}
	counts.Locations += len(locations)

	companies := s.buildCompanies(users, newLocationPool(s.rng, locations))

	if s.dryRun {
		assignFakeIDs(companies, func(c *models.Company, id string) { c.ID = id; c.CreatedAt = s.now })
	} else if err := createInBatches(ctx, companies, companyBatchSize, s.repos.Companies.Create); err != nil {
		return nil, err
	}

	s.log.Info("Created companies", "count", len(companies), "duration", time.Since(start).Round(time.Millisecond))
	return companies, nil
}
