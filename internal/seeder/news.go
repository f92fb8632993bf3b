package seeder

import (
	"context"
	"time"

	"uevent/internal/models"
)

// newsSkipProb leaves ~20% of companies without announcements.
const newsSkipProb = 0.2

func (s *Seeder) buildNews(companies []models.Company) []models.CompanyNews {
	var news []models.CompanyNews
	newsIndex := 0
	for i := range companies {
		if s.rng.Chance(newsSkipProb) {
			continue
		}
		count := s.rng.IntBetween(s.cfg.NewsPerCompany.Min, s.cfg.NewsPerCompany.Max)
		for j := 0; j < count; j++ {
			news = append(news, models.CompanyNews{
				Title:     s.rng.catchphrase(),
				Content:   s.rng.paragraphs(s.rng.IntBetween(2, 5)),
				ImageURL:  newsImage.url(s.rng, newsIndex),
				CompanyID: companies[i].ID,
				CreatedAt: s.rng.DateBetween(companies[i].CreatedAt, s.now),
			})
			newsIndex++
		}
	}
	return news
}

func (s *Seeder) seedNews(ctx context.Context, companies []models.Company) ([]models.CompanyNews, error) {
	start := time.Now()
	s.log.Info("Creating company news...")

	news := s.buildNews(companies)

	if s.dryRun {
		assignFakeIDs(news, func(n *models.CompanyNews, id string) { n.ID = id })
	} else if err := createInBatches(ctx, news, newsBatchSize, s.repos.News.Create); err != nil {
		return nil, err
	}

	s.log.Info("Created company news", "count", len(news), "duration", time.Since(start).Round(time.Millisecond))
	return news, nil
}
