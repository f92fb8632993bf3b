package seeder

import (
	"testing"

	"uevent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNews(t *testing.T) {
	s := newTestSeeder(42)
	companies := testCompanies(t, s)

	news := s.buildNews(companies)
	require.NotEmpty(t, news)

	companyByID := map[string]*models.Company{}
	for i := range companies {
		companyByID[companies[i].ID] = &companies[i]
	}

	perCompany := map[string]int{}
	for _, n := range news {
		company, ok := companyByID[n.CompanyID]
		require.True(t, ok, "news references unknown company")

		assert.NotEmpty(t, n.Title)
		assert.NotEmpty(t, n.Content)
		assert.False(t, n.CreatedAt.Before(company.CreatedAt), "news predates its company")
		assert.False(t, n.CreatedAt.After(s.now))
		perCompany[n.CompanyID]++
	}

	for _, count := range perCompany {
		assert.LessOrEqual(t, count, s.cfg.NewsPerCompany.Max)
	}
	assert.Less(t, len(perCompany), len(companies), "some companies must have no news")
}
