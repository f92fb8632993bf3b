package seeder

import (
	"context"
	"time"

	"uevent/internal/models"

	"github.com/google/uuid"
)

// coordJitter keeps generated coordinates within roughly 1-2 km of the city
// center while avoiding exact collisions when cities are reused.
const coordJitter = 0.01

// buildLocations draws count samples from the city catalog with independent
// jitter on each axis.
func (s *Seeder) buildLocations(count int) []models.Location {
	locations := make([]models.Location, count)
	for i := range locations {
		c := PickAny(s.rng, majorCities)
		locations[i] = models.Location{
			Address:   s.rng.streetAddress(c),
			Latitude:  c.Lat + (s.rng.Float64()-0.5)*2*coordJitter,
			Longitude: c.Lng + (s.rng.Float64()-0.5)*2*coordJitter,
		}
	}
	return locations
}

// seedLocations generates and persists count locations in one transaction,
// returning them with identifiers assigned.
func (s *Seeder) seedLocations(ctx context.Context, count int) ([]models.Location, error) {
	start := time.Now()

	if count > len(majorCities) {
		s.log.Warn("Location count exceeds city catalog, cities will be reused with different offsets",
			"count", count, "cities", len(majorCities))
	}

	locations := s.buildLocations(count)

	if s.dryRun {
		assignFakeIDs(locations, func(l *models.Location, id string) { l.ID = id })
	} else if err := s.repos.Locations.CreateAll(ctx, locations); err != nil {
		return nil, err
	}

	s.log.Info("Created locations", "count", len(locations), "duration", time.Since(start).Round(time.Millisecond))
	return locations, nil
}

// locationPool hands out each persisted location at most once. The slice is
// shuffled up front so sequential draws are equivalent to drawing uniformly
// from the unused remainder.
type locationPool struct {
	items []models.Location
	next  int
}

func newLocationPool(r *Rand, items []models.Location) *locationPool {
	shuffled := make([]models.Location, len(items))
	copy(shuffled, items)
	r.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return &locationPool{items: shuffled}
}

// Next returns the next unused location, or ok=false once the pool is
// exhausted. The caller decides whether exhaustion degrades or aborts.
func (p *locationPool) Next() (*models.Location, bool) {
	if p.next >= len(p.items) {
		return nil, false
	}
	loc := &p.items[p.next]
	p.next++
	return loc, true
}

// assignFakeIDs stands in for the database during dry runs so later stages
// still have foreign keys to reference.
func assignFakeIDs[T any](items []T, set func(*T, string)) {
	for i := range items {
		set(&items[i], uuid.NewString())
	}
}
