package seeder

import "fmt"

// brokenImageURL is an intentionally unreachable URL so that clients get a
// realistic share of dead media references to handle.
const brokenImageURL = "https://invalid-image-url.com/broken.jpg"

// invalidImageProb is the share of present images that point at the broken
// URL, uniform across media kinds.
const invalidImageProb = 0.05

// imageKind fixes the missing-probability and dimensions for one media slot.
// The mix of null / broken / valid references is relied on by client tests,
// so the per-kind table must not drift.
type imageKind struct {
	name        string
	missingProb float64
	width       int
	height      int
}

var (
	avatarImage       = imageKind{"avatar", 0.05, 200, 200}
	eventPosterImage  = imageKind{"event", 0.10, 800, 600}
	companyLogoImage  = imageKind{"logo", 0.10, 400, 400}
	companyCoverImage = imageKind{"cover", 0.10, 1200, 400}
	newsImage         = imageKind{"news", 0.10, 800, 450}
)

// url draws the three-way outcome for one media slot: nil (missing), the
// broken placeholder, or a deterministic index-seeded placeholder image.
func (k imageKind) url(r *Rand, index int) *string {
	if r.Chance(k.missingProb) {
		return nil
	}
	if r.Chance(invalidImageProb) {
		s := brokenImageURL
		return &s
	}
	s := fmt.Sprintf("https://picsum.photos/seed/%s%d/%d/%d", k.name, index, k.width, k.height)
	return &s
}
