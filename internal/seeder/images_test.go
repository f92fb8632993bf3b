package seeder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURLShape(t *testing.T) {
	r := NewRand(7)

	for i := 0; i < 500; i++ {
		u := avatarImage.url(r, i)
		if u == nil {
			continue
		}
		if *u == brokenImageURL {
			continue
		}
		assert.True(t, strings.HasPrefix(*u, "https://picsum.photos/seed/avatar"), "got %s", *u)
		assert.True(t, strings.HasSuffix(*u, "/200/200"), "got %s", *u)
	}
}

// The three-way split (missing / broken / valid) should land near its
// configured probabilities over a realistically sized draw.
func TestImageURLDistribution(t *testing.T) {
	r := NewRand(7)

	const draws = 2000
	missing, broken, valid := 0, 0, 0
	for i := 0; i < draws; i++ {
		u := eventPosterImage.url(r, i)
		switch {
		case u == nil:
			missing++
		case *u == brokenImageURL:
			broken++
		default:
			valid++
		}
	}

	// Expected: missing 10%, broken 4.5% (0.9 * 0.05), valid 85.5%.
	assert.InDelta(t, 0.10, float64(missing)/draws, 0.03)
	assert.InDelta(t, 0.045, float64(broken)/draws, 0.02)
	assert.InDelta(t, 0.855, float64(valid)/draws, 0.04)
}

func TestImageURLIndexIsStable(t *testing.T) {
	u1 := companyLogoImage.url(NewRand(1), 17)
	u2 := companyLogoImage.url(NewRand(1), 17)

	assert.Equal(t, u1, u2)
}
