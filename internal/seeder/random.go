package seeder

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyCollection is returned by PickOne when there is nothing to pick.
var ErrEmptyCollection = errors.New("cannot pick from empty collection")

// Rand wraps a seedable random source so every generator draws from one
// explicit stream. It is not safe for concurrent use; all draws happen on
// the single-threaded planning path of each stage.
type Rand struct {
	rng *rand.Rand
}

// NewRand returns a Rand seeded with the given value. The same seed
// reproduces the same generation plan.
func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniform integer in [min, max] inclusive. A degenerate
// range collapses to min.
func (r *Rand) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// Float64 returns a uniform float in [0, 1).
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// DateBetween returns a uniform instant between start and end. If start is
// after end it returns end, so callers can pass a future origin (scheduled
// events) without producing dates beyond now.
func (r *Rand) DateBetween(start, end time.Time) time.Time {
	if !start.Before(end) {
		return end
	}
	span := end.Sub(start)
	return start.Add(time.Duration(r.rng.Int63n(int64(span))))
}

// EventDate returns a uniform instant between one year ago and two years
// ahead of now.
func (r *Rand) EventDate(now time.Time) time.Time {
	return r.DateBetween(now.AddDate(-1, 0, 0), now.AddDate(2, 0, 0))
}

const alphanumerics = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Alphanumeric returns a random string of n alphanumeric characters, used
// for opaque billing identifiers and promo codes.
func (r *Rand) Alphanumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumerics[r.rng.Intn(len(alphanumerics))]
	}
	return string(b)
}

// HexColor returns a random #rrggbb color.
func (r *Rand) HexColor() string {
	const hex = "0123456789abcdef"
	b := make([]byte, 7)
	b[0] = '#'
	for i := 1; i < 7; i++ {
		b[i] = hex[r.rng.Intn(16)]
	}
	return string(b)
}

// PickOne returns a uniformly chosen element, or ErrEmptyCollection.
func PickOne[T any](r *Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyCollection
	}
	return items[r.rng.Intn(len(items))], nil
}

// PickAny is PickOne for collections statically known to be non-empty, such
// as enum value sets and the city catalog.
func PickAny[T any](r *Rand, items []T) T {
	return items[r.rng.Intn(len(items))]
}

// PickSubset returns a random subset without replacement. The subset size is
// drawn uniformly in [min, min(max, len(items))].
func PickSubset[T any](r *Rand, items []T, min, max int) []T {
	if max > len(items) {
		max = len(items)
	}
	if min > max {
		min = max
	}
	count := r.IntBetween(min, max)

	shuffled := make([]T, len(items))
	copy(shuffled, items)
	r.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}
