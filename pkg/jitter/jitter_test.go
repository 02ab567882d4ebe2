package jitter_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/boutique-bouquet/go-backend/pkg/jitter"
	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	t.Parallel()

	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		got := jitter.Duration(base, jitter.DefaultJitter)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, base+base/2)
	}
}

func TestDurationWithSeed(t *testing.T) {
	t.Parallel()

	base := time.Second
	a := jitter.DurationWithSeed(base, 0.5, rand.New(rand.NewSource(42)))
	b := jitter.DurationWithSeed(base, 0.5, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	base := time.Second
	max := 10 * time.Second

	// Без джиттера рост строго удваивается до потолка
	assert.Equal(t, base, jitter.ExponentialBackoff(base, max, 0, 0))
	assert.Equal(t, 2*base, jitter.ExponentialBackoff(base, max, 1, 0))
	assert.Equal(t, 8*base, jitter.ExponentialBackoff(base, max, 3, 0))
	assert.Equal(t, max, jitter.ExponentialBackoff(base, max, 10, 0))

	got := jitter.ExponentialBackoff(base, max, 2, jitter.DefaultJitter)
	assert.GreaterOrEqual(t, got, 4*base)
	assert.LessOrEqual(t, got, 6*base)
}
