package closer_test

import (
	"context"
	"testing"
	"time"

	"github.com/boutique-bouquet/go-backend/pkg/closer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseLIFO(t *testing.T) {
	t.Parallel()

	c := closer.NewCloser(time.Second)

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		c.Add(func(ctx context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestCloseCollectsErrors(t *testing.T) {
	t.Parallel()

	c := closer.NewCloser(time.Second)
	c.Add(func(ctx context.Context) error { return assert.AnError })
	c.Add(func(ctx context.Context) error { return nil })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), assert.AnError.Error())
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	c := closer.NewCloser(time.Second)

	calls := 0
	c.Add(func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloseForcedOnCanceledContext(t *testing.T) {
	t.Parallel()

	c := closer.NewCloser(time.Second)

	forced := make(chan struct{})
	c.Add(func(ctx context.Context) error {
		close(forced)
		return nil
	})
	c.Add(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)

	select {
	case <-forced:
	case <-time.After(2 * time.Second):
		t.Fatal("remaining closer was not forced")
	}
}
