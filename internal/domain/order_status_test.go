package domain_test

import (
	"testing"

	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()

	t.Run("known statuses", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
			status, ok := domain.ParseOrderStatus(s)
			assert.True(t, ok, s)
			assert.Equal(t, s, string(status))
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()

		_, ok := domain.ParseOrderStatus("refunded")
		assert.False(t, ok)

		_, ok = domain.ParseOrderStatus("")
		assert.False(t, ok)

		// Регистр имеет значение
		_, ok = domain.ParseOrderStatus("Pending")
		assert.False(t, ok)
	})
}

func TestCanTransitionTo(t *testing.T) {
	t.Parallel()

	allowed := map[domain.OrderStatus][]domain.OrderStatus{
		domain.StatusPending:    {domain.StatusProcessing, domain.StatusCancelled},
		domain.StatusProcessing: {domain.StatusShipped, domain.StatusCancelled},
		domain.StatusShipped:    {domain.StatusDelivered},
		domain.StatusDelivered:  {},
		domain.StatusCancelled:  {},
	}

	all := []domain.OrderStatus{
		domain.StatusPending,
		domain.StatusProcessing,
		domain.StatusShipped,
		domain.StatusDelivered,
		domain.StatusCancelled,
	}

	for from, targets := range allowed {
		allowedSet := make(map[domain.OrderStatus]struct{}, len(targets))
		for _, to := range targets {
			allowedSet[to] = struct{}{}
		}

		for _, to := range all {
			_, want := allowedSet[to]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.StatusDelivered.IsTerminal())
	assert.True(t, domain.StatusCancelled.IsTerminal())
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.StatusProcessing.IsTerminal())
	assert.False(t, domain.StatusShipped.IsTerminal())
}
