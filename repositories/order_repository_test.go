package repositories

import (
	"fmt"
	"regexp"
	"testing"

	"figure-store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsSequentialIDsAndOrderNumbers(t *testing.T) {
	repo := NewOrderRepository()
	pattern := regexp.MustCompile(`^ORD-\d+-\d{4}$`)

	for i := 1; i <= 3; i++ {
		order := repo.Create(models.Order{Status: models.OrderStatusPending})
		assert.Equal(t, i, order.ID)
		assert.Regexp(t, pattern, order.OrderNumber)
		assert.Contains(t, order.OrderNumber, fmt.Sprintf("-%04d", i))
	}

	assert.Len(t, repo.All(), 3)
}

func TestFindByUser(t *testing.T) {
	repo := NewOrderRepository()

	alice, bob := 1, 2
	repo.Create(models.Order{UserID: &alice})
	repo.Create(models.Order{UserID: nil})
	repo.Create(models.Order{UserID: &bob})
	repo.Create(models.Order{UserID: &alice})

	orders := repo.FindByUser(alice)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, alice, *o.UserID)
	}

	assert.Empty(t, repo.FindByUser(99))
}

func TestUpdateStatus(t *testing.T) {
	repo := NewOrderRepository()
	created := repo.Create(models.Order{Status: models.OrderStatusPending})

	// any recognized status can follow any other
	for _, status := range []string{
		models.OrderStatusDelivered,
		models.OrderStatusPending,
		models.OrderStatusCancelled,
		models.OrderStatusConfirmed,
	} {
		order, err := repo.UpdateStatus(created.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
	}

	_, err := repo.UpdateStatus(created.ID, "lost-in-transit")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = repo.UpdateStatus(999, models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
