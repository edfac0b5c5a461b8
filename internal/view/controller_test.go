package view

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cravio-admin/internal/common/errors"
	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/models"
)

func newOrderController(t *testing.T, fetch FetchFunc[models.Order]) *Controller[models.Order] {
	t.Helper()
	return NewController("orders", fetch, orderID, logger.NewTestLogger(t))
}

func TestControllerLoad(t *testing.T) {
	fetched := []models.Order{{ID: "o1"}, {ID: "o2"}}
	c := newOrderController(t, func(ctx context.Context) ([]models.Order, error) {
		return fetched, nil
	})

	assert.False(t, c.Loaded())
	require.NoError(t, c.Load(context.Background()))
	assert.True(t, c.Loaded())
	assert.False(t, c.Loading())
	assert.NoError(t, c.LastError())
	assert.Len(t, c.Items(), 2)
}

func TestControllerLoadFailureKeepsStaleItems(t *testing.T) {
	calls := 0
	c := newOrderController(t, func(ctx context.Context) ([]models.Order, error) {
		calls++
		if calls == 1 {
			return []models.Order{{ID: "o1"}}, nil
		}
		return nil, errors.NewNetworkFailureError("data-api", context.DeadlineExceeded)
	})

	require.NoError(t, c.Load(context.Background()))
	err := c.Load(context.Background())
	require.Error(t, err)

	// The previous collection survives the failed refresh, and the error is
	// reported alongside it.
	assert.Len(t, c.Items(), 1)
	assert.True(t, c.Loaded())
	assert.True(t, errors.IsCode(c.LastError(), errors.ErrCodeNetworkFailure))
}

func TestControllerApplyPatch(t *testing.T) {
	c := newOrderController(t, func(ctx context.Context) ([]models.Order, error) {
		return []models.Order{
			{ID: "o1", Status: models.OrderPlaced},
			{ID: "o2", Status: models.OrderPlaced},
		}, nil
	})
	require.NoError(t, c.Load(context.Background()))

	ok := c.ApplyPatch("o2", func(o models.Order) models.Order {
		o.Status = models.OrderDelivered
		return o
	})
	require.True(t, ok)

	items := c.Items()
	assert.Equal(t, models.OrderPlaced, items[0].Status)
	assert.Equal(t, models.OrderDelivered, items[1].Status)
}

func TestControllerApplyPatchMiss(t *testing.T) {
	c := newOrderController(t, func(ctx context.Context) ([]models.Order, error) {
		return []models.Order{{ID: "o1"}}, nil
	})
	require.NoError(t, c.Load(context.Background()))

	ok := c.ApplyPatch("gone", func(o models.Order) models.Order { return o })
	assert.False(t, ok)
	assert.Len(t, c.Items(), 1)
}

func TestControllerRemoveAndInsert(t *testing.T) {
	c := newOrderController(t, func(ctx context.Context) ([]models.Order, error) {
		return []models.Order{{ID: "o1"}, {ID: "o2"}}, nil
	})
	require.NoError(t, c.Load(context.Background()))

	assert.True(t, c.Remove("o1"))
	assert.False(t, c.Remove("o1"))

	c.Insert(models.Order{ID: "o3"})
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "o3", items[0].ID)
}

func TestControllerViewFiltersWithoutMutating(t *testing.T) {
	c := newOrderController(t, func(ctx context.Context) ([]models.Order, error) {
		return []models.Order{
			{ID: "o1", Status: models.OrderPlaced},
			{ID: "o2", Status: models.OrderDelivered},
		}, nil
	})
	require.NoError(t, c.Load(context.Background()))

	view := c.View(EqualsPredicate("delivered", func(o models.Order) string { return string(o.Status) }))
	require.Len(t, view, 1)
	assert.Equal(t, "o2", view[0].ID)
	assert.Len(t, c.Items(), 2)
}

func TestControllerWithEntityLockSerializesPerID(t *testing.T) {
	c := newOrderController(t, func(ctx context.Context) ([]models.Order, error) {
		return nil, nil
	})

	var mu sync.Mutex
	var order []string
	var wg sync.WaitGroup
	record := func(tag string) func() error {
		return func() error {
			mu.Lock()
			order = append(order, tag)
			mu.Unlock()
			return nil
		}
	}

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.WithEntityLock("same", record("a"))
		}()
		go func() {
			defer wg.Done()
			_ = c.WithEntityLock("same", record("b"))
		}()
	}
	wg.Wait()

	assert.Len(t, order, 20)
}
