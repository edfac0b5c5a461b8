package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/dataapi"
	"cravio-admin/internal/models"
	"cravio-admin/internal/pages/delivery"
	"cravio-admin/internal/pages/orders"
	"cravio-admin/internal/pages/restaurants"
	"cravio-admin/internal/pages/users"
)

type fakeAPI struct {
	orders      []models.Order
	users       []models.User
	restaurants []models.Restaurant
	agents      []models.DeliveryAgent
}

func (f *fakeAPI) FetchOrders(ctx context.Context) ([]models.Order, error) { return f.orders, nil }
func (f *fakeAPI) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return nil
}
func (f *fakeAPI) InsertOrderItems(ctx context.Context, items []models.NewOrderItemInput) (int, error) {
	return len(items), nil
}
func (f *fakeAPI) FetchUsers(ctx context.Context) ([]models.User, error) { return f.users, nil }
func (f *fakeAPI) FetchRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return f.restaurants, nil
}
func (f *fakeAPI) FetchHygieneRatings(ctx context.Context) ([]models.Restaurant, error) {
	return f.restaurants, nil
}
func (f *fakeAPI) AddRestaurant(ctx context.Context, input dataapi.NewRestaurantInput) (*models.Restaurant, error) {
	return nil, nil
}
func (f *fakeAPI) UpdateRestaurant(ctx context.Context, id string, set map[string]interface{}) (*models.Restaurant, error) {
	return nil, nil
}
func (f *fakeAPI) UpdateRestaurantStatus(ctx context.Context, id string, status models.RestaurantStatus) error {
	return nil
}
func (f *fakeAPI) FetchDeliveryAgents(ctx context.Context) ([]models.DeliveryAgent, error) {
	return f.agents, nil
}
func (f *fakeAPI) AddDeliveryAgent(ctx context.Context, input dataapi.NewDeliveryAgentInput) (*models.DeliveryAgent, error) {
	return nil, nil
}
func (f *fakeAPI) UpdateDeliveryStatus(ctx context.Context, id string, status models.AgentStatus) error {
	return nil
}
func (f *fakeAPI) DeleteDeliveryAgent(ctx context.Context, id string) error { return nil }

func TestSummary(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2024-05-02T15:00:00Z")
	day1 := now.AddDate(0, 0, -1)
	api := &fakeAPI{
		orders: []models.Order{
			{ID: "o1", TotalAmount: 150, Status: models.OrderPlaced, CreatedAt: &now},
			{ID: "o2", TotalAmount: 350, Status: models.OrderDelivered, CreatedAt: &now},
			{ID: "o3", TotalAmount: 999, Status: models.OrderPlaced, CreatedAt: &day1},
		},
		users:       []models.User{{ID: "u1"}, {ID: "u2"}},
		restaurants: []models.Restaurant{{ID: "r1"}},
		agents:      []models.DeliveryAgent{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}},
	}

	log := logger.NewTestLogger(t)
	page := NewPage(
		orders.NewPage(api, log),
		users.NewPage(api, log),
		restaurants.NewPage(api, log),
		delivery.NewPage(api, log),
		log,
	)

	s, err := page.Load(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 2, s.UserCount)
	assert.Equal(t, 1, s.RestaurantCount)
	assert.Equal(t, 3, s.DeliveryCount)
	assert.Equal(t, 2, s.TodayOrders)
	assert.Equal(t, 500.0, s.TodayRevenue)
	require.Len(t, s.OrdersPerDay, 2)
	assert.Len(t, s.PendingOrders, 2)
	require.Len(t, s.RecentOrders, 3)
	assert.NotEqual(t, "o3", s.RecentOrders[0].ID)
}
