package dishes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "cravio-admin/internal/common/errors"
	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/dataapi"
	"cravio-admin/internal/models"
)

type fakeAPI struct {
	dishes     []models.Dish
	byID       map[string][]models.Dish
	added      *dataapi.NewDishInput
	toggled    map[string]bool
	toggleErr  error
	fetchCalls int
}

func (f *fakeAPI) FetchAllDishes(ctx context.Context) ([]models.Dish, error) {
	f.fetchCalls++
	return f.dishes, nil
}

func (f *fakeAPI) FetchDishesByRestaurant(ctx context.Context, restaurantID string) ([]models.Dish, error) {
	return f.byID[restaurantID], nil
}

func (f *fakeAPI) AddDish(ctx context.Context, input dataapi.NewDishInput) (*models.Dish, error) {
	f.added = &input
	return &models.Dish{ID: "d-new", Name: input.Name}, nil
}

func (f *fakeAPI) UpdateDishAvailability(ctx context.Context, id string, available bool) error {
	if f.toggleErr != nil {
		return f.toggleErr
	}
	if f.toggled == nil {
		f.toggled = make(map[string]bool)
	}
	f.toggled[id] = available
	return nil
}

func fixtureDishes() []models.Dish {
	return []models.Dish{
		{ID: "d1", Name: "Margherita Pizza", IsAvailable: true,
			Restaurant: &models.RestaurantRef{ID: "r1", Name: "Spice Villa"}},
		{ID: "d2", Name: "Burger", IsAvailable: false,
			Restaurant: &models.RestaurantRef{ID: "r2", Name: "Burger Barn"}},
	}
}

func TestListCriteria(t *testing.T) {
	api := &fakeAPI{dishes: fixtureDishes()}
	page := NewPage(api, logger.NewTestLogger(t))

	got, err := page.List(context.Background(), Criteria{Search: "piz"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "d1", got[0].ID)

	got, err = page.List(context.Background(), Criteria{RestaurantID: "r2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "d2", got[0].ID)

	got, err = page.List(context.Background(), Criteria{Available: "true"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "d1", got[0].ID)
}

func TestCreateValidatesAndRefetches(t *testing.T) {
	api := &fakeAPI{dishes: fixtureDishes()}
	page := NewPage(api, logger.NewTestLogger(t))

	_, err := page.Create(context.Background(),
		map[string]interface{}{"name": "Dosa"}, dataapi.NewDishInput{Name: "Dosa"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidationFailed))
	assert.Nil(t, api.added)

	payload := map[string]interface{}{"restaurant_id": "r1", "name": "Dosa", "price": 99.0}
	created, err := page.Create(context.Background(), payload,
		dataapi.NewDishInput{RestaurantID: "r1", Name: "Dosa", Price: 99})
	require.NoError(t, err)
	assert.Equal(t, "d-new", created.ID)
	assert.Equal(t, 1, api.fetchCalls)
}

func TestSetAvailabilityPatchesAfterConfirm(t *testing.T) {
	api := &fakeAPI{dishes: fixtureDishes()}
	page := NewPage(api, logger.NewTestLogger(t))
	_, err := page.List(context.Background(), Criteria{})
	require.NoError(t, err)

	dish, err := page.SetAvailability(context.Background(), "d2", true)
	require.NoError(t, err)
	assert.True(t, dish.IsAvailable)
	assert.Equal(t, map[string]bool{"d2": true}, api.toggled)
}

func TestSetAvailabilityFailureLeavesState(t *testing.T) {
	api := &fakeAPI{dishes: fixtureDishes()}
	api.toggleErr = apperrors.NewAPIRejectionError("UpdateDishAvailability", "permission denied")
	page := NewPage(api, logger.NewTestLogger(t))
	_, err := page.List(context.Background(), Criteria{})
	require.NoError(t, err)

	_, err = page.SetAvailability(context.Background(), "d2", true)
	require.Error(t, err)
	for _, d := range page.ctrl.Items() {
		if d.ID == "d2" {
			assert.False(t, d.IsAvailable)
		}
	}
}
