package restaurants

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
	restaurants []models.Restaurant
	hygiene     []models.Restaurant
	added       *dataapi.NewRestaurantInput
	updated     map[string]models.RestaurantStatus
	updateErr   error
	fetchCalls  int
}

func (f *fakeAPI) FetchRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	f.fetchCalls++
	return f.restaurants, nil
}

func (f *fakeAPI) FetchHygieneRatings(ctx context.Context) ([]models.Restaurant, error) {
	return f.hygiene, nil
}

func (f *fakeAPI) AddRestaurant(ctx context.Context, input dataapi.NewRestaurantInput) (*models.Restaurant, error) {
	f.added = &input
	return &models.Restaurant{ID: "r-new", Name: input.Name}, nil
}

func (f *fakeAPI) UpdateRestaurant(ctx context.Context, id string, set map[string]interface{}) (*models.Restaurant, error) {
	for _, r := range f.restaurants {
		if r.ID == id {
			if name, ok := set["name"].(string); ok {
				r.Name = name
			}
			if phone, ok := set["phone"].(string); ok {
				r.Phone = phone
			}
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeAPI) UpdateRestaurantStatus(ctx context.Context, id string, status models.RestaurantStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]models.RestaurantStatus)
	}
	f.updated[id] = status
	return nil
}

func fixtureRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "r1", Name: "Spice Villa", Status: models.RestaurantPending, HygieneRating: 4.5},
		{ID: "r2", Name: "Burger Barn", Status: models.RestaurantApproved, HygieneRating: 3.8},
	}
}

func TestListCriteria(t *testing.T) {
	api := &fakeAPI{restaurants: fixtureRestaurants()}
	page := NewPage(api, logger.NewTestLogger(t))

	got, err := page.List(context.Background(), Criteria{Search: "SPICE"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)

	got, err = page.List(context.Background(), Criteria{Status: "approved"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].ID)

	// "all" is the inactive default for the status dropdown.
	got, err = page.List(context.Background(), Criteria{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCreateDefaultsToPendingAndRefetches(t *testing.T) {
	api := &fakeAPI{restaurants: fixtureRestaurants()}
	page := NewPage(api, logger.NewTestLogger(t))

	payload := map[string]interface{}{"name": "Dosa Den"}
	created, err := page.Create(context.Background(), payload,
		dataapi.NewRestaurantInput{Name: "Dosa Den"})
	require.NoError(t, err)
	assert.Equal(t, "r-new", created.ID)
	require.NotNil(t, api.added)
	assert.Equal(t, "pending", api.added.Status)
	assert.Equal(t, 1, api.fetchCalls)
}

func TestCreateValidation(t *testing.T) {
	api := &fakeAPI{restaurants: fixtureRestaurants()}
	page := NewPage(api, logger.NewTestLogger(t))

	_, err := page.Create(context.Background(),
		map[string]interface{}{"status": "open"}, dataapi.NewRestaurantInput{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidationFailed))
	assert.Nil(t, api.added)
}

func TestSetStatusPatchesAfterConfirm(t *testing.T) {
	api := &fakeAPI{restaurants: fixtureRestaurants()}
	page := NewPage(api, logger.NewTestLogger(t))
	_, err := page.List(context.Background(), Criteria{})
	require.NoError(t, err)

	restaurant, err := page.SetStatus(context.Background(), "r1", models.RestaurantApproved)
	require.NoError(t, err)
	assert.Equal(t, models.RestaurantApproved, restaurant.Status)
	assert.Equal(t, 4.5, restaurant.HygieneRating)

	_, err = page.SetStatus(context.Background(), "r1", models.RestaurantStatus("closed"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidationFailed))
}

func TestUpdateSwapsReturnedRow(t *testing.T) {
	api := &fakeAPI{restaurants: fixtureRestaurants()}
	page := NewPage(api, logger.NewTestLogger(t))
	_, err := page.List(context.Background(), Criteria{})
	require.NoError(t, err)

	updated, err := page.Update(context.Background(), "r1",
		map[string]interface{}{"name": "Spice Villa Deluxe"})
	require.NoError(t, err)
	assert.Equal(t, "Spice Villa Deluxe", updated.Name)

	for _, r := range page.Items() {
		if r.ID == "r1" {
			assert.Equal(t, "Spice Villa Deluxe", r.Name)
		}
	}

	// Status changes go through the transition flow, not the field editor.
	_, err = page.Update(context.Background(), "r1",
		map[string]interface{}{"status": "approved"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidationFailed))

	_, err = page.Update(context.Background(), "missing",
		map[string]interface{}{"name": "Ghost Kitchen"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeResourceNotFound))
}

func TestSetStatusFailureLeavesState(t *testing.T) {
	api := &fakeAPI{restaurants: fixtureRestaurants()}
	api.updateErr = apperrors.NewNetworkFailureError("data-api", context.DeadlineExceeded)
	page := NewPage(api, logger.NewTestLogger(t))
	_, err := page.List(context.Background(), Criteria{})
	require.NoError(t, err)

	_, err = page.SetStatus(context.Background(), "r1", models.RestaurantApproved)
	require.Error(t, err)
	for _, r := range page.Items() {
		if r.ID == "r1" {
			assert.Equal(t, models.RestaurantPending, r.Status)
		}
	}
}
