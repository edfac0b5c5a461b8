package dataapi

import (
	"context"

	"cravio-admin/internal/models"
)

const fetchAllDishesQuery = `
query FetchAllDishes {
  dishes(order_by: { created_at: desc }) {
    id
    name
    price
    is_available
    restaurant {
      id
      name
    }
  }
}`

const fetchDishesByRestaurantQuery = `
query FetchDishes($restaurant_id: uuid!) {
  dishes(where: { restaurant_id: { _eq: $restaurant_id } }) {
    id
    restaurant_id
    name
    price
    image_url
    description
    category
    is_available
    discount_percentage
    prep_time
    created_at
  }
}`

const addDishMutation = `
mutation AddDish($object: dishes_insert_input!) {
  insert_dishes_one(object: $object) {
    id
    name
  }
}`

const updateDishAvailabilityMutation = `
mutation UpdateDishAvailability($id: uuid!, $is_available: Boolean!) {
  update_dishes_by_pk(pk_columns: { id: $id }, _set: { is_available: $is_available }) {
    id
  }
}`

// NewDishInput is the write shape for insert_dishes_one.
type NewDishInput struct {
	RestaurantID       string  `json:"restaurant_id"`
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	ImageURL           string  `json:"image_url,omitempty"`
	Description        string  `json:"description,omitempty"`
	Category           string  `json:"category,omitempty"`
	IsAvailable        bool    `json:"is_available"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty"`
	PrepTime           *int    `json:"prep_time,omitempty"`
}

func (a *API) FetchAllDishes(ctx context.Context) ([]models.Dish, error) {
	var resp struct {
		Dishes []models.Dish `json:"dishes"`
	}
	if err := a.gql.Do(ctx, "FetchAllDishes", fetchAllDishesQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Dishes, nil
}

func (a *API) FetchDishesByRestaurant(ctx context.Context, restaurantID string) ([]models.Dish, error) {
	var resp struct {
		Dishes []models.Dish `json:"dishes"`
	}
	err := a.gql.Do(ctx, "FetchDishes", fetchDishesByRestaurantQuery,
		map[string]interface{}{"restaurant_id": restaurantID}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Dishes, nil
}

func (a *API) AddDish(ctx context.Context, input NewDishInput) (*models.Dish, error) {
	var resp struct {
		Inserted *models.Dish `json:"insert_dishes_one"`
	}
	err := a.gql.Do(ctx, "AddDish", addDishMutation,
		map[string]interface{}{"object": input}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Inserted, nil
}

func (a *API) UpdateDishAvailability(ctx context.Context, id string, available bool) error {
	return a.gql.Do(ctx, "UpdateDishAvailability", updateDishAvailabilityMutation,
		map[string]interface{}{"id": id, "is_available": available}, nil)
}
