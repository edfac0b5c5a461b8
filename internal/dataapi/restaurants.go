package dataapi

import (
	"context"

	"cravio-admin/internal/models"
)

const fetchRestaurantsQuery = `
query FetchRestaurants {
  restaurants(order_by: { created_at: desc }) {
    id
    name
    email
    phone
    address
    status
    commission_percentage
    open_time
    close_time
    image_url
    hygiene_rating
    created_at
  }
}`

const fetchHygieneRatingsQuery = `
query FetchHygieneRatings {
  restaurants(order_by: { hygiene_rating: desc }) {
    id
    name
    hygiene_rating
    updated_at
  }
}`

const addRestaurantMutation = `
mutation AddRestaurant($object: restaurants_insert_input!) {
  insert_restaurants_one(object: $object) {
    id
    name
  }
}`

const updateRestaurantMutation = `
mutation UpdateRestaurant($id: uuid!, $set: restaurants_set_input!) {
  update_restaurants_by_pk(pk_columns: { id: $id }, _set: $set) {
    id
    name
    email
    phone
    address
    status
    commission_percentage
    open_time
    close_time
    image_url
    hygiene_rating
    created_at
  }
}`

const updateRestaurantStatusMutation = `
mutation UpdateRestaurantStatus($id: uuid!, $status: String!) {
  update_restaurants_by_pk(pk_columns: { id: $id }, _set: { status: $status }) {
    id
    status
  }
}`

// NewRestaurantInput is the write shape for insert_restaurants_one.
type NewRestaurantInput struct {
	Name                 string   `json:"name"`
	Email                string   `json:"email,omitempty"`
	Phone                string   `json:"phone,omitempty"`
	Address              string   `json:"address,omitempty"`
	Status               string   `json:"status,omitempty"`
	CommissionPercentage *float64 `json:"commission_percentage,omitempty"`
	OpenTime             string   `json:"open_time,omitempty"`
	CloseTime            string   `json:"close_time,omitempty"`
	ImageURL             string   `json:"image_url,omitempty"`
}

func (a *API) FetchRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var resp struct {
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	if err := a.gql.Do(ctx, "FetchRestaurants", fetchRestaurantsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Restaurants, nil
}

// FetchHygieneRatings returns restaurants ordered by hygiene rating descending.
func (a *API) FetchHygieneRatings(ctx context.Context) ([]models.Restaurant, error) {
	var resp struct {
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	if err := a.gql.Do(ctx, "FetchHygieneRatings", fetchHygieneRatingsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Restaurants, nil
}

func (a *API) AddRestaurant(ctx context.Context, input NewRestaurantInput) (*models.Restaurant, error) {
	var resp struct {
		Inserted *models.Restaurant `json:"insert_restaurants_one"`
	}
	err := a.gql.Do(ctx, "AddRestaurant", addRestaurantMutation,
		map[string]interface{}{"object": input}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Inserted, nil
}

// UpdateRestaurant applies a partial field update and returns the stored row.
func (a *API) UpdateRestaurant(ctx context.Context, id string, set map[string]interface{}) (*models.Restaurant, error) {
	var resp struct {
		Updated *models.Restaurant `json:"update_restaurants_by_pk"`
	}
	err := a.gql.Do(ctx, "UpdateRestaurant", updateRestaurantMutation,
		map[string]interface{}{"id": id, "set": set}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Updated, nil
}

func (a *API) UpdateRestaurantStatus(ctx context.Context, id string, status models.RestaurantStatus) error {
	return a.gql.Do(ctx, "UpdateRestaurantStatus", updateRestaurantStatusMutation,
		map[string]interface{}{"id": id, "status": string(status)}, nil)
}
