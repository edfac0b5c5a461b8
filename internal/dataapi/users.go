package dataapi

import (
	"context"

	"cravio-admin/internal/models"
)

const fetchUsersQuery = `
query FetchUsers {
  users {
    id
    name
    email
    phone
    role
    is_active
    created_at
    updated_at
  }
}`

func (a *API) FetchUsers(ctx context.Context) ([]models.User, error) {
	var resp struct {
		Users []models.User `json:"users"`
	}
	if err := a.gql.Do(ctx, "FetchUsers", fetchUsersQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}
