package dataapi

import (
	"context"

	"cravio-admin/internal/models"
)

const fetchReviewsQuery = `
query FetchReviews {
  reviews(order_by: { created_at: desc }) {
    id
    rating
    comment
    status
    created_at
    user {
      name
    }
    restaurant {
      name
    }
  }
}`

const updateReviewStatusMutation = `
mutation UpdateReviewStatus($id: uuid!, $status: String!) {
  update_reviews_by_pk(pk_columns: { id: $id }, _set: { status: $status }) {
    id
    status
  }
}`

const deleteReviewMutation = `
mutation DeleteReview($id: uuid!) {
  delete_reviews_by_pk(id: $id) {
    id
  }
}`

func (a *API) FetchReviews(ctx context.Context) ([]models.Review, error) {
	var resp struct {
		Reviews []models.Review `json:"reviews"`
	}
	if err := a.gql.Do(ctx, "FetchReviews", fetchReviewsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

func (a *API) UpdateReviewStatus(ctx context.Context, id string, status models.ReviewStatus) error {
	return a.gql.Do(ctx, "UpdateReviewStatus", updateReviewStatusMutation,
		map[string]interface{}{"id": id, "status": string(status)}, nil)
}

func (a *API) DeleteReview(ctx context.Context, id string) error {
	return a.gql.Do(ctx, "DeleteReview", deleteReviewMutation,
		map[string]interface{}{"id": id}, nil)
}
