package dataapi

import (
	"context"

	"cravio-admin/internal/models"
)

const fetchOrdersQuery = `
query FetchOrders {
  orders(order_by: { created_at: desc }) {
    id
    order_number
    total_amount
    status
    payment_method
    created_at
    user {
      name
    }
    order_items {
      quantity
      price
      dish {
        name
        restaurant {
          id
          name
        }
      }
    }
  }
}`

const updateOrderStatusMutation = `
mutation UpdateOrderStatus($id: uuid!, $status: String!) {
  update_orders_by_pk(pk_columns: { id: $id }, _set: { status: $status }) {
    id
    status
  }
}`

const insertOrderItemsMutation = `
mutation InsertOrderItems($objects: [order_items_insert_input!]!) {
  insert_order_items(objects: $objects) {
    affected_rows
  }
}`

func (a *API) FetchOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	if err := a.gql.Do(ctx, "FetchOrders", fetchOrdersQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (a *API) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return a.gql.Do(ctx, "UpdateOrderStatus", updateOrderStatusMutation,
		map[string]interface{}{"id": id, "status": string(status)}, nil)
}

// InsertOrderItems attaches line items to an existing order and returns the
// number of rows the API reports as inserted.
func (a *API) InsertOrderItems(ctx context.Context, items []models.NewOrderItemInput) (int, error) {
	var resp struct {
		Result struct {
			AffectedRows int `json:"affected_rows"`
		} `json:"insert_order_items"`
	}
	err := a.gql.Do(ctx, "InsertOrderItems", insertOrderItemsMutation,
		map[string]interface{}{"objects": items}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.Result.AffectedRows, nil
}
