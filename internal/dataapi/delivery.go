package dataapi

import (
	"context"

	"cravio-admin/internal/models"
)

const fetchDeliveryAgentsQuery = `
query FetchDeliveryAgents {
  delivery_boys(order_by: { created_at: desc }) {
    id
    name
    phone
    status
    created_at
  }
}`

const addDeliveryAgentMutation = `
mutation AddDeliveryAgent($object: delivery_boys_insert_input!) {
  insert_delivery_boys_one(object: $object) {
    id
    name
    phone
    status
    created_at
  }
}`

const updateDeliveryStatusMutation = `
mutation UpdateDeliveryStatus($id: uuid!, $status: String!) {
  update_delivery_boys_by_pk(pk_columns: { id: $id }, _set: { status: $status }) {
    id
    status
  }
}`

const deleteDeliveryAgentMutation = `
mutation DeleteDeliveryAgent($id: uuid!) {
  delete_delivery_boys_by_pk(id: $id) {
    id
  }
}`

// NewDeliveryAgentInput is the write shape for insert_delivery_boys_one.
type NewDeliveryAgentInput struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

func (a *API) FetchDeliveryAgents(ctx context.Context) ([]models.DeliveryAgent, error) {
	var resp struct {
		Agents []models.DeliveryAgent `json:"delivery_boys"`
	}
	if err := a.gql.Do(ctx, "FetchDeliveryAgents", fetchDeliveryAgentsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Agents, nil
}

// AddDeliveryAgent returns the full inserted record, so callers can prepend
// it locally without a refetch.
func (a *API) AddDeliveryAgent(ctx context.Context, input NewDeliveryAgentInput) (*models.DeliveryAgent, error) {
	var resp struct {
		Inserted *models.DeliveryAgent `json:"insert_delivery_boys_one"`
	}
	err := a.gql.Do(ctx, "AddDeliveryAgent", addDeliveryAgentMutation,
		map[string]interface{}{"object": input}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Inserted, nil
}

func (a *API) UpdateDeliveryStatus(ctx context.Context, id string, status models.AgentStatus) error {
	return a.gql.Do(ctx, "UpdateDeliveryStatus", updateDeliveryStatusMutation,
		map[string]interface{}{"id": id, "status": string(status)}, nil)
}

func (a *API) DeleteDeliveryAgent(ctx context.Context, id string) error {
	return a.gql.Do(ctx, "DeleteDeliveryAgent", deleteDeliveryAgentMutation,
		map[string]interface{}{"id": id}, nil)
}
