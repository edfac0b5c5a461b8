package dataapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cravio-admin/internal/common/config"
	apperrors "cravio-admin/internal/common/errors"
	"cravio-admin/internal/common/graphql"
	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/models"
)

type capturedRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// newFakeAPI spins up a stub GraphQL endpoint that answers every POST with
// the given data object and records the last request payload.
func newFakeAPI(t *testing.T, data string) (*API, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":` + data + `}`))
	}))
	t.Cleanup(srv.Close)

	client := graphql.NewClient(config.HasuraConfig{
		Endpoint:       srv.URL,
		AdminSecret:    "test-secret",
		RequestTimeout: 5,
	}, logger.NewTestLogger(t), nil)
	return New(client), captured
}

func TestFetchOrdersDecodesNestedShape(t *testing.T) {
	api, _ := newFakeAPI(t, `{"orders":[
		{"id":"o1","order_number":"1001","total_amount":450.5,"status":"placed",
		 "created_at":"2024-05-01T09:00:00Z",
		 "user":{"name":"Asha"},
		 "order_items":[
		   {"quantity":2,"price":150,"dish":{"name":"Pizza","restaurant":{"id":"r1","name":"Spice Villa"}}},
		   {"quantity":1,"price":150.5,"dish":{"name":"Pasta","restaurant":{"id":"r1","name":"Spice Villa"}}}
		 ]}
	]}`)

	orders, err := api.FetchOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "1001", o.OrderNumber)
	assert.Equal(t, models.OrderPlaced, o.Status)
	assert.Equal(t, "Asha", o.UserName())
	assert.Equal(t, "Spice Villa → Pizza, Pasta", o.RestaurantDishSummary())
}

func TestUpdateOrderStatusSendsVariables(t *testing.T) {
	api, captured := newFakeAPI(t, `{"update_orders_by_pk":{"id":"o1","status":"delivered"}}`)

	err := api.UpdateOrderStatus(context.Background(), "o1", models.OrderDelivered)
	require.NoError(t, err)
	assert.Contains(t, captured.Query, "update_orders_by_pk")
	assert.Equal(t, "o1", captured.Variables["id"])
	assert.Equal(t, "delivered", captured.Variables["status"])
}

func TestAddDeliveryAgentReturnsInserted(t *testing.T) {
	api, captured := newFakeAPI(t, `{"insert_delivery_boys_one":
		{"id":"a9","name":"Ravi","phone":"9999","status":"active"}}`)

	agent, err := api.AddDeliveryAgent(context.Background(), NewDeliveryAgentInput{
		Name: "Ravi", Phone: "9999", Status: "active",
	})
	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, "a9", agent.ID)
	assert.Equal(t, models.AgentActive, agent.Status)

	obj, ok := captured.Variables["object"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Ravi", obj["name"])
}

func TestFetchDishesByRestaurantScopesQuery(t *testing.T) {
	api, captured := newFakeAPI(t, `{"dishes":[
		{"id":"d1","restaurant_id":"r1","name":"Pizza","price":199,"is_available":true}
	]}`)

	dishes, err := api.FetchDishesByRestaurant(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "r1", dishes[0].OwningRestaurantID())
	assert.Equal(t, "r1", captured.Variables["restaurant_id"])
}

func TestFetchSettingsEmptyCollection(t *testing.T) {
	api, _ := newFakeAPI(t, `{"admin_settings":[]}`)

	settings, err := api.FetchSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestInsertOrderItemsAffectedRows(t *testing.T) {
	api, captured := newFakeAPI(t, `{"insert_order_items":{"affected_rows":2}}`)

	n, err := api.InsertOrderItems(context.Background(), []models.NewOrderItemInput{
		{OrderID: "o1", DishID: "d1", Quantity: 2, Price: 150},
		{OrderID: "o1", DishID: "d2", Quantity: 1, Price: 90},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	objects, ok := captured.Variables["objects"].([]interface{})
	require.True(t, ok)
	assert.Len(t, objects, 2)
}

func TestGraphQLErrorSurfacesAsAPIRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors":[{"message":"field 'bogus' not found"}]}`))
	}))
	defer srv.Close()

	client := graphql.NewClient(config.HasuraConfig{Endpoint: srv.URL, RequestTimeout: 5},
		logger.NewTestLogger(t), nil)
	api := New(client)

	_, err := api.FetchUsers(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeAPIRejection))
}

func TestNetworkFailureSurfacesAsRetryable(t *testing.T) {
	client := graphql.NewClient(config.HasuraConfig{
		Endpoint:       "http://127.0.0.1:1",
		RequestTimeout: 1,
	}, logger.NewTestLogger(t), nil)
	api := New(client)

	_, err := api.FetchReviews(context.Background())
	require.Error(t, err)
	stderr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNetworkFailure, stderr.Code)
	assert.True(t, stderr.Retryable)
}
