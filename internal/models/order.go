package models

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus values accepted by the data API. Transitions are unconstrained;
// the dashboard executes whatever transition the admin selects.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderPreparing OrderStatus = "preparing"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPlaced, OrderPreparing, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"order_number"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	CreatedAt     *time.Time  `json:"created_at"`
	User          *OrderUser  `json:"user,omitempty"`
	OrderItems    []OrderItem `json:"order_items,omitempty"`
}

type OrderUser struct {
	Name string `json:"name"`
}

type OrderItem struct {
	Quantity int        `json:"quantity,omitempty"`
	Price    float64    `json:"price,omitempty"`
	Dish     *OrderDish `json:"dish,omitempty"`
}

type OrderDish struct {
	Name       string         `json:"name"`
	Restaurant *RestaurantRef `json:"restaurant,omitempty"`
}

// RestaurantRef is the nested restaurant shape returned inside orders, dishes
// and reviews.
type RestaurantRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// UserName returns the ordering user's name, or "-" when absent.
func (o Order) UserName() string {
	if o.User == nil || o.User.Name == "" {
		return "-"
	}
	return o.User.Name
}

// RestaurantDishSummary renders the order's items grouped per restaurant,
// e.g. "Restaurant A → Pizza, Pasta | Restaurant B → Burger". A single order
// may span multiple restaurants through its items.
func (o Order) RestaurantDishSummary() string {
	if len(o.OrderItems) == 0 {
		return "-"
	}

	var names []string
	dishes := make(map[string][]string)
	for _, item := range o.OrderItems {
		restaurant := "-"
		dish := "-"
		if item.Dish != nil {
			if item.Dish.Name != "" {
				dish = item.Dish.Name
			}
			if item.Dish.Restaurant != nil && item.Dish.Restaurant.Name != "" {
				restaurant = item.Dish.Restaurant.Name
			}
		}
		if _, seen := dishes[restaurant]; !seen {
			names = append(names, restaurant)
		}
		dishes[restaurant] = append(dishes[restaurant], dish)
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s → %s", name, strings.Join(dishes[name], ", ")))
	}
	return strings.Join(parts, " | ")
}

// RestaurantNames lists the distinct restaurants referenced by the order's
// items, in first-seen order. Used by the search predicate.
func (o Order) RestaurantNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, item := range o.OrderItems {
		if item.Dish == nil || item.Dish.Restaurant == nil {
			continue
		}
		name := item.Dish.Restaurant.Name
		if name != "" && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	return names
}

// NewOrderItemInput is the write shape for insert_order_items.
type NewOrderItemInput struct {
	OrderID      string  `json:"order_id"`
	DishID       string  `json:"dish_id"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	RestaurantID string  `json:"restaurant_id,omitempty"`
}
