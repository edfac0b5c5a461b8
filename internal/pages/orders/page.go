// Package orders implements the order management page: the searchable status
// table, the status transition flow, and line-item attachment.
package orders

import (
	"context"

	"cravio-admin/internal/common/errors"
	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/models"
	"cravio-admin/internal/view"
)

// DataAPI is the slice of the remote API this page uses.
type DataAPI interface {
	FetchOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
	InsertOrderItems(ctx context.Context, items []models.NewOrderItemInput) (int, error)
}

type Page struct {
	api  DataAPI
	ctrl *view.Controller[models.Order]
	log  logger.Logger
}

func NewPage(api DataAPI, log logger.Logger) *Page {
	p := &Page{api: api, log: log.WithFields(map[string]interface{}{"page": "orders"})}
	p.ctrl = view.NewController("order", api.FetchOrders, func(o models.Order) string { return o.ID }, p.log)
	return p
}

// Criteria are the active filter inputs for the order table.
type Criteria struct {
	Search string
	Status string
}

func (c Criteria) predicates() []view.Predicate[models.Order] {
	return []view.Predicate[models.Order]{
		view.SearchPredicate(c.Search, func(o models.Order) []string {
			fields := []string{o.OrderNumber, o.UserName()}
			return append(fields, o.RestaurantNames()...)
		}),
		view.EqualsPredicate(c.Status, func(o models.Order) string { return string(o.Status) }),
	}
}

// List refreshes the collection and returns the filtered view. A failed
// refresh still returns the previous collection so the table keeps rendering,
// with the error surfaced alongside.
func (p *Page) List(ctx context.Context, c Criteria) ([]models.Order, error) {
	err := p.ctrl.Load(ctx)
	return p.ctrl.View(c.predicates()...), err
}

// SetStatus performs the remote transition and patches the one local order
// after the API confirmed. Transitions are unconstrained, so the only input
// check is enum membership.
func (p *Page) SetStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, errors.NewValidationFailedError("status must be one of placed, preparing, delivered, cancelled")
	}

	var patched models.Order
	err := p.ctrl.WithEntityLock(id, func() error {
		if err := p.api.UpdateOrderStatus(ctx, id, status); err != nil {
			return err
		}
		p.ctrl.ApplyPatch(id, func(o models.Order) models.Order {
			o.Status = status
			patched = o
			return o
		})
		return nil
	})
	return patched, err
}

// AttachItems inserts line items for an existing order and refetches, since
// the insert response does not carry the nested dish and restaurant shape
// the table renders.
func (p *Page) AttachItems(ctx context.Context, orderID string, items []models.NewOrderItemInput) (int, error) {
	if len(items) == 0 {
		return 0, errors.NewValidationFailedError("at least one order item is required")
	}
	for i := range items {
		items[i].OrderID = orderID
	}

	n, err := p.api.InsertOrderItems(ctx, items)
	if err != nil {
		return 0, err
	}
	if err := p.ctrl.Load(ctx); err != nil {
		p.log.WithError(err).Warn("refetch after item insert failed", map[string]interface{}{
			"order_id": orderID,
		})
	}
	return n, nil
}

// Analytics computes the dashboard aggregations over the currently filtered
// view: orders per day, revenue per month, and today's count and revenue.
type Analytics struct {
	OrdersPerDay    []view.Bucket `json:"orders_per_day"`
	RevenuePerMonth []view.Bucket `json:"revenue_per_month"`
	TodayOrders     int           `json:"today_orders"`
	TodayRevenue    float64       `json:"today_revenue"`
}

func (p *Page) Analytics(c Criteria, todayKey string) Analytics {
	orders := p.ctrl.View(c.predicates()...)

	perDay := view.CountBy(orders, func(o models.Order) (string, bool) { return view.DayKey(o.CreatedAt) })
	perMonth := view.SumBy(orders,
		func(o models.Order) (string, bool) { return view.MonthKey(o.CreatedAt) },
		func(o models.Order) float64 { return o.TotalAmount })

	a := Analytics{OrdersPerDay: perDay, RevenuePerMonth: perMonth}
	daySums := view.SumBy(orders,
		func(o models.Order) (string, bool) { return view.DayKey(o.CreatedAt) },
		func(o models.Order) float64 { return o.TotalAmount })
	for _, b := range daySums {
		if b.Key == todayKey {
			a.TodayOrders = b.Count
			a.TodayRevenue = b.Sum
		}
	}
	return a
}

// Items exposes the unfiltered collection for cross-page aggregation.
func (p *Page) Items() []models.Order {
	return p.ctrl.Items()
}

// Load refreshes the collection without filtering, for dashboard use.
func (p *Page) Load(ctx context.Context) error {
	return p.ctrl.Load(ctx)
}
