// Package dashboard implements the overview page: entity counts, today's
// order volume and revenue, per-day and per-month order charts, and the
// recent order table.
package dashboard

import (
	"context"
	"sort"
	"time"

	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/models"
	"cravio-admin/internal/pages/delivery"
	"cravio-admin/internal/pages/orders"
	"cravio-admin/internal/pages/restaurants"
	"cravio-admin/internal/pages/users"
	"cravio-admin/internal/view"
)

// Page aggregates across the other pages' collections rather than issuing
// its own reads, so the dashboard and the entity tables always agree.
type Page struct {
	orders      *orders.Page
	users       *users.Page
	restaurants *restaurants.Page
	delivery    *delivery.Page
	log         logger.Logger
}

func NewPage(o *orders.Page, u *users.Page, r *restaurants.Page, d *delivery.Page, log logger.Logger) *Page {
	return &Page{
		orders:      o,
		users:       u,
		restaurants: r,
		delivery:    d,
		log:         log.WithFields(map[string]interface{}{"page": "dashboard"}),
	}
}

type Summary struct {
	UserCount       int            `json:"user_count"`
	RestaurantCount int            `json:"restaurant_count"`
	DeliveryCount   int            `json:"delivery_count"`
	TodayOrders     int            `json:"today_orders"`
	TodayRevenue    float64        `json:"today_revenue"`
	OrdersPerDay    []view.Bucket  `json:"orders_per_day"`
	RevenuePerMonth []view.Bucket  `json:"revenue_per_month"`
	RecentOrders    []models.Order `json:"recent_orders"`
	PendingOrders   []models.Order `json:"pending_orders"`
}

// Load refreshes all four collections with the request context and builds
// the summary. The first load failure aborts: a dashboard over partially
// refreshed collections would misreport totals.
func (p *Page) Load(ctx context.Context, now time.Time) (*Summary, error) {
	if err := p.orders.Load(ctx); err != nil {
		return nil, err
	}
	if err := p.users.Load(ctx); err != nil {
		return nil, err
	}
	if err := p.restaurants.Load(ctx); err != nil {
		return nil, err
	}
	if err := p.delivery.Load(ctx); err != nil {
		return nil, err
	}

	allOrders := p.orders.Items()
	todayKey := now.UTC().Format("2006-01-02")

	s := &Summary{
		UserCount:       len(p.users.Items()),
		RestaurantCount: len(p.restaurants.Items()),
		DeliveryCount:   len(p.delivery.Items()),
		OrdersPerDay: view.CountBy(allOrders, func(o models.Order) (string, bool) {
			return view.DayKey(o.CreatedAt)
		}),
		RevenuePerMonth: view.SumBy(allOrders,
			func(o models.Order) (string, bool) { return view.MonthKey(o.CreatedAt) },
			func(o models.Order) float64 { return o.TotalAmount }),
		RecentOrders: recentOrders(allOrders, 5),
		PendingOrders: view.Filter(allOrders,
			view.EqualsPredicate("placed", func(o models.Order) string { return string(o.Status) })),
	}

	daySums := view.SumBy(allOrders,
		func(o models.Order) (string, bool) { return view.DayKey(o.CreatedAt) },
		func(o models.Order) float64 { return o.TotalAmount })
	for _, b := range daySums {
		if b.Key == todayKey {
			s.TodayOrders = b.Count
			s.TodayRevenue = b.Sum
		}
	}
	return s, nil
}

func recentOrders(all []models.Order, n int) []models.Order {
	out := append([]models.Order(nil), all...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].CreatedAt, out[j].CreatedAt
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
