// Package dishes implements the menu management page: the full dish list,
// per-restaurant scoping, dish creation, and availability toggles.
package dishes

import (
	"context"

	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/common/validation"
	"cravio-admin/internal/dataapi"
	"cravio-admin/internal/models"
	"cravio-admin/internal/view"
)

type DataAPI interface {
	FetchAllDishes(ctx context.Context) ([]models.Dish, error)
	FetchDishesByRestaurant(ctx context.Context, restaurantID string) ([]models.Dish, error)
	AddDish(ctx context.Context, input dataapi.NewDishInput) (*models.Dish, error)
	UpdateDishAvailability(ctx context.Context, id string, available bool) error
}

type Page struct {
	api  DataAPI
	ctrl *view.Controller[models.Dish]
	log  logger.Logger
}

func NewPage(api DataAPI, log logger.Logger) *Page {
	p := &Page{api: api, log: log.WithFields(map[string]interface{}{"page": "dishes"})}
	p.ctrl = view.NewController("dish", api.FetchAllDishes,
		func(d models.Dish) string { return d.ID }, p.log)
	return p
}

type Criteria struct {
	Search       string
	RestaurantID string
	Available    string
}

func (c Criteria) predicates() []view.Predicate[models.Dish] {
	return []view.Predicate[models.Dish]{
		view.SearchPredicate(c.Search, func(d models.Dish) []string {
			fields := []string{d.Name, d.Category}
			if d.Restaurant != nil {
				fields = append(fields, d.Restaurant.Name)
			}
			return fields
		}),
		view.EqualsPredicate(c.RestaurantID, func(d models.Dish) string { return d.OwningRestaurantID() }),
		view.BoolPredicate(c.Available, func(d models.Dish) bool { return d.IsAvailable }),
	}
}

func (p *Page) List(ctx context.Context, c Criteria) ([]models.Dish, error) {
	err := p.ctrl.Load(ctx)
	return p.ctrl.View(c.predicates()...), err
}

// ByRestaurant returns the detailed dish rows for one restaurant's menu
// editor, scoped server side rather than filtered locally.
func (p *Page) ByRestaurant(ctx context.Context, restaurantID string) ([]models.Dish, error) {
	return p.api.FetchDishesByRestaurant(ctx, restaurantID)
}

var newDishSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"restaurant_id", "name", "price"},
	"properties": map[string]interface{}{
		"restaurant_id":       map[string]interface{}{"type": "string", "minLength": 1},
		"name":                map[string]interface{}{"type": "string", "minLength": 1},
		"price":               map[string]interface{}{"type": "number", "minimum": 0},
		"image_url":           map[string]interface{}{"type": "string"},
		"description":         map[string]interface{}{"type": "string"},
		"category":            map[string]interface{}{"type": "string"},
		"is_available":        map[string]interface{}{"type": "boolean"},
		"discount_percentage": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
		"prep_time":           map[string]interface{}{"type": "integer", "minimum": 0},
	},
}

// Create inserts a dish and refetches, since the insert response carries only
// the id and name while the table renders the nested restaurant shape.
func (p *Page) Create(ctx context.Context, payload map[string]interface{}, input dataapi.NewDishInput) (*models.Dish, error) {
	if err := validation.Check(payload, newDishSchema); err != nil {
		return nil, err
	}

	created, err := p.api.AddDish(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := p.ctrl.Load(ctx); err != nil {
		p.log.WithError(err).Warn("refetch after dish create failed", nil)
	}
	return created, nil
}

func (p *Page) SetAvailability(ctx context.Context, id string, available bool) (models.Dish, error) {
	var patched models.Dish
	err := p.ctrl.WithEntityLock(id, func() error {
		if err := p.api.UpdateDishAvailability(ctx, id, available); err != nil {
			return err
		}
		p.ctrl.ApplyPatch(id, func(d models.Dish) models.Dish {
			d.IsAvailable = available
			patched = d
			return d
		})
		return nil
	})
	return patched, err
}
