// Package restaurants implements the restaurant management page: the
// searchable approval table, onboarding, status transitions, and the hygiene
// rating board.
package restaurants

import (
	"context"

	"cravio-admin/internal/common/errors"
	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/common/validation"
	"cravio-admin/internal/dataapi"
	"cravio-admin/internal/models"
	"cravio-admin/internal/view"
)

type DataAPI interface {
	FetchRestaurants(ctx context.Context) ([]models.Restaurant, error)
	FetchHygieneRatings(ctx context.Context) ([]models.Restaurant, error)
	AddRestaurant(ctx context.Context, input dataapi.NewRestaurantInput) (*models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id string, set map[string]interface{}) (*models.Restaurant, error)
	UpdateRestaurantStatus(ctx context.Context, id string, status models.RestaurantStatus) error
}

type Page struct {
	api  DataAPI
	ctrl *view.Controller[models.Restaurant]
	log  logger.Logger
}

func NewPage(api DataAPI, log logger.Logger) *Page {
	p := &Page{api: api, log: log.WithFields(map[string]interface{}{"page": "restaurants"})}
	p.ctrl = view.NewController("restaurant", api.FetchRestaurants,
		func(r models.Restaurant) string { return r.ID }, p.log)
	return p
}

type Criteria struct {
	Search string
	Status string
}

func (c Criteria) predicates() []view.Predicate[models.Restaurant] {
	status := c.Status
	if status == "all" {
		status = ""
	}
	return []view.Predicate[models.Restaurant]{
		view.SearchPredicate(c.Search, func(r models.Restaurant) []string {
			return []string{r.Name, r.Email, r.Phone, r.Address}
		}),
		view.EqualsPredicate(status, func(r models.Restaurant) string { return string(r.Status) }),
	}
}

func (p *Page) List(ctx context.Context, c Criteria) ([]models.Restaurant, error) {
	err := p.ctrl.Load(ctx)
	return p.ctrl.View(c.predicates()...), err
}

// Hygiene returns the board ordered by hygiene rating descending, as served.
func (p *Page) Hygiene(ctx context.Context) ([]models.Restaurant, error) {
	return p.api.FetchHygieneRatings(ctx)
}

var newRestaurantSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"name"},
	"properties": map[string]interface{}{
		"name":                  map[string]interface{}{"type": "string", "minLength": 1},
		"email":                 map[string]interface{}{"type": "string"},
		"phone":                 map[string]interface{}{"type": "string"},
		"address":               map[string]interface{}{"type": "string"},
		"status":                map[string]interface{}{"type": "string", "enum": []interface{}{"pending", "approved", "rejected"}},
		"commission_percentage": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
		"open_time":             map[string]interface{}{"type": "string"},
		"close_time":            map[string]interface{}{"type": "string"},
		"image_url":             map[string]interface{}{"type": "string"},
	},
}

// Create onboards a restaurant and refetches the collection, since the
// insert response carries only the id and name.
func (p *Page) Create(ctx context.Context, payload map[string]interface{}, input dataapi.NewRestaurantInput) (*models.Restaurant, error) {
	if err := validation.Check(payload, newRestaurantSchema); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = string(models.RestaurantPending)
	}

	created, err := p.api.AddRestaurant(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := p.ctrl.Load(ctx); err != nil {
		p.log.WithError(err).Warn("refetch after restaurant create failed", nil)
	}
	return created, nil
}

var updateRestaurantSchema = map[string]interface{}{
	"type":                 "object",
	"minProperties":        1,
	"additionalProperties": false,
	"properties": map[string]interface{}{
		"name":                  map[string]interface{}{"type": "string", "minLength": 1},
		"email":                 map[string]interface{}{"type": "string"},
		"phone":                 map[string]interface{}{"type": "string"},
		"address":               map[string]interface{}{"type": "string"},
		"commission_percentage": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
		"open_time":             map[string]interface{}{"type": "string"},
		"close_time":            map[string]interface{}{"type": "string"},
		"image_url":             map[string]interface{}{"type": "string"},
	},
}

// Update edits restaurant fields other than status (status has its own
// transition flow) and swaps the returned row into the local collection.
func (p *Page) Update(ctx context.Context, id string, set map[string]interface{}) (*models.Restaurant, error) {
	if err := validation.Check(set, updateRestaurantSchema); err != nil {
		return nil, err
	}

	var updated *models.Restaurant
	err := p.ctrl.WithEntityLock(id, func() error {
		row, err := p.api.UpdateRestaurant(ctx, id, set)
		if err != nil {
			return err
		}
		if row == nil {
			return errors.NewResourceNotFoundError("restaurant", id)
		}
		updated = row
		p.ctrl.ApplyPatch(id, func(models.Restaurant) models.Restaurant { return *row })
		return nil
	})
	return updated, err
}

func (p *Page) SetStatus(ctx context.Context, id string, status models.RestaurantStatus) (models.Restaurant, error) {
	if !status.Valid() {
		return models.Restaurant{}, errors.NewValidationFailedError("status must be one of pending, approved, rejected")
	}

	var patched models.Restaurant
	err := p.ctrl.WithEntityLock(id, func() error {
		if err := p.api.UpdateRestaurantStatus(ctx, id, status); err != nil {
			return err
		}
		p.ctrl.ApplyPatch(id, func(r models.Restaurant) models.Restaurant {
			r.Status = status
			patched = r
			return r
		})
		return nil
	})
	return patched, err
}

func (p *Page) Items() []models.Restaurant {
	return p.ctrl.Items()
}

func (p *Page) Load(ctx context.Context) error {
	return p.ctrl.Load(ctx)
}
