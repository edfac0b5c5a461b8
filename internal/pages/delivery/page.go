// Package delivery implements the delivery personnel page: the roster table,
// onboarding, status toggles, and removal.
package delivery

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
	FetchDeliveryAgents(ctx context.Context) ([]models.DeliveryAgent, error)
	AddDeliveryAgent(ctx context.Context, input dataapi.NewDeliveryAgentInput) (*models.DeliveryAgent, error)
	UpdateDeliveryStatus(ctx context.Context, id string, status models.AgentStatus) error
	DeleteDeliveryAgent(ctx context.Context, id string) error
}

type Page struct {
	api  DataAPI
	ctrl *view.Controller[models.DeliveryAgent]
	log  logger.Logger
}

func NewPage(api DataAPI, log logger.Logger) *Page {
	p := &Page{api: api, log: log.WithFields(map[string]interface{}{"page": "delivery"})}
	p.ctrl = view.NewController("delivery_agent", api.FetchDeliveryAgents,
		func(a models.DeliveryAgent) string { return a.ID }, p.log)
	return p
}

type Criteria struct {
	Search string
	Status string
}

func (c Criteria) predicates() []view.Predicate[models.DeliveryAgent] {
	return []view.Predicate[models.DeliveryAgent]{
		view.SearchPredicate(c.Search, func(a models.DeliveryAgent) []string {
			return []string{a.Name, a.Phone}
		}),
		view.EqualsPredicate(c.Status, func(a models.DeliveryAgent) string { return string(a.Status) }),
	}
}

func (p *Page) List(ctx context.Context, c Criteria) ([]models.DeliveryAgent, error) {
	err := p.ctrl.Load(ctx)
	return p.ctrl.View(c.predicates()...), err
}

var newAgentSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"name", "phone"},
	"properties": map[string]interface{}{
		"name":   map[string]interface{}{"type": "string", "minLength": 1},
		"phone":  map[string]interface{}{"type": "string", "minLength": 1},
		"status": map[string]interface{}{"type": "string", "enum": []interface{}{"active", "inactive"}},
	},
}

// Create onboards an agent. The insert returns the complete record, so the
// reconciler prepends it locally instead of refetching.
func (p *Page) Create(ctx context.Context, payload map[string]interface{}, input dataapi.NewDeliveryAgentInput) (*models.DeliveryAgent, error) {
	if err := validation.Check(payload, newAgentSchema); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = string(models.AgentActive)
	}

	created, err := p.api.AddDeliveryAgent(ctx, input)
	if err != nil {
		return nil, err
	}
	if created != nil {
		p.ctrl.Insert(*created)
	}
	return created, nil
}

func (p *Page) SetStatus(ctx context.Context, id string, status models.AgentStatus) (models.DeliveryAgent, error) {
	if !status.Valid() {
		return models.DeliveryAgent{}, errors.NewValidationFailedError("status must be active or inactive")
	}

	var patched models.DeliveryAgent
	err := p.ctrl.WithEntityLock(id, func() error {
		if err := p.api.UpdateDeliveryStatus(ctx, id, status); err != nil {
			return err
		}
		p.ctrl.ApplyPatch(id, func(a models.DeliveryAgent) models.DeliveryAgent {
			a.Status = status
			patched = a
			return a
		})
		return nil
	})
	return patched, err
}

// Delete removes the agent remotely, then drops it from the local roster.
func (p *Page) Delete(ctx context.Context, id string) error {
	return p.ctrl.WithEntityLock(id, func() error {
		if err := p.api.DeleteDeliveryAgent(ctx, id); err != nil {
			return err
		}
		p.ctrl.Remove(id)
		return nil
	})
}

func (p *Page) Items() []models.DeliveryAgent {
	return p.ctrl.Items()
}

func (p *Page) Load(ctx context.Context) error {
	return p.ctrl.Load(ctx)
}
