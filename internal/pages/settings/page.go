// Package settings implements the global platform settings page over the
// singleton admin_settings record.
package settings

import (
	"context"

	"cravio-admin/internal/common/errors"
	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/common/validation"
	"cravio-admin/internal/dataapi"
	"cravio-admin/internal/models"
)

type DataAPI interface {
	FetchSettings(ctx context.Context) (*models.Settings, error)
	AddSettings(ctx context.Context, input dataapi.SettingsInput) (string, error)
	UpdateSettings(ctx context.Context, id string, input dataapi.SettingsInput) (*models.Settings, error)
}

type Page struct {
	api DataAPI
	log logger.Logger
}

func NewPage(api DataAPI, log logger.Logger) *Page {
	return &Page{api: api, log: log.WithFields(map[string]interface{}{"page": "settings"})}
}

// Get returns the singleton record. A platform with no settings saved yet is
// a RESOURCE_NOT_FOUND, not an empty success.
func (p *Page) Get(ctx context.Context) (*models.Settings, error) {
	current, err := p.api.FetchSettings(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.NewResourceNotFoundError("settings", "no settings record exists yet")
	}
	return current, nil
}

var settingsSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"app_name"},
	"properties": map[string]interface{}{
		"app_name":              map[string]interface{}{"type": "string", "minLength": 1},
		"support_email":         map[string]interface{}{"type": "string"},
		"support_phone":         map[string]interface{}{"type": "string"},
		"default_currency":      map[string]interface{}{"type": "string"},
		"tax_percentage":        map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
		"commission_percentage": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
	},
}

// Save upserts the singleton: first save inserts, later saves update in
// place. The updated record is fetched back so the response reflects what
// the API persisted.
func (p *Page) Save(ctx context.Context, payload map[string]interface{}, input dataapi.SettingsInput) (*models.Settings, error) {
	if err := validation.Check(payload, settingsSchema); err != nil {
		return nil, err
	}

	current, err := p.api.FetchSettings(ctx)
	if err != nil {
		return nil, err
	}

	if current == nil {
		id, err := p.api.AddSettings(ctx, input)
		if err != nil {
			return nil, err
		}
		p.log.Info("settings created", map[string]interface{}{"id": id})
		return p.api.FetchSettings(ctx)
	}

	updated, err := p.api.UpdateSettings(ctx, current.ID, input)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
