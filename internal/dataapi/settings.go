package dataapi

import (
	"context"

	"cravio-admin/internal/models"
)

const fetchSettingsQuery = `
query FetchSettings {
  admin_settings(limit: 1) {
    id
    app_name
    support_email
    support_phone
    default_currency
    tax_percentage
    commission_percentage
  }
}`

const addSettingsMutation = `
mutation AddSettings($object: admin_settings_insert_input!) {
  insert_admin_settings_one(object: $object) {
    id
  }
}`

const updateSettingsMutation = `
mutation UpdateSettings($id: uuid!, $set: admin_settings_set_input!) {
  update_admin_settings_by_pk(pk_columns: { id: $id }, _set: $set) {
    id
    app_name
    support_email
    support_phone
    default_currency
    tax_percentage
    commission_percentage
  }
}`

// SettingsInput is the write shape shared by the settings insert and update.
type SettingsInput struct {
	AppName              string  `json:"app_name"`
	SupportEmail         string  `json:"support_email"`
	SupportPhone         string  `json:"support_phone"`
	DefaultCurrency      string  `json:"default_currency"`
	TaxPercentage        float64 `json:"tax_percentage"`
	CommissionPercentage float64 `json:"commission_percentage"`
}

// FetchSettings returns the singleton settings record, or nil when none has
// been created yet.
func (a *API) FetchSettings(ctx context.Context) (*models.Settings, error) {
	var resp struct {
		Settings []models.Settings `json:"admin_settings"`
	}
	if err := a.gql.Do(ctx, "FetchSettings", fetchSettingsQuery, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Settings) == 0 {
		return nil, nil
	}
	return &resp.Settings[0], nil
}

func (a *API) AddSettings(ctx context.Context, input SettingsInput) (string, error) {
	var resp struct {
		Inserted struct {
			ID string `json:"id"`
		} `json:"insert_admin_settings_one"`
	}
	err := a.gql.Do(ctx, "AddSettings", addSettingsMutation,
		map[string]interface{}{"object": input}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Inserted.ID, nil
}

func (a *API) UpdateSettings(ctx context.Context, id string, input SettingsInput) (*models.Settings, error) {
	var resp struct {
		Updated *models.Settings `json:"update_admin_settings_by_pk"`
	}
	err := a.gql.Do(ctx, "UpdateSettings", updateSettingsMutation,
		map[string]interface{}{"id": id, "set": input}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Updated, nil
}
