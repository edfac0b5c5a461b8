package models

// Settings is the singleton admin_settings record.
type Settings struct {
	ID                   string  `json:"id"`
	AppName              string  `json:"app_name"`
	SupportEmail         string  `json:"support_email,omitempty"`
	SupportPhone         string  `json:"support_phone,omitempty"`
	DefaultCurrency      string  `json:"default_currency,omitempty"`
	TaxPercentage        float64 `json:"tax_percentage"`
	CommissionPercentage float64 `json:"commission_percentage"`
}
