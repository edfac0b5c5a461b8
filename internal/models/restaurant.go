package models

import "time"

type RestaurantStatus string

const (
	RestaurantPending  RestaurantStatus = "pending"
	RestaurantApproved RestaurantStatus = "approved"
	RestaurantRejected RestaurantStatus = "rejected"
)

func (s RestaurantStatus) Valid() bool {
	switch s {
	case RestaurantPending, RestaurantApproved, RestaurantRejected:
		return true
	}
	return false
}

type Restaurant struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Email                string           `json:"email,omitempty"`
	Phone                string           `json:"phone,omitempty"`
	Address              string           `json:"address,omitempty"`
	Status               RestaurantStatus `json:"status"`
	CommissionPercentage *float64         `json:"commission_percentage,omitempty"`
	OpenTime             string           `json:"open_time,omitempty"`
	CloseTime            string           `json:"close_time,omitempty"`
	ImageURL             string           `json:"image_url,omitempty"`
	HygieneRating        float64          `json:"hygiene_rating"`
	CreatedAt            *time.Time       `json:"created_at,omitempty"`
	UpdatedAt            *time.Time       `json:"updated_at,omitempty"`
}
