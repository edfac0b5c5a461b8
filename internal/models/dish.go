package models

import "time"

type Dish struct {
	ID                 string         `json:"id"`
	RestaurantID       string         `json:"restaurant_id,omitempty"`
	Name               string         `json:"name"`
	Price              float64        `json:"price"`
	ImageURL           string         `json:"image_url,omitempty"`
	Description        string         `json:"description,omitempty"`
	Category           string         `json:"category,omitempty"`
	IsAvailable        bool           `json:"is_available"`
	DiscountPercentage float64        `json:"discount_percentage,omitempty"`
	PrepTime           *int           `json:"prep_time,omitempty"`
	CreatedAt          *time.Time     `json:"created_at,omitempty"`
	Restaurant         *RestaurantRef `json:"restaurant,omitempty"`
}

// RestaurantID resolves the owning restaurant whichever shape the read
// returned (flat column or nested ref).
func (d Dish) OwningRestaurantID() string {
	if d.RestaurantID != "" {
		return d.RestaurantID
	}
	if d.Restaurant != nil {
		return d.Restaurant.ID
	}
	return ""
}
