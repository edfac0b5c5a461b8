package models

import "time"

type ReviewStatus string

const (
	ReviewVisible ReviewStatus = "visible"
	ReviewHidden  ReviewStatus = "hidden"
)

func (s ReviewStatus) Valid() bool {
	return s == ReviewVisible || s == ReviewHidden
}

type Review struct {
	ID         string         `json:"id"`
	Rating     int            `json:"rating"`
	Comment    string         `json:"comment,omitempty"`
	Status     ReviewStatus   `json:"status"`
	CreatedAt  *time.Time     `json:"created_at,omitempty"`
	User       *OrderUser     `json:"user,omitempty"`
	Restaurant *RestaurantRef `json:"restaurant,omitempty"`
}

// RestaurantName returns the reviewed restaurant's name, or "" when the
// reference is missing (such reviews are excluded from grouped analytics).
func (r Review) RestaurantName() string {
	if r.Restaurant == nil {
		return ""
	}
	return r.Restaurant.Name
}
