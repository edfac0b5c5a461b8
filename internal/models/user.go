package models

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Role      Role       `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Addresses []Address  `json:"addresses,omitempty"`
}

type Address struct {
	AddressLine string `json:"address_line"`
	State       string `json:"state,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
}

// PrimaryAddress renders the first address for list display, or "-".
func (u User) PrimaryAddress() string {
	if len(u.Addresses) == 0 {
		return "-"
	}
	a := u.Addresses[0]
	return fmt.Sprintf("%s, %s - %s", a.AddressLine, a.State, a.Pincode)
}
