package models

import "time"

type AgentStatus string

const (
	AgentActive   AgentStatus = "active"
	AgentInactive AgentStatus = "inactive"
)

func (s AgentStatus) Valid() bool {
	return s == AgentActive || s == AgentInactive
}

type DeliveryAgent struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Status    AgentStatus `json:"status"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
}
