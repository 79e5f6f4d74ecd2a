package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "LOW"
	PriorityMedium MaintenancePriority = "MEDIUM"
	PriorityHigh   MaintenancePriority = "HIGH"
	PriorityUrgent MaintenancePriority = "URGENT"
)

func ParseMaintenancePriority(s string) (MaintenancePriority, error) {
	switch MaintenancePriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return MaintenancePriority(s), nil
	}
	return "", fmt.Errorf("unknown maintenance priority %q", s)
}

type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "OPEN"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceCancelled  MaintenanceStatus = "CANCELLED"
)

func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	switch MaintenanceStatus(s) {
	case MaintenanceOpen, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return MaintenanceStatus(s), nil
	}
	return "", fmt.Errorf("unknown maintenance status %q", s)
}

// MaintenanceRequest represents the maintenance_requests table.
type MaintenanceRequest struct {
	ID             int64               `json:"id"`
	PropertyID     int64               `json:"property_id"`
	TenantID       *int64              `json:"tenant_id,omitempty"`
	RequestDate    Date                `json:"request_date"`
	Description    string              `json:"description"`
	Priority       MaintenancePriority `json:"priority"`
	Status         MaintenanceStatus   `json:"status"`
	EstimatedCost  *decimal.Decimal    `json:"estimated_cost,omitempty"`
	ActualCost     *decimal.Decimal    `json:"actual_cost,omitempty"`
	CompletionDate *Date               `json:"completion_date,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}
