package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LeaseStatus is the lifecycle state of a lease. Valid transitions are
// PENDING -> ACTIVE -> EXPIRED or TERMINATED; the terminal states have
// no outgoing transitions.
type LeaseStatus string

const (
	LeasePending    LeaseStatus = "PENDING"
	LeaseActive     LeaseStatus = "ACTIVE"
	LeaseExpired    LeaseStatus = "EXPIRED"
	LeaseTerminated LeaseStatus = "TERMINATED"
)

func ParseLeaseStatus(s string) (LeaseStatus, error) {
	switch LeaseStatus(s) {
	case LeasePending, LeaseActive, LeaseExpired, LeaseTerminated:
		return LeaseStatus(s), nil
	}
	return "", fmt.Errorf("unknown lease status %q", s)
}

// CanTransitionTo reports whether the lifecycle permits moving from s
// to next.
func (s LeaseStatus) CanTransitionTo(next LeaseStatus) bool {
	switch s {
	case LeasePending:
		return next == LeaseActive
	case LeaseActive:
		return next == LeaseExpired || next == LeaseTerminated
	default:
		return false
	}
}

// Lease represents the leases table.
type Lease struct {
	ID              int64           `json:"id"`
	PropertyID      int64           `json:"property_id"`
	TenantID        int64           `json:"tenant_id"`
	StartDate       Date            `json:"start_date"`
	EndDate         Date            `json:"end_date"`
	MonthlyRent     decimal.Decimal `json:"monthly_rent"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	Status          LeaseStatus     `json:"status"`
	Terms           string          `json:"terms,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (l *Lease) IsActive() bool {
	return l.Status == LeaseActive
}
