package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentStatus describes a tenant's employment situation.
type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "EMPLOYED"
	EmploymentSelfEmployed EmploymentStatus = "SELF_EMPLOYED"
	EmploymentUnemployed   EmploymentStatus = "UNEMPLOYED"
	EmploymentRetired      EmploymentStatus = "RETIRED"
	EmploymentStudent      EmploymentStatus = "STUDENT"
)

func ParseEmploymentStatus(s string) (EmploymentStatus, error) {
	switch EmploymentStatus(s) {
	case EmploymentEmployed, EmploymentSelfEmployed, EmploymentUnemployed,
		EmploymentRetired, EmploymentStudent:
		return EmploymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown employment status %q", s)
}

// Tenant represents the tenants table. SSNLastFour is transient: the
// stored columns are the AES-GCM ciphertext and nonce.
type Tenant struct {
	ID                    int64            `json:"id"`
	FirstName             string           `json:"first_name"`
	LastName              string           `json:"last_name"`
	Email                 string           `json:"email"`
	Phone                 string           `json:"phone"`
	DateOfBirth           *Date            `json:"date_of_birth,omitempty"`
	SSNLastFour           string           `json:"ssn_last_four,omitempty"`
	EncryptedSSN          []byte           `json:"-"`
	SSNNonce              []byte           `json:"-"`
	EmploymentStatus      EmploymentStatus `json:"employment_status"`
	MonthlyIncome         *decimal.Decimal `json:"monthly_income,omitempty"`
	EmergencyContactName  string           `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string           `json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}
