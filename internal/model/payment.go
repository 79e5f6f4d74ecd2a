package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentRent    PaymentType = "RENT"
	PaymentDeposit PaymentType = "DEPOSIT"
	PaymentFee     PaymentType = "FEE"
	PaymentUtility PaymentType = "UTILITY"
	PaymentOther   PaymentType = "OTHER"
)

func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentRent, PaymentDeposit, PaymentFee, PaymentUtility, PaymentOther:
		return PaymentType(s), nil
	}
	return "", fmt.Errorf("unknown payment type %q", s)
}

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodCheck        PaymentMethod = "CHECK"
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodOnline       PaymentMethod = "ONLINE"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodCheck, MethodCreditCard, MethodBankTransfer, MethodOnline:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// Payment represents the payments table.
type Payment struct {
	ID            int64           `json:"id"`
	LeaseID       int64           `json:"lease_id"`
	PaymentDate   Date            `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentType   PaymentType     `json:"payment_type"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        PaymentStatus   `json:"status"`
	DueDate       *Date           `json:"due_date,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsLate reports whether the payment was made after its due date. It
// is false when either date is unset.
func (p *Payment) IsLate() bool {
	if p.DueDate == nil || p.PaymentDate.IsZero() {
		return false
	}
	return p.PaymentDate.After(p.DueDate.Time)
}

func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentCompleted
}

// OverduePayment is a pending payment past its due date, annotated
// with how many whole days it has been outstanding.
type OverduePayment struct {
	Payment
	DaysOverdue int `json:"days_overdue"`
}
