// Package ledger computes payment-ledger reconciliation results: what
// each lease owes, which payments are overdue, and portfolio-wide
// collection statistics. It reads plain data through narrow store
// interfaces and never mutates anything.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/model"
)

// ErrNegativeDays rejects a negative look-ahead window.
var ErrNegativeDays = errors.New("days must be non-negative")

// PaymentSource is the slice of the payment store the reconciler
// needs. Aggregate sums are already normalized to zero on empty sets.
type PaymentSource interface {
	TotalCompletedForLease(ctx context.Context, leaseID int64) (decimal.Decimal, error)
	OutstandingForLease(ctx context.Context, leaseID int64, asOf model.Date) (decimal.Decimal, error)
	TotalRentReceived(ctx context.Context) (decimal.Decimal, error)
	TotalRentExpected(ctx context.Context, asOf model.Date) (decimal.Decimal, error)
	CountLate(ctx context.Context) (int64, error)
	Overdue(ctx context.Context, asOf model.Date) ([]model.Payment, error)
}

// LeaseSource is the slice of the lease store the reconciler needs.
type LeaseSource interface {
	EndingBetween(ctx context.Context, start, end model.Date) ([]model.Lease, error)
	ExpiredActive(ctx context.Context, today model.Date) ([]model.Lease, error)
}

// Reconciler derives ledger state from stored payments and leases.
type Reconciler struct {
	payments PaymentSource
	leases   LeaseSource
}

func New(payments PaymentSource, leases LeaseSource) *Reconciler {
	return &Reconciler{payments: payments, leases: leases}
}

// LeaseBalance is the per-lease ledger position as of a date.
type LeaseBalance struct {
	LeaseID     int64           `json:"lease_id"`
	AsOf        model.Date      `json:"as_of"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Status      string          `json:"status"`
}

// PortfolioSummary aggregates rent collection across every lease.
type PortfolioSummary struct {
	AsOf           model.Date      `json:"as_of"`
	TotalReceived  decimal.Decimal `json:"total_received"`
	TotalExpected  decimal.Decimal `json:"total_expected"`
	CollectionRate decimal.Decimal `json:"collection_rate"`
	LateCount      int64           `json:"late_count"`
}

// TotalPaid sums the completed payments for a lease; zero when there
// are none.
func (r *Reconciler) TotalPaid(ctx context.Context, leaseID int64) (decimal.Decimal, error) {
	return r.payments.TotalCompletedForLease(ctx, leaseID)
}

// OutstandingBalance sums pending payments for a lease whose due date
// is strictly before asOf. Any pending payment past due counts as
// owed, no matter how old.
func (r *Reconciler) OutstandingBalance(ctx context.Context, leaseID int64, asOf model.Date) (decimal.Decimal, error) {
	return r.payments.OutstandingForLease(ctx, leaseID, asOf)
}

// Balance combines total paid and outstanding for a lease and derives
// the OWES/PAID status shown by the payment-tracking views.
func (r *Reconciler) Balance(ctx context.Context, leaseID int64, asOf model.Date) (*LeaseBalance, error) {
	paid, err := r.payments.TotalCompletedForLease(ctx, leaseID)
	if err != nil {
		return nil, fmt.Errorf("total paid for lease %d: %w", leaseID, err)
	}
	outstanding, err := r.payments.OutstandingForLease(ctx, leaseID, asOf)
	if err != nil {
		return nil, fmt.Errorf("outstanding for lease %d: %w", leaseID, err)
	}

	status := "PAID"
	if outstanding.IsPositive() {
		status = "OWES"
	}
	return &LeaseBalance{
		LeaseID:     leaseID,
		AsOf:        asOf,
		TotalPaid:   paid,
		Outstanding: outstanding,
		Status:      status,
	}, nil
}

// Summary computes the portfolio-wide collection statistics as of a
// date. The collection rate is received/expected at four decimal
// places, rounded half up, times 100; it is exactly zero when nothing
// has been billed yet.
func (r *Reconciler) Summary(ctx context.Context, asOf model.Date) (*PortfolioSummary, error) {
	received, err := r.payments.TotalRentReceived(ctx)
	if err != nil {
		return nil, fmt.Errorf("total rent received: %w", err)
	}
	expected, err := r.payments.TotalRentExpected(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("total rent expected: %w", err)
	}
	lateCount, err := r.payments.CountLate(ctx)
	if err != nil {
		return nil, fmt.Errorf("late payment count: %w", err)
	}

	rate := decimal.Zero
	if expected.IsPositive() {
		rate = received.DivRound(expected, 4).Mul(decimal.NewFromInt(100))
	}

	return &PortfolioSummary{
		AsOf:           asOf,
		TotalReceived:  received,
		TotalExpected:  expected,
		CollectionRate: rate,
		LateCount:      lateCount,
	}, nil
}

// OverduePayments returns pending payments due strictly before asOf,
// oldest due date first, each annotated with whole days overdue.
func (r *Reconciler) OverduePayments(ctx context.Context, asOf model.Date) ([]model.OverduePayment, error) {
	payments, err := r.payments.Overdue(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("overdue payments: %w", err)
	}

	overdue := make([]model.OverduePayment, 0, len(payments))
	for _, p := range payments {
		days := 0
		if p.DueDate != nil {
			days = asOf.DaysSince(*p.DueDate)
		}
		overdue = append(overdue, model.OverduePayment{Payment: p, DaysOverdue: days})
	}
	return overdue, nil
}

// LeasesExpiringSoon returns active leases ending within days of from,
// bounds inclusive. Negative days is a caller error.
func (r *Reconciler) LeasesExpiringSoon(ctx context.Context, days int, from model.Date) ([]model.Lease, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNegativeDays, days)
	}
	return r.leases.EndingBetween(ctx, from, from.AddDays(days))
}

// ExpiredActiveLeases reports leases still marked ACTIVE past their
// end date. Diagnostic only: status is never corrected here.
func (r *Reconciler) ExpiredActiveLeases(ctx context.Context, today model.Date) ([]model.Lease, error) {
	return r.leases.ExpiredActive(ctx, today)
}
