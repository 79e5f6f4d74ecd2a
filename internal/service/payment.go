package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

// PaymentStore is the persistence surface the payment service needs.
type PaymentStore interface {
	Create(ctx context.Context, p *model.Payment) error
	GetByID(ctx context.Context, id int64) (*model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	ListByLease(ctx context.Context, leaseID int64) ([]model.Payment, error)
	ListByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error)
	ListByType(ctx context.Context, paymentType model.PaymentType) ([]model.Payment, error)
	ListByDateRange(ctx context.Context, start, end model.Date) ([]model.Payment, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]model.Payment, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]model.Payment, error)
	LatePayments(ctx context.Context) ([]model.Payment, error)
	MonthlyRentCollection(ctx context.Context, year, month int) (decimal.Decimal, error)
	Update(ctx context.Context, p *model.Payment) error
	Delete(ctx context.Context, id int64) error
}

// leaseLookup verifies payment-to-lease references.
type leaseLookup interface {
	GetByID(ctx context.Context, id int64) (*model.Lease, error)
}

// PaymentService provides CRUD over payments. Ledger arithmetic lives
// in the ledger package; this service only records and retrieves.
type PaymentService struct {
	repo   PaymentStore
	leases leaseLookup
}

func NewPaymentService(repo PaymentStore, leases LeaseStore) *PaymentService {
	return &PaymentService{repo: repo, leases: leases}
}

func validatePayment(p *model.Payment) error {
	if p.LeaseID == 0 {
		return validationf("lease id is required")
	}
	if p.PaymentDate.IsZero() {
		return validationf("payment date is required")
	}
	if p.Amount.IsNegative() {
		return validationf("amount must be non-negative")
	}
	if _, err := model.ParsePaymentType(string(p.PaymentType)); err != nil {
		return validationf("%v", err)
	}
	if _, err := model.ParsePaymentMethod(string(p.PaymentMethod)); err != nil {
		return validationf("%v", err)
	}
	if _, err := model.ParsePaymentStatus(string(p.Status)); err != nil {
		return validationf("%v", err)
	}
	return nil
}

func (s *PaymentService) Create(ctx context.Context, p *model.Payment) error {
	if err := validatePayment(p); err != nil {
		return err
	}

	// The lease must exist before money is recorded against it.
	if _, err := s.leases.GetByID(ctx, p.LeaseID); err != nil {
		if err == store.ErrNotFound {
			return validationf("lease %d does not exist", p.LeaseID)
		}
		return err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		log.Error().Err(err).Int64("lease_id", p.LeaseID).Msg("Failed to create payment")
		return err
	}
	return nil
}

func (s *PaymentService) Get(ctx context.Context, id int64) (*model.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PaymentService) List(ctx context.Context) ([]model.Payment, error) {
	return s.repo.List(ctx)
}

func (s *PaymentService) ListByLease(ctx context.Context, leaseID int64) ([]model.Payment, error) {
	return s.repo.ListByLease(ctx, leaseID)
}

func (s *PaymentService) ListByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *PaymentService) ListByType(ctx context.Context, paymentType model.PaymentType) ([]model.Payment, error) {
	return s.repo.ListByType(ctx, paymentType)
}

func (s *PaymentService) ListByDateRange(ctx context.Context, start, end model.Date) ([]model.Payment, error) {
	if end.Before(start.Time) {
		return nil, validationf("end date must not be before start date")
	}
	return s.repo.ListByDateRange(ctx, start, end)
}

func (s *PaymentService) ListByTenant(ctx context.Context, tenantID int64) ([]model.Payment, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

func (s *PaymentService) ListByProperty(ctx context.Context, propertyID int64) ([]model.Payment, error) {
	return s.repo.ListByProperty(ctx, propertyID)
}

// ListLate returns completed payments made after their due date.
func (s *PaymentService) ListLate(ctx context.Context) ([]model.Payment, error) {
	return s.repo.LatePayments(ctx)
}

// MonthlyRentCollection sums completed rent payments made in the
// given calendar month.
func (s *PaymentService) MonthlyRentCollection(ctx context.Context, year, month int) (decimal.Decimal, error) {
	if month < 1 || month > 12 {
		return decimal.Zero, validationf("month must be between 1 and 12")
	}
	return s.repo.MonthlyRentCollection(ctx, year, month)
}

func (s *PaymentService) Update(ctx context.Context, p *model.Payment) error {
	if err := validatePayment(p); err != nil {
		return err
	}

	// An update may move the payment to another lease; that lease must
	// exist too.
	if _, err := s.leases.GetByID(ctx, p.LeaseID); err != nil {
		if err == store.ErrNotFound {
			return validationf("lease %d does not exist", p.LeaseID)
		}
		return err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if err != store.ErrNotFound {
			log.Error().Err(err).Int64("payment_id", p.ID).Msg("Failed to update payment")
		}
		return err
	}
	return nil
}

func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
