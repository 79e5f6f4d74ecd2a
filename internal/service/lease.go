package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

// LeaseStore is the persistence surface the lease service needs.
type LeaseStore interface {
	Create(ctx context.Context, l *model.Lease) error
	GetByID(ctx context.Context, id int64) (*model.Lease, error)
	List(ctx context.Context) ([]model.Lease, error)
	ListByStatus(ctx context.Context, status model.LeaseStatus) ([]model.Lease, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]model.Lease, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]model.Lease, error)
	ActiveByProperty(ctx context.Context, propertyID int64) (*model.Lease, error)
	ActiveByTenant(ctx context.Context, tenantID int64) (*model.Lease, error)
	CountByStatus(ctx context.Context, status model.LeaseStatus) (int64, error)
	Update(ctx context.Context, l *model.Lease) error
	Delete(ctx context.Context, id int64) error
}

// LeaseService provides CRUD over leases and enforces the lifecycle:
// PENDING -> ACTIVE -> EXPIRED or TERMINATED, with no way out of a
// terminal state.
type LeaseService struct {
	repo LeaseStore
}

func NewLeaseService(repo LeaseStore) *LeaseService {
	return &LeaseService{repo: repo}
}

func validateLease(l *model.Lease) error {
	if l.PropertyID == 0 {
		return validationf("property id is required")
	}
	if l.TenantID == 0 {
		return validationf("tenant id is required")
	}
	if l.StartDate.IsZero() {
		return validationf("start date is required")
	}
	if l.EndDate.IsZero() {
		return validationf("end date is required")
	}
	if l.EndDate.Before(l.StartDate.Time) {
		return validationf("end date must not be before start date")
	}
	if l.MonthlyRent.IsNegative() {
		return validationf("monthly rent must be non-negative")
	}
	if l.SecurityDeposit.IsNegative() {
		return validationf("security deposit must be non-negative")
	}
	return nil
}

// Create inserts a new lease. New leases always start PENDING.
func (s *LeaseService) Create(ctx context.Context, l *model.Lease) error {
	if err := validateLease(l); err != nil {
		return err
	}
	l.Status = model.LeasePending

	if err := s.repo.Create(ctx, l); err != nil {
		log.Error().Err(err).Msg("Failed to create lease")
		return err
	}
	return nil
}

func (s *LeaseService) Get(ctx context.Context, id int64) (*model.Lease, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LeaseService) List(ctx context.Context) ([]model.Lease, error) {
	return s.repo.List(ctx)
}

func (s *LeaseService) ListByStatus(ctx context.Context, status model.LeaseStatus) ([]model.Lease, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *LeaseService) ListByProperty(ctx context.Context, propertyID int64) ([]model.Lease, error) {
	return s.repo.ListByProperty(ctx, propertyID)
}

func (s *LeaseService) ListByTenant(ctx context.Context, tenantID int64) ([]model.Lease, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

func (s *LeaseService) ActiveLeases(ctx context.Context) ([]model.Lease, error) {
	return s.repo.ListByStatus(ctx, model.LeaseActive)
}

func (s *LeaseService) ActiveByProperty(ctx context.Context, propertyID int64) (*model.Lease, error) {
	return s.repo.ActiveByProperty(ctx, propertyID)
}

func (s *LeaseService) ActiveByTenant(ctx context.Context, tenantID int64) (*model.Lease, error) {
	return s.repo.ActiveByTenant(ctx, tenantID)
}

// StatusCounts returns the number of leases in each lifecycle state.
func (s *LeaseService) StatusCounts(ctx context.Context) (map[model.LeaseStatus]int64, error) {
	counts := make(map[model.LeaseStatus]int64, 4)
	for _, status := range []model.LeaseStatus{
		model.LeasePending, model.LeaseActive, model.LeaseExpired, model.LeaseTerminated,
	} {
		n, err := s.repo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, nil
}

// Update writes lease changes after checking the status transition
// against the lifecycle.
func (s *LeaseService) Update(ctx context.Context, l *model.Lease) error {
	if err := validateLease(l); err != nil {
		return err
	}
	if _, err := model.ParseLeaseStatus(string(l.Status)); err != nil {
		return validationf("%v", err)
	}

	current, err := s.repo.GetByID(ctx, l.ID)
	if err != nil {
		return err
	}
	if current.Status != l.Status && !current.Status.CanTransitionTo(l.Status) {
		return validationf("lease %d cannot transition from %s to %s", l.ID, current.Status, l.Status)
	}

	if err := s.repo.Update(ctx, l); err != nil {
		if err != store.ErrNotFound {
			log.Error().Err(err).Int64("lease_id", l.ID).Msg("Failed to update lease")
		}
		return err
	}
	return nil
}

func (s *LeaseService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
