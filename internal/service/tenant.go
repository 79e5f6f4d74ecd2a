package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

// TenantStore is the persistence surface the tenant service needs.
type TenantStore interface {
	Create(ctx context.Context, t *model.Tenant) error
	GetByID(ctx context.Context, id int64) (*model.Tenant, error)
	GetByEmail(ctx context.Context, email string) (*model.Tenant, error)
	List(ctx context.Context) ([]model.Tenant, error)
	SearchByName(ctx context.Context, name string) ([]model.Tenant, error)
	ListByEmploymentStatus(ctx context.Context, status model.EmploymentStatus) ([]model.Tenant, error)
	Update(ctx context.Context, t *model.Tenant) error
	Delete(ctx context.Context, id int64) error
}

// TenantService provides CRUD and search over tenants and enforces
// email uniqueness.
type TenantService struct {
	repo TenantStore
}

func NewTenantService(repo TenantStore) *TenantService {
	return &TenantService{repo: repo}
}

func validateTenant(t *model.Tenant) error {
	if t.FirstName == "" {
		return validationf("first name is required")
	}
	if t.LastName == "" {
		return validationf("last name is required")
	}
	if t.Email == "" {
		return validationf("email is required")
	}
	if !isValidEmail(t.Email) {
		return validationf("invalid email format")
	}
	if t.Phone == "" {
		return validationf("phone is required")
	}
	if _, err := model.ParseEmploymentStatus(string(t.EmploymentStatus)); err != nil {
		return validationf("%v", err)
	}
	if t.SSNLastFour != "" && len(t.SSNLastFour) != 4 {
		return validationf("ssn last four must be exactly 4 characters")
	}
	if t.MonthlyIncome != nil && t.MonthlyIncome.IsNegative() {
		return validationf("monthly income must be non-negative")
	}
	return nil
}

func isValidEmail(email string) bool {
	if len(email) < 3 || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return false
	}
	return true
}

func (s *TenantService) Create(ctx context.Context, t *model.Tenant) error {
	if err := validateTenant(t); err != nil {
		return err
	}

	existing, err := s.repo.GetByEmail(ctx, t.Email)
	if err != nil {
		log.Error().Err(err).Msg("Failed to check email uniqueness")
		return err
	}
	if existing != nil {
		return validationf("email %s is already registered", t.Email)
	}

	if err := s.repo.Create(ctx, t); err != nil {
		log.Error().Err(err).Msg("Failed to create tenant")
		return err
	}
	return nil
}

func (s *TenantService) Get(ctx context.Context, id int64) (*model.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TenantService) GetByEmail(ctx context.Context, email string) (*model.Tenant, error) {
	t, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (s *TenantService) List(ctx context.Context) ([]model.Tenant, error) {
	return s.repo.List(ctx)
}

func (s *TenantService) SearchByName(ctx context.Context, name string) ([]model.Tenant, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *TenantService) ListByEmploymentStatus(ctx context.Context, status model.EmploymentStatus) ([]model.Tenant, error) {
	return s.repo.ListByEmploymentStatus(ctx, status)
}

func (s *TenantService) Update(ctx context.Context, t *model.Tenant) error {
	if err := validateTenant(t); err != nil {
		return err
	}

	current, err := s.repo.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}

	// Re-check uniqueness only when the address changed.
	if current.Email != t.Email {
		existing, err := s.repo.GetByEmail(ctx, t.Email)
		if err != nil {
			log.Error().Err(err).Msg("Failed to check email uniqueness")
			return err
		}
		if existing != nil {
			return validationf("email %s is already registered", t.Email)
		}
	}

	if err := s.repo.Update(ctx, t); err != nil {
		if err != store.ErrNotFound {
			log.Error().Err(err).Int64("tenant_id", t.ID).Msg("Failed to update tenant")
		}
		return err
	}
	return nil
}

func (s *TenantService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
