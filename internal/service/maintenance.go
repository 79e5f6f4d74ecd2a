package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

// MaintenanceStore is the persistence surface the maintenance service
// needs.
type MaintenanceStore interface {
	Create(ctx context.Context, m *model.MaintenanceRequest) error
	GetByID(ctx context.Context, id int64) (*model.MaintenanceRequest, error)
	List(ctx context.Context) ([]model.MaintenanceRequest, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]model.MaintenanceRequest, error)
	ListByStatus(ctx context.Context, status model.MaintenanceStatus) ([]model.MaintenanceRequest, error)
	ListByPriority(ctx context.Context, priority model.MaintenancePriority) ([]model.MaintenanceRequest, error)
	TotalActualCostForProperty(ctx context.Context, propertyID int64) (decimal.Decimal, error)
	Update(ctx context.Context, m *model.MaintenanceRequest) error
	Delete(ctx context.Context, id int64) error
}

// MaintenanceService provides CRUD over maintenance requests.
type MaintenanceService struct {
	repo MaintenanceStore
}

func NewMaintenanceService(repo MaintenanceStore) *MaintenanceService {
	return &MaintenanceService{repo: repo}
}

func validateMaintenanceRequest(m *model.MaintenanceRequest) error {
	if m.PropertyID == 0 {
		return validationf("property id is required")
	}
	if m.RequestDate.IsZero() {
		return validationf("request date is required")
	}
	if m.Description == "" {
		return validationf("description is required")
	}
	if _, err := model.ParseMaintenancePriority(string(m.Priority)); err != nil {
		return validationf("%v", err)
	}
	if _, err := model.ParseMaintenanceStatus(string(m.Status)); err != nil {
		return validationf("%v", err)
	}
	if m.EstimatedCost != nil && m.EstimatedCost.IsNegative() {
		return validationf("estimated cost must be non-negative")
	}
	if m.ActualCost != nil && m.ActualCost.IsNegative() {
		return validationf("actual cost must be non-negative")
	}
	return nil
}

func (s *MaintenanceService) Create(ctx context.Context, m *model.MaintenanceRequest) error {
	if err := validateMaintenanceRequest(m); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		log.Error().Err(err).Int64("property_id", m.PropertyID).Msg("Failed to create maintenance request")
		return err
	}
	return nil
}

func (s *MaintenanceService) Get(ctx context.Context, id int64) (*model.MaintenanceRequest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MaintenanceService) List(ctx context.Context) ([]model.MaintenanceRequest, error) {
	return s.repo.List(ctx)
}

func (s *MaintenanceService) ListByProperty(ctx context.Context, propertyID int64) ([]model.MaintenanceRequest, error) {
	return s.repo.ListByProperty(ctx, propertyID)
}

func (s *MaintenanceService) ListByStatus(ctx context.Context, status model.MaintenanceStatus) ([]model.MaintenanceRequest, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *MaintenanceService) ListByPriority(ctx context.Context, priority model.MaintenancePriority) ([]model.MaintenanceRequest, error) {
	return s.repo.ListByPriority(ctx, priority)
}

// TotalCostForProperty sums the actual cost of completed requests for
// a property.
func (s *MaintenanceService) TotalCostForProperty(ctx context.Context, propertyID int64) (decimal.Decimal, error) {
	return s.repo.TotalActualCostForProperty(ctx, propertyID)
}

func (s *MaintenanceService) Update(ctx context.Context, m *model.MaintenanceRequest) error {
	if err := validateMaintenanceRequest(m); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, m); err != nil {
		if err != store.ErrNotFound {
			log.Error().Err(err).Int64("request_id", m.ID).Msg("Failed to update maintenance request")
		}
		return err
	}
	return nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
