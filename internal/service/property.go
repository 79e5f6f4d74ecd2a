package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

// PropertyStore is the persistence surface the property service needs.
type PropertyStore interface {
	Create(ctx context.Context, p *model.Property) error
	GetByID(ctx context.Context, id int64) (*model.Property, error)
	List(ctx context.Context) ([]model.Property, error)
	Search(ctx context.Context, f store.PropertyFilter) ([]model.Property, error)
	Update(ctx context.Context, p *model.Property) error
	Delete(ctx context.Context, id int64) error
}

// PropertyService provides CRUD and search over properties.
type PropertyService struct {
	repo PropertyStore
}

func NewPropertyService(repo PropertyStore) *PropertyService {
	return &PropertyService{repo: repo}
}

func validateProperty(p *model.Property) error {
	if p.Address == "" {
		return validationf("address is required")
	}
	if p.City == "" {
		return validationf("city is required")
	}
	if p.State == "" {
		return validationf("state is required")
	}
	if p.ZipCode == "" {
		return validationf("zip code is required")
	}
	if _, err := model.ParsePropertyType(string(p.PropertyType)); err != nil {
		return validationf("%v", err)
	}
	if p.Bedrooms < 0 {
		return validationf("bedrooms must be non-negative")
	}
	if p.Bathrooms.IsNegative() {
		return validationf("bathrooms must be non-negative")
	}
	if p.MonthlyRent.IsNegative() {
		return validationf("monthly rent must be non-negative")
	}
	return nil
}

func (s *PropertyService) Create(ctx context.Context, p *model.Property) error {
	if err := validateProperty(p); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		log.Error().Err(err).Msg("Failed to create property")
		return err
	}
	return nil
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*model.Property, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PropertyService) List(ctx context.Context) ([]model.Property, error) {
	return s.repo.List(ctx)
}

func (s *PropertyService) Search(ctx context.Context, f store.PropertyFilter) ([]model.Property, error) {
	return s.repo.Search(ctx, f)
}

func (s *PropertyService) Update(ctx context.Context, p *model.Property) error {
	if err := validateProperty(p); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		if err != store.ErrNotFound {
			log.Error().Err(err).Int64("property_id", p.ID).Msg("Failed to update property")
		}
		return err
	}
	return nil
}

func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
