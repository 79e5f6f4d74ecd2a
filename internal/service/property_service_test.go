package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store"
	"github.com/rentflow-solutions/property-management-service/internal/store/storetest"
)

func validProperty() *model.Property {
	return &model.Property{
		Address:      "12 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		PropertyType: model.PropertyApartment,
		Bedrooms:     2,
		Bathrooms:    decimal.RequireFromString("1.5"),
		MonthlyRent:  decimal.RequireFromString("1200.00"),
	}
}

func TestPropertyCreateValidation(t *testing.T) {
	svc := NewPropertyService(&storetest.Properties{})

	p := validProperty()
	p.Address = ""
	err := svc.Create(context.Background(), p)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	p = validProperty()
	p.PropertyType = "CASTLE"
	err = svc.Create(context.Background(), p)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	p = validProperty()
	p.Bedrooms = -1
	err = svc.Create(context.Background(), p)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestPropertySearchFilters(t *testing.T) {
	repo := &storetest.Properties{}
	svc := NewPropertyService(repo)

	a := validProperty()
	require.NoError(t, svc.Create(context.Background(), a))

	b := validProperty()
	b.City = "Chicago"
	b.MonthlyRent = decimal.RequireFromString("2500.00")
	require.NoError(t, svc.Create(context.Background(), b))

	maxRent := decimal.RequireFromString("2000.00")
	got, err := svc.Search(context.Background(), store.PropertyFilter{MaxRent: &maxRent})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	got, err = svc.Search(context.Background(), store.PropertyFilter{City: "Chicago"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestPropertyGetNotFound(t *testing.T) {
	svc := NewPropertyService(&storetest.Properties{})

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
