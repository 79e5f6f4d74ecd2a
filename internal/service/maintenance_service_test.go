package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store/storetest"
)

func validRequest(propertyID int64) *model.MaintenanceRequest {
	return &model.MaintenanceRequest{
		PropertyID:  propertyID,
		RequestDate: model.NewDate(2024, time.March, 1),
		Description: "Leaking kitchen faucet",
		Priority:    model.PriorityMedium,
		Status:      model.MaintenanceOpen,
	}
}

func TestMaintenanceCreateValidation(t *testing.T) {
	svc := NewMaintenanceService(&storetest.Maintenance{})

	m := validRequest(1)
	m.Description = ""
	err := svc.Create(context.Background(), m)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	m = validRequest(1)
	m.Priority = "SOMEDAY"
	err = svc.Create(context.Background(), m)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	cost := decimal.RequireFromString("-5")
	m = validRequest(1)
	m.EstimatedCost = &cost
	err = svc.Create(context.Background(), m)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestMaintenanceTotalCostForProperty(t *testing.T) {
	repo := &storetest.Maintenance{}
	svc := NewMaintenanceService(repo)

	done := decimal.RequireFromString("150.00")
	m := validRequest(1)
	m.Status = model.MaintenanceCompleted
	m.ActualCost = &done
	require.NoError(t, svc.Create(context.Background(), m))

	open := validRequest(1)
	require.NoError(t, svc.Create(context.Background(), open))

	other := decimal.RequireFromString("999.00")
	m2 := validRequest(2)
	m2.Status = model.MaintenanceCompleted
	m2.ActualCost = &other
	require.NoError(t, svc.Create(context.Background(), m2))

	total, err := svc.TotalCostForProperty(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("150.00")), "got %s", total)
}
