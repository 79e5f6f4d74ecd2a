package main

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/service"
	"github.com/rentflow-solutions/property-management-service/internal/store/storetest"
)

func newTestConsole() (*console, *storetest.Properties, *storetest.Tenants, *storetest.Maintenance) {
	properties := &storetest.Properties{}
	tenants := &storetest.Tenants{}
	requests := &storetest.Maintenance{}
	cl := &console{
		properties: service.NewPropertyService(properties),
		tenants:    service.NewTenantService(tenants),
		requests:   service.NewMaintenanceService(requests),
	}
	return cl, properties, tenants, requests
}

func input(lines ...string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestCreatePropertyFromPrompts(t *testing.T) {
	cl, properties, _, _ := newTestConsole()

	scanner := input(
		"12 Oak St", "Greenville", "SC", "29601",
		"HOUSE", "3", "2.5", "1450.00",
		"1800",       // square feet
		"2020-06-15", // purchase date
		"250000.00",  // purchase price
	)
	require.NoError(t, cl.createProperty(scanner))

	require.Len(t, properties.Items, 1)
	p := properties.Items[0]
	assert.Equal(t, "12 Oak St", p.Address)
	assert.Equal(t, model.PropertyType("HOUSE"), p.PropertyType)
	assert.Equal(t, 3, p.Bedrooms)
	assert.True(t, p.MonthlyRent.Equal(decimal.RequireFromString("1450.00")))
	require.NotNil(t, p.SquareFeet)
	assert.Equal(t, 1800, *p.SquareFeet)
	require.NotNil(t, p.PurchaseDate)
	assert.Equal(t, "2020-06-15", p.PurchaseDate.String())
}

func TestCreatePropertySkipsOptionalFields(t *testing.T) {
	cl, properties, _, _ := newTestConsole()

	scanner := input(
		"7 Pine Ave", "Columbia", "SC", "29201",
		"APARTMENT", "1", "1", "900",
		"", "", "", // square feet, purchase date, purchase price
	)
	require.NoError(t, cl.createProperty(scanner))

	require.Len(t, properties.Items, 1)
	assert.Nil(t, properties.Items[0].SquareFeet)
	assert.Nil(t, properties.Items[0].PurchaseDate)
	assert.Nil(t, properties.Items[0].PurchasePrice)
}

func TestUpdatePropertyBlankKeepsCurrent(t *testing.T) {
	cl, properties, _, _ := newTestConsole()
	seedProperty(t, cl)

	// Everything blank except rent.
	scanner := input("1", "", "", "", "", "", "", "", "1600.00")
	require.NoError(t, cl.updateProperty(scanner))

	p := properties.Items[0]
	assert.Equal(t, "12 Oak St", p.Address)
	assert.Equal(t, "Greenville", p.City)
	assert.True(t, p.MonthlyRent.Equal(decimal.RequireFromString("1600.00")))
}

func TestDeletePropertyRequiresTypedConfirmation(t *testing.T) {
	cl, properties, _, _ := newTestConsole()
	seedProperty(t, cl)

	require.NoError(t, cl.deleteProperty(input("1", "yes")))
	assert.Len(t, properties.Items, 1, "wrong confirmation word must not delete")

	require.NoError(t, cl.deleteProperty(input("1", "DELETE")))
	assert.Empty(t, properties.Items)
}

func TestUpdateTenantBlankKeepsCurrent(t *testing.T) {
	cl, _, tenants, _ := newTestConsole()
	require.NoError(t, cl.tenants.Create(context.Background(), &model.Tenant{
		FirstName:        "Ada",
		LastName:         "Byrne",
		Email:            "ada@example.com",
		Phone:            "555-0101",
		EmploymentStatus: model.EmploymentEmployed,
	}))

	scanner := input("1", "", "", "ada.byrne@example.com", "", "")
	require.NoError(t, cl.updateTenant(scanner))

	tenant := tenants.Items[0]
	assert.Equal(t, "Ada", tenant.FirstName)
	assert.Equal(t, "ada.byrne@example.com", tenant.Email)
	assert.Equal(t, model.EmploymentEmployed, tenant.EmploymentStatus)
}

func TestUpdateMaintenanceStatusCompletionDefaultsToToday(t *testing.T) {
	cl, _, _, requests := newTestConsole()
	require.NoError(t, cl.requests.Create(context.Background(), &model.MaintenanceRequest{
		PropertyID:  1,
		RequestDate: model.Today(),
		Description: "Leaking kitchen faucet",
		Priority:    model.PriorityHigh,
		Status:      model.MaintenanceOpen,
	}))

	scanner := input(
		"1", "COMPLETED",
		"",       // completion date, default today
		"185.50", // actual cost
		"Replaced the cartridge.",
	)
	require.NoError(t, cl.updateMaintenanceStatus(scanner))

	m := requests.Items[0]
	assert.Equal(t, model.MaintenanceCompleted, m.Status)
	require.NotNil(t, m.CompletionDate)
	assert.Equal(t, model.Today(), *m.CompletionDate)
	require.NotNil(t, m.ActualCost)
	assert.True(t, m.ActualCost.Equal(decimal.RequireFromString("185.50")))
	assert.Equal(t, "Replaced the cartridge.", m.Notes)
}

func TestUpdateMaintenanceStatusRejectsUnknownStatus(t *testing.T) {
	cl, _, _, requests := newTestConsole()
	require.NoError(t, cl.requests.Create(context.Background(), &model.MaintenanceRequest{
		PropertyID:  1,
		RequestDate: model.Today(),
		Description: "Broken window latch",
		Priority:    model.PriorityLow,
		Status:      model.MaintenanceOpen,
	}))

	err := cl.updateMaintenanceStatus(input("1", "DONE"))
	require.Error(t, err)
	assert.Equal(t, model.MaintenanceOpen, requests.Items[0].Status)
}

func TestPropertyExplorerFiltersByCity(t *testing.T) {
	cl, _, _, _ := newTestConsole()
	seedProperty(t, cl)
	require.NoError(t, cl.properties.Create(context.Background(), &model.Property{
		Address:      "44 Main St",
		City:         "Columbia",
		State:        "SC",
		ZipCode:      "29201",
		PropertyType: model.PropertyType("CONDO"),
		Bedrooms:     2,
		Bathrooms:    decimal.RequireFromString("1"),
		MonthlyRent:  decimal.RequireFromString("1100"),
	}))

	// Filter by city, then exit the sub-menu.
	require.NoError(t, cl.propertyExplorer(input("2", "Greenville", "0")))
}

func seedProperty(t *testing.T, cl *console) {
	t.Helper()
	require.NoError(t, cl.properties.Create(context.Background(), &model.Property{
		Address:      "12 Oak St",
		City:         "Greenville",
		State:        "SC",
		ZipCode:      "29601",
		PropertyType: model.PropertyType("HOUSE"),
		Bedrooms:     3,
		Bathrooms:    decimal.RequireFromString("2.5"),
		MonthlyRent:  decimal.RequireFromString("1450.00"),
	}))
}
