package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store"
	"github.com/rentflow-solutions/property-management-service/internal/store/storetest"
)

func validTenant(email string) *model.Tenant {
	return &model.Tenant{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            email,
		Phone:            "555-0100",
		EmploymentStatus: model.EmploymentEmployed,
	}
}

func TestTenantCreateEnforcesEmailUniqueness(t *testing.T) {
	repo := &storetest.Tenants{}
	svc := NewTenantService(repo)

	require.NoError(t, svc.Create(context.Background(), validTenant("jane@example.com")))

	err := svc.Create(context.Background(), validTenant("jane@example.com"))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "already registered")
}

func TestTenantCreateValidation(t *testing.T) {
	svc := NewTenantService(&storetest.Tenants{})

	tn := validTenant("not-an-email")
	err := svc.Create(context.Background(), tn)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	tn = validTenant("jane@example.com")
	tn.SSNLastFour = "123"
	err = svc.Create(context.Background(), tn)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	tn = validTenant("jane@example.com")
	tn.EmploymentStatus = "FREELANCE"
	err = svc.Create(context.Background(), tn)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestTenantUpdateKeepingEmailSkipsUniquenessCheck(t *testing.T) {
	repo := &storetest.Tenants{}
	svc := NewTenantService(repo)

	tn := validTenant("jane@example.com")
	require.NoError(t, svc.Create(context.Background(), tn))

	tn.Phone = "555-0199"
	require.NoError(t, svc.Update(context.Background(), tn))
}

func TestTenantUpdateToTakenEmailFails(t *testing.T) {
	repo := &storetest.Tenants{}
	svc := NewTenantService(repo)

	require.NoError(t, svc.Create(context.Background(), validTenant("jane@example.com")))
	other := validTenant("john@example.com")
	require.NoError(t, svc.Create(context.Background(), other))

	other.Email = "jane@example.com"
	err := svc.Update(context.Background(), other)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestTenantGetByEmailNotFound(t *testing.T) {
	svc := NewTenantService(&storetest.Tenants{})

	_, err := svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
