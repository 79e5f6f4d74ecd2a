package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentflow-solutions/property-management-service/internal/model"
)

// testStore opens the database named by RENTFLOW_TEST_DSN, skipping
// the test when none is configured. Migrations must already be
// applied.
func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("RENTFLOW_TEST_DSN")
	if dsn == "" {
		t.Skip("RENTFLOW_TEST_DSN not set; skipping database tests")
	}
	st, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestPropertyCRUD(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	p := &model.Property{
		Address:      "740 Test Ave",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		PropertyType: model.PropertyHouse,
		Bedrooms:     3,
		Bathrooms:    decimal.RequireFromString("2.0"),
		MonthlyRent:  decimal.RequireFromString("1850.00"),
	}
	require.NoError(t, st.Properties.Create(ctx, p))
	require.NotZero(t, p.ID)
	defer st.Properties.Delete(ctx, p.ID)

	got, err := st.Properties.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Address, got.Address)
	assert.True(t, got.MonthlyRent.Equal(p.MonthlyRent))

	got.Bedrooms = 4
	require.NoError(t, st.Properties.Update(ctx, got))

	again, err := st.Properties.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, again.Bedrooms)

	require.NoError(t, st.Properties.Delete(ctx, p.ID))
	_, err = st.Properties.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTenantSSNRoundTrip(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	tn := &model.Tenant{
		FirstName:        "Pat",
		LastName:         "Tester",
		Email:            "pat.tester+store@example.com",
		Phone:            "555-0175",
		SSNLastFour:      "6789",
		EmploymentStatus: model.EmploymentEmployed,
	}
	require.NoError(t, st.Tenants.Create(ctx, tn))
	defer st.Tenants.Delete(ctx, tn.ID)

	got, err := st.Tenants.GetByID(ctx, tn.ID)
	require.NoError(t, err)
	assert.Equal(t, "6789", got.SSNLastFour)
}

func TestPaymentAggregates(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	p := &model.Property{
		Address:      "741 Test Ave",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		PropertyType: model.PropertyApartment,
		Bedrooms:     1,
		Bathrooms:    decimal.RequireFromString("1.0"),
		MonthlyRent:  decimal.RequireFromString("900.00"),
	}
	require.NoError(t, st.Properties.Create(ctx, p))
	defer st.Properties.Delete(ctx, p.ID)

	tn := &model.Tenant{
		FirstName:        "Agg",
		LastName:         "Tester",
		Email:            "agg.tester+store@example.com",
		Phone:            "555-0176",
		EmploymentStatus: model.EmploymentEmployed,
	}
	require.NoError(t, st.Tenants.Create(ctx, tn))
	defer st.Tenants.Delete(ctx, tn.ID)

	l := &model.Lease{
		PropertyID:      p.ID,
		TenantID:        tn.ID,
		StartDate:       model.NewDate(2024, time.January, 1),
		EndDate:         model.NewDate(2024, time.December, 31),
		MonthlyRent:     decimal.RequireFromString("900.00"),
		SecurityDeposit: decimal.RequireFromString("900.00"),
		Status:          model.LeaseActive,
	}
	require.NoError(t, st.Leases.Create(ctx, l))
	defer st.Leases.Delete(ctx, l.ID)

	due1 := model.NewDate(2024, time.January, 1)
	due2 := model.NewDate(2024, time.February, 1)
	completed := &model.Payment{
		LeaseID:       l.ID,
		PaymentDate:   model.NewDate(2024, time.January, 1),
		Amount:        decimal.RequireFromString("900.00"),
		PaymentType:   model.PaymentRent,
		PaymentMethod: model.MethodBankTransfer,
		Status:        model.PaymentCompleted,
		DueDate:       &due1,
	}
	pending := &model.Payment{
		LeaseID:       l.ID,
		PaymentDate:   model.NewDate(2024, time.February, 1),
		Amount:        decimal.RequireFromString("900.00"),
		PaymentType:   model.PaymentRent,
		PaymentMethod: model.MethodBankTransfer,
		Status:        model.PaymentPending,
		DueDate:       &due2,
	}
	require.NoError(t, st.Payments.Create(ctx, completed))
	defer st.Payments.Delete(ctx, completed.ID)
	require.NoError(t, st.Payments.Create(ctx, pending))
	defer st.Payments.Delete(ctx, pending.ID)

	total, err := st.Payments.TotalCompletedForLease(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("900.00")), "got %s", total)

	outstanding, err := st.Payments.OutstandingForLease(ctx, l.ID, model.NewDate(2024, time.February, 15))
	require.NoError(t, err)
	assert.True(t, outstanding.Equal(decimal.RequireFromString("900.00")), "got %s", outstanding)

	overdue, err := st.Payments.Overdue(ctx, model.NewDate(2024, time.February, 15))
	require.NoError(t, err)
	found := false
	for _, op := range overdue {
		if op.ID == pending.ID {
			found = true
		}
	}
	assert.True(t, found, "pending payment should be overdue")
}
