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

func validPayment(leaseID int64) *model.Payment {
	return &model.Payment{
		LeaseID:       leaseID,
		PaymentDate:   model.NewDate(2024, time.January, 5),
		Amount:        decimal.RequireFromString("1200.00"),
		PaymentType:   model.PaymentRent,
		PaymentMethod: model.MethodBankTransfer,
		Status:        model.PaymentCompleted,
	}
}

func paymentServiceWithLease(t *testing.T) (*PaymentService, *storetest.Payments, int64) {
	t.Helper()
	leases := &storetest.Leases{}
	l := validLease()
	l.Status = model.LeaseActive
	require.NoError(t, leases.Create(context.Background(), l))

	payments := &storetest.Payments{}
	return NewPaymentService(payments, leases), payments, l.ID
}

func TestPaymentCreateRequiresExistingLease(t *testing.T) {
	svc, _, _ := paymentServiceWithLease(t)

	err := svc.Create(context.Background(), validPayment(42))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "lease 42 does not exist")
}

func TestPaymentCreateOK(t *testing.T) {
	svc, repo, leaseID := paymentServiceWithLease(t)

	p := validPayment(leaseID)
	require.NoError(t, svc.Create(context.Background(), p))
	assert.NotZero(t, p.ID)
	assert.Len(t, repo.Items, 1)
}

func TestPaymentCreateValidation(t *testing.T) {
	svc, _, leaseID := paymentServiceWithLease(t)

	p := validPayment(leaseID)
	p.Amount = decimal.RequireFromString("-0.01")
	err := svc.Create(context.Background(), p)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	p = validPayment(leaseID)
	p.PaymentType = "TIP"
	err = svc.Create(context.Background(), p)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	p = validPayment(leaseID)
	p.PaymentDate = model.Date{}
	err = svc.Create(context.Background(), p)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestPaymentUpdateRequiresExistingLease(t *testing.T) {
	svc, _, leaseID := paymentServiceWithLease(t)

	p := validPayment(leaseID)
	require.NoError(t, svc.Create(context.Background(), p))

	p.LeaseID = 42
	err := svc.Update(context.Background(), p)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "lease 42 does not exist")

	p.LeaseID = leaseID
	require.NoError(t, svc.Update(context.Background(), p))
}

func TestPaymentListByDateRangeRejectsInvertedRange(t *testing.T) {
	svc, _, _ := paymentServiceWithLease(t)

	_, err := svc.ListByDateRange(context.Background(),
		model.NewDate(2024, time.March, 1), model.NewDate(2024, time.January, 1))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestPaymentListLate(t *testing.T) {
	svc, _, leaseID := paymentServiceWithLease(t)

	due := model.NewDate(2024, time.January, 10)
	late := validPayment(leaseID)
	late.PaymentDate = model.NewDate(2024, time.January, 15)
	late.DueDate = &due
	require.NoError(t, svc.Create(context.Background(), late))

	onTime := validPayment(leaseID)
	onTime.PaymentDate = model.NewDate(2024, time.January, 8)
	onTime.DueDate = &due
	require.NoError(t, svc.Create(context.Background(), onTime))

	got, err := svc.ListLate(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, late.ID, got[0].ID)
}
