package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentflow-solutions/property-management-service/internal/ledger"
	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/service"
	"github.com/rentflow-solutions/property-management-service/internal/store/storetest"
)

type testEnv struct {
	router   *gin.Engine
	leases   *storetest.Leases
	payments *storetest.Payments
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	properties := &storetest.Properties{}
	tenants := &storetest.Tenants{}
	leases := &storetest.Leases{}
	payments := &storetest.Payments{Leases: leases}
	maintenance := &storetest.Maintenance{}

	h := &Handlers{
		Properties:  service.NewPropertyService(properties),
		Tenants:     service.NewTenantService(tenants),
		Leases:      service.NewLeaseService(leases),
		Payments:    service.NewPaymentService(payments, leases),
		Maintenance: service.NewMaintenanceService(maintenance),
		Reconciler:  ledger.New(payments, leases),
	}
	return &testEnv{router: NewRouter(h), leases: leases, payments: payments}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetProperty(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/properties", map[string]interface{}{
		"address":       "12 Main St",
		"city":          "Springfield",
		"state":         "IL",
		"zip_code":      "62701",
		"property_type": "APARTMENT",
		"bedrooms":      2,
		"bathrooms":     "1.5",
		"monthly_rent":  "1200.00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	w = env.do(t, http.MethodGet, "/api/properties/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPropertyNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/properties/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPropertyInvalidID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/properties/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePropertyValidationError(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/properties", map[string]interface{}{
		"city": "Springfield",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func seedLease(t *testing.T, env *testEnv, status model.LeaseStatus) int64 {
	t.Helper()
	l := &model.Lease{
		PropertyID:      1,
		TenantID:        1,
		StartDate:       model.NewDate(2024, time.January, 1),
		EndDate:         model.NewDate(2024, time.December, 31),
		MonthlyRent:     decimal.RequireFromString("1200.00"),
		SecurityDeposit: decimal.RequireFromString("1200.00"),
		Status:          status,
	}
	require.NoError(t, env.leases.Create(context.Background(), l))
	return l.ID
}

func TestLeaseLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	seedLease(t, env, model.LeasePending)

	// PENDING -> EXPIRED is not a legal transition.
	w := env.do(t, http.MethodPut, "/api/leases/1", map[string]interface{}{
		"property_id":      1,
		"tenant_id":        1,
		"start_date":       "2024-01-01",
		"end_date":         "2024-12-31",
		"monthly_rent":     "1200.00",
		"security_deposit": "1200.00",
		"status":           "EXPIRED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = env.do(t, http.MethodPut, "/api/leases/1", map[string]interface{}{
		"property_id":      1,
		"tenant_id":        1,
		"start_date":       "2024-01-01",
		"end_date":         "2024-12-31",
		"monthly_rent":     "1200.00",
		"security_deposit": "1200.00",
		"status":           "ACTIVE",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCreatePaymentForMissingLease(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/payments", map[string]interface{}{
		"lease_id":       42,
		"payment_date":   "2024-01-05",
		"amount":         "1200.00",
		"payment_type":   "RENT",
		"payment_method": "BANK_TRANSFER",
		"status":         "COMPLETED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestLeaseBalanceEndpoint(t *testing.T) {
	env := newTestEnv(t)
	id := seedLease(t, env, model.LeaseActive)

	due1 := model.NewDate(2024, time.January, 1)
	due2 := model.NewDate(2024, time.February, 1)
	env.payments.Items = []model.Payment{
		{LeaseID: id, Amount: decimal.RequireFromString("1200.00"),
			PaymentType: model.PaymentRent, Status: model.PaymentCompleted, DueDate: &due1},
		{LeaseID: id, Amount: decimal.RequireFromString("1200.00"),
			PaymentType: model.PaymentRent, Status: model.PaymentPending, DueDate: &due2},
	}

	w := env.do(t, http.MethodGet, "/api/payments/lease/1/balance?asOf=2024-02-15", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got struct {
		LeaseID     int64  `json:"lease_id"`
		AsOf        string `json:"as_of"`
		TotalPaid   string `json:"total_paid"`
		Outstanding string `json:"outstanding"`
		Status      string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, id, got.LeaseID)
	assert.Equal(t, "2024-02-15", got.AsOf)
	assert.Equal(t, "1200", got.TotalPaid)
	assert.Equal(t, "1200", got.Outstanding)
	assert.Equal(t, "OWES", got.Status)
}

func TestPaymentSummaryEndpoint(t *testing.T) {
	env := newTestEnv(t)

	due := model.NewDate(2024, time.January, 1)
	env.payments.Items = []model.Payment{
		{LeaseID: 1, Amount: decimal.RequireFromString("5000.00"),
			PaymentType: model.PaymentRent, Status: model.PaymentCompleted, DueDate: &due},
		{LeaseID: 1, Amount: decimal.RequireFromString("5000.00"),
			PaymentType: model.PaymentRent, Status: model.PaymentPending, DueDate: &due},
	}

	w := env.do(t, http.MethodGet, "/api/payments/summary?asOf=2024-03-01", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got struct {
		CollectionRate string `json:"collection_rate"`
		LateCount      int64  `json:"late_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "50", got.CollectionRate)
	assert.Zero(t, got.LateCount)
}

func TestExpiringLeasesRejectsNegativeDays(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/leases/expiring?days=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestOverdueEndpointRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/payments/overdue?asOf=15-02-2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestListPaymentsByTenantJoinsThroughLease(t *testing.T) {
	env := newTestEnv(t)
	leaseID := seedLease(t, env, model.LeaseActive) // tenant 1, property 1

	other := &model.Lease{
		PropertyID:      2,
		TenantID:        2,
		StartDate:       model.NewDate(2024, time.January, 1),
		EndDate:         model.NewDate(2024, time.December, 31),
		MonthlyRent:     decimal.RequireFromString("900.00"),
		SecurityDeposit: decimal.RequireFromString("900.00"),
		Status:          model.LeaseActive,
	}
	require.NoError(t, env.leases.Create(context.Background(), other))

	env.payments.Items = []model.Payment{
		{ID: 1, LeaseID: leaseID, Amount: decimal.RequireFromString("1200.00"),
			PaymentType: model.PaymentRent, Status: model.PaymentCompleted},
		{ID: 2, LeaseID: other.ID, Amount: decimal.RequireFromString("900.00"),
			PaymentType: model.PaymentRent, Status: model.PaymentCompleted},
	}

	w := env.do(t, http.MethodGet, "/api/payments/tenant/1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got []model.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, leaseID, got[0].LeaseID)

	w = env.do(t, http.MethodGet, "/api/payments/property/2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, other.ID, got[0].LeaseID)
}

func TestMonthlyRentCollectionEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.payments.Items = []model.Payment{
		{LeaseID: 1, PaymentDate: model.NewDate(2024, time.January, 5),
			Amount: decimal.RequireFromString("1200.00"), PaymentType: model.PaymentRent,
			Status: model.PaymentCompleted},
		{LeaseID: 1, PaymentDate: model.NewDate(2024, time.February, 5),
			Amount: decimal.RequireFromString("1200.00"), PaymentType: model.PaymentRent,
			Status: model.PaymentCompleted},
	}

	w := env.do(t, http.MethodGet, "/api/payments/monthly?year=2024&month=1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got struct {
		Year  int    `json:"year"`
		Month int    `json:"month"`
		Total string `json:"total_collected"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 1, got.Month)
	assert.Equal(t, "1200", got.Total)

	w = env.do(t, http.MethodGet, "/api/payments/monthly?year=2024&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaseStatusCountsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	seedLease(t, env, model.LeaseActive)
	seedLease(t, env, model.LeaseActive)
	seedLease(t, env, model.LeasePending)

	w := env.do(t, http.MethodGet, "/api/leases/stats", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(2), got["ACTIVE"])
	assert.Equal(t, int64(1), got["PENDING"])
	assert.Equal(t, int64(0), got["EXPIRED"])
}

func TestDeleteLeaseNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodDelete, "/api/leases/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
