// Package storetest provides in-memory stand-ins for the SQL
// repositories so ledger, service, and handler tests can run without
// a database.
package storetest

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

// Payments is an in-memory PaymentRepository substitute. Leases backs
// the tenant and property joins; leave it nil only when those lookups
// are not exercised.
type Payments struct {
	Items  []model.Payment
	Leases *Leases
	nextID int64
}

func (m *Payments) Create(_ context.Context, p *model.Payment) error {
	m.nextID++
	p.ID = m.nextID
	m.Items = append(m.Items, *p)
	return nil
}

func (m *Payments) GetByID(_ context.Context, id int64) (*model.Payment, error) {
	for i := range m.Items {
		if m.Items[i].ID == id {
			p := m.Items[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Payments) List(_ context.Context) ([]model.Payment, error) {
	return append([]model.Payment(nil), m.Items...), nil
}

func (m *Payments) ListByLease(_ context.Context, leaseID int64) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range m.Items {
		if p.LeaseID == leaseID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Payments) ListByStatus(_ context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range m.Items {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Payments) ListByType(_ context.Context, paymentType model.PaymentType) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range m.Items {
		if p.PaymentType == paymentType {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Payments) ListByDateRange(_ context.Context, start, end model.Date) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range m.Items {
		if !p.PaymentDate.Before(start.Time) && !p.PaymentDate.After(end.Time) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Payments) ListByTenant(_ context.Context, tenantID int64) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range m.Items {
		if l := m.leaseFor(p.LeaseID); l != nil && l.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Payments) ListByProperty(_ context.Context, propertyID int64) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range m.Items {
		if l := m.leaseFor(p.LeaseID); l != nil && l.PropertyID == propertyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Payments) leaseFor(leaseID int64) *model.Lease {
	if m.Leases == nil {
		return nil
	}
	for i := range m.Leases.Items {
		if m.Leases.Items[i].ID == leaseID {
			return &m.Leases.Items[i]
		}
	}
	return nil
}

func (m *Payments) LatePayments(_ context.Context) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range m.Items {
		if p.IsCompleted() && p.IsLate() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Payments) Update(_ context.Context, p *model.Payment) error {
	for i := range m.Items {
		if m.Items[i].ID == p.ID {
			m.Items[i] = *p
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *Payments) Delete(_ context.Context, id int64) error {
	for i := range m.Items {
		if m.Items[i].ID == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *Payments) TotalCompletedForLease(_ context.Context, leaseID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range m.Items {
		if p.LeaseID == leaseID && p.Status == model.PaymentCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (m *Payments) OutstandingForLease(_ context.Context, leaseID int64, asOf model.Date) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range m.Items {
		if p.LeaseID == leaseID && p.Status == model.PaymentPending &&
			p.DueDate != nil && p.DueDate.Before(asOf.Time) {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (m *Payments) TotalRentReceived(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range m.Items {
		if p.PaymentType == model.PaymentRent && p.Status == model.PaymentCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (m *Payments) TotalRentExpected(_ context.Context, asOf model.Date) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range m.Items {
		if p.PaymentType == model.PaymentRent && p.DueDate != nil && !p.DueDate.After(asOf.Time) {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (m *Payments) MonthlyRentCollection(_ context.Context, year, month int) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range m.Items {
		if p.PaymentType == model.PaymentRent && p.Status == model.PaymentCompleted &&
			p.PaymentDate.Year() == year && int(p.PaymentDate.Month()) == month {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (m *Payments) CountLate(_ context.Context) (int64, error) {
	var count int64
	for _, p := range m.Items {
		if p.IsCompleted() && p.IsLate() {
			count++
		}
	}
	return count, nil
}

func (m *Payments) Overdue(_ context.Context, asOf model.Date) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range m.Items {
		if p.Status == model.PaymentPending && p.DueDate != nil && p.DueDate.Before(asOf.Time) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate.Time)
	})
	return out, nil
}

// Leases is an in-memory LeaseRepository substitute.
type Leases struct {
	Items  []model.Lease
	nextID int64
}

func (m *Leases) Create(_ context.Context, l *model.Lease) error {
	m.nextID++
	l.ID = m.nextID
	m.Items = append(m.Items, *l)
	return nil
}

func (m *Leases) GetByID(_ context.Context, id int64) (*model.Lease, error) {
	for i := range m.Items {
		if m.Items[i].ID == id {
			l := m.Items[i]
			return &l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Leases) List(_ context.Context) ([]model.Lease, error) {
	return append([]model.Lease(nil), m.Items...), nil
}

func (m *Leases) ListByStatus(_ context.Context, status model.LeaseStatus) ([]model.Lease, error) {
	var out []model.Lease
	for _, l := range m.Items {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *Leases) ListByProperty(_ context.Context, propertyID int64) ([]model.Lease, error) {
	var out []model.Lease
	for _, l := range m.Items {
		if l.PropertyID == propertyID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *Leases) ListByTenant(_ context.Context, tenantID int64) ([]model.Lease, error) {
	var out []model.Lease
	for _, l := range m.Items {
		if l.TenantID == tenantID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *Leases) ActiveByProperty(_ context.Context, propertyID int64) (*model.Lease, error) {
	for i := range m.Items {
		if m.Items[i].PropertyID == propertyID && m.Items[i].Status == model.LeaseActive {
			l := m.Items[i]
			return &l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Leases) ActiveByTenant(_ context.Context, tenantID int64) (*model.Lease, error) {
	for i := range m.Items {
		if m.Items[i].TenantID == tenantID && m.Items[i].Status == model.LeaseActive {
			l := m.Items[i]
			return &l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Leases) CountByStatus(_ context.Context, status model.LeaseStatus) (int64, error) {
	var count int64
	for _, l := range m.Items {
		if l.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *Leases) EndingBetween(_ context.Context, start, end model.Date) ([]model.Lease, error) {
	var out []model.Lease
	for _, l := range m.Items {
		if l.Status == model.LeaseActive &&
			!l.EndDate.Before(start.Time) && !l.EndDate.After(end.Time) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EndDate.Before(out[j].EndDate.Time)
	})
	return out, nil
}

func (m *Leases) ExpiredActive(_ context.Context, today model.Date) ([]model.Lease, error) {
	var out []model.Lease
	for _, l := range m.Items {
		if l.Status == model.LeaseActive && l.EndDate.Before(today.Time) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *Leases) Update(_ context.Context, l *model.Lease) error {
	for i := range m.Items {
		if m.Items[i].ID == l.ID {
			m.Items[i] = *l
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *Leases) Delete(_ context.Context, id int64) error {
	for i := range m.Items {
		if m.Items[i].ID == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Properties is an in-memory PropertyRepository substitute.
type Properties struct {
	Items  []model.Property
	nextID int64
}

func (m *Properties) Create(_ context.Context, p *model.Property) error {
	m.nextID++
	p.ID = m.nextID
	m.Items = append(m.Items, *p)
	return nil
}

func (m *Properties) GetByID(_ context.Context, id int64) (*model.Property, error) {
	for i := range m.Items {
		if m.Items[i].ID == id {
			p := m.Items[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Properties) List(_ context.Context) ([]model.Property, error) {
	return append([]model.Property(nil), m.Items...), nil
}

func (m *Properties) Search(_ context.Context, f store.PropertyFilter) ([]model.Property, error) {
	var out []model.Property
	for _, p := range m.Items {
		if f.City != "" && p.City != f.City {
			continue
		}
		if f.State != "" && p.State != f.State {
			continue
		}
		if f.PropertyType != "" && p.PropertyType != f.PropertyType {
			continue
		}
		if p.Bedrooms < f.MinBedrooms {
			continue
		}
		if f.MinRent != nil && p.MonthlyRent.LessThan(*f.MinRent) {
			continue
		}
		if f.MaxRent != nil && p.MonthlyRent.GreaterThan(*f.MaxRent) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *Properties) Update(_ context.Context, p *model.Property) error {
	for i := range m.Items {
		if m.Items[i].ID == p.ID {
			m.Items[i] = *p
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *Properties) Delete(_ context.Context, id int64) error {
	for i := range m.Items {
		if m.Items[i].ID == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Tenants is an in-memory TenantRepository substitute.
type Tenants struct {
	Items  []model.Tenant
	nextID int64
}

func (m *Tenants) Create(_ context.Context, t *model.Tenant) error {
	m.nextID++
	t.ID = m.nextID
	m.Items = append(m.Items, *t)
	return nil
}

func (m *Tenants) GetByID(_ context.Context, id int64) (*model.Tenant, error) {
	for i := range m.Items {
		if m.Items[i].ID == id {
			t := m.Items[i]
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Tenants) GetByEmail(_ context.Context, email string) (*model.Tenant, error) {
	for i := range m.Items {
		if m.Items[i].Email == email {
			t := m.Items[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *Tenants) List(_ context.Context) ([]model.Tenant, error) {
	return append([]model.Tenant(nil), m.Items...), nil
}

func (m *Tenants) SearchByName(_ context.Context, name string) ([]model.Tenant, error) {
	var out []model.Tenant
	needle := strings.ToLower(name)
	for _, t := range m.Items {
		if strings.Contains(strings.ToLower(t.FirstName), needle) ||
			strings.Contains(strings.ToLower(t.LastName), needle) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *Tenants) ListByEmploymentStatus(_ context.Context, status model.EmploymentStatus) ([]model.Tenant, error) {
	var out []model.Tenant
	for _, t := range m.Items {
		if t.EmploymentStatus == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *Tenants) Update(_ context.Context, t *model.Tenant) error {
	for i := range m.Items {
		if m.Items[i].ID == t.ID {
			m.Items[i] = *t
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *Tenants) Delete(_ context.Context, id int64) error {
	for i := range m.Items {
		if m.Items[i].ID == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Maintenance is an in-memory MaintenanceRepository substitute.
type Maintenance struct {
	Items  []model.MaintenanceRequest
	nextID int64
}

func (m *Maintenance) Create(_ context.Context, r *model.MaintenanceRequest) error {
	m.nextID++
	r.ID = m.nextID
	m.Items = append(m.Items, *r)
	return nil
}

func (m *Maintenance) GetByID(_ context.Context, id int64) (*model.MaintenanceRequest, error) {
	for i := range m.Items {
		if m.Items[i].ID == id {
			r := m.Items[i]
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Maintenance) List(_ context.Context) ([]model.MaintenanceRequest, error) {
	return append([]model.MaintenanceRequest(nil), m.Items...), nil
}

func (m *Maintenance) ListByProperty(_ context.Context, propertyID int64) ([]model.MaintenanceRequest, error) {
	var out []model.MaintenanceRequest
	for _, r := range m.Items {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *Maintenance) ListByStatus(_ context.Context, status model.MaintenanceStatus) ([]model.MaintenanceRequest, error) {
	var out []model.MaintenanceRequest
	for _, r := range m.Items {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *Maintenance) ListByPriority(_ context.Context, priority model.MaintenancePriority) ([]model.MaintenanceRequest, error) {
	var out []model.MaintenanceRequest
	for _, r := range m.Items {
		if r.Priority == priority {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *Maintenance) TotalActualCostForProperty(_ context.Context, propertyID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, r := range m.Items {
		if r.PropertyID == propertyID && r.Status == model.MaintenanceCompleted && r.ActualCost != nil {
			total = total.Add(*r.ActualCost)
		}
	}
	return total, nil
}

func (m *Maintenance) Update(_ context.Context, r *model.MaintenanceRequest) error {
	for i := range m.Items {
		if m.Items[i].ID == r.ID {
			m.Items[i] = *r
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *Maintenance) Delete(_ context.Context, id int64) error {
	for i := range m.Items {
		if m.Items[i].ID == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
