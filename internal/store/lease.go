package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rentflow-solutions/property-management-service/internal/model"
)

// LeaseRepository handles database operations for leases.
type LeaseRepository struct {
	db *sql.DB
}

const leaseColumns = `id, property_id, tenant_id, start_date, end_date, monthly_rent,
	security_deposit, lease_status, lease_terms, created_at, updated_at`

func scanLease(row interface{ Scan(...interface{}) error }) (*model.Lease, error) {
	l := &model.Lease{}
	var terms sql.NullString
	err := row.Scan(&l.ID, &l.PropertyID, &l.TenantID, &l.StartDate, &l.EndDate,
		&l.MonthlyRent, &l.SecurityDeposit, &l.Status, &terms,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	l.Terms = terms.String
	return l, nil
}

func (r *LeaseRepository) Create(ctx context.Context, l *model.Lease) error {
	query := `
		INSERT INTO leases (property_id, tenant_id, start_date, end_date, monthly_rent,
			security_deposit, lease_status, lease_terms, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		l.PropertyID, l.TenantID, l.StartDate, l.EndDate, l.MonthlyRent,
		l.SecurityDeposit, l.Status, l.Terms, now,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *LeaseRepository) GetByID(ctx context.Context, id int64) (*model.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE id = $1`
	l, err := scanLease(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return l, err
}

func (r *LeaseRepository) List(ctx context.Context) ([]model.Lease, error) {
	return r.queryLeases(ctx, `SELECT `+leaseColumns+` FROM leases ORDER BY id`)
}

func (r *LeaseRepository) ListByStatus(ctx context.Context, status model.LeaseStatus) ([]model.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE lease_status = $1 ORDER BY id`
	return r.queryLeases(ctx, query, status)
}

func (r *LeaseRepository) ListByProperty(ctx context.Context, propertyID int64) ([]model.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE property_id = $1 ORDER BY id`
	return r.queryLeases(ctx, query, propertyID)
}

func (r *LeaseRepository) ListByTenant(ctx context.Context, tenantID int64) ([]model.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE tenant_id = $1 ORDER BY id`
	return r.queryLeases(ctx, query, tenantID)
}

// ActiveByProperty returns the active lease for a property, or
// ErrNotFound when the property has none.
func (r *LeaseRepository) ActiveByProperty(ctx context.Context, propertyID int64) (*model.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases
		WHERE property_id = $1 AND lease_status = 'ACTIVE'`
	l, err := scanLease(r.db.QueryRowContext(ctx, query, propertyID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return l, err
}

func (r *LeaseRepository) ActiveByTenant(ctx context.Context, tenantID int64) (*model.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases
		WHERE tenant_id = $1 AND lease_status = 'ACTIVE'`
	l, err := scanLease(r.db.QueryRowContext(ctx, query, tenantID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return l, err
}

// EndingBetween returns active leases whose end date falls in the
// inclusive range [start, end], soonest first.
func (r *LeaseRepository) EndingBetween(ctx context.Context, start, end model.Date) ([]model.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases
		WHERE lease_status = 'ACTIVE' AND end_date BETWEEN $1 AND $2
		ORDER BY end_date`
	return r.queryLeases(ctx, query, start, end)
}

// ExpiredActive returns leases still marked ACTIVE whose end date has
// already passed. Read-only data-quality query; rows are never
// auto-corrected.
func (r *LeaseRepository) ExpiredActive(ctx context.Context, today model.Date) ([]model.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases
		WHERE lease_status = 'ACTIVE' AND end_date < $1
		ORDER BY end_date`
	return r.queryLeases(ctx, query, today)
}

func (r *LeaseRepository) CountByStatus(ctx context.Context, status model.LeaseStatus) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leases WHERE lease_status = $1`, status).Scan(&count)
	return count, err
}

func (r *LeaseRepository) Update(ctx context.Context, l *model.Lease) error {
	query := `
		UPDATE leases
		SET property_id = $2, tenant_id = $3, start_date = $4, end_date = $5,
			monthly_rent = $6, security_deposit = $7, lease_status = $8,
			lease_terms = $9, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		l.ID, l.PropertyID, l.TenantID, l.StartDate, l.EndDate,
		l.MonthlyRent, l.SecurityDeposit, l.Status, l.Terms,
	).Scan(&l.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func (r *LeaseRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM leases WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LeaseRepository) queryLeases(ctx context.Context, query string, args ...interface{}) ([]model.Lease, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []model.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		leases = append(leases, *l)
	}
	return leases, rows.Err()
}
