package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/model"
)

// PaymentRepository handles database operations for payments,
// including the ledger aggregates. Every SUM is coalesced to zero in
// SQL so an empty result set never surfaces as a null operand.
type PaymentRepository struct {
	db *sql.DB
}

const paymentColumns = `id, lease_id, payment_date, amount, payment_type, payment_method,
	payment_status, due_date, notes, created_at, updated_at`

func scanPayment(row interface{ Scan(...interface{}) error }) (*model.Payment, error) {
	p := &model.Payment{}
	var (
		dueDate sql.NullTime
		notes   sql.NullString
	)
	err := row.Scan(&p.ID, &p.LeaseID, &p.PaymentDate, &p.Amount, &p.PaymentType,
		&p.PaymentMethod, &p.Status, &dueDate, &notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.DueDate = dateFromNull(dueDate)
	p.Notes = notes.String
	return p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	query := `
		INSERT INTO payments (lease_id, payment_date, amount, payment_type, payment_method,
			payment_status, due_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		p.LeaseID, p.PaymentDate, p.Amount, p.PaymentType, p.PaymentMethod,
		p.Status, nullDate(p.DueDate), p.Notes, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PaymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	return r.queryPayments(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
}

func (r *PaymentRepository) ListByLease(ctx context.Context, leaseID int64) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE lease_id = $1 ORDER BY id`
	return r.queryPayments(ctx, query, leaseID)
}

func (r *PaymentRepository) ListByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_status = $1 ORDER BY id`
	return r.queryPayments(ctx, query, status)
}

func (r *PaymentRepository) ListByType(ctx context.Context, paymentType model.PaymentType) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_type = $1 ORDER BY id`
	return r.queryPayments(ctx, query, paymentType)
}

func (r *PaymentRepository) ListByDateRange(ctx context.Context, start, end model.Date) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE payment_date BETWEEN $1 AND $2 ORDER BY payment_date`
	return r.queryPayments(ctx, query, start, end)
}

// ListByTenant returns all payments made under any of a tenant's
// leases.
func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID int64) ([]model.Payment, error) {
	query := `SELECT p.id, p.lease_id, p.payment_date, p.amount, p.payment_type,
			p.payment_method, p.payment_status, p.due_date, p.notes, p.created_at, p.updated_at
		FROM payments p JOIN leases l ON l.id = p.lease_id
		WHERE l.tenant_id = $1 ORDER BY p.id`
	return r.queryPayments(ctx, query, tenantID)
}

func (r *PaymentRepository) ListByProperty(ctx context.Context, propertyID int64) ([]model.Payment, error) {
	query := `SELECT p.id, p.lease_id, p.payment_date, p.amount, p.payment_type,
			p.payment_method, p.payment_status, p.due_date, p.notes, p.created_at, p.updated_at
		FROM payments p JOIN leases l ON l.id = p.lease_id
		WHERE l.property_id = $1 ORDER BY p.id`
	return r.queryPayments(ctx, query, propertyID)
}

// Overdue returns pending payments whose due date is strictly before
// asOf, oldest due date first.
func (r *PaymentRepository) Overdue(ctx context.Context, asOf model.Date) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE payment_status = 'PENDING' AND due_date < $1
		ORDER BY due_date`
	return r.queryPayments(ctx, query, asOf)
}

// LatePayments returns completed payments made after their due date.
func (r *PaymentRepository) LatePayments(ctx context.Context) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE payment_status = 'COMPLETED' AND payment_date > due_date
		ORDER BY payment_date`
	return r.queryPayments(ctx, query)
}

// TotalCompletedForLease sums completed payment amounts for a lease.
func (r *PaymentRepository) TotalCompletedForLease(ctx context.Context, leaseID int64) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE lease_id = $1 AND payment_status = 'COMPLETED'`
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, leaseID).Scan(&total)
	return total, err
}

// OutstandingForLease sums pending payment amounts with a due date
// strictly before asOf.
func (r *PaymentRepository) OutstandingForLease(ctx context.Context, leaseID int64, asOf model.Date) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN payment_status = 'PENDING' THEN amount ELSE 0 END), 0)
		FROM payments WHERE lease_id = $1 AND due_date < $2`
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, leaseID, asOf).Scan(&total)
	return total, err
}

// TotalRentReceived sums completed RENT payments across the portfolio.
func (r *PaymentRepository) TotalRentReceived(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE payment_type = 'RENT' AND payment_status = 'COMPLETED'`
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, query).Scan(&total)
	return total, err
}

// TotalRentExpected sums RENT payments already billed by asOf,
// regardless of status.
func (r *PaymentRepository) TotalRentExpected(ctx context.Context, asOf model.Date) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE payment_type = 'RENT' AND due_date <= $1`
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, asOf).Scan(&total)
	return total, err
}

// CountLate counts completed payments made after their due date.
func (r *PaymentRepository) CountLate(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM payments
		WHERE payment_status = 'COMPLETED' AND payment_date > due_date`
	var count int64
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

// MonthlyRentCollection sums completed RENT payments made in the given
// calendar month.
func (r *PaymentRepository) MonthlyRentCollection(ctx context.Context, year, month int) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE payment_type = 'RENT' AND payment_status = 'COMPLETED'
		  AND EXTRACT(YEAR FROM payment_date) = $1
		  AND EXTRACT(MONTH FROM payment_date) = $2`
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, year, month).Scan(&total)
	return total, err
}

func (r *PaymentRepository) Update(ctx context.Context, p *model.Payment) error {
	query := `
		UPDATE payments
		SET lease_id = $2, payment_date = $3, amount = $4, payment_type = $5,
			payment_method = $6, payment_status = $7, due_date = $8, notes = $9,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.LeaseID, p.PaymentDate, p.Amount, p.PaymentType,
		p.PaymentMethod, p.Status, nullDate(p.DueDate), p.Notes,
	).Scan(&p.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
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

func (r *PaymentRepository) queryPayments(ctx context.Context, query string, args ...interface{}) ([]model.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
